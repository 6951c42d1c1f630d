package vic

// depth values for the z buffer. a lower value is closer to the viewer. the
// sprite depths are ORed with the sprite number so that lower numbered
// sprites win
const (
	depthBorder     = 0x10
	depthSpriteFG   = 0x20
	depthForeground = 0x30
	depthSpriteBG   = 0x40
	depthBackground = 0x50
)

// srcForeground marks a pixel produced by the graphics sequencer as
// foreground in the source buffer. bits 0 to 7 mark the sprite units
const srcForeground = 0x100

// draw produces the eight pixels of the current cycle. the border flipflops
// are evaluated at pixel granularity because the left/right comparison
// values are not aligned to cycle boundaries in the 38 column mode
func (v *VIC) draw() {
	if v.cycle == v.spec.CyclesPerLine {
		v.checkVerticalBorder()
	}

	d := v.pipe[2]
	xscroll := int(v.xscroll())

	for i := 0; i < 8; i++ {
		x := (int(v.xCounter) + i) % v.spec.Width

		v.checkBorderPixel(x)

		if d.valid && i == xscroll {
			v.gs.load(d)
		}

		sel, fg := v.gs.pixel()

		if col := v.visibleColumn(x); col >= 0 {
			// the foreground tag is recorded even where the border
			// overlays the pixel. sprite collisions see through the border
			if fg {
				v.srcBuffer[col] |= srcForeground
			}

			if v.mainFrameFF {
				v.plot(col, v.borderColour(), depthBorder)
			} else if fg {
				v.plot(col, v.gsColour(sel), depthForeground)
			} else {
				v.plot(col, v.gsColour(sel), depthBackground)
			}
		}

		// the sprite units emit after the graphics pixel is in place so
		// that collisions and priority resolve against this pixel
		v.spriteSweep(x)
	}
}

// plot writes a pixel into the line buffer if nothing closer to the viewer
// has claimed it
func (v *VIC) plot(col int, colour uint8, depth uint8) {
	if depth <= v.zBuffer[col] {
		v.zBuffer[col] = depth
		v.lineBuffer[col] = v.palette[colour]
	}
}

// visibleColumn maps an x coordinate (sprite coordinate system) to a column
// of the visible image, or -1 if the coordinate is in the invisible portion
// of the line
func (v *VIC) visibleColumn(x int) int {
	col := x - v.spec.FirstVisibleX
	if col < 0 {
		col += v.spec.Width
	}
	if col >= v.spec.ViewablePixels {
		return -1
	}
	return col
}

// flushLine copies the completed line buffer into the back framebuffer
func (v *VIC) flushLine() {
	row := int(v.yCounter) - v.spec.FirstVisibleLine
	if row < 0 || row >= v.spec.ViewableLines {
		return
	}
	copy(v.screenBuffers[v.back][row*v.spec.ViewablePixels:(row+1)*v.spec.ViewablePixels], v.lineBuffer)
}

func (v *VIC) clearLineBuffers() {
	black := v.palette[0]
	for i := range v.lineBuffer {
		v.lineBuffer[i] = black
		v.zBuffer[i] = 0xff
		v.srcBuffer[i] = 0
	}
}
