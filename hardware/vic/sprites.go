package vic

// spriteExpansionToggle runs in cycle 55. sprites with the Y expand bit set
// invert their expansion flipflop once per line, halving their vertical
// advance
func (v *VIC) spriteExpansionToggle() {
	for n := range v.sprite {
		if v.spriteYExpand(n) {
			v.sprite[n].expansionFF = !v.sprite[n].expansionFF
		}
	}
}

// spriteDMACheck runs in cycles 55 and 56. an enabled sprite whose Y
// coordinate matches the low byte of the y counter starts its DMA
func (v *VIC) spriteDMACheck() {
	for n := range v.sprite {
		s := &v.sprite[n]
		if s.dma {
			continue
		}
		if v.spriteEnabled(n) && v.spriteY(n) == uint8(v.yCounter) {
			s.dma = true
			s.mcbase = 0
			if v.spriteYExpand(n) {
				s.expansionFF = false
			}
		}
	}
}

// spriteDisplayCheck runs in cycle 58. MC is reloaded from MCBASE for every
// sprite and display is switched on for sprites whose DMA is running and
// whose Y coordinate matches
func (v *VIC) spriteDisplayCheck() {
	for n := range v.sprite {
		s := &v.sprite[n]
		s.mc = s.mcbase
		if s.dma && v.spriteY(n) == uint8(v.yCounter) {
			s.display = true
		}
	}
}

// spriteEndOfLine runs in cycle 16, once the sprite fetches that spill into
// the start of the line have completed. MCBASE catches up with MC and DMA
// ends once all 63 bytes of the sprite have been fetched
//
// a Y expand bit cleared during the crunch cycle modifies MC first. the
// combine of MC and MCBASE reproduces the partial counter reload of the
// real chip and is what makes the sprite crunch effect work
func (v *VIC) spriteEndOfLine() {
	for n := range v.sprite {
		s := &v.sprite[n]

		if s.crunch {
			s.crunch = false
			if s.dma {
				s.mc = (0x2a & s.mcbase & s.mc) | (0x15 & (s.mcbase | s.mc))
			}
		}

		if s.expansionFF {
			s.mcbase = s.mc
			if s.mcbase == 63 {
				s.dma = false
				s.display = false
			}
		}
	}
}

// spriteSweep runs for every pixel position as the x counter sweeps the
// line. a sprite whose data bytes have been fetched starts emitting when
// the sweep reaches its x coordinate; active units emit one pixel each
//
// emission is gated on the fetch having happened rather than on the display
// flag. a unit whose DMA has only just switched on stays silent until its
// first s-accesses have run, so every unit shows its first row one fetch
// after the Y comparison matches, whichever end of the line its bus slots
// are on. the gate also carries the final row: its bytes are fetched before
// DMA and display are switched off in cycle 16 but emitted later in the
// sweep, from the data already in the shift register
func (v *VIC) spriteSweep(x int) {
	for n := range v.sprite {
		s := &v.sprite[n]

		if !s.active {
			if !s.loaded || x != int(v.spriteX(n)) {
				continue
			}
			s.active = true
			s.loaded = false
			s.seq = uint32(s.shift[0])<<16 | uint32(s.shift[1])<<8 | uint32(s.shift[2])
			s.seqBits = 24
			s.xexpFlop = false
			s.mcFlop = true
			s.mcPair = 0
		}

		v.spriteEmit(n, x)
	}
}

// spriteEmit produces one pixel from an active sprite unit. the multicolor,
// expansion, priority and colour registers are read live so that mid-line
// writes take effect from the pixel at which they happen
func (v *VIC) spriteEmit(n int, x int) {
	s := &v.sprite[n]

	multicolor := v.regs[0x1c]&(1<<n) != 0
	expand := v.regs[0x1d]&(1<<n) != 0

	var sel uint8
	if multicolor {
		// the two-bit selector is sampled every other consumed bit,
		// producing double width pixels
		if s.mcFlop {
			s.mcPair = uint8((s.seq >> 22) & 0x03)
		}
		sel = s.mcPair
	} else {
		sel = uint8((s.seq >> 23) & 0x01)
	}

	if sel != 0 {
		var colour uint8
		if multicolor {
			switch sel {
			case 1:
				colour = v.regs[0x25] & 0x0f
			case 2:
				colour = v.regs[0x27+n] & 0x0f
			case 3:
				colour = v.regs[0x26] & 0x0f
			}
		} else {
			colour = v.regs[0x27+n] & 0x0f
		}

		depth := uint8(depthSpriteFG | n)
		if v.regs[0x1b]&(1<<n) != 0 {
			depth = uint8(depthSpriteBG | n)
		}

		v.spritePixel(n, x, colour, depth)
	}

	// advance the shift register. an expanded sprite consumes a bit every
	// other pixel, doubling its width
	if !expand || s.xexpFlop {
		s.seq <<= 1
		s.seqBits--
		s.mcFlop = !s.mcFlop
		s.xexpFlop = false
		if s.seqBits == 0 {
			s.active = false
		}
	} else {
		s.xexpFlop = true
	}
}

// spritePixel draws one sprite pixel, recording collisions first. collision
// recording is independent of the depth test: a sprite behind the
// foreground, or behind the border, still collides
func (v *VIC) spritePixel(n int, x int, colour uint8, depth uint8) {
	col := v.visibleColumn(x)
	if col < 0 {
		return
	}

	src := v.srcBuffer[col]

	others := uint8(src) &^ (1 << n)
	if others != 0 {
		if v.sprSprColl == 0 {
			v.triggerIRQ(irqSprSpr)
		}
		v.sprSprColl |= others | 1<<n
	}

	if src&srcForeground != 0 {
		if v.sprBgColl == 0 {
			v.triggerIRQ(irqSprBg)
		}
		v.sprBgColl |= 1 << n
	}

	v.srcBuffer[col] |= 1 << n

	v.plot(col, colour, depth)
}
