package vic

// displayMode is the ECM/BMM/MCM triple. three of the eight combinations are
// invalid and output black, which is observable behaviour rather than an
// error
type displayMode uint8

const (
	modeStandardText displayMode = iota
	modeMulticolorText
	modeStandardBitmap
	modeMulticolorBitmap
	modeECMText
	modeInvalidText
	modeInvalidBitmap1
	modeInvalidBitmap2
)

func (m displayMode) String() string {
	switch m {
	case modeStandardText:
		return "standard text"
	case modeMulticolorText:
		return "multicolor text"
	case modeStandardBitmap:
		return "standard bitmap"
	case modeMulticolorBitmap:
		return "multicolor bitmap"
	case modeECMText:
		return "ECM text"
	case modeInvalidText:
		return "invalid text"
	case modeInvalidBitmap1:
		return "invalid bitmap (ECM+BMM)"
	case modeInvalidBitmap2:
		return "invalid bitmap (ECM+BMM+MCM)"
	}
	return "unknown"
}

func (m displayMode) invalid() bool {
	return m >= modeInvalidText
}

// mode returns the current display mode from the two control registers
func (v *VIC) mode() displayMode {
	var m displayMode
	if v.mcm() {
		m |= 0x01
	}
	if v.bmm() {
		m |= 0x02
	}
	if v.ecm() {
		m |= 0x04
	}
	return m
}

// gdata is one stage of the pipeline between the g-access and pixel output.
// the display mode is recorded at the time of the access, which is what
// produces the delayed effect of mid-line mode changes
type gdata struct {
	valid  bool
	data   uint8
	char   uint8
	colour uint8
	mode   displayMode
}

// sequencer is the graphics shift register and its latched attributes. the
// shift register is loaded at the pixel position selected by XSCROLL and
// shifts one bit per pixel. in multicolor operation a flipflop halves the
// rate at which the two-bit selector is sampled, producing double width
// pixels
type sequencer struct {
	shiftReg uint8
	mcFlop   bool
	mcPair   uint8

	char   uint8
	colour uint8
	mode   displayMode

	// whether the latched attributes select multicolor operation
	multicol bool
}

func (gs *sequencer) load(d gdata) {
	gs.shiftReg = d.data
	gs.char = d.char
	gs.colour = d.colour
	gs.mode = d.mode
	gs.mcFlop = true
	gs.mcPair = 0

	switch d.mode {
	case modeMulticolorText, modeInvalidText:
		// only characters with the top bit of their colour nybble set are
		// rendered in multicolor
		gs.multicol = d.colour&0x08 == 0x08
	case modeMulticolorBitmap, modeInvalidBitmap2:
		gs.multicol = true
	default:
		gs.multicol = false
	}
}

// pixel emits one pixel from the shift register. it returns the two-bit
// selector and whether the pixel is foreground. foreground pixels are those
// with selector 1 (single colour) or 10/11 (multicolor); they participate in
// sprite collision and priority
func (gs *sequencer) pixel() (uint8, bool) {
	if gs.multicol {
		if gs.mcFlop {
			gs.mcPair = gs.shiftReg >> 6
		}
		gs.shiftReg <<= 1
		gs.mcFlop = !gs.mcFlop
		return gs.mcPair, gs.mcPair >= 0x02
	}

	bit := gs.shiftReg >> 7
	gs.shiftReg <<= 1
	return bit, bit == 0x01
}

// gsColour resolves the selector emitted by the sequencer to a colour code.
// background sourced entries are read live from the registers so that
// mid-line background colour changes appear immediately
func (v *VIC) gsColour(sel uint8) uint8 {
	if v.gs.mode.invalid() {
		return 0x00
	}

	switch v.gs.mode {
	case modeStandardText:
		if sel == 0 {
			return v.backgroundColour(0)
		}
		return v.gs.colour

	case modeMulticolorText:
		if !v.gs.multicol {
			// single colour rendering with the top colour bit clear
			if sel == 0 {
				return v.backgroundColour(0)
			}
			return v.gs.colour & 0x07
		}
		switch sel {
		case 0:
			return v.backgroundColour(0)
		case 1:
			return v.backgroundColour(1)
		case 2:
			return v.backgroundColour(2)
		}
		return v.gs.colour & 0x07

	case modeStandardBitmap:
		if sel == 0 {
			return v.gs.char & 0x0f
		}
		return v.gs.char >> 4

	case modeMulticolorBitmap:
		switch sel {
		case 0:
			return v.backgroundColour(0)
		case 1:
			return v.gs.char >> 4
		case 2:
			return v.gs.char & 0x0f
		}
		return v.gs.colour

	case modeECMText:
		if sel == 0 {
			// the top two bits of the character code select the background
			// register
			return v.backgroundColour(v.gs.char >> 6)
		}
		return v.gs.colour
	}

	return 0x00
}
