package spec

import (
	"github.com/jetsetilly/test64/hardware/clocks"
)

// Spec describes one of the two raster models of the VIC. the two models are
// referred to historically as PAL and NTSC although neither the colour
// encoding nor any other analogue property is emulated
type Spec struct {
	ID string

	// cycles per rasterline and rasterlines per frame
	CyclesPerLine int
	Rasterlines   int

	// total pixels in one rasterline. always CyclesPerLine multiplied by
	// eight
	Width int

	// the x coordinate (in the sprite coordinate system) of the first pixel
	// of cycle 1. the x counter wraps at Width
	XOffset int

	// dimensions of the visible image, including borders
	ViewablePixels int
	ViewableLines  int

	// the first rasterline and the first x coordinate that appear in the
	// visible image
	FirstVisibleLine int
	FirstVisibleX    int

	// border geometry around the 320x200 display window
	LeftBorderWidth   int
	RightBorderWidth  int
	UpperBorderHeight int
	LowerBorderHeight int

	// horizontal scan rate. used to derive the frame rate for the limiter
	HorizScan float64
}

// Refresh returns the frame rate of the model
func (sp Spec) Refresh() float64 {
	return sp.HorizScan / float64(sp.Rasterlines)
}

var PAL Spec
var NTSC Spec

func init() {
	PAL = Spec{
		// the 6569 runs 63 cycles per rasterline and 312 rasterlines per
		// frame. the first visible line is 0x008 and the last is 0x12b
		ID:                "PAL",
		CyclesPerLine:     63,
		Rasterlines:       312,
		Width:             504,
		XOffset:           0x190,
		ViewablePixels:    402,
		ViewableLines:     292,
		FirstVisibleLine:  8,
		FirstVisibleX:     482,
		LeftBorderWidth:   46,
		RightBorderWidth:  36,
		UpperBorderHeight: 43,
		LowerBorderHeight: 49,
		HorizScan:         clocks.PAL_C64 / 63,
	}

	NTSC = Spec{
		// the 6567 runs 65 cycles per rasterline and 263 rasterlines per
		// frame
		ID:                "NTSC",
		CyclesPerLine:     65,
		Rasterlines:       263,
		Width:             520,
		XOffset:           0x1a0,
		ViewablePixels:    418,
		ViewableLines:     235,
		FirstVisibleLine:  28,
		FirstVisibleX:     495,
		LeftBorderWidth:   49,
		RightBorderWidth:  49,
		UpperBorderHeight: 23,
		LowerBorderHeight: 12,
		HorizScan:         clocks.NTSC_C64 / 65,
	}
}
