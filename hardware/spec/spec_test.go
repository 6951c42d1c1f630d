package spec

import (
	"testing"

	"github.com/jetsetilly/test64/test"
)

func TestGeometry(t *testing.T) {
	for _, sp := range []Spec{PAL, NTSC} {
		// eight pixels per cycle
		test.ExpectEquality(t, sp.Width, sp.CyclesPerLine*8)

		// the borders and the 320x200 display window account for the
		// visible dimensions
		test.ExpectEquality(t, sp.ViewablePixels, sp.LeftBorderWidth+320+sp.RightBorderWidth)
		test.ExpectEquality(t, sp.ViewableLines, sp.UpperBorderHeight+200+sp.LowerBorderHeight)

		// the display window opens at x coordinate 24 and rasterline 51
		test.ExpectEquality(t, (sp.FirstVisibleX+sp.LeftBorderWidth)%sp.Width, 24)
		test.ExpectEquality(t, sp.FirstVisibleLine+sp.UpperBorderHeight, 51)

		// the visible portion fits in the frame
		test.ExpectSuccess(t, sp.FirstVisibleLine+sp.ViewableLines <= sp.Rasterlines)

		// the x offset is a multiple of eight so that cycle boundaries are
		// byte aligned
		test.ExpectEquality(t, sp.XOffset%8, 0)
	}

	test.ExpectEquality(t, PAL.Rasterlines, 312)
	test.ExpectEquality(t, PAL.CyclesPerLine, 63)
	test.ExpectEquality(t, NTSC.Rasterlines, 263)
	test.ExpectEquality(t, NTSC.CyclesPerLine, 65)
}

func TestRefreshRate(t *testing.T) {
	// the derived frame rates should be close to the nominal 50Hz and 60Hz
	pal := PAL.Refresh()
	test.ExpectSuccess(t, pal > 50.0 && pal < 50.3)

	ntsc := NTSC.Refresh()
	test.ExpectSuccess(t, ntsc > 59.5 && ntsc < 60.1)
}

func TestPalettes(t *testing.T) {
	// all twelve palettes resolve
	for id := PaletteID(0); id < numPalettes; id++ {
		p, err := Palette(id)
		test.ExpectSuccess(t, err)
		test.ExpectInequality(t, id.String(), "unknown")

		// every entry is opaque
		for _, c := range p {
			test.ExpectEquality(t, c&0xff000000, uint32(0xff000000))
		}
	}

	// black is black and white is white in the Pepto scheme
	p, err := Palette(Pepto)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p[0], uint32(0xff000000))
	test.ExpectEquality(t, p[1], uint32(0xffffffff))

	_, err = Palette(PaletteID(99))
	test.ExpectFailure(t, err)
	_, err = Palette(PaletteID(-1))
	test.ExpectFailure(t, err)
}
