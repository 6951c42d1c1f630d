package vic

import (
	"testing"

	"github.com/jetsetilly/test64/hardware/spec"
	"github.com/jetsetilly/test64/test"
)

func TestBorderComparisonValues(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	v.Poke(0x16, 0x08)
	v.Poke(0x11, 0x08)
	test.ExpectEquality(t, v.borderLeft(), 24)
	test.ExpectEquality(t, v.borderRight(), 344)
	test.ExpectEquality(t, v.borderTop(), uint16(51))
	test.ExpectEquality(t, v.borderBottom(), uint16(251))

	v.Poke(0x16, 0x00)
	v.Poke(0x11, 0x00)
	test.ExpectEquality(t, v.borderLeft(), 31)
	test.ExpectEquality(t, v.borderRight(), 335)
	test.ExpectEquality(t, v.borderTop(), uint16(55))
	test.ExpectEquality(t, v.borderBottom(), uint16(247))
}

func TestMainFlipflopHeldByVerticalFlipflop(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	v.Poke(0x16, 0x08)
	v.Poke(0x11, 0x18) // DEN, RSEL

	// mid-screen rasterline with the vertical flipflop set
	v.yCounter = 100
	v.verticalFrameFF = true
	v.mainFrameFF = true

	// reaching the left comparison value cannot clear the main flipflop
	// while the vertical flipflop is set
	v.checkBorderPixel(24)
	test.ExpectSuccess(t, v.mainFrameFF)

	// with the vertical flipflop cleared it can
	v.verticalFrameFF = false
	v.checkBorderPixel(24)
	test.ExpectFailure(t, v.mainFrameFF)

	// and the right comparison value sets it again
	v.checkBorderPixel(344)
	test.ExpectSuccess(t, v.mainFrameFF)
}

func TestVerticalFlipflopDEN(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	v.Poke(0x16, 0x08)
	v.Poke(0x11, 0x08) // RSEL but no DEN

	// without DEN the vertical flipflop is never cleared at the top of the
	// display window
	v.yCounter = 51
	v.verticalFrameFF = true
	v.checkBorderPixel(24)
	test.ExpectSuccess(t, v.verticalFrameFF)

	v.Poke(0x11, 0x18)
	v.checkBorderPixel(24)
	test.ExpectFailure(t, v.verticalFrameFF)

	// the bottom of the window sets the flipflop regardless of DEN
	v.yCounter = 251
	v.checkBorderPixel(24)
	test.ExpectSuccess(t, v.verticalFrameFF)
}

func TestBorderOverlay(t *testing.T) {
	v, bus, _ := createTestVIC(spec.PAL)

	// an empty display with a coloured border
	v.Poke(0x11, 0x1b)
	v.Poke(0x16, 0x08)
	v.Poke(0x20, 0x0e)
	v.Poke(0x21, 0x06)
	_ = bus

	// the frame flipflops start cleared so the first frame shows an open
	// upper border. assert on the second frame
	for !v.Tick() {
	}
	for !v.Tick() {
	}

	p, err := spec.Palette(spec.Pepto)
	test.ExpectSuccess(t, err)

	fb := v.FrontBuffer()
	stride := v.spec.ViewablePixels

	// above the display window everything is border
	row := 50 - v.spec.FirstVisibleLine
	test.ExpectEquality(t, fb[row*stride+46], p[0x0e])
	test.ExpectEquality(t, fb[row*stride+200], p[0x0e])

	// inside the window the background shows. x coordinate 24 is the
	// first column of the display window
	row = 100 - v.spec.FirstVisibleLine
	test.ExpectEquality(t, fb[row*stride+45], p[0x0e])
	test.ExpectEquality(t, fb[row*stride+46], p[0x06])
	test.ExpectEquality(t, fb[row*stride+365], p[0x06])
	test.ExpectEquality(t, fb[row*stride+366], p[0x0e])

	// below the window everything is border again
	row = 260 - v.spec.FirstVisibleLine
	test.ExpectEquality(t, fb[row*stride+200], p[0x0e])
}
