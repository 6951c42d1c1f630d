package vic

import (
	"testing"

	"github.com/jetsetilly/test64/hardware/spec"
	"github.com/jetsetilly/test64/test"
)

// emit runs the sequencer over a full byte and returns the colour codes and
// foreground tags of the eight pixels
func emit(v *VIC, d gdata) ([8]uint8, [8]bool) {
	var colours [8]uint8
	var fg [8]bool

	v.gs.load(d)
	for i := 0; i < 8; i++ {
		sel, f := v.gs.pixel()
		colours[i] = v.gsColour(sel)
		fg[i] = f
	}
	return colours, fg
}

func TestStandardTextPixels(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)
	v.Poke(0x21, 0x06)

	colours, fg := emit(v, gdata{valid: true, data: 0xa5, char: 0x01, colour: 0x07, mode: modeStandardText})

	// 10100101
	expected := [8]uint8{7, 6, 7, 6, 6, 7, 6, 7}
	expectedFg := [8]bool{true, false, true, false, false, true, false, true}
	test.ExpectEquality(t, colours, expected)
	test.ExpectEquality(t, fg, expectedFg)
}

func TestMulticolorTextPixels(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)
	v.Poke(0x21, 0x01)
	v.Poke(0x22, 0x02)
	v.Poke(0x23, 0x03)

	// with the top bit of the colour nybble set the character renders in
	// multicolor. pixel pairs 00 01 10 11
	colours, fg := emit(v, gdata{valid: true, data: 0x1b, colour: 0x0f, mode: modeMulticolorText})

	expected := [8]uint8{1, 1, 2, 2, 3, 3, 7, 7}
	expectedFg := [8]bool{false, false, false, false, true, true, true, true}
	test.ExpectEquality(t, colours, expected)
	test.ExpectEquality(t, fg, expectedFg)

	// with the top bit clear the character renders in standard mode using
	// the low three bits of the colour
	colours, fg = emit(v, gdata{valid: true, data: 0x0f, colour: 0x05, mode: modeMulticolorText})
	expected = [8]uint8{1, 1, 1, 1, 5, 5, 5, 5}
	expectedFg = [8]bool{false, false, false, false, true, true, true, true}
	test.ExpectEquality(t, colours, expected)
	test.ExpectEquality(t, fg, expectedFg)
}

func TestStandardBitmapPixels(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	// 0 pixels take the low nybble of the matrix byte, 1 pixels the high
	// nybble
	colours, _ := emit(v, gdata{valid: true, data: 0xf0, char: 0x9c, mode: modeStandardBitmap})

	expected := [8]uint8{9, 9, 9, 9, 0x0c, 0x0c, 0x0c, 0x0c}
	test.ExpectEquality(t, colours, expected)
}

func TestMulticolorBitmapPixels(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)
	v.Poke(0x21, 0x0b)

	// pixel pairs 00 01 10 11
	colours, fg := emit(v, gdata{valid: true, data: 0x1b, char: 0x9c, colour: 0x05, mode: modeMulticolorBitmap})

	expected := [8]uint8{0x0b, 0x0b, 0x09, 0x09, 0x0c, 0x0c, 0x05, 0x05}
	expectedFg := [8]bool{false, false, false, false, true, true, true, true}
	test.ExpectEquality(t, colours, expected)
	test.ExpectEquality(t, fg, expectedFg)
}

func TestECMTextPixels(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)
	v.Poke(0x21, 0x01)
	v.Poke(0x22, 0x02)
	v.Poke(0x23, 0x03)
	v.Poke(0x24, 0x04)

	// the top two bits of the character code select the background
	// register
	for i, expected := range []uint8{1, 2, 3, 4} {
		char := uint8(i << 6)
		colours, _ := emit(v, gdata{valid: true, data: 0x00, char: char, colour: 0x07, mode: modeECMText})
		test.ExpectEquality(t, colours[0], expected)
	}

	colours, fg := emit(v, gdata{valid: true, data: 0x80, char: 0x40, colour: 0x07, mode: modeECMText})
	test.ExpectEquality(t, colours[0], uint8(7))
	test.ExpectSuccess(t, fg[0])
	test.ExpectEquality(t, colours[1], uint8(2))
}

func TestInvalidModesAreBlack(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)
	v.Poke(0x21, 0x06)

	for _, m := range []displayMode{modeInvalidText, modeInvalidBitmap1, modeInvalidBitmap2} {
		colours, _ := emit(v, gdata{valid: true, data: 0xff, char: 0xff, colour: 0x0f, mode: m})
		for i := range colours {
			test.ExpectEquality(t, colours[i], uint8(0x00))
		}
	}

	// foreground tagging still applies in the invalid modes: collisions
	// happen against invisible graphics
	_, fg := emit(v, gdata{valid: true, data: 0xff, char: 0xff, colour: 0x00, mode: modeInvalidBitmap1})
	test.ExpectSuccess(t, fg[0])
}

func TestStandardTextRendering(t *testing.T) {
	v, bus, _ := createTestVIC(spec.PAL)

	// a screen full of character 1, rendered from a character base of
	// 0x0800 with the left half of each glyph row set
	for i := 0; i < 0x400; i++ {
		bus.ram[i] = 0x01
		bus.colram[i] = 0x07
	}
	for i := 0; i < 8; i++ {
		bus.ram[0x808+i] = 0xf0
	}

	v.Poke(0x11, 0x1b)
	v.Poke(0x16, 0x08)
	v.Poke(0x18, 0x02)
	v.Poke(0x20, 0x0e)
	v.Poke(0x21, 0x06)

	for !v.Tick() {
	}
	for !v.Tick() {
	}

	p, err := spec.Palette(spec.Pepto)
	test.ExpectSuccess(t, err)

	fb := v.FrontBuffer()
	stride := v.spec.ViewablePixels

	// first display row. the display window starts at x coordinate 24,
	// which is column 46 of the visible image
	row := 51 - v.spec.FirstVisibleLine
	test.ExpectEquality(t, fb[row*stride+45], p[0x0e])
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, fb[row*stride+46+i], p[0x07])
		test.ExpectEquality(t, fb[row*stride+50+i], p[0x06])
	}

	// the pattern repeats for every column, including the last
	test.ExpectEquality(t, fb[row*stride+362], p[0x06])
	test.ExpectEquality(t, fb[row*stride+366], p[0x0e])
}

func TestXScroll(t *testing.T) {
	v, bus, _ := createTestVIC(spec.PAL)

	for i := 0; i < 0x400; i++ {
		bus.ram[i] = 0x01
		bus.colram[i] = 0x07
	}
	for i := 0; i < 8; i++ {
		bus.ram[0x808+i] = 0xff
	}

	v.Poke(0x11, 0x1b)
	v.Poke(0x16, 0x0b) // CSEL with an XSCROLL of 3
	v.Poke(0x18, 0x02)
	v.Poke(0x21, 0x06)

	for !v.Tick() {
	}
	for !v.Tick() {
	}

	p, err := spec.Palette(spec.Pepto)
	test.ExpectSuccess(t, err)

	fb := v.FrontBuffer()
	stride := v.spec.ViewablePixels

	// the first three pixels of the display window come from the empty
	// shift register; the scrolled character data starts three pixels in
	row := 51 - v.spec.FirstVisibleLine
	test.ExpectEquality(t, fb[row*stride+46], p[0x06])
	test.ExpectEquality(t, fb[row*stride+48], p[0x06])
	test.ExpectEquality(t, fb[row*stride+49], p[0x07])
}
