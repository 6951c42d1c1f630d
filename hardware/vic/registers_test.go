package vic

import (
	"testing"

	"github.com/jetsetilly/test64/hardware/spec"
	"github.com/jetsetilly/test64/test"
)

func TestUnimplementedBitsReadAsOne(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	v.Poke(0x16, 0x00)
	test.ExpectEquality(t, v.Peek(0x16), uint8(0xc0))

	v.Poke(0x18, 0x00)
	test.ExpectEquality(t, v.Peek(0x18), uint8(0x01))

	v.Poke(0x1a, 0x00)
	test.ExpectEquality(t, v.Peek(0x1a), uint8(0xf0))

	// colour registers are four bits wide
	v.Poke(0x20, 0x06)
	test.ExpectEquality(t, v.Peek(0x20), uint8(0xf6))
	v.Poke(0x2e, 0x0c)
	test.ExpectEquality(t, v.Peek(0x2e), uint8(0xfc))

	// the unmapped area reads 0xff and ignores writes
	for offset := uint16(0x2f); offset <= 0x3f; offset++ {
		v.Poke(offset, 0x00)
		test.ExpectEquality(t, v.Peek(offset), uint8(0xff))
	}
}

func TestRasterCounterReadback(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	v.Poke(0x11, 0x1b)

	tickTo(t, v, 0x85, 10)
	test.ExpectEquality(t, v.Peek(0x12), uint8(0x85))
	test.ExpectEquality(t, v.Peek(0x11)&0x80, uint8(0x00))

	// bit 7 of control register 1 reads back as bit 8 of the raster
	// counter, not as the raster compare bit that was written
	tickTo(t, v, 0x130, 10)
	test.ExpectEquality(t, v.Peek(0x12), uint8(0x30))
	test.ExpectEquality(t, v.Peek(0x11)&0x80, uint8(0x80))
	test.ExpectEquality(t, v.Peek(0x11)&0x7f, uint8(0x1b))
}

func TestCollisionRegistersReadClear(t *testing.T) {
	v, bus, _ := createTestVIC(spec.PAL)

	placeSprite(v, bus, 0, 200, 80, 0xff)
	placeSprite(v, bus, 1, 200, 80, 0xff)

	tickTo(t, v, 82, 1)

	// reading twice in succession yields the same value only if it was
	// zero
	first := v.Peek(0x1e)
	test.ExpectEquality(t, first, uint8(0x03))
	test.ExpectInequality(t, v.Peek(0x1e), first)
	test.ExpectEquality(t, v.Peek(0x1e), uint8(0x00))

	// writes to the collision registers are ignored
	v.Poke(0x1e, 0xff)
	test.ExpectEquality(t, v.Peek(0x1e), uint8(0x00))
}

func TestInterruptAcknowledge(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	// latch the raster interrupt for line zero and the lightpen
	tickTo(t, v, 10, 10)
	v.TriggerLightpen()
	test.ExpectEquality(t, v.Peek(0x19)&0x0f, uint8(irqRaster|irqLightpen))

	// acknowledging one bit leaves the other untouched
	v.Poke(0x19, uint8(irqRaster))
	test.ExpectEquality(t, v.Peek(0x19)&0x0f, uint8(irqLightpen))

	v.Poke(0x19, uint8(irqLightpen))
	test.ExpectEquality(t, v.Peek(0x19)&0x0f, uint8(0x00))
}

func TestPeekOffsetMasking(t *testing.T) {
	v, _, _ := createTestVIC(spec.PAL)

	v.Poke(0x20, 0x0e)

	// offsets are masked to six bits
	test.ExpectEquality(t, v.Peek(0x60), v.Peek(0x20))
	v.Poke(0x61, 0x06)
	test.ExpectEquality(t, v.Peek(0x21)&0x0f, uint8(0x06))
}
