package vic

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// snapshot format. every field is serialised in a fixed byte order with no
// variable length sections
const snapshotVersion = 0x01
const snapshotSize = 145

var ErrSnapshotVersion = errors.New("snapshot: version mismatch")
var ErrSnapshotTruncated = errors.New("snapshot: truncated")

// Save serialises the chip state
func (v *VIC) Save(w io.Writer) error {
	var b [snapshotSize]uint8

	b[0] = snapshotVersion

	copy(b[1:65], v.regs[:])

	// the collision and interrupt registers are shadowed by fields
	b[1+0x1e] = v.sprSprColl
	b[1+0x1f] = v.sprBgColl

	binary.LittleEndian.PutUint16(b[65:], v.vc)
	binary.LittleEndian.PutUint16(b[67:], v.vcbase)
	b[69] = v.rc
	b[70] = v.vmli
	b[71] = v.ref
	binary.LittleEndian.PutUint16(b[72:], v.xCounter)
	binary.LittleEndian.PutUint16(b[74:], v.yCounter)

	flags := b[76:82]
	flags[0] = boolByte(v.badLine)
	flags[1] = boolByte(v.denSetInLine30)
	flags[2] = boolByte(v.displayState)
	flags[3] = boolByte(v.mainFrameFF)
	flags[4] = boolByte(v.verticalFrameFF)
	flags[5] = boolByte(v.lpTriggered)

	for n := range v.sprite {
		s := &v.sprite[n]
		o := 82 + n*7
		b[o] = s.mc
		b[o+1] = s.mcbase
		b[o+2] = s.shift[0]
		b[o+3] = s.shift[1]
		b[o+4] = s.shift[2]
		b[o+5] = boolByte(s.dma)
		b[o+6] = boolByte(s.expansionFF)
	}

	b[138] = v.irqLatch
	b[139] = v.irqMask
	b[140] = v.mem.Bank()
	binary.LittleEndian.PutUint32(b[141:], uint32(v.frame))

	_, err := w.Write(b[:])
	return err
}

// Load restores the chip state from a snapshot. on failure the chip is left
// unchanged
func (v *VIC) Load(r io.Reader) error {
	var b [snapshotSize]uint8

	if _, err := io.ReadFull(r, b[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrSnapshotTruncated
		}
		return fmt.Errorf("snapshot: %w", err)
	}

	if b[0] != snapshotVersion {
		return ErrSnapshotVersion
	}

	yCounter := binary.LittleEndian.Uint16(b[74:])
	if int(yCounter) >= v.spec.Rasterlines {
		return fmt.Errorf("snapshot: y counter out of range for %s model", v.spec.ID)
	}

	xCounter := binary.LittleEndian.Uint16(b[72:])
	cycle := (int(xCounter) - v.spec.XOffset + v.spec.Width) % v.spec.Width
	if cycle%8 != 0 || cycle/8 >= v.spec.CyclesPerLine {
		return fmt.Errorf("snapshot: x counter out of range for %s model", v.spec.ID)
	}

	copy(v.regs[:], b[1:65])
	v.sprSprColl = v.regs[0x1e]
	v.sprBgColl = v.regs[0x1f]
	v.regs[0x1e] = 0
	v.regs[0x1f] = 0

	v.vc = binary.LittleEndian.Uint16(b[65:]) & 0x3ff
	v.vcbase = binary.LittleEndian.Uint16(b[67:]) & 0x3ff
	v.rc = b[69] & 0x07
	v.vmli = b[70] & 0x3f
	v.ref = b[71]
	v.xCounter = xCounter
	v.yCounter = yCounter
	v.cycle = cycle/8 + 1

	flags := b[76:82]
	v.badLine = flags[0] != 0
	v.denSetInLine30 = flags[1] != 0
	v.displayState = flags[2] != 0
	v.mainFrameFF = flags[3] != 0
	v.verticalFrameFF = flags[4] != 0
	v.lpTriggered = flags[5] != 0

	for n := range v.sprite {
		s := &v.sprite[n]
		o := 82 + n*7
		s.mc = b[o] & 0x3f
		s.mcbase = b[o+1] & 0x3f
		s.shift[0] = b[o+2]
		s.shift[1] = b[o+3]
		s.shift[2] = b[o+4]
		s.dma = b[o+5] != 0
		s.expansionFF = b[o+6] != 0
		s.display = s.dma
		s.crunch = false

		// per-line emission state is not part of the snapshot
		s.loaded = false
		s.active = false
		s.seq = 0
		s.seqBits = 0
		s.xexpFlop = false
		s.mcFlop = false
		s.mcPair = 0
	}

	v.irqLatch = b[138] & 0x0f
	v.irqMask = b[139] & 0x0f
	v.frame = uint64(binary.LittleEndian.Uint32(b[141:]))

	// transient per-line state is not part of the snapshot
	v.pipe = [3]gdata{}
	v.gs = sequencer{}
	v.clearLineBuffers()

	v.updateIRQLine()

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
