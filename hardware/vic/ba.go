package vic

// the sources that can pull the BA line low. bits 0 to 7 are the sprite
// units, bit 8 is the bad line condition
const baBadline = 0x100

// updateBA recomputes the BA line for the current cycle. the line goes low
// three cycles before the chip needs the bus: from cycle 12 for the matrix
// fetches of a bad line, and per the sprite table for sprite data
func (v *VIC) updateBA() {
	var mask uint16

	if v.badLine && v.cycle >= 12 && v.cycle <= 54 {
		mask |= baBadline
	}

	var dma uint8
	for n := range v.sprite {
		if v.sprite[n].dma {
			dma |= 1 << n
		}
	}
	mask |= uint16(v.baSpriteTable[v.cycle] & dma)

	v.setBA(mask)
}

func (v *VIC) setBA(mask uint16) {
	if mask != 0 && v.baLow == 0 {
		v.baWentLowAt = v.cycleCounter
		v.cpu.SetBA(true)
	} else if mask == 0 && v.baLow != 0 {
		v.cpu.SetBA(false)
	}
	v.baLow = mask
}

// baStable reports whether the BA line has been low for at least three
// cycles. the CPU is permitted write cycles for up to three cycles after BA
// goes low, so the bus is only guaranteed to be free of CPU activity once
// this holds. before that point a c-access reads 0xff into the matrix and an
// s-access takes the last value on the data bus
func (v *VIC) baStable() bool {
	return v.baLow != 0 && v.cycleCounter-v.baWentLowAt >= 3
}
