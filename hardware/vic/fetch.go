package vic

// memAccess performs a read on the main bus. the address and the returned
// value remain on the bus; the data bus value doubles as the open-bus value
// for accesses that cannot complete
func (v *VIC) memAccess(address uint16) uint8 {
	v.addrBus = address & 0x3fff
	v.dataBus = v.mem.Read(v.addrBus)
	return v.dataBus
}

// memIdleAccess reads the idle byte. with ECM set, address bits 9 and 10 are
// forced to zero, as in any other g-access
func (v *VIC) memIdleAccess() uint8 {
	if v.ecm() {
		return v.memAccess(0x39ff)
	}
	return v.memAccess(0x3fff)
}

// cAccess reads the video matrix and, in parallel, the colour RAM. matrix
// fetches only happen during a bad line, and only return valid data once the
// BA line has been low for three cycles
func (v *VIC) cAccess() {
	if !v.badLine {
		return
	}

	if v.baStable() {
		address := (uint16(v.regs[0x18]&0xf0) << 6) | v.vc
		v.matrix[v.vmli] = v.memAccess(address)
		v.colour[v.vmli] = v.mem.ReadColor(v.vc)
	} else {
		v.matrix[v.vmli] = 0xff
		v.colour[v.vmli] = 0x0f
	}
}

// gAccess reads character or bitmap data and feeds the pixel pipeline. in
// the idle state the fetch is from the idle address and the matrix data is
// treated as zero
func (v *VIC) gAccess() {
	if v.displayState {
		var address uint16

		c := v.matrix[v.vmli]
		if v.bmm() {
			address = (uint16(v.regs[0x18]&0x08) << 10) | (v.vc << 3) | uint16(v.rc)
		} else {
			address = (uint16(v.regs[0x18]&0x0e) << 10) | (uint16(c) << 3) | uint16(v.rc)
		}
		if v.ecm() {
			address &^= 0x0600
		}

		v.pipe[0] = gdata{
			valid:  true,
			data:   v.memAccess(address),
			char:   c,
			colour: v.colour[v.vmli],
			mode:   v.mode(),
		}

		v.vc = (v.vc + 1) & 0x3ff
		v.vmli = (v.vmli + 1) & 0x3f
	} else {
		v.pipe[0] = gdata{
			valid: true,
			data:  v.memIdleAccess(),
			mode:  v.mode(),
		}
	}
}

// pAccess reads the pointer for sprite n. the pointer byte forms bits 6 to
// 13 of the sprite data address
func (v *VIC) pAccess(n int) {
	address := (uint16(v.regs[0x18]&0xf0) << 6) | 0x3f8 | uint16(n)
	v.sprite[n].ptr = uint16(v.memAccess(address)) << 6
}

// sAccess reads one of the three sprite data bytes fetched per line. slot is
// 0 to 2
func (v *VIC) sAccess(n int, slot int) {
	s := &v.sprite[n]

	if !s.dma {
		return
	}

	if v.baStable() {
		s.shift[slot] = v.memAccess(s.ptr | uint16(s.mc))
	} else {
		s.shift[slot] = v.dataBus
	}
	s.mc = (s.mc + 1) & 0x3f

	// the line's data is complete after the third byte. the emission logic
	// will not start a unit from data that has not been fetched
	if slot == 2 {
		s.loaded = true
	}
}

// rAccess performs one of the five DRAM refresh reads of the line
func (v *VIC) rAccess() {
	v.memAccess(0x3f00 | uint16(v.ref))
	v.ref--
}
