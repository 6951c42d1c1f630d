package vic

// endOfRow runs in cycle 58. when the last row of the character matrix has
// been reached the video logic goes to idle state and VCBASE is reloaded
// from VC for the next line of the display
func (v *VIC) endOfRow() {
	if v.rc == 7 {
		v.displayState = false
		v.vcbase = v.vc
	}
	if v.badLine {
		v.displayState = true
	}
	if v.displayState {
		v.rc = (v.rc + 1) & 0x07
	}
}

// dispatch performs the fetches and register housekeeping of the current
// cycle. the schedule is the same for both raster models except for the
// position of the sprite 0 to 2 fetches, which is captured by pAccessCycle
func (v *VIC) dispatch() {
	switch {
	case v.cycle >= 11 && v.cycle <= 13:
		v.rAccess()

	case v.cycle == 14:
		v.rAccess()
		v.vc = v.vcbase
		v.vmli = 0
		if v.badLine {
			v.rc = 0
		}

	case v.cycle == 15:
		v.rAccess()
		v.cAccess()
		v.gAccess()

	case v.cycle == 16:
		v.spriteEndOfLine()
		v.cAccess()
		v.gAccess()

	case v.cycle >= 17 && v.cycle <= 54:
		v.cAccess()
		v.gAccess()

	case v.cycle == 55:
		v.spriteExpansionToggle()
		v.spriteDMACheck()

	case v.cycle == 56:
		v.spriteDMACheck()

	case v.cycle == 57:
		v.memIdleAccess()

	case v.cycle == 58:
		v.spriteDisplayCheck()
		v.endOfRow()
	}

	// sprite pointer and data fetches occupy the edges of the line. the
	// pointer and the first data byte share a cycle; the two remaining data
	// bytes follow in the next
	for n, p := range v.pAccessCycle {
		switch v.cycle {
		case p:
			v.pAccess(n)
			v.sAccess(n, 0)
		case p + 1:
			v.sAccess(n, 1)
			v.sAccess(n, 2)
		}
	}
}
