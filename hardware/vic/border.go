package vic

// border comparison values. the left/right pair depends on CSEL, the
// upper/lower pair on RSEL

func (v *VIC) borderLeft() int {
	if v.csel() {
		return 24
	}
	return 31
}

func (v *VIC) borderRight() int {
	if v.csel() {
		return 344
	}
	return 335
}

func (v *VIC) borderTop() uint16 {
	if v.rsel() {
		return 51
	}
	return 55
}

func (v *VIC) borderBottom() uint16 {
	if v.rsel() {
		return 251
	}
	return 247
}

// checkBorderPixel evaluates the horizontal flipflop rules at one pixel
// position. while the vertical flipflop is set the main flipflop cannot be
// cleared, which is what keeps the upper and lower borders solid
func (v *VIC) checkBorderPixel(x int) {
	if x == v.borderRight() {
		v.mainFrameFF = true
	}

	if x == v.borderLeft() {
		if v.yCounter == v.borderBottom() {
			v.verticalFrameFF = true
		}
		if v.yCounter == v.borderTop() && v.den() {
			v.verticalFrameFF = false
		}
		if !v.verticalFrameFF {
			v.mainFrameFF = false
		}
	}
}

// checkVerticalBorder evaluates the vertical flipflop rules that apply in
// the last cycle of the rasterline
func (v *VIC) checkVerticalBorder() {
	if v.yCounter == v.borderBottom() {
		v.verticalFrameFF = true
	}
	if v.yCounter == v.borderTop() && v.den() {
		v.verticalFrameFF = false
	}
}
