package vic

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/test64/hardware/spec"
)

// Bus is the VIC's view of the memory system. addresses are fourteen bits;
// the bank select bits held by the second CIA widen them to the full address
// space. the colour RAM is a separate 4-bit wide memory read in parallel
// with the main bus, so a ReadColor never contends with a Read
type Bus interface {
	Read(address uint16) uint8
	ReadColor(address uint16) uint8
	Bank() uint8
}

// CPU is the two signal lines the VIC drives into the processor. SetBA
// requests that the CPU stalls (it may continue with write cycles for up to
// three cycles). SetIRQ is the level of the interrupt line
type CPU interface {
	SetBA(low bool)
	SetIRQ(asserted bool)
}

// sprite is the state of one of the eight sprite units
type sprite struct {
	mc     uint8
	mcbase uint8
	shift  [3]uint8
	ptr    uint16

	dma     bool
	display bool

	// used to handle Y stretching. note that the flipflop is set when the
	// stretch bit is cleared
	expansionFF bool

	// the stretch bit was cleared during the crunch cycle. acted on in
	// cycle 16
	crunch bool

	// the three data bytes of the line have been fetched and are waiting
	// for the x counter to reach the sprite's coordinate
	loaded bool

	// horizontal emission state. while active the unit produces one pixel
	// per dot clock from the loaded shift register
	active   bool
	seq      uint32
	seqBits  int
	xexpFlop bool
	mcFlop   bool
	mcPair   uint8
}

type VIC struct {
	mem Bus
	cpu CPU

	spec      spec.Spec
	palette   [16]uint32
	paletteID spec.PaletteID

	powered bool

	// the register file as poked by the CPU. registers with side effects or
	// readback quirks are shadowed by the fields below
	regs [64]uint8

	frame        uint64
	yCounter     uint16
	xCounter     uint16
	cycle        int
	cycleCounter uint64

	// internal registers. video counter, video counter base, row counter,
	// video matrix line index and the DRAM refresh counter
	vc     uint16
	vcbase uint16
	rc     uint8
	vmli   uint8
	ref    uint8

	// whenever the VIC performs a memory read the address and result are
	// stored here. the data bus value is also used for open-bus reads
	addrBus uint16
	dataBus uint8

	badLine        bool
	denSetInLine30 bool
	displayState   bool

	// the 40 byte video matrix and colour line buffers, refilled during bad
	// lines
	matrix [40]uint8
	colour [40]uint8

	// graphics sequencer and the pipeline between the g-access and pixel
	// output. stage 0 is filled by the g-access, stage 2 is drawn
	gs   sequencer
	pipe [3]gdata

	sprite [8]sprite

	// frame flipflops. the vertical flipflop supports the upper/lower
	// border: while it is set the main flipflop cannot be cleared
	mainFrameFF     bool
	verticalFrameFF bool

	// the BA line can be pulled down by multiple sources (wired AND). bits
	// 0 to 7 are the sprite units, bit 8 is the bad line condition
	baLow       uint16
	baWentLowAt uint64

	// per-cycle BA requirements of the sprite units, built for the current
	// raster model. indexed by cycle number
	baSpriteTable []uint8

	// cycle numbers of the p-accesses for the current raster model
	pAccessCycle [8]int

	irqLatch uint8
	irqMask  uint8
	irqLine  bool

	// the raster compare has already matched in the current line
	rasterIRQDone bool

	// a lightpen interrupt can only occur once per frame
	lpTriggered bool

	sprSprColl uint8
	sprBgColl  uint8

	// one rasterline of pixels, with a depth buffer to resolve the layers
	// and a record of which layers produced each pixel (used for collision
	// detection)
	lineBuffer []uint32
	zBuffer    []uint8
	srcBuffer  []uint16

	// double buffered frame. the back buffer is the one being drawn into
	screenBuffers [2][]uint32
	back          int
}

func Create(mem Bus, cpu CPU, sp spec.Spec) *VIC {
	v := &VIC{
		mem: mem,
		cpu: cpu,
	}
	v.setSpec(sp)
	_ = v.SetPalette(spec.Pepto)
	v.PowerOn()
	return v
}

// setSpec changes the raster model and reallocates the buffers that depend
// on its geometry
func (v *VIC) setSpec(sp spec.Spec) {
	v.spec = sp

	v.lineBuffer = make([]uint32, sp.ViewablePixels)
	v.zBuffer = make([]uint8, sp.ViewablePixels)
	v.srcBuffer = make([]uint16, sp.ViewablePixels)
	v.screenBuffers[0] = make([]uint32, sp.ViewablePixels*sp.ViewableLines)
	v.screenBuffers[1] = make([]uint32, sp.ViewablePixels*sp.ViewableLines)

	// sprite fetch cycles. sprites 3 to 7 are fetched at the start of the
	// line in both raster models. sprites 0 to 2 are fetched at the end of
	// the line, two cycles later in the 65 cycle model
	if sp.CyclesPerLine == 65 {
		v.pAccessCycle = [8]int{60, 62, 64, 1, 3, 5, 7, 9}
	} else {
		v.pAccessCycle = [8]int{58, 60, 62, 1, 3, 5, 7, 9}
	}

	// the BA line for sprite n goes low three cycles before the first
	// s-access and is released after the last one
	v.baSpriteTable = make([]uint8, sp.CyclesPerLine+1)
	for n, p := range v.pAccessCycle {
		for d := -3; d <= 1; d++ {
			c := p + d
			for c < 1 {
				c += sp.CyclesPerLine
			}
			for c > sp.CyclesPerLine {
				c -= sp.CyclesPerLine
			}
			v.baSpriteTable[c] |= 1 << n
		}
	}
}

// SetVariant selects the raster model. the change takes effect immediately
// and implies a reset
func (v *VIC) SetVariant(sp spec.Spec) {
	v.setSpec(sp)
	v.Reset()
}

// Spec returns the current raster model
func (v *VIC) Spec() spec.Spec {
	return v.spec
}

// SetPalette selects one of the colour schemes
func (v *VIC) SetPalette(id spec.PaletteID) error {
	p, err := spec.Palette(id)
	if err != nil {
		return fmt.Errorf("vic: %w", err)
	}
	v.palette = p
	v.paletteID = id
	return nil
}

func (v *VIC) PowerOn() {
	v.powered = true
	v.reset()
}

func (v *VIC) PowerOff() {
	v.powered = false
}

// Reset restores the power-on state. the framebuffers are cleared to the
// border colour, which after a register reset is black
func (v *VIC) Reset() {
	v.reset()
}

func (v *VIC) reset() {
	for i := range v.regs {
		v.regs[i] = 0
	}

	v.frame = 0
	v.yCounter = 0
	v.xCounter = uint16(v.spec.XOffset)
	v.cycle = 0
	v.cycleCounter = 0

	v.vc = 0
	v.vcbase = 0
	v.rc = 0
	v.vmli = 0
	v.ref = 0xff

	v.addrBus = 0
	v.dataBus = 0

	v.badLine = false
	v.denSetInLine30 = false
	v.displayState = false

	clear(v.matrix[:])
	clear(v.colour[:])

	v.gs = sequencer{}
	v.pipe = [3]gdata{}

	for i := range v.sprite {
		v.sprite[i] = sprite{expansionFF: true}
	}

	v.mainFrameFF = false
	v.verticalFrameFF = false

	if v.baLow != 0 {
		v.cpu.SetBA(false)
	}
	v.baLow = 0
	v.baWentLowAt = 0

	v.irqLatch = 0
	v.irqMask = 0
	if v.irqLine {
		v.cpu.SetIRQ(false)
	}
	v.irqLine = false
	v.rasterIRQDone = false
	v.lpTriggered = false

	v.sprSprColl = 0
	v.sprBgColl = 0

	border := v.palette[0]
	for i := range v.screenBuffers[0] {
		v.screenBuffers[0][i] = border
		v.screenBuffers[1][i] = border
	}
	v.back = 0

	v.clearLineBuffers()
}

// FrontBuffer returns the most recently completed frame. pixels are RGBA in
// little-endian byte order, ViewablePixels wide and ViewableLines high
func (v *VIC) FrontBuffer() []uint32 {
	return v.screenBuffers[1-v.back]
}

// Frame returns the frame counter
func (v *VIC) Frame() uint64 {
	return v.frame
}

// Rasterline returns the current value of the y counter
func (v *VIC) Rasterline() uint16 {
	return v.yCounter
}

// Cycle returns the current cycle within the rasterline. cycle 1 is the
// first cycle of the line
func (v *VIC) Cycle() int {
	return v.cycle
}

// TriggerLightpen simulates a lightpen event. although there is no hardware
// lightpen, software can trigger the event by manipulating the port lines
// and uses it to measure the current raster position. only one lightpen
// interrupt can occur per frame
func (v *VIC) TriggerLightpen() {
	if v.lpTriggered {
		return
	}
	v.lpTriggered = true
	v.regs[0x13] = uint8(v.xCounter >> 1)
	v.regs[0x14] = uint8(v.yCounter)
	v.triggerIRQ(irqLightpen)
}

// Tick advances the chip by one system clock cycle. it returns true if the
// tick completed a frame
func (v *VIC) Tick() bool {
	if !v.powered {
		return false
	}

	v.cycleCounter++
	v.cycle++

	var endFrame bool

	if v.cycle > v.spec.CyclesPerLine {
		v.cycle = 1
		v.endRasterline()

		v.yCounter++
		v.rasterIRQDone = false

		if int(v.yCounter) >= v.spec.Rasterlines {
			v.yCounter = 0
			v.endFrame()
			endFrame = true
		}
	}

	// the x coordinate of the first pixel of this cycle, in the sprite
	// coordinate system
	v.xCounter = uint16((8*(v.cycle-1) + v.spec.XOffset) % v.spec.Width)

	// the DEN bit is sampled during every cycle of rasterline 0x30. bad
	// lines can only occur in the frame if it was set at least once
	if v.yCounter == 0x30 {
		if v.cycle == 1 {
			v.denSetInLine30 = false
		}
		if v.den() {
			v.denSetInLine30 = true
		}
	}

	// the bad line condition is evaluated at the start of every cycle, not
	// just at the start of the line. YSCROLL writes can create or remove
	// the condition mid-line
	v.updateBadLine()

	// the raster compare interrupt is checked in cycle 1 of every line
	// except line 0, where the check happens in cycle 2
	if (v.cycle == 1 && v.yCounter != 0) || (v.cycle == 2 && v.yCounter == 0) {
		v.checkRasterCompare()
	}

	v.pipe[0] = gdata{}

	v.dispatch()
	v.updateBA()
	v.draw()

	// advance the pipeline between g-access and pixel output
	v.pipe[2] = v.pipe[1]
	v.pipe[1] = v.pipe[0]

	// the display state is entered at the end of any cycle in which the
	// bad line condition holds. it is left in cycle 58
	if v.badLine {
		v.displayState = true
	}

	return endFrame
}

func (v *VIC) updateBadLine() {
	v.badLine = v.yCounter >= 0x30 && v.yCounter <= 0xf7 &&
		uint8(v.yCounter)&0x07 == v.yscroll() &&
		v.denSetInLine30
}

func (v *VIC) endRasterline() {
	v.flushLine()
	v.clearLineBuffers()
}

func (v *VIC) endFrame() {
	v.frame++
	v.vcbase = 0
	v.ref = 0xff
	v.lpTriggered = false
	v.back = 1 - v.back
}

func (v *VIC) Label() string {
	return "VIC"
}

func (v *VIC) Status() string {
	return v.String()
}

func (v *VIC) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: frame=%d line=%03d cycle=%02d x=%03d\n",
		v.Label(), v.frame, v.yCounter, v.cycle, v.xCounter))
	s.WriteString(fmt.Sprintf("vc=%#03x vcbase=%#03x rc=%d vmli=%d ref=%#02x\n",
		v.vc, v.vcbase, v.rc, v.vmli, v.ref))
	s.WriteString(fmt.Sprintf("mode=%s badline=%v display=%v ba=%#03x irq=%v\n",
		v.mode(), v.badLine, v.displayState, v.baLow, v.irqLine))
	s.WriteString(fmt.Sprintf("mainFF=%v verticalFF=%v spec=%s palette=%s",
		v.mainFrameFF, v.verticalFrameFF, v.spec.ID, v.paletteID))
	return s.String()
}
