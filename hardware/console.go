package hardware

import (
	"github.com/jetsetilly/test64/hardware/memory"
	"github.com/jetsetilly/test64/hardware/spec"
	"github.com/jetsetilly/test64/hardware/vic"
)

// Console wires the VIC to its memory and carries the two signal lines the
// chip drives towards the CPU. there is no CPU emulation here: the lines are
// exposed so that a host (or a test) can observe the stall and interrupt
// behaviour the chip produces
type Console struct {
	Mem *memory.Memory
	VIC *vic.VIC

	// state of the lines driven by the VIC. BALow is true while the chip is
	// requesting the bus, IRQ is true while the interrupt line is asserted
	BALow bool
	IRQ   bool
}

func Create(sp spec.Spec) *Console {
	con := &Console{}
	con.Mem = memory.Create()
	con.VIC = vic.Create(con.Mem, con, sp)
	return con
}

// SetBA implements the CPU side of the bus arbitration handshake
func (con *Console) SetBA(low bool) {
	con.BALow = low
}

// SetIRQ implements the CPU side of the interrupt line
func (con *Console) SetIRQ(asserted bool) {
	con.IRQ = asserted
}

func (con *Console) Reset(random bool) {
	con.Mem.Reset(random)
	con.VIC.Reset()
}

// Step advances the console by one system clock cycle. it returns true if
// the cycle completed a frame
func (con *Console) Step() bool {
	return con.VIC.Tick()
}

// StepRasterline advances the console to the start of the next rasterline.
// it returns true if a frame was completed on the way
func (con *Console) StepRasterline() bool {
	var endFrame bool
	line := con.VIC.Rasterline()
	for con.VIC.Rasterline() == line {
		endFrame = con.VIC.Tick() || endFrame
	}
	return endFrame
}

// StepFrame advances the console to the end of the current frame
func (con *Console) StepFrame() {
	for !con.VIC.Tick() {
	}
}

// Run ticks the console until the stop channel is closed or receives. the
// hook function is called at the end of every frame
func (con *Console) Run(stop chan bool, hook func() error) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		if con.VIC.Tick() {
			if err := hook(); err != nil {
				return err
			}
		}
	}
}
