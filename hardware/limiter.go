package hardware

import (
	"time"

	"github.com/jetsetilly/test64/hardware/spec"
)

// Limiter paces the emulation to the frame rate of the raster model
type Limiter struct {
	tick  *time.Ticker
	nudge chan bool
}

func NewLimiter(sp spec.Spec) *Limiter {
	d := time.Duration(float64(time.Second) / sp.Refresh())
	return &Limiter{
		tick:  time.NewTicker(d),
		nudge: make(chan bool, 1),
	}
}

func (l *Limiter) Wait() {
	select {
	case <-l.tick.C:
	case <-l.nudge:
	}
}

// Nudge releases a pending Wait early. used when the emulation is restarted
// after a pause
func (l *Limiter) Nudge() {
	select {
	case l.nudge <- true:
	default:
	}
}
