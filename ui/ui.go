package ui

import (
	"image"

	"github.com/jetsetilly/test64/io"
)

// State describes whether the emulation is running or paused. forwarded to
// the gui so the window title can reflect it
type State int

const (
	StatePaused State = iota
	StateRunning
)

// UI connects the debugger and the gui. the two run in different goroutines
// and communicate only through these channels
type UI struct {
	SetImage  chan *image.RGBA
	UserInput chan io.Input
	State     chan State
}

func NewUI() *UI {
	return &UI{
		SetImage:  make(chan *image.RGBA, 1),
		UserInput: make(chan io.Input, 1),
		State:     make(chan State, 1),
	}
}
