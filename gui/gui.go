package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/test64/io"
	"github.com/jetsetilly/test64/ui"
	"github.com/jetsetilly/test64/version"
	input "github.com/quasilyte/ebitengine-input"
)

type gui struct {
	started bool

	endGui    chan bool
	rendering chan *image.RGBA
	inp       chan io.Input
	state     chan ui.State

	image  *ebiten.Image
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System
}

const (
	ActionPause    = input.Action(io.Pause)
	ActionReset    = input.Action(io.Reset)
	ActionLightpen = input.Action(io.Lightpen)
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionPause:    {input.KeyGamepadStart, input.KeySpace},
		ActionReset:    {input.KeyGamepadBack, input.KeyF12},
		ActionLightpen: {input.KeyGamepadA, input.KeyL},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp io.Input

	if g.inputHandler.ActionIsJustPressed(ActionPause) {
		inp = io.Input{Action: io.Pause}
	}
	if g.inputHandler.ActionIsJustPressed(ActionReset) {
		inp = io.Input{Action: io.Reset}
	}
	if g.inputHandler.ActionIsJustPressed(ActionLightpen) {
		inp = io.Input{Action: io.Lightpen}
	}

	if inp.Action != io.Nothing {
		select {
		case g.inp <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.input()

	select {
	case <-g.endGui:
		return ebiten.Termination
	case s := <-g.state:
		switch s {
		case ui.StatePaused:
			ebiten.SetWindowTitle(version.Title() + " (paused)")
		case ui.StateRunning:
			ebiten.SetWindowTitle(version.Title())
		}
	case img := <-g.rendering:
		dim := img.Bounds()
		if g.image == nil || g.image.Bounds() != dim {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(img.Pix)
	default:
	}
	return nil
}

// the pixel aspect ratio of the VIC image is close enough to 2:1 when the
// image is displayed without any overscan cropping
const pixelWidth = 2

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(pixelWidth, 1)
		screen.DrawImage(g.image, op)
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	if g.image != nil {
		return g.width * pixelWidth, g.height
	}
	return width, height
}

func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &gui{
		endGui:    endGui,
		rendering: u.SetImage,
		inp:       u.UserInput,
		state:     u.State,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	return ebiten.RunGame(g)
}
