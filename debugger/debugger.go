package debugger

import (
	"flag"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/jetsetilly/test64/hardware"
	"github.com/jetsetilly/test64/hardware/spec"
	"github.com/jetsetilly/test64/io"
	"github.com/jetsetilly/test64/logger"
	"github.com/jetsetilly/test64/ui"
)

type debugger struct {
	console *hardware.Console
	limiter *hardware.Limiter

	viewport viewport.Model
	input    textinput.Model
	output   []string
	styles   styles

	u *ui.UI

	// if stopRunning is nil then the console is already stopped
	stopRunning chan bool
}

// inputMsg carries user input from the gui into the bubbletea loop
type inputMsg io.Input

func (m *debugger) Init() tea.Cmd {
	m.input = textinput.New()
	m.input.Placeholder = ""
	m.input.Focus()
	m.input.CharLimit = 256
	m.input.Width = 50

	m.styles = newStyles()

	return nil
}

// render converts the front buffer to an image and forwards it to the gui
func (m *debugger) render() {
	sp := m.console.VIC.Spec()
	buf := m.console.VIC.FrontBuffer()

	img := image.NewRGBA(image.Rect(0, 0, sp.ViewablePixels, sp.ViewableLines))
	for i, px := range buf {
		img.Pix[i*4] = uint8(px)
		img.Pix[i*4+1] = uint8(px >> 8)
		img.Pix[i*4+2] = uint8(px >> 16)
		img.Pix[i*4+3] = uint8(px >> 24)
	}

	select {
	case m.u.SetImage <- img:
	default:
	}
}

func (m *debugger) print(style func(...string) string, s string) {
	m.output = append(m.output, style(s))
}

func (m *debugger) run() {
	m.stopRunning = make(chan bool)
	m.setState(ui.StateRunning)
	m.limiter.Nudge()

	go func() {
		hook := func() error {
			m.limiter.Wait()
			m.render()
			return nil
		}

		err := m.console.Run(m.stopRunning, hook)
		if err != nil {
			logger.Logf("debugger", "%s", err.Error())
		}
	}()

	m.print(m.styles.debugger.Render, "emulation started")
}

func (m *debugger) stop() {
	if m.stopRunning == nil {
		return
	}
	m.stopRunning <- true
	close(m.stopRunning)
	m.stopRunning = nil
	m.setState(ui.StatePaused)
	m.print(m.styles.debugger.Render, "emulation stopped")
	m.print(m.styles.video.Render, m.console.VIC.String())
}

func (m *debugger) setState(s ui.State) {
	select {
	case m.u.State <- s:
	default:
	}
}

func (m *debugger) handleInput(inp io.Input) {
	if inp.Release {
		return
	}
	switch inp.Action {
	case io.Pause:
		if m.stopRunning == nil {
			m.run()
		} else {
			m.stop()
		}
	case io.Reset:
		m.console.Reset(false)
	case io.Lightpen:
		m.console.VIC.TriggerLightpen()
	}
}

func (m *debugger) parseAddress(s string) (uint16, error) {
	if strings.HasPrefix(s, "$") {
		s = fmt.Sprintf("0x%s", s[1:])
	}
	addr, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("not a valid address: %s", s)
	}
	return uint16(addr), nil
}

func (m *debugger) command(s string) (bool, tea.Cmd) {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)

	p := strings.Fields(s)
	if len(p) == 0 {
		if m.stopRunning == nil {
			m.console.Step()
			m.print(m.styles.video.Render, m.console.VIC.String())
		}
		return false, nil
	}

	switch p[0] {
	case "RUN":
		if m.stopRunning == nil {
			m.run()
		}

	case "STOP":
		m.stop()

	case "STEP":
		ct := 1
		if len(p) > 1 {
			var err error
			ct, err = strconv.Atoi(p[1])
			if err != nil {
				m.print(m.styles.err.Render, fmt.Sprintf("STEP count is not valid: %s", p[1]))
				return false, nil
			}
		}
		for range ct {
			m.console.Step()
		}
		m.print(m.styles.video.Render, m.console.VIC.String())

	case "LINE":
		if m.console.StepRasterline() {
			m.render()
		}
		m.print(m.styles.video.Render, m.console.VIC.String())

	case "FRAME":
		m.console.StepFrame()
		m.render()
		m.print(m.styles.video.Render, m.console.VIC.String())

	case "VIC":
		m.print(m.styles.video.Render, m.console.VIC.Status())

	case "PEEK":
		if len(p) < 2 {
			m.print(m.styles.err.Render, "PEEK requires a register offset")
			return false, nil
		}
		offset, err := m.parseAddress(p[1])
		if err != nil {
			m.print(m.styles.err.Render, err.Error())
			return false, nil
		}
		m.print(m.styles.mem.Render, fmt.Sprintf("$%02x = %02x", offset&0x3f, m.console.VIC.Peek(offset)))

	case "POKE":
		if len(p) < 3 {
			m.print(m.styles.err.Render, "POKE requires a register offset and a value")
			return false, nil
		}
		offset, err := m.parseAddress(p[1])
		if err != nil {
			m.print(m.styles.err.Render, err.Error())
			return false, nil
		}
		data, err := strconv.ParseUint(p[2], 16, 8)
		if err != nil {
			m.print(m.styles.err.Render, fmt.Sprintf("POKE value is not valid: %s", p[2]))
			return false, nil
		}
		m.console.VIC.Poke(offset, uint8(data))

	case "BANK":
		if len(p) < 2 {
			m.print(m.styles.mem.Render, fmt.Sprintf("bank = %d", m.console.Mem.Bank()))
			return false, nil
		}
		bank, err := strconv.ParseUint(p[1], 0, 8)
		if err != nil {
			m.print(m.styles.err.Render, fmt.Sprintf("BANK value is not valid: %s", p[1]))
			return false, nil
		}
		m.console.Mem.SetBank(uint8(bank))

	case "DUMP":
		m.print(m.styles.mem.Render, spew.Sdump(m.console.VIC))

	case "LOG":
		var b strings.Builder
		logger.Tail(&b, 10)
		m.print(m.styles.mem.Render, b.String())

	case "RESET":
		m.console.Reset(false)
		m.print(m.styles.debugger.Render, "console reset")

	case "QUIT":
		return true, tea.Quit

	default:
		m.print(m.styles.err.Render, fmt.Sprintf("unrecognised command: %s", s))
	}

	return false, nil
}

func (m *debugger) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1

	case inputMsg:
		m.handleInput(io.Input(msg))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// stop any running emulation OR quit the application
			if m.stopRunning != nil {
				m.stop()
			} else {
				return m, tea.Quit
			}
		case "enter":
			quit, cmd := m.command(m.input.Value())
			m.input.SetValue("")
			if quit {
				return m, cmd
			}
		}
	}

	// always update viewport and scroll to bottom
	m.viewport.SetContent(strings.Join(m.output, "\n"))
	m.viewport.GotoBottom()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *debugger) View() string {
	return fmt.Sprintf("%s\n%s",
		m.viewport.View(),
		m.input.View(),
	)
}

// Launch starts the debugger. it returns when the user quits or when the
// endDebugger channel is signalled
func Launch(endDebugger chan bool, u *ui.UI, args []string) error {
	flags := flag.NewFlagSet("test64", flag.ContinueOnError)
	variant := flags.String("spec", "PAL", "raster model: PAL or NTSC")
	palette := flags.String("palette", "Pepto", "colour palette")
	random := flags.Bool("random", false, "randomise RAM on reset")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	var sp spec.Spec
	switch strings.ToUpper(*variant) {
	case "PAL":
		sp = spec.PAL
	case "NTSC":
		sp = spec.NTSC
	default:
		return fmt.Errorf("debugger: unknown raster model: %s", *variant)
	}

	con := hardware.Create(sp)

	var found bool
	for id := spec.PaletteID(0); ; id++ {
		if _, err := spec.Palette(id); err != nil {
			break
		}
		if strings.EqualFold(id.String(), *palette) {
			if err := con.VIC.SetPalette(id); err != nil {
				return fmt.Errorf("debugger: %w", err)
			}
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("debugger: unknown palette: %s", *palette)
	}

	con.Reset(*random)
	logger.Logf("debugger", "%s console created", sp.ID)

	m := &debugger{
		console: con,
		limiter: hardware.NewLimiter(sp),
		u:       u,
	}

	p := tea.NewProgram(m)

	go func() {
		<-endDebugger
		p.Quit()
	}()

	go func() {
		for inp := range u.UserInput {
			p.Send(inputMsg(inp))
		}
	}()

	_, err := p.Run()
	return err
}
