// Package teatest steps a bubbletea model by hand so tests can assert on
// View() after every key without running a tea.Program.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxMsgs bounds how many messages one Send may produce through chained
// Cmds before the driver gives up.
const maxMsgs = 100

// cmdTimeout is how long a Cmd may run before its message is dropped.
// Dashboard loads against SQLite return well inside it.
const cmdTimeout = 50 * time.Millisecond

// Driver feeds messages to a model and runs every resulting Cmd to
// completion before returning.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records that a Cmd produced tea.QuitMsg. After that the
	// driver ignores further input, as the runtime would.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Init is not run until DrainInit.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send delivers msg and drains the Cmds it produces.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

// PressKey sends a single rune key such as 'q' or 'r'.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressTab sends Tab.
func (d *Driver) PressTab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
}

// PressLeft sends the left arrow.
func (d *Driver) PressLeft() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyLeft})
}

// PressRight sends the right arrow.
func (d *Driver) PressRight() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRight})
}

// PressCtrlC sends ctrl+c.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

// run executes cmd and any Cmds its messages produce, breadth first.
func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	pending := []tea.Cmd{cmd}
	for handled := 0; len(pending) > 0; handled++ {
		if handled >= maxMsgs {
			d.T.Logf("teatest: stopped after %d messages", maxMsgs)
			return
		}
		next := pending[0]
		pending = pending[1:]
		if next == nil {
			continue
		}

		switch msg := exec(next).(type) {
		case nil:
		case tea.BatchMsg:
			pending = append(pending, msg...)
		case tea.QuitMsg:
			d.Quitting = true
			d.Model, _ = d.Model.Update(msg)
			return
		default:
			var follow tea.Cmd
			d.Model, follow = d.Model.Update(msg)
			pending = append(pending, follow)
		}
	}
}

// exec runs cmd, returning nil if it does not finish within cmdTimeout.
func exec(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
