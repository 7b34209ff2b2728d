// Package app runs the frame loop: it owns the window and the keyboard
// engine, invokes the user callback once per frame, enforces the frame
// budget, and guarantees the terminal is restored on every exit path,
// panics included.
package app

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/termrun/keyboard"
	"github.com/lixenwraith/termrun/terminal"
)

// App ties a Config, a State, and a Window into a runnable loop.
type App struct {
	config Config
	state  *State
	window *terminal.Window

	// kbOpts carries injected keyboard fakes; zero value selects the
	// platform observers.
	kbOpts keyboard.Options

	// ackReader is read for the recovery prompt; defaults to stdin.
	ackReader *bufio.Reader
}

// New constructs an App with the default configuration.
func New() *App {
	return NewWithConfig(NewConfig())
}

// NewWithConfig constructs an App with the given configuration,
// targeting the process's own terminal.
func NewWithConfig(cfg Config) *App {
	return &App{
		config: cfg,
		state:  newState(),
		window: terminal.NewWindow(),
	}
}

// Window returns the display surface.
func (a *App) Window() *terminal.Window {
	return a.window
}

// State returns the run state.
func (a *App) State() *State {
	return a.state
}

// Run opens the window, starts the keyboard engine, and drives the
// frame loop until the state's stop flag is set. Each iteration clears
// the canvas, consumes the keyboard batch, invokes frame, presents, and
// sleeps whatever remains of the frame budget.
//
// A panic inside frame is intercepted here: the terminal is restored
// first, then an acknowledgment prompt is read so the panic output is
// not lost to a closing terminal emulator, then the panic resumes.
func (a *App) Run(frame func(*State, *terminal.Window)) error {
	if err := a.window.Open(); err != nil {
		return err
	}

	a.kbOpts.CorrelationWindow = a.config.CorrelationWindow
	kb, err := keyboard.New(a.kbOpts)
	if err != nil {
		a.window.Close()
		return fmt.Errorf("app: %w", err)
	}
	a.state.keyboard = kb
	a.state.token.Run()

	defer func() {
		if r := recover(); r != nil {
			a.window.Close()
			kb.Stop()
			a.promptAcknowledge()
			panic(r)
		}
	}()

	budget := a.config.frameBudget()
	for a.state.IsRunning() {
		start := time.Now()

		a.window.Clear()
		kb.Consume()
		frame(a.state, a.window)
		a.window.Draw()

		a.state.dt = time.Since(start)
		a.state.step++
		if rest := budget - a.state.dt; rest > 0 {
			time.Sleep(rest)
		}
	}

	// The observers stop before raw mode is restored so no keystroke
	// typed into the recovered shell is consumed here.
	kb.Stop()
	a.window.Close()
	return nil
}

// promptAcknowledge holds the (now restored) terminal open until the
// user presses enter, so the panic trace stays readable.
func (a *App) promptAcknowledge() {
	fmt.Println("\n\n[Press 'enter' to recover the terminal]")
	r := a.ackReader
	if r == nil {
		r = bufio.NewReader(os.Stdin)
	}
	r.ReadString('\n')
}
