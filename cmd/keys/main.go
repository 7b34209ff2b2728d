// Visualizes the keyboard engine: the rolling event log on the left,
// the currently held keys (oldest press first) on the right.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/termrun/app"
	"github.com/lixenwraith/termrun/drawing"
	"github.com/lixenwraith/termrun/keyboard"
	"github.com/lixenwraith/termrun/spatial"
	"github.com/lixenwraith/termrun/terminal"
)

func main() {
	a := app.New()
	var log []keyboard.KeyEvent

	err := a.Run(func(s *app.State, w *terminal.Window) {
		for _, ev := range s.Keyboard().Events() {
			log = append(log, ev)
			if key, ok := ev.PressedKey(); ok && key == keyboard.KeyQ {
				s.Stop()
			}
		}

		p := drawing.NewPencil(w.Canvas()).
			DrawText("Press Q to exit", spatial.XY(0, 0)).
			SetOrigin(spatial.XY(0, 3))

		height := w.Size().Y - 3
		start := len(log) - height
		if start < 0 {
			start = 0
		}
		for i, ev := range log[start:] {
			p.DrawText(ev.String(), spatial.Y(height-1-i))
		}

		held := make([]string, 0, 8)
		for _, key := range s.Keyboard().KeysDown() {
			held = append(held, key.String())
		}
		p.SetOrigin(spatial.XY(w.Size().X/2, 0)).
			SetForeground(terminal.Yellow).
			DrawText("Held: "+strings.Join(held, " "), spatial.Zero())
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
