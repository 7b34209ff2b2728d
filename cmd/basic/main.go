// A minimal termrun program: draws a framed greeting until Esc or Q is
// pressed.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/termrun/app"
	"github.com/lixenwraith/termrun/drawing"
	"github.com/lixenwraith/termrun/keyboard"
	"github.com/lixenwraith/termrun/spatial"
	"github.com/lixenwraith/termrun/terminal"
)

func main() {
	a := app.New()

	err := a.Run(func(s *app.State, w *terminal.Window) {
		for _, ev := range s.Keyboard().Events() {
			if key, ok := ev.PressedKey(); ok && (key == keyboard.KeyEsc || key == keyboard.KeyQ) {
				s.Stop()
			}
		}

		center := w.Size().DivScale(2)
		drawing.NewPencil(w.Canvas()).
			DrawRect(drawing.SimpleRoundLines(), center.Sub(spatial.XY(12, 2)), spatial.XY(24, 5)).
			SetForeground(terminal.Cyan).
			DrawCenteredText("Hello from termrun", center).
			SetForeground(terminal.Grey).
			DrawCenteredText("Esc or Q quits", center.Add(spatial.Y(1)))
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
