// Two-player pong. W/S moves the left pad, O/L the right one; Esc or Q
// quits. Wall and pad bounces blip through the speaker when audio is
// available.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lixenwraith/termrun/app"
	"github.com/lixenwraith/termrun/audio"
	"github.com/lixenwraith/termrun/drawing"
	"github.com/lixenwraith/termrun/gui"
	"github.com/lixenwraith/termrun/keyboard"
	"github.com/lixenwraith/termrun/spatial"
	"github.com/lixenwraith/termrun/terminal"
)

const padHeight = 3

type player struct {
	position  spatial.Vec2
	direction int
	score     int
}

type game struct {
	dimension spatial.Vec2
	left      player
	right     player
	ballPos   spatial.Vec2
	ballSpeed spatial.Vec2
	bounced   bool
	scored    bool
}

func newGame(dim spatial.Vec2) *game {
	return &game{
		dimension: dim,
		left:      player{position: spatial.XY(1, dim.Y/2)},
		right:     player{position: spatial.XY(dim.X-3, dim.Y/2)},
		ballPos:   dim.DivScale(2),
		ballSpeed: randomDirection(),
	}
}

func randomDirection() spatial.Vec2 {
	dir := spatial.XY(1, 1)
	if rand.Intn(2) == 0 {
		dir.X = -1
	}
	if rand.Intn(2) == 0 {
		dir.Y = -1
	}
	return dir
}

func movePad(p *player, dim spatial.Vec2) {
	if (p.position.Y+padHeight < dim.Y && p.direction > 0) ||
		(p.position.Y-padHeight > 0 && p.direction < 0) {
		p.position.Y += p.direction
	}
}

func (g *game) update() {
	g.bounced = false
	g.scored = false
	g.ballPos = g.ballPos.Add(g.ballSpeed)

	movePad(&g.left, g.dimension)
	movePad(&g.right, g.dimension)

	if g.ballPos.Y >= g.dimension.Y-1 && g.ballSpeed.Y > 0 {
		g.ballPos.Y = g.dimension.Y - 1
		g.ballSpeed.Y = -g.ballSpeed.Y
		g.bounced = true
	}
	if g.ballPos.Y <= 0 && g.ballSpeed.Y < 0 {
		g.ballPos.Y = 0
		g.ballSpeed.Y = -g.ballSpeed.Y
		g.bounced = true
	}

	if g.ballPos.X <= g.left.position.X+1 &&
		g.ballPos.Y <= g.left.position.Y+padHeight &&
		g.ballPos.Y >= g.left.position.Y-padHeight {
		g.ballPos.X = g.left.position.X + 1
		g.ballSpeed.X = -g.ballSpeed.X
		g.bounced = true
	}
	if g.ballPos.X >= g.right.position.X &&
		g.ballPos.Y <= g.right.position.Y+padHeight &&
		g.ballPos.Y >= g.right.position.Y-padHeight {
		g.ballPos.X = g.right.position.X
		g.ballSpeed.X = -g.ballSpeed.X
		g.bounced = true
	}

	if g.ballPos.X <= 0 {
		g.right.score++
		g.resetBall()
	}
	if g.ballPos.X >= g.dimension.X-1 {
		g.left.score++
		g.resetBall()
	}

	g.left.direction = 0
	g.right.direction = 0
}

func (g *game) resetBall() {
	g.ballPos = g.dimension.DivScale(2)
	g.ballSpeed = randomDirection()
	g.scored = true
}

func main() {
	a := app.New()
	fps := gui.NewFPSCounter()

	beeper := audio.NewBeeper()
	beeper.Initialize() // silent mode on failure
	defer beeper.Cleanup()

	winSize := a.Window().Size()
	g := newGame(winSize.Scale(4).DivScale(5))

	err := a.Run(func(s *app.State, w *terminal.Window) {
		for _, ev := range s.Keyboard().Events() {
			if key, ok := ev.PressedKey(); ok && (key == keyboard.KeyEsc || key == keyboard.KeyQ) {
				s.Stop()
			}
		}
		for _, key := range s.Keyboard().KeysDown() {
			switch key {
			case keyboard.KeyW:
				g.left.direction = -1
			case keyboard.KeyS:
				g.left.direction = 1
			case keyboard.KeyO:
				g.right.direction = -1
			case keyboard.KeyL:
				g.right.direction = 1
			}
		}

		fps.Update()
		if s.Step()%2 == 0 {
			g.update()
			if g.scored {
				beeper.Beep(220, 120*time.Millisecond)
			} else if g.bounced {
				beeper.Beep(660, 40*time.Millisecond)
			}
		}

		score := fmt.Sprintf("Left score: %d  -  Right score: %d", g.left.score, g.right.score)

		drawing.NewPencil(w.Canvas()).
			DrawText(fmt.Sprintf("FPS: %d", fps.Count()), spatial.XY(0, 0)).
			SetOrigin(spatial.XY((winSize.X-len(score))/2, (winSize.Y-g.dimension.Y)/2-1)).
			DrawText(score, spatial.Zero()).
			SetOrigin(winSize.Sub(g.dimension).DivScale(2)).
			DrawRect(drawing.SimpleRoundLines(), spatial.Zero(), g.dimension).
			DrawVLine('\'', spatial.XY(g.dimension.X/2, 1), g.dimension.Y-2).
			SetForeground(terminal.Blue).
			DrawRect(drawing.DoubleLines(), g.left.position.Sub(spatial.Y(padHeight)), spatial.XY(2, padHeight*2)).
			SetForeground(terminal.Red).
			DrawRect(drawing.DoubleLines(), g.right.position.Sub(spatial.Y(padHeight)), spatial.XY(2, padHeight*2)).
			SetForeground(terminal.Yellow).
			SetWeight(terminal.Bold).
			DrawChar('o', g.ballPos)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
