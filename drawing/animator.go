package drawing

// Frame is one step of a text animation: what to show and for how many
// draw calls to keep showing it.
type Frame struct {
	Text     string
	Duration int
}

// NewFrame constructs a frame shown for duration draw calls.
func NewFrame(text string, duration int) Frame {
	return Frame{Text: text, Duration: duration}
}

func (f Frame) String() string {
	return f.Text
}

// Animator cycles through a frame sequence, advancing once the current
// frame's duration (scaled down by the speed factor) is spent.
type Animator struct {
	frames  []Frame
	index   int
	counter int
	speed   int
}

// NewAnimator constructs an animator at speed 1.
func NewAnimator(frames ...Frame) *Animator {
	return &Animator{frames: frames, speed: 1}
}

// SetSpeed scales frame advancement; higher is faster.
func (a *Animator) SetSpeed(speed int) {
	if speed < 1 {
		speed = 1
	}
	a.speed = speed
}

// accessFrame returns the current frame's text and advances the
// counter.
func (a *Animator) accessFrame() string {
	if len(a.frames) == 0 {
		return ""
	}
	current := a.frames[a.index]

	a.counter++
	if a.counter >= current.Duration/a.speed {
		a.counter = 0
		a.index = (a.index + 1) % len(a.frames)
	}
	return current.Text
}
