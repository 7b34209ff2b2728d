package terminal

// Backend abstracts platform-specific terminal access so the rendering
// pipeline and tests can run against fakes.
type Backend interface {
	// Init enters raw input mode.
	Init() error

	// Fini restores the previous terminal mode. Safe to call twice.
	Fini()

	// Size returns the live terminal dimensions.
	Size() (width, height int)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)
}
