//go:build !unix

package terminal

import "fmt"

type stubBackend struct{}

func newBackend() Backend {
	return &stubBackend{}
}

func (b *stubBackend) Init() error {
	return fmt.Errorf("terminal backend not supported on this platform")
}

func (b *stubBackend) Fini() {}

func (b *stubBackend) Size() (int, int) {
	return 80, 24
}

func (b *stubBackend) Write(p []byte) (int, error) {
	return len(p), nil
}
