//go:build !linux

package keyboard

import "fmt"

// NewDeviceSampler is only implemented on Linux; other platforms must
// inject a Sampler through Config.
func NewDeviceSampler() (Sampler, error) {
	return nil, fmt.Errorf("system-wide key sampling is not supported on this platform")
}
