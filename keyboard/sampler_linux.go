//go:build linux

package keyboard

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Key-state sampling on Linux reads the EVIOCGKEY bitmap of every
// readable event device under /dev/input. This reports keys held
// system-wide, regardless of which window has focus.
const (
	evdevKeyMax  = 0x2ff
	evdevBitmap  = evdevKeyMax/8 + 1
	evdevBtnBase = 0x100 // BTN_* range; everything above is not a keyboard key
)

// EVIOCGKEY(len): _IOC(read, 'E', 0x18, len)
const eviocgkey = uintptr(2)<<30 | uintptr(evdevBitmap)<<16 | uintptr('E')<<8 | 0x18

type evdevSampler struct {
	fds  []int
	bits [evdevBitmap]byte
	keys []Key
}

// NewDeviceSampler opens every event device that answers the key-state
// ioctl. Reading /dev/input normally requires membership in the input
// group; with no readable device an error is returned and the caller
// may supply its own Sampler instead.
func NewDeviceSampler() (Sampler, error) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, err
	}

	s := &evdevSampler{}
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			continue
		}
		if s.queryable(fd) {
			s.fds = append(s.fds, fd)
		} else {
			unix.Close(fd)
		}
	}

	if len(s.fds) == 0 {
		return nil, fmt.Errorf("no readable key device under /dev/input (missing input group membership?)")
	}
	return s, nil
}

// queryable probes the key-state ioctl once.
func (s *evdevSampler) queryable(fd int) bool {
	var buf [evdevBitmap]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgkey, uintptr(unsafe.Pointer(&buf[0])))
	return errno == 0
}

// Sample unions the held-key bitmaps of all devices and maps set bits
// to Keys. Unmapped keyboard scancodes surface as KeyUnknown rather
// than being dropped.
func (s *evdevSampler) Sample() []Key {
	for i := range s.bits {
		s.bits[i] = 0
	}

	var buf [evdevBitmap]byte
	for _, fd := range s.fds {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgkey, uintptr(unsafe.Pointer(&buf[0])))
		if errno != 0 {
			continue
		}
		for i := range buf {
			s.bits[i] |= buf[i]
		}
	}

	s.keys = s.keys[:0]
	unknownSeen := false
	for code := 0; code < evdevBtnBase; code++ {
		if s.bits[code/8]&(1<<(uint(code)%8)) == 0 {
			continue
		}
		key := keyFromScancode(uint16(code))
		if key == KeyUnknown {
			if unknownSeen {
				continue
			}
			unknownSeen = true
		}
		s.keys = append(s.keys, key)
	}
	return s.keys
}

func (s *evdevSampler) Close() error {
	var first error
	for _, fd := range s.fds {
		if err := unix.Close(fd); err != nil && first == nil {
			first = err
		}
	}
	s.fds = nil
	return first
}

// keyFromScancode maps Linux input scancodes to Keys.
func keyFromScancode(code uint16) Key {
	switch code {
	case 1:
		return KeyEsc
	case 2:
		return KeyNum1
	case 3:
		return KeyNum2
	case 4:
		return KeyNum3
	case 5:
		return KeyNum4
	case 6:
		return KeyNum5
	case 7:
		return KeyNum6
	case 8:
		return KeyNum7
	case 9:
		return KeyNum8
	case 10:
		return KeyNum9
	case 11:
		return KeyNum0
	case 12:
		return KeyMinus
	case 13:
		return KeyEqual
	case 14:
		return KeyBackspace
	case 15:
		return KeyTab
	case 16:
		return KeyQ
	case 17:
		return KeyW
	case 18:
		return KeyE
	case 19:
		return KeyR
	case 20:
		return KeyT
	case 21:
		return KeyY
	case 22:
		return KeyU
	case 23:
		return KeyI
	case 24:
		return KeyO
	case 25:
		return KeyP
	case 26:
		return KeyLeftBracket
	case 27:
		return KeyRightBracket
	case 28:
		return KeyEnter
	case 30:
		return KeyA
	case 31:
		return KeyS
	case 32:
		return KeyD
	case 33:
		return KeyF
	case 34:
		return KeyG
	case 35:
		return KeyH
	case 36:
		return KeyJ
	case 37:
		return KeyK
	case 38:
		return KeyL
	case 39:
		return KeySemicolon
	case 40:
		return KeyApostrophe
	case 41:
		return KeyGrave
	case 43:
		return KeyBackSlash
	case 44:
		return KeyZ
	case 45:
		return KeyX
	case 46:
		return KeyC
	case 47:
		return KeyV
	case 48:
		return KeyB
	case 49:
		return KeyN
	case 50:
		return KeyM
	case 51:
		return KeyComma
	case 52:
		return KeyDot
	case 53:
		return KeySlash
	case 57:
		return KeySpace
	case 58:
		return KeyCapsLock
	case 59:
		return KeyF1
	case 60:
		return KeyF2
	case 61:
		return KeyF3
	case 62:
		return KeyF4
	case 63:
		return KeyF5
	case 64:
		return KeyF6
	case 65:
		return KeyF7
	case 66:
		return KeyF8
	case 67:
		return KeyF9
	case 68:
		return KeyF10
	case 87:
		return KeyF11
	case 88:
		return KeyF12
	case 96:
		return KeyEnter // Keypad Enter
	case 102:
		return KeyHome
	case 103:
		return KeyUp
	case 104:
		return KeyPageUp
	case 105:
		return KeyLeft
	case 106:
		return KeyRight
	case 107:
		return KeyEnd
	case 108:
		return KeyDown
	case 109:
		return KeyPageDown
	case 110:
		return KeyInsert
	case 111:
		return KeyDelete
	}
	return KeyUnknown
}
