//go:build linux

package keyboard

import "testing"

func TestScancodeMappingCoversCoreKeys(t *testing.T) {
	cases := []struct {
		code uint16
		want Key
	}{
		{1, KeyEsc},
		{2, KeyNum1},
		{11, KeyNum0},
		{16, KeyQ},
		{28, KeyEnter},
		{30, KeyA},
		{44, KeyZ},
		{57, KeySpace},
		{59, KeyF1},
		{88, KeyF12},
		{96, KeyEnter},
		{103, KeyUp},
		{108, KeyDown},
		{111, KeyDelete},
	}
	for _, c := range cases {
		if got := keyFromScancode(c.code); got != c.want {
			t.Errorf("scancode %d: expected %v, got %v", c.code, c.want, got)
		}
	}
}

func TestUnmappedScancodeIsUnknown(t *testing.T) {
	if got := keyFromScancode(99); got != KeyUnknown {
		t.Fatalf("expected KeyUnknown, got %v", got)
	}
}
