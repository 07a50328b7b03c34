package usage

import "testing"

func TestWellKnownUsageValues(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"KeyboardA", KeyboardA, 0x04},
		{"Keyboard1", Keyboard1, 0x1E},
		{"Keyboard0", Keyboard0, 0x27},
		{"KeyboardCapsLock", KeyboardCapsLock, 0x39},
		{"KeyboardF12", KeyboardF12, 0x45},
		{"Keypad0", Keypad0, 0x62},
		{"KeyboardVolumeUp", KeyboardVolumeUp, 0x80},
		{"KeypadEqualSignAS400", KeypadEqualSignAS400, 0x86},
		{"KeyboardLANG1", KeyboardLANG1, 0x90},
		{"KeyboardExSel", KeyboardExSel, 0xA4},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = 0x%02X, want 0x%02X", tt.name, tt.got, tt.want)
		}
	}
}
