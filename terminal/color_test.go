package terminal

import "testing"

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"food red", RGB{245, 0, 0}, 196},
		{"snake green", RGB{0, 245, 0}, 46},
		{"background teal", RGB{0, 64, 64}, 23},
		{"dark gray", RGB{25, 25, 25}, 233},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	if m, ok := ParseColorMode("256"); !ok || m != ColorMode256 {
		t.Errorf("Expected 256 mode, got %v %v", m, ok)
	}
	if m, ok := ParseColorMode("truecolor"); !ok || m != ColorModeTrueColor {
		t.Errorf("Expected truecolor mode, got %v %v", m, ok)
	}
	if _, ok := ParseColorMode("16"); ok {
		t.Error("Expected unknown color mode to be rejected")
	}
}

func TestCube256AndGray256Clamp(t *testing.T) {
	if got := Cube256(5, 0, 0); got != 196 {
		t.Errorf("Expected 196, got %d", got)
	}
	if got := Cube256(9, 9, 9); got != 231 {
		t.Errorf("Expected clamped 231, got %d", got)
	}
	if got := Gray256(0); got != 232 {
		t.Errorf("Expected 232, got %d", got)
	}
	if got := Gray256(40); got != 255 {
		t.Errorf("Expected clamped 255, got %d", got)
	}
}
