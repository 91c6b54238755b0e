package systems

import "testing"

func TestClampCamera(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		screen float64
		level  float64
		want   float64
	}{
		{"inside", 400, 640, 1280, 400},
		{"left edge", 10, 640, 1280, 320},
		{"right edge", 1270, 640, 1280, 960},
		{"level smaller than screen", 50, 640, 320, 160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampCamera(tt.target, tt.screen, tt.level); got != tt.want {
				t.Errorf("clampCamera() = %v, want %v", got, tt.want)
			}
		})
	}
}
