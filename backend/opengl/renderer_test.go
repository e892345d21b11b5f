package opengl

import "testing"

func TestScissorBox(t *testing.T) {
	tests := []struct {
		name   string
		clip   [4]float32
		want   [4]int32
		wantOK bool
	}{
		{"full screen", [4]float32{0, 0, 800, 600}, [4]int32{0, 0, 800, 600}, true},
		{"flips y", [4]float32{10, 20, 110, 70}, [4]int32{10, 530, 100, 50}, true},
		{"clamps left", [4]float32{-30, 0, 70, 600}, [4]int32{0, 0, 70, 600}, true},
		{"clamps bottom", [4]float32{0, 500, 100, 650}, [4]int32{0, 0, 100, 100}, true},
		{"empty", [4]float32{50, 50, 50, 80}, [4]int32{}, false},
		{"off screen", [4]float32{-100, 0, -10, 600}, [4]int32{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scissorBox(tt.clip, 600)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("scissorBox(%v) = %v, %v; want %v, %v", tt.clip, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTexMode(t *testing.T) {
	r := &Renderer{rgbaTextures: map[uint32]bool{7: true}}
	if got := r.texMode(0); got != texModeNone {
		t.Errorf("texMode(0) = %d, want none", got)
	}
	if got := r.texMode(7); got != texModeRGBA {
		t.Errorf("texMode(swatch) = %d, want rgba", got)
	}
	if got := r.texMode(3); got != texModeAlpha {
		t.Errorf("texMode(font) = %d, want alpha", got)
	}
}
