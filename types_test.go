package imkit

import (
	"math"
	"testing"
)

func TestClampf(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name string
		v    float32
		want float32
	}{
		{"inside", 0.5, 0.5},
		{"below", -3, 0},
		{"above", 7, 1},
		{"NaN", nan, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampf(tt.v, 0, 1); got != tt.want {
				t.Errorf("clampf(%v, 0, 1) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
