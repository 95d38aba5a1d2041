package physics

import "testing"

type testBody struct {
	x, y, scale float64
	local       Box
}

func (b testBody) Position() (float64, float64) { return b.x, b.y }
func (b testBody) ScaleFactor() float64         { return b.scale }
func (b testBody) LocalBounds() Box             { return b.local }

func TestCollides(t *testing.T) {
	unit := Box{-1, 1, -1, 1, -1, 1}

	tests := []struct {
		name string
		a, b testBody
		want bool
	}{
		{"Same position", testBody{0, 0, 0.5, unit}, testBody{0, 0, 0.75, unit}, true},
		{"Just touching", testBody{0, 0, 0.5, unit}, testBody{1.25, 0, 0.75, unit}, true},
		{"Just apart", testBody{0, 0, 0.5, unit}, testBody{1.26, 0, 0.75, unit}, false},
		{"Apart on Y only", testBody{0, 0, 0.5, unit}, testBody{0, -1.3, 0.75, unit}, false},
		{"Scale matters", testBody{0, 0, 0.2, unit}, testBody{1, 0, 0.2, unit}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides(a, b) = %v, want %v", got, tt.want)
			}
			if got := Collides(tt.b, tt.a); got != tt.want {
				t.Errorf("Collides(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOffField(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Origin", 0, 0, false},
		{"On edge", 6, -6, false},
		{"Past +X", 6.01, 0, true},
		{"Past -X", -6.01, 0, true},
		{"Past +Y", 0, 6.01, true},
		{"Past -Y", 0, -7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OffField(tt.x, tt.y, 6); got != tt.want {
				t.Errorf("OffField(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
