package engine

import (
	"testing"

	"github.com/lixenwraith/arena3d/entity"
)

func TestCompact(t *testing.T) {
	mk := func(n int) []*entity.Entity {
		out := make([]*entity.Entity, n)
		for i := range out {
			out[i] = entity.NewEnemyAt(nil, float64(i), 0)
		}
		return out
	}

	tests := []struct {
		name    string
		size    int
		removed []int
		wantX   []float64
	}{
		{"Nothing removed", 3, nil, []float64{0, 1, 2}},
		{"All removed", 3, []int{0, 1, 2}, nil},
		{"Middle removed", 4, []int{1, 2}, []float64{0, 3}},
		{"Ends removed", 4, []int{0, 3}, []float64{1, 2}},
		{"Empty", 0, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := mk(tt.size)
			backing := list
			for _, i := range tt.removed {
				list[i].MarkRemoved()
			}

			got := compact(list)
			if len(got) != len(tt.wantX) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantX))
			}
			for i, e := range got {
				if e.X != tt.wantX[i] {
					t.Errorf("got[%d].X = %v, want %v (order must be preserved)", i, e.X, tt.wantX[i])
				}
			}
			// the tail of the backing array must not pin removed entities
			for i := len(got); i < len(backing); i++ {
				if backing[i] != nil {
					t.Errorf("backing[%d] not cleared", i)
				}
			}
		})
	}
}

func TestNewGameStatePlayerOwnsProjectileModel(t *testing.T) {
	g, _ := newTestGame(t)
	proj := g.State.Player.Fire(0)
	if proj.Model != g.models.Projectile {
		t.Error("projectile not built from the projectile model")
	}
	if g.State.Player.Model != g.models.Player {
		t.Error("player not built from the player model")
	}
}
