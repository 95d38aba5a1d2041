package engine

import (
	"errors"
	"io"
	"testing"
)

func TestInitError(t *testing.T) {
	tests := []struct {
		name  string
		stage InitStage
	}{
		{"Surface stage", StageSurface},
		{"Asset stage", StageAsset},
		{"Shader stage", StageShader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInitError(tt.stage, io.ErrUnexpectedEOF)
			if !errors.Is(err, ErrInit) {
				t.Errorf("errors.Is(%v, ErrInit) = false", err)
			}
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("cause lost in %v", err)
			}
			var ie *InitError
			if !errors.As(err, &ie) || ie.Stage != tt.stage {
				t.Errorf("errors.As stage = %v, want %v", ie, tt.stage)
			}
		})
	}

	t.Run("Nil cause", func(t *testing.T) {
		if err := NewInitError(StageAsset, nil); err != nil {
			t.Errorf("NewInitError(nil) = %v, want nil", err)
		}
	})
}
