package engine

import (
	"errors"
	"fmt"
)

// ErrInit matches every fatal startup failure
var ErrInit = errors.New("initialization failed")

// InitStage names the startup step that failed
type InitStage string

const (
	StageSurface InitStage = "surface"
	StageAsset   InitStage = "asset"
	StageShader  InitStage = "shader"
)

// InitError is a fatal startup failure; the game never enters its loop after one
type InitError struct {
	Stage InitStage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInit, e.Stage, e.Err)
}

// Unwrap exposes both the ErrInit class and the cause to errors.Is/As
func (e *InitError) Unwrap() []error {
	return []error{ErrInit, e.Err}
}

// NewInitError wraps err for stage; nil stays nil
func NewInitError(stage InitStage, err error) error {
	if err == nil {
		return nil
	}
	return &InitError{Stage: stage, Err: err}
}
