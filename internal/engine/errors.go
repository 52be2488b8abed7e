package engine

import (
	"errors"
	"fmt"

	"github.com/ivlev/scene2motn/internal/curve"
)

var (
	// ErrMissingCamera means the scene has no active camera on a visible layer.
	ErrMissingCamera = errors.New("scene has no active camera on a visible layer")
	// ErrEmptyFrameRange means the scene's end frame precedes its start frame.
	ErrEmptyFrameRange = errors.New("scene frame range is empty")
	// ErrExportInProgress means another export holds the output lock.
	ErrExportInProgress = errors.New("another export is already running")
)

// CollisionError is reported as a warning when two objects share a
// normalized name. The later object is skipped.
type CollisionError = curve.CollisionError

// WriteError wraps a failure of the output sink.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
