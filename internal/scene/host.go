package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Host is the read-only view of a 3D scene graph that an export consumes,
// plus the one piece of mutable state it drives: the current frame.
type Host interface {
	Snapshot() (Snapshot, error)
	// Objects returns the objects on a visible layer in enumeration order.
	Objects() []Object
	ActiveCamera() (string, bool)
	CurrentFrame() int
	SetFrame(frame int) error
	// WorldMatrix and CameraAngle are evaluated at the current frame.
	WorldMatrix(name string) (mgl64.Mat4, error)
	CameraAngle(name string) (float64, error)
}

// Object is one enumerable scene object.
type Object struct {
	Name string
	Type string
}

// FrameRate is a nominal integer rate divided by a base, e.g. 30/1.001.
type FrameRate struct {
	FPS  int
	Base float64
}

// NTSC reports whether the rate is a fractional (drop-frame style) rate.
func (r FrameRate) NTSC() bool {
	return r.Base > 1
}

// Rate returns the effective frames per second.
func (r FrameRate) Rate() float64 {
	if r.Base == 0 {
		return float64(r.FPS)
	}
	return float64(r.FPS) / r.Base
}

// Snapshot is the immutable per-export scene metadata.
type Snapshot struct {
	Name                 string
	Start, End           int
	Rate                 FrameRate
	ResolutionX          int
	ResolutionY          int
	ResolutionPercentage int
	PixelAspectX         float64
	PixelAspectY         float64
}

// Frames returns the inclusive frame count, zero when the range is empty.
func (s Snapshot) Frames() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

// Width is the render width after the resolution percentage is applied.
func (s Snapshot) Width() int {
	return s.ResolutionX * s.percentage() / 100
}

// Height is the render height after the resolution percentage is applied.
func (s Snapshot) Height() int {
	return s.ResolutionY * s.percentage() / 100
}

// Aspect is the display aspect ratio including pixel aspect.
func (s Snapshot) Aspect() float64 {
	h := float64(s.Height()) * s.PixelAspectY
	if h == 0 {
		return 1
	}
	return float64(s.Width()) * s.PixelAspectX / h
}

func (s Snapshot) percentage() int {
	if s.ResolutionPercentage <= 0 {
		return 100
	}
	return s.ResolutionPercentage
}
