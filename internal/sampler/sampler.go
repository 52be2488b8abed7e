package sampler

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// pi is a variable so radToDeg is a float64 division, not an exact constant.
var pi = math.Pi

var radToDeg = 180 / pi

// Sample holds one object's decomposed channels at one frame, already in the
// destination's conventions.
type Sample struct {
	Translate mgl64.Vec3
	Rotate    mgl64.Vec3
	// Scale is remapped: Y holds the decomposed Z scale and Z holds Y.
	Scale mgl64.Vec3

	FieldOfView float64
	HasFOV      bool
}

// Sampler converts world matrices into destination channels.
type Sampler struct {
	sceneScale float64
}

// New returns a Sampler that multiplies translation by sceneScale.
func New(sceneScale float64) Sampler {
	return Sampler{sceneScale: sceneScale}
}

// Object samples a non-camera object.
func (s Sampler) Object(world mgl64.Mat4) Sample {
	corrected := AxisCorrection.Mul4(world)
	t, r, sc := Decompose(corrected)
	return Sample{
		Translate: t.Mul(s.sceneScale),
		Rotate:    r,
		Scale:     mgl64.Vec3{sc[0], sc[2], sc[1]},
	}
}

// Camera samples the active camera; angle is its angle of view in radians.
func (s Sampler) Camera(world mgl64.Mat4, angle float64) Sample {
	out := s.Object(world)
	out.FieldOfView = FieldOfView(angle)
	out.HasFOV = true
	return out
}

// FieldOfView converts an angle of view in radians to degrees.
func FieldOfView(angle float64) float64 {
	return angle * radToDeg
}
