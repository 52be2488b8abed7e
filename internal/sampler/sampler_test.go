package sampler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func assertVecInDelta(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, msgAndArgs...)
	}
}

func TestAxisCorrectionIsRotationAboutX(t *testing.T) {
	want := mgl64.HomogRotate3DX(mgl64.DegToRad(-90))
	assert.True(t, AxisCorrection.ApproxEqualThreshold(want, 1e-12))

	v := AxisCorrection.Mul4x1(mgl64.Vec4{1, 2, 3, 1})
	assert.Equal(t, mgl64.Vec4{1, 3, -2, 1}, v)
}

func TestDecomposeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		tr := mgl64.Vec3{rng.Float64()*200 - 100, rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		rot := mgl64.Vec3{
			(rng.Float64() - 0.5) * 0.98 * math.Pi,
			(rng.Float64()*2 - 1) * math.Pi,
			(rng.Float64()*2 - 1) * math.Pi,
		}
		sc := mgl64.Vec3{rng.Float64()*5 + 0.01, rng.Float64()*5 + 0.01, rng.Float64()*5 + 0.01}

		m := ComposeZXY(tr, rot, sc)
		gotT, gotR, gotS := Decompose(m)

		assertVecInDelta(t, tr, gotT, "translation, case %d", i)
		assertVecInDelta(t, sc, gotS, "scale, case %d", i)
		back := ComposeZXY(gotT, gotR, gotS)
		assert.True(t, back.ApproxEqualThreshold(m, 1e-9), "recomposed matrix differs, case %d", i)
	}
}

func TestDecomposeRecoversSmallAnglesExactly(t *testing.T) {
	tests := []mgl64.Vec3{
		{0.1, 0.2, 0.3},
		{-0.7, 0.4, -0.2},
		{0, 0, 0.75},
		{0.5, -0.5, 0},
	}
	for _, rot := range tests {
		_, got, _ := Decompose(ComposeZXY(mgl64.Vec3{}, rot, mgl64.Vec3{1, 1, 1}))
		assertVecInDelta(t, rot, got)
	}
}

func TestDecomposeOrderIsZXY(t *testing.T) {
	rot := mgl64.Vec3{0.3, 0.5, 0.7}
	m := ComposeZXY(mgl64.Vec3{}, rot, mgl64.Vec3{1, 1, 1})

	xyz := mgl64.HomogRotate3DZ(rot[2]).Mul4(mgl64.HomogRotate3DY(rot[1])).Mul4(mgl64.HomogRotate3DX(rot[0]))
	assert.False(t, m.ApproxEqualThreshold(xyz, 1e-6), "ZXY and XYZ must not coincide")

	yxz := mgl64.HomogRotate3DY(rot[1]).Mul4(mgl64.HomogRotate3DX(rot[0])).Mul4(mgl64.HomogRotate3DZ(rot[2]))
	assert.True(t, m.ApproxEqualThreshold(yxz, 1e-12))
}

func TestDecomposeGimbalLock(t *testing.T) {
	rot := mgl64.Vec3{math.Pi / 2, 0.4, 0}
	m := ComposeZXY(mgl64.Vec3{}, rot, mgl64.Vec3{1, 1, 1})
	_, got, _ := Decompose(m)

	assert.Equal(t, 0.0, got[2])
	back := ComposeZXY(mgl64.Vec3{}, got, mgl64.Vec3{1, 1, 1})
	assert.True(t, back.ApproxEqualThreshold(m, 1e-9))
}

func TestSamplerObject(t *testing.T) {
	world := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(1, 2, 3))

	s := New(100).Object(world)
	assertVecInDelta(t, mgl64.Vec3{100, 300, -200}, s.Translate)
	assertVecInDelta(t, mgl64.Vec3{-math.Pi / 2, 0, 0}, s.Rotate)
	assertVecInDelta(t, mgl64.Vec3{1, 3, 2}, s.Scale, "Y and Z scale are swapped")
	assert.False(t, s.HasFOV)

	unscaled := New(1).Object(world)
	assertVecInDelta(t, s.Translate.Mul(0.01), unscaled.Translate)
}

func TestSamplerCameraUprightIsIdentity(t *testing.T) {
	// a camera rotated 90° about X looks down the scene's -Y axis, which is
	// the destination's unrotated camera
	world := mgl64.Translate3D(0, -10, 0).Mul4(mgl64.HomogRotate3DX(math.Pi / 2))

	s := New(1).Camera(world, math.Pi/4)
	require.True(t, s.HasFOV)
	assert.InDelta(t, 45.0, s.FieldOfView, 1e-12)
	assertVecInDelta(t, mgl64.Vec3{0, 0, 10}, s.Translate)
	assertVecInDelta(t, mgl64.Vec3{}, s.Rotate)
	assertVecInDelta(t, mgl64.Vec3{1, 1, 1}, s.Scale)
}

func TestFieldOfView(t *testing.T) {
	assert.InDelta(t, 180.0, FieldOfView(math.Pi), 1e-12)
	assert.Equal(t, 0.0, FieldOfView(0))
	assert.InDelta(t, 39.5977, FieldOfView(0.6911112070083618), 1e-4)
}
