package sampler

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AxisCorrection is Rx(-90°) with exact entries. It maps a Z-up scene into the
// Y-up convention of the destination: (x, y, z) -> (x, z, -y).
var AxisCorrection = mgl64.Mat4{
	1, 0, 0, 0,
	0, 0, -1, 0,
	0, 1, 0, 0,
	0, 0, 0, 1,
}

// gimbalEpsilon matches the threshold below which cos(x) is treated as zero.
const gimbalEpsilon = 16 * 1.1920928955078125e-07

// Decompose splits an affine matrix into translation, ZXY euler rotation in
// radians, and per-axis scale. The rotation satisfies R = Ry(y)·Rx(x)·Rz(z):
// Z is applied first, then X, then Y.
func Decompose(m mgl64.Mat4) (translate, rotate, scale mgl64.Vec3) {
	translate = mgl64.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}

	var n [3][3]float64
	for c := 0; c < 3; c++ {
		col := mgl64.Vec3{m.At(0, c), m.At(1, c), m.At(2, c)}
		scale[c] = col.Len()
		for r := 0; r < 3; r++ {
			if scale[c] != 0 {
				n[r][c] = col[r] / scale[c]
			}
		}
	}

	rotate = eulerZXY(n)
	return translate, rotate, scale
}

// eulerZXY extracts angles from a normalized rotation matrix. Of the two
// valid solutions the one with the smaller absolute angle sum wins.
func eulerZXY(n [3][3]float64) mgl64.Vec3 {
	cx := math.Hypot(n[1][0], n[1][1])
	if cx <= gimbalEpsilon {
		return mgl64.Vec3{
			math.Atan2(-n[1][2], cx),
			math.Atan2(-n[2][0], n[0][0]),
			0,
		}
	}

	a := mgl64.Vec3{
		math.Atan2(-n[1][2], cx),
		math.Atan2(n[0][2], n[2][2]),
		math.Atan2(n[1][0], n[1][1]),
	}
	b := mgl64.Vec3{
		math.Atan2(-n[1][2], -cx),
		math.Atan2(-n[0][2], -n[2][2]),
		math.Atan2(-n[1][0], -n[1][1]),
	}
	if absSum(a) > absSum(b) {
		return b
	}
	return a
}

func absSum(v mgl64.Vec3) float64 {
	return math.Abs(v[0]) + math.Abs(v[1]) + math.Abs(v[2])
}

// ComposeZXY is the inverse of Decompose: T · Ry·Rx·Rz · S.
func ComposeZXY(translate, rotate, scale mgl64.Vec3) mgl64.Mat4 {
	r := mgl64.HomogRotate3DY(rotate[1]).
		Mul4(mgl64.HomogRotate3DX(rotate[0])).
		Mul4(mgl64.HomogRotate3DZ(rotate[2]))
	return mgl64.Translate3D(translate[0], translate[1], translate[2]).
		Mul4(r).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}
