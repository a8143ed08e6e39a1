package scoring

import (
	"github.com/hupe1980/acumesh/internal/math32"
	"github.com/hupe1980/acumesh/mesh"
)

// Acute reports whether the angle between two displacement vectors from a
// shared vertex is strictly less than π/2.
//
// The cosine is clamped to [-1, 1] before the inverse cosine to absorb
// floating-point overshoot from accumulated rounding. A zero-length vector
// is treated as angle 0 and therefore acute; this fallback is part of the
// scoring contract and must not change without a product decision, since it
// affects how near-degenerate cells rank.
func Acute(v1, v2 mesh.Vec3) bool {
	len1Sq := v1.LengthSquared()
	len2Sq := v2.LengthSquared()

	if len1Sq == 0 || len2Sq == 0 {
		return true
	}

	cos := math32.Clamp(v1.Dot(v2)/math32.Sqrt(len1Sq*len2Sq), -1, 1)

	return math32.Acos(cos) < math32.HalfPi
}
