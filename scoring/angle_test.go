package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/acumesh/mesh"
)

func TestAcute(t *testing.T) {
	tests := []struct {
		name     string
		v1, v2   mesh.Vec3
		expected bool
	}{
		{"RightAngle", mesh.Vec3{X: 1}, mesh.Vec3{Y: 1}, false},
		{"FortyFiveDegrees", mesh.Vec3{X: 1}, mesh.Vec3{X: 1, Y: 1}, true},
		{"Parallel", mesh.Vec3{X: 1}, mesh.Vec3{X: 2}, true},
		{"Opposite", mesh.Vec3{X: 1}, mesh.Vec3{X: -1}, false},
		{"Obtuse", mesh.Vec3{X: 1}, mesh.Vec3{X: -1, Y: 0.1}, false},
		{"JustUnderRightAngle", mesh.Vec3{X: 1}, mesh.Vec3{X: 1e-3, Y: 1}, true},
		{"JustOverRightAngle", mesh.Vec3{X: 1}, mesh.Vec3{X: -1e-3, Y: 1}, false},
		{"ZeroFirst", mesh.Vec3{}, mesh.Vec3{Y: 1}, true},
		{"ZeroSecond", mesh.Vec3{X: 1}, mesh.Vec3{}, true},
		{"BothZero", mesh.Vec3{}, mesh.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Acute(tt.v1, tt.v2))
		})
	}
}

func TestAcuteSymmetric(t *testing.T) {
	pairs := []struct{ v1, v2 mesh.Vec3 }{
		{mesh.Vec3{X: 1}, mesh.Vec3{X: 0.3, Y: 1}},
		{mesh.Vec3{X: 1, Z: -2}, mesh.Vec3{Y: 1, Z: 0.5}},
		{mesh.Vec3{X: 1}, mesh.Vec3{Y: 1}},
		{mesh.Vec3{}, mesh.Vec3{X: 4, Y: -2, Z: 1}},
	}

	for _, p := range pairs {
		assert.Equal(t, Acute(p.v1, p.v2), Acute(p.v2, p.v1))
	}
}

func TestAcuteThresholdSweep(t *testing.T) {
	// Angles strictly below 90° classify acute, 90° and above do not.
	for deg := 1; deg <= 179; deg++ {
		rad := float64(deg) * math.Pi / 180
		v1 := mesh.Vec3{X: 1}
		v2 := mesh.Vec3{X: float32(math.Cos(rad)), Y: float32(math.Sin(rad))}

		assert.Equal(t, deg < 90, Acute(v1, v2), "angle %d°", deg)
	}
}

func TestAcuteClampsRoundingOvershoot(t *testing.T) {
	// Nearly parallel vectors can push the computed cosine past 1; the
	// clamp keeps Acos in range so the result stays acute, not NaN.
	v1 := mesh.Vec3{X: 0.1, Y: 0.2, Z: 0.3}
	v2 := mesh.Vec3{X: 0.1000001, Y: 0.2000001, Z: 0.3000001}

	assert.True(t, Acute(v1, v2))
}
