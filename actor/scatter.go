package actor

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MinScale       = 1
	MaxScale       = 5
	MinRotation    = 1
	MaxRotation    = 10
	MinTranslation = 1
	MaxTranslation = 5
)

// RandomTransforms lays out n transforms from a seeded generator.
// Each transform gets one uniform integer scale, and integer rotation (radians) and
// translation per axis. The same seed always yields the same layout.
func RandomTransforms(seed uint64, n int) []Transform {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	transforms := make([]Transform, max(n, 0))

	for i := range transforms {
		scale := randomInt(rng, MinScale, MaxScale)

		rotX := randomInt(rng, MinRotation, MaxRotation)
		rotY := randomInt(rng, MinRotation, MaxRotation)
		rotZ := randomInt(rng, MinRotation, MaxRotation)

		transX := randomInt(rng, MinTranslation, MaxTranslation)
		transY := randomInt(rng, MinTranslation, MaxTranslation)
		transZ := randomInt(rng, MinTranslation, MaxTranslation)

		transforms[i] = Transform{
			Position: mgl64.Vec3{transX, transY, transZ},
			Rotation: mgl64.Vec3{rotX, rotY, rotZ},
			Scale:    mgl64.Vec3{scale, scale, scale},
		}
	}

	return transforms
}

// randomInt returns an integer in [lo, hi], as a float64
func randomInt(rng *rand.Rand, lo, hi int) float64 {
	return float64(lo + rng.IntN(hi-lo+1))
}
