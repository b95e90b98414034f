// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// BallSample returns a point sampled uniformly inside the sphere of
// given radius centered on the origin. Used for scattered endpoints.
func BallSample(rng *rand.Rand, radius float32) math32.Vector3 {
	for {
		v := math32.Vec3(
			2*rng.Float32()-1,
			2*rng.Float32()-1,
			2*rng.Float32()-1,
		)
		if v.Length() <= 1 {
			return v.MulScalar(radius)
		}
	}
}

// ConeSample returns a point inside the solid cone with its base of
// given radius at y = 0 and apex at y = height. The radial coordinate
// is sampled uniformly in the disc allowed at the chosen height, so the
// cone fills as a solid, denser toward the wide base, not a hollow
// shell. Set shell to true to sample on the surface instead, for
// ornaments hung on the silhouette.
func ConeSample(rng *rand.Rand, height, radius float32, shell bool) math32.Vector3 {
	h := rng.Float32()
	rmax := radius * (1 - h)
	r := rmax
	if !shell {
		// sqrt gives uniform density over the disc at this height
		r = rmax * math32.Sqrt(rng.Float32())
	}
	az := 2 * math32.Pi * rng.Float32()
	return math32.Vec3(r*math32.Cos(az), h*height, r*math32.Sin(az))
}

// DirSample returns a unit direction sampled within the cone of
// half-angle spread (radians) around +Y. A spread >= Pi covers the full
// sphere of directions. Used for burst launch directions.
func DirSample(rng *rand.Rand, spread float32) math32.Vector3 {
	if spread > math32.Pi {
		spread = math32.Pi
	}
	// uniform over the spherical cap
	cosMax := math32.Cos(spread)
	cy := cosMax + (1-cosMax)*rng.Float32()
	sy := math32.Sqrt(1 - cy*cy)
	az := 2 * math32.Pi * rng.Float32()
	return math32.Vec3(sy*math32.Cos(az), cy, sy*math32.Sin(az))
}

// RandRange returns a uniform random value in [lo..hi).
func RandRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*rng.Float32()
}
