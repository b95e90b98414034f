// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import "cogentcore.org/core/math32"

// Noise is a cheap time-varying positional perturbation: a sum of
// position-keyed sinusoids, bounded componentwise by Amp. A Population
// blends it into the formed target scaled by each element's progress
// fraction, so the formed shape breathes instead of freezing rigid while
// the fully scattered arrangement is unaffected.
type Noise struct {

	// Amp is the maximum displacement per axis. 0 disables the noise.
	Amp float32

	// Freq is the temporal frequency in radians per second.
	Freq float32 `default:"1.5"`
}

// At returns the perturbation at time t for an element whose formed
// endpoint is p. Each component is bounded by [-Amp..Amp].
func (ns *Noise) At(t float32, p math32.Vector3) math32.Vector3 {
	if ns.Amp == 0 {
		return math32.Vector3{}
	}
	ft := t * ns.Freq
	return math32.Vec3(
		ns.Amp*math32.Sin(ft+1.7*p.Y+0.9*p.Z),
		ns.Amp*math32.Sin(ft*0.8+2.3*p.X+1.1*p.Z),
		ns.Amp*math32.Sin(ft*1.1+1.3*p.X+2.1*p.Y),
	)
}
