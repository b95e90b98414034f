// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// BurstParticle is one particle of a [Burst]. All fields reset on every
// firing; between bursts the particle is invisible (Alpha 0).
type BurstParticle struct {

	// Pos is the current position, integrated from Vel each tick.
	Pos math32.Vector3

	// Vel is the current velocity, re-randomized on each firing and
	// accelerated by gravity each tick.
	Vel math32.Vector3

	// Life is this particle's fade duration for the current firing.
	Life float32

	// Alpha is the current fade-out opacity, 1 at firing, linear in
	// age/Life down to 0.
	Alpha float32
}

// BurstParams configures a [Burst] population.
type BurstParams struct {

	// Origin is the point every particle resets to on firing.
	Origin math32.Vector3

	// SpeedMin and SpeedMax bound the randomized launch speed.
	SpeedMin float32 `default:"4"`

	// SpeedMax is the upper bound of the launch speed.
	SpeedMax float32 `default:"9"`

	// Spread is the half-angle (radians) of the cone of launch
	// directions around +Y; a value >= Pi launches over the full sphere.
	Spread float32 `default:"0.6"`

	// Gravity is the constant downward acceleration.
	Gravity float32 `default:"9.8"`

	// Duration is the burst lifetime in seconds: once this much time has
	// elapsed since firing, the burst deactivates until the next rising
	// edge of the trigger.
	Duration float32 `default:"2.5"`
}

// Defaults sets default parameter values.
func (bp *BurstParams) Defaults() {
	bp.SpeedMin = 4
	bp.SpeedMax = 9
	bp.Spread = 0.6
	bp.Gravity = 9.8
	bp.Duration = 2.5
}

// Burst is a transient trigger-activated particle population (confetti,
// firework). It fires on the rising edge of its trigger only: holding
// the trigger true does not restart it, and each firing re-randomizes
// every particle's velocity.
type Burst struct {
	BurstParams

	// Particles is the ordered particle array.
	Particles []BurstParticle

	rng     *rand.Rand
	trigger bool
	prev    bool
	active  bool
	started float32
}

// NewBurst creates an inactive burst population of n particles.
func NewBurst(n int, rng *rand.Rand, bp BurstParams) *Burst {
	bu := &Burst{BurstParams: bp, rng: rng}
	bu.Particles = make([]BurstParticle, n)
	return bu
}

// SetTrigger sets the trigger input. The burst fires at the next Tick
// after a false-to-true transition.
func (bu *Burst) SetTrigger(on bool) {
	bu.trigger = on
}

// Active reports whether a firing is in flight; the render sink hides
// the population while inactive.
func (bu *Burst) Active() bool {
	return bu.active
}

// fire resets every particle to the origin with a re-randomized
// velocity sampled from the direction cone and speed range.
func (bu *Burst) fire(elapsed float32) {
	bu.active = true
	bu.started = elapsed
	for i := range bu.Particles {
		p := &bu.Particles[i]
		p.Pos = bu.Origin
		dir := DirSample(bu.rng, bu.Spread)
		p.Vel = dir.MulScalar(RandRange(bu.rng, bu.SpeedMin, bu.SpeedMax))
		p.Life = bu.Duration * RandRange(bu.rng, 0.6, 1)
		p.Alpha = 1
	}
}

// Tick fires on a rising trigger edge, then integrates active particles
// with semi-implicit Euler under constant gravity and fades them
// linearly by age. The scene state is ignored.
func (bu *Burst) Tick(elapsed, dt float32, state SceneStates) {
	if bu.trigger && !bu.prev {
		bu.fire(elapsed)
	}
	bu.prev = bu.trigger
	if !bu.active {
		return
	}
	age := elapsed - bu.started
	if age > bu.Duration {
		bu.active = false
		return
	}
	dt = ClampDelta(dt)
	for i := range bu.Particles {
		p := &bu.Particles[i]
		p.Vel.Y -= bu.Gravity * dt
		p.Pos.SetAdd(p.Vel.MulScalar(dt))
		p.Alpha = math32.Clamp(1-age/p.Life, 0, 1)
	}
}
