// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// Orbiter is one element of an [Orbit] population. Its position is
// computed in closed form from elapsed time each tick, never
// interpolated, so orbits are exact at any frame rate.
type Orbiter struct {

	// Pos is the current position, recomputed every tick.
	Pos math32.Vector3

	// Phase is the starting angle of the orbit.
	Phase float32

	// Speed is the angular speed in radians per second.
	Speed float32

	// Radius is the orbit radius.
	Radius float32

	// Incl is the orbit plane inclination.
	Incl float32

	// VertSpeed is the vertical bob frequency.
	VertSpeed float32

	// VertAmp is the vertical bob amplitude.
	VertAmp float32

	// Payload is the opaque visual payload reference owned by the
	// render sink; nil while unresolved.
	Payload any
}

// OrbitParams configures randomization bounds for an [Orbit] population.
type OrbitParams struct {

	// RadiusMin and RadiusMax bound the per-element orbit radius.
	RadiusMin float32 `default:"4"`

	// RadiusMax is the upper bound of the orbit radius.
	RadiusMax float32 `default:"9"`

	// SpeedMin and SpeedMax bound the per-element angular speed.
	SpeedMin float32 `default:"0.2"`

	// SpeedMax is the upper bound of the angular speed.
	SpeedMax float32 `default:"0.7"`

	// InclMax bounds the orbit plane inclination.
	InclMax float32 `default:"0.5"`

	// VertAmp is the maximum vertical bob amplitude.
	VertAmp float32 `default:"1.5"`
}

// Defaults sets default parameter values.
func (op *OrbitParams) Defaults() {
	op.RadiusMin = 4
	op.RadiusMax = 9
	op.SpeedMin = 0.2
	op.SpeedMax = 0.7
	op.InclMax = 0.5
	op.VertAmp = 1.5
}

// Orbit is a population of orbiting elements, always active while
// visible and independent of the scene state.
type Orbit struct {
	OrbitParams

	// Elements is the ordered orbiter array.
	Elements []Orbiter
}

// NewOrbit creates an orbit population of n elements with per-element
// randomized phase, speed, radius, inclination, and vertical bob.
func NewOrbit(n int, rng *rand.Rand, op OrbitParams) *Orbit {
	ob := &Orbit{OrbitParams: op}
	ob.Elements = make([]Orbiter, n)
	for i := range ob.Elements {
		o := &ob.Elements[i]
		o.Phase = RandRange(rng, 0, 2*math32.Pi)
		o.Speed = RandRange(rng, op.SpeedMin, op.SpeedMax)
		o.Radius = RandRange(rng, op.RadiusMin, op.RadiusMax)
		o.Incl = RandRange(rng, -op.InclMax, op.InclMax)
		o.VertSpeed = RandRange(rng, 0.3, 1.2)
		o.VertAmp = RandRange(rng, 0.3, op.VertAmp)
	}
	ob.Tick(0, 0, Scattered)
	return ob
}

// Tick recomputes every orbiter position from elapsed time. The scene
// state and dt are ignored: the orbit is closed-form in elapsed time.
func (ob *Orbit) Tick(elapsed, dt float32, state SceneStates) {
	for i := range ob.Elements {
		o := &ob.Elements[i]
		a := o.Phase + elapsed*o.Speed
		ci := math32.Cos(o.Incl)
		o.Pos.X = math32.Cos(a) * o.Radius * ci
		o.Pos.Z = math32.Sin(a) * o.Radius * ci
		o.Pos.Y = math32.Sin(elapsed*o.VertSpeed) * o.VertAmp
	}
}
