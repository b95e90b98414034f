// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import (
	"math/rand"

	"cogentcore.org/core/math32"
	"golang.org/x/sync/errgroup"
)

// Params configures the endpoint generation and motion parameters of an
// interpolating [Population]. Scattered endpoints are sampled uniformly
// inside a ball; formed endpoints are sampled in (or on) a cone.
type Params struct {

	// ScatterRadius is the radius of the ball that scattered endpoints
	// are sampled within.
	ScatterRadius float32 `default:"12"`

	// Height is the cone height of the formed silhouette.
	Height float32 `default:"7"`

	// Radius is the cone base radius of the formed silhouette.
	Radius float32 `default:"3"`

	// Shell samples formed endpoints on the cone surface instead of
	// filling the solid volume. Use for ornaments hung on the silhouette;
	// leave off for foliage, which must fill the volume.
	Shell bool

	// EaseMin and EaseMax bound the per-element convergence rate
	// (fraction per second).
	EaseMin float32 `default:"0.6"`

	// EaseMax is the upper bound of the per-element convergence rate.
	EaseMax float32 `default:"2.5"`

	// SpinMax bounds each axis of the per-element scattered angular
	// velocity (radians per second).
	SpinMax float32 `default:"1.5"`

	// WobbleAmp is the amplitude (radians) of the settled wobble.
	WobbleAmp float32 `default:"0.1"`

	// WobbleSpeedMin and WobbleSpeedMax bound the per-element settled
	// wobble frequency.
	WobbleSpeedMin float32 `default:"0.5"`

	// WobbleSpeedMax is the upper bound of the settled wobble frequency.
	WobbleSpeedMax float32 `default:"2"`

	// Face orients settled elements to face outward from the central
	// axis at their current position (photo ornaments); recomputed each
	// frame while the position is still moving.
	Face bool

	// Noise is the bounded time-varying perturbation blended into the
	// formed target by each element's progress fraction.
	Noise Noise

	// Workers is the number of goroutines Tick shards elements across.
	// 0 or 1 ticks serially. Elements never read each other's state, so
	// sharding needs no synchronization beyond the frame barrier.
	Workers int
}

// Defaults sets default parameter values.
func (pr *Params) Defaults() {
	pr.ScatterRadius = 12
	pr.Height = 7
	pr.Radius = 3
	pr.EaseMin = 0.6
	pr.EaseMax = 2.5
	pr.SpinMax = 1.5
	pr.WobbleAmp = 0.1
	pr.WobbleSpeedMin = 0.5
	pr.WobbleSpeedMax = 2
	pr.Noise.Freq = 1.5
}

// Population is a packed collection of [Element]s sharing endpoint
// generation and motion parameters, advanced together once per frame.
// All elements are created once at construction and live for the whole
// session; only Pos and Quat mutate thereafter.
type Population struct {
	Params

	// Elements is the ordered element array. Order is stable for the
	// life of the population, giving the render sink stable identity.
	Elements []Element
}

// NewPopulation creates a population of n elements with randomized
// endpoints and motion parameters from the given source. Elements start
// at their scattered endpoints with identity orientation.
func NewPopulation(n int, rng *rand.Rand, pr Params) *Population {
	pp := &Population{Params: pr}
	pp.Elements = make([]Element, n)
	for i := range pp.Elements {
		el := &pp.Elements[i]
		el.Scattered = BallSample(rng, pr.ScatterRadius)
		el.Formed = ConeSample(rng, pr.Height, pr.Radius, pr.Shell)
		el.Pos = el.Scattered
		el.Quat.SetIdentity()
		el.Ease = RandRange(rng, pr.EaseMin, pr.EaseMax)
		el.Spin = math32.Vec3(
			RandRange(rng, -pr.SpinMax, pr.SpinMax),
			RandRange(rng, -pr.SpinMax, pr.SpinMax),
			RandRange(rng, -pr.SpinMax, pr.SpinMax),
		)
		el.WobbleSpeed = RandRange(rng, pr.WobbleSpeedMin, pr.WobbleSpeedMax)
		el.WobbleOff = RandRange(rng, 0, 2*math32.Pi)
	}
	return pp
}

// Tick advances every element toward the endpoint selected by state,
// using the element's own easing rate, and updates its orientation:
// tumbling while scattered, bounded wobble (plus optional outward
// facing) while formed. dt is clamped to [MaxDelta]. Tick mutates only
// this population's own elements and never blocks.
func (pp *Population) Tick(elapsed, dt float32, state SceneStates) {
	dt = ClampDelta(dt)
	n := len(pp.Elements)
	if pp.Workers <= 1 || n < 2*pp.Workers {
		pp.tickRange(0, n, elapsed, dt, state)
		return
	}
	g := new(errgroup.Group)
	chunk := (n + pp.Workers - 1) / pp.Workers
	for st := 0; st < n; st += chunk {
		st := st
		ed := min(st+chunk, n)
		g.Go(func() error {
			pp.tickRange(st, ed, elapsed, dt, state)
			return nil
		})
	}
	g.Wait() // frame barrier; workers never error
}

func (pp *Population) tickRange(st, ed int, elapsed, dt float32, state SceneStates) {
	for i := st; i < ed; i++ {
		el := &pp.Elements[i]
		target := el.Target(state)
		if state == Formed && pp.Noise.Amp > 0 {
			target = target.Add(pp.Noise.At(elapsed, el.Formed).MulScalar(el.Progress()))
		}
		el.Pos = EaseStep(el.Pos, target, el.Ease, dt)
		if state == Formed {
			el.stepWobble(elapsed, pp.WobbleAmp, pp.Face)
		} else {
			el.stepSpin(dt)
		}
	}
}

// Settled reports whether every element is within eps of the endpoint
// selected by state. "Is it still animating" is derived this way rather
// than stored as a third scene state.
func (pp *Population) Settled(state SceneStates, eps float32) bool {
	for i := range pp.Elements {
		el := &pp.Elements[i]
		if el.Pos.DistanceTo(el.Target(state)) >= eps {
			return false
		}
	}
	return true
}
