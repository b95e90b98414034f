// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import (
	"math/rand"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// testParams returns quiet params (no noise) so position updates are
// pure exponential-decay interpolation.
func testParams() Params {
	var pr Params
	pr.Defaults()
	pr.Noise.Amp = 0
	return pr
}

func TestConvergence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pp := NewPopulation(50, rng, testParams())
	dists := make([]float32, len(pp.Elements))
	for i := range pp.Elements {
		dists[i] = pp.Elements[i].Pos.DistanceTo(pp.Elements[i].Formed)
	}
	elapsed := float32(0)
	dt := float32(1.0 / 60)
	for tick := 0; tick < 900; tick++ {
		elapsed += dt
		pp.Tick(elapsed, dt, Formed)
		for i := range pp.Elements {
			d := pp.Elements[i].Pos.DistanceTo(pp.Elements[i].Formed)
			assert.LessOrEqual(t, d, dists[i]+1e-5, "distance to target must not increase")
			dists[i] = d
		}
	}
	for i := range pp.Elements {
		assert.Less(t, dists[i], float32(0.05), "element %d did not converge", i)
	}
	assert.True(t, pp.Settled(Formed, 0.05))
}

func TestNoOvershoot(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pp := NewPopulation(20, rng, testParams())
	elapsed := float32(0)
	dt := float32(1.0 / 30)
	for tick := 0; tick < 200; tick++ {
		prev := make([]math32.Vector3, len(pp.Elements))
		for i := range pp.Elements {
			prev[i] = pp.Elements[i].Pos
		}
		elapsed += dt
		pp.Tick(elapsed, dt, Formed)
		for i := range pp.Elements {
			el := &pp.Elements[i]
			dPrev := prev[i].DistanceTo(el.Formed)
			dStep := prev[i].DistanceTo(el.Pos)
			dNew := el.Pos.DistanceTo(el.Formed)
			// new position stays on the segment from previous to target
			tolassert.EqualTol(t, dPrev, dStep+dNew, 1e-3)
		}
	}
}

func TestFrameRateIndependence(t *testing.T) {
	pos := math32.Vec3(5, -2, 1)
	target := math32.Vec3(0, 3, 0)
	rate := float32(1.8)

	many := pos
	for i := 0; i < 10; i++ {
		many = EaseStep(many, target, rate, 0.01)
	}
	one := EaseStep(pos, target, rate, 0.1)

	tolassert.EqualTol(t, one.X, many.X, 1e-4)
	tolassert.EqualTol(t, one.Y, many.Y, 1e-4)
	tolassert.EqualTol(t, one.Z, many.Z, 1e-4)
}

func TestRedirectOnStateFlip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pp := NewPopulation(20, rng, testParams())
	elapsed := float32(0)
	dt := float32(1.0 / 60)
	for tick := 0; tick < 60; tick++ {
		elapsed += dt
		pp.Tick(elapsed, dt, Formed)
	}
	// mid-flight positions, before redirecting back to scattered
	mid := make([]math32.Vector3, len(pp.Elements))
	for i := range pp.Elements {
		mid[i] = pp.Elements[i].Pos
	}
	elapsed += dt
	pp.Tick(elapsed, dt, Scattered)
	for i := range pp.Elements {
		el := &pp.Elements[i]
		// no snapping: one tick moves only a small fraction of the way
		step := mid[i].DistanceTo(el.Pos)
		full := mid[i].DistanceTo(el.Scattered)
		assert.Less(t, step, full*0.5, "element %d jumped on state flip", i)
	}
	dists := make([]float32, len(pp.Elements))
	for i := range pp.Elements {
		dists[i] = pp.Elements[i].Pos.DistanceTo(pp.Elements[i].Scattered)
	}
	for tick := 0; tick < 300; tick++ {
		elapsed += dt
		pp.Tick(elapsed, dt, Scattered)
		for i := range pp.Elements {
			d := pp.Elements[i].Pos.DistanceTo(pp.Elements[i].Scattered)
			assert.LessOrEqual(t, d, dists[i]+1e-5)
			dists[i] = d
		}
	}
}

func TestScatterBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pr := testParams()
	pp := NewPopulation(500, rng, pr)
	for i := range pp.Elements {
		assert.LessOrEqual(t, pp.Elements[i].Scattered.Length(), pr.ScatterRadius)
	}
}

func TestConeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pr := testParams()
	pp := NewPopulation(500, rng, pr)
	for i := range pp.Elements {
		fp := pp.Elements[i].Formed
		assert.GreaterOrEqual(t, fp.Y, float32(0))
		assert.LessOrEqual(t, fp.Y, pr.Height)
		radial := math32.Sqrt(fp.X*fp.X + fp.Z*fp.Z)
		rmax := pr.Radius * (1 - fp.Y/pr.Height)
		assert.LessOrEqual(t, radial, rmax+1e-4, "point outside cone silhouette")
	}
}

func TestShellSample(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	pr := testParams()
	pr.Shell = true
	pp := NewPopulation(200, rng, pr)
	for i := range pp.Elements {
		fp := pp.Elements[i].Formed
		radial := math32.Sqrt(fp.X*fp.X + fp.Z*fp.Z)
		rmax := pr.Radius * (1 - fp.Y/pr.Height)
		tolassert.EqualTol(t, rmax, radial, 1e-4)
	}
}

func TestParallelTickMatchesSerial(t *testing.T) {
	pr := testParams()
	serial := NewPopulation(100, rand.New(rand.NewSource(7)), pr)
	pr.Workers = 4
	sharded := NewPopulation(100, rand.New(rand.NewSource(7)), pr)
	elapsed := float32(0)
	dt := float32(1.0 / 60)
	for tick := 0; tick < 120; tick++ {
		elapsed += dt
		serial.Tick(elapsed, dt, Formed)
		sharded.Tick(elapsed, dt, Formed)
	}
	for i := range serial.Elements {
		assert.Equal(t, serial.Elements[i].Pos, sharded.Elements[i].Pos)
	}
}

func TestClampDelta(t *testing.T) {
	assert.Equal(t, float32(0), ClampDelta(-1))
	assert.Equal(t, float32(0.05), ClampDelta(0.05))
	assert.Equal(t, float32(MaxDelta), ClampDelta(3))
}

func TestNoiseBounded(t *testing.T) {
	ns := Noise{Amp: 0.2, Freq: 1.5}
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 1000; i++ {
		p := BallSample(rng, 10)
		v := ns.At(rng.Float32()*100, p)
		assert.LessOrEqual(t, math32.Abs(v.X), ns.Amp)
		assert.LessOrEqual(t, math32.Abs(v.Y), ns.Amp)
		assert.LessOrEqual(t, math32.Abs(v.Z), ns.Amp)
	}
}

func TestUnresolvedPayloadStillTicks(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	pp := NewPopulation(10, rng, testParams())
	for i := range pp.Elements {
		assert.Nil(t, pp.Elements[i].Payload)
	}
	elapsed := float32(0)
	dt := float32(1.0 / 60)
	for tick := 0; tick < 120; tick++ {
		elapsed += dt
		pp.Tick(elapsed, dt, Formed)
	}
	for i := range pp.Elements {
		el := &pp.Elements[i]
		assert.Less(t, el.Pos.DistanceTo(el.Formed), el.Scattered.DistanceTo(el.Formed))
	}
}
