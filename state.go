// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

//go:generate core generate -add-types

import (
	"math"
	"sync/atomic"
)

// SceneStates is the binary scene mode selecting which target
// configuration every interpolating population moves toward.
// There is no third "transitioning" value: an in-flight transition is
// implicit in elements not yet having reached the selected target
// (see [Population.Settled]).
type SceneStates int32 //enums:enum

const (
	// Scattered selects each element's scattered endpoint: the
	// population disperses into its randomized cloud arrangement.
	Scattered SceneStates = iota

	// Formed selects each element's formed endpoint: the population
	// assembles onto the target silhouette.
	Formed
)

// Stage is the shared scene context connecting an asynchronous state
// producer (gesture pipeline, UI toggle) to the per-frame consumers.
// It holds the authoritative [SceneStates] value and the continuous
// camera drift scalar. Writes follow a single-writer convention; reads
// happen once per frame. The latest value always wins: there is no
// queue, and stale intermediate values are simply overwritten.
//
// A Stage is injected into whoever needs it rather than accessed as a
// package global, so engines remain testable without a live producer.
type Stage struct {
	state atomic.Int32
	drift atomic.Uint32 // float32 bits
}

// State returns the current scene state.
func (st *Stage) State() SceneStates {
	return SceneStates(st.state.Load())
}

// SetState sets the scene state. Gesture-derived and manual writes go
// through this same path; the engine does not distinguish them.
func (st *Stage) SetState(s SceneStates) {
	st.state.Store(int32(s))
}

// Toggle flips the scene state and returns the new value.
func (st *Stage) Toggle() SceneStates {
	ns := Formed
	if st.State() == Formed {
		ns = Scattered
	}
	st.SetState(ns)
	return ns
}

// Drift returns the current horizontal drift scalar, used as a camera
// rotation speed input. It is 0 when no hand is detected.
func (st *Stage) Drift() float32 {
	return math.Float32frombits(st.drift.Load())
}

// SetDrift sets the drift scalar.
func (st *Stage) SetDrift(d float32) {
	st.drift.Store(math.Float32bits(d))
}
