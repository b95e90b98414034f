// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

// MaxDelta is the maximum frame delta (seconds) fed to any tick: larger
// deltas, such as the first frame after a backgrounded tab resumes,
// are clamped so convergence never jumps.
const MaxDelta = 0.1

// ClampDelta clamps a frame delta to [0..MaxDelta].
func ClampDelta(dt float32) float32 {
	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

// Ticker is one population advanced once per frame. Tick must not block
// and must mutate only the population's own elements. State-independent
// populations (orbits, bursts) ignore the state argument.
type Ticker interface {
	Tick(elapsed, dt float32, state SceneStates)
}

// Scene owns the stage and the full set of populations, and advances
// all of them once per frame from the render sink's clock. The scene
// state is read from the stage exactly once per Tick, so a mid-frame
// write from the gesture pipeline lands as a whole on the next frame.
type Scene struct {

	// Stage is the shared scene context: state written by the gesture
	// pipeline or the manual toggle, read here once per frame.
	Stage Stage

	// Tickers is the ordered set of populations.
	Tickers []Ticker
}

// Add appends populations to the scene.
func (sc *Scene) Add(tks ...Ticker) {
	sc.Tickers = append(sc.Tickers, tks...)
}

// Tick advances every population by one frame. elapsed is monotonic
// elapsed seconds; dt is the frame delta, clamped to [MaxDelta].
func (sc *Scene) Tick(elapsed, dt float32) {
	dt = ClampDelta(dt)
	state := sc.Stage.State()
	for _, tk := range sc.Tickers {
		tk.Tick(elapsed, dt, state)
	}
}
