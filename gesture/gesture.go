// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture maps asynchronous hand-gesture classifier output onto
// the shared scene [choreo.Stage]. The classifier runs at its own
// cadence, bounded by video frame rate and inference latency, not the
// render frame rate; readings communicate with the engine only through
// the stage, latest value wins, nothing is queued or replayed.
package gesture

import (
	"cogentcore.org/choreo"
)

// Labels recognized by the default [Mapper]. Any other label leaves the
// scene state unchanged.
const (
	// OpenPalm disperses the scene.
	OpenPalm = "Open_Palm"

	// ClosedFist assembles the scene.
	ClosedFist = "Closed_Fist"
)

// Reading is one classifier emission: a discrete gesture label with a
// confidence score, plus the continuous horizontal hand landmark
// position when a hand is present.
type Reading struct {

	// Label is the gesture category name.
	Label string `json:"label"`

	// Confidence is the classifier confidence in [0..1].
	Confidence float32 `json:"confidence"`

	// LandmarkX is the horizontal hand landmark position in [0..1],
	// only meaningful when HandPresent.
	LandmarkX float32 `json:"landmarkX"`

	// HandPresent reports whether any hand was detected in the frame.
	HandPresent bool `json:"handPresent"`
}

// Mapper turns readings into stage writes. Exactly two labels are
// recognized; a recognized label only takes effect above the confidence
// threshold. The drift scalar is derived from the landmark position and
// zeroed whenever no hand is detected, so camera rotation stops the
// moment the hand leaves the frame.
type Mapper struct {

	// Threshold is the minimum confidence for a label to change the
	// scene state.
	Threshold float32 `default:"0.4"`

	// DriftGain scales the centered landmark position into the drift
	// scalar.
	DriftGain float32 `default:"2"`

	// Labels maps recognized labels to scene states.
	Labels map[string]choreo.SceneStates
}

// Defaults sets the standard two-label mapping and thresholds.
func (mp *Mapper) Defaults() {
	mp.Threshold = 0.4
	mp.DriftGain = 2
	mp.Labels = map[string]choreo.SceneStates{
		OpenPalm:   choreo.Scattered,
		ClosedFist: choreo.Formed,
	}
}

// Apply writes one reading to the stage, returning true if it changed
// the scene state. Sub-threshold confidence and unrecognized labels
// leave the state untouched; the drift scalar is always updated.
func (mp *Mapper) Apply(rd Reading, st *choreo.Stage) bool {
	if !rd.HandPresent {
		st.SetDrift(0)
	} else {
		st.SetDrift((rd.LandmarkX - 0.5) * mp.DriftGain)
	}
	if rd.Confidence <= mp.Threshold {
		return false
	}
	state, ok := mp.Labels[rd.Label]
	if !ok {
		return false
	}
	if st.State() == state {
		return false
	}
	st.SetState(state)
	return true
}
