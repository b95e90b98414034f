// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package choreo implements a dual-state particle choreography engine:
// populations of independently parameterized elements that interpolate
// between a scattered arrangement and a formed target arrangement,
// selected by a shared binary [SceneStates] value on a [Stage].
//
// Each [Element] carries two immutable endpoint positions and a mutable
// current position advanced once per frame by [Population.Tick], using
// frame-rate-independent exponential-decay easing with per-element rates,
// so the population converges in a staggered, organic way and redirects
// continuously whenever the scene state flips mid-flight.
//
// Orbit and Burst populations share the same per-frame Tick contract but
// compute positions directly (closed-form orbits, ballistic bursts)
// rather than interpolating between endpoints.
package choreo
