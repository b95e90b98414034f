// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import (
	"math"

	"cogentcore.org/core/math32"
)

// Element is one managed visual entity in a population: a foliage point,
// a photo ornament, a decoration, a light. Only Pos and Quat mutate after
// creation; both endpoints and all motion parameters are fixed for the
// life of the element, which is never destroyed or recreated.
type Element struct {

	// Scattered is the dispersed-arrangement endpoint, assigned once
	// at creation.
	Scattered math32.Vector3

	// Formed is the target-silhouette endpoint, assigned once at creation.
	Formed math32.Vector3

	// Pos is the current position, advanced every frame. It always lies
	// within the convex combination of the two endpoints (plus the small
	// bounded formed-shape noise when enabled).
	Pos math32.Vector3

	// Quat is the current orientation, advanced every frame: continuous
	// tumbling while scattered, gentle bounded wobble while formed.
	Quat math32.Quat

	// Ease is the fraction-per-second convergence rate toward the active
	// target. Randomized per element so the population converges in a
	// staggered way instead of moving as a rigid block.
	Ease float32

	// Spin is the angular velocity (radians per second) applied while
	// scattered.
	Spin math32.Vector3

	// WobbleSpeed is the oscillation frequency of the settled wobble.
	WobbleSpeed float32

	// WobbleOff is the per-element phase offset of the settled wobble.
	WobbleOff float32

	// Payload is the opaque visual payload reference owned by the render
	// sink (texture handle, color, geometry). nil means not yet resolved:
	// the element is skipped at render time but still ticks, so it appears
	// in place the moment the payload resolves.
	Payload any
}

// Target returns the endpoint selected by the given scene state.
func (el *Element) Target(state SceneStates) math32.Vector3 {
	if state == Formed {
		return el.Formed
	}
	return el.Scattered
}

// Progress returns the normalized convergence fraction: 0 at the
// scattered endpoint, 1 at the formed endpoint, clamped to [0..1].
func (el *Element) Progress() float32 {
	span := el.Scattered.DistanceTo(el.Formed)
	if span == 0 {
		return 1
	}
	return math32.Clamp(1-el.Pos.DistanceTo(el.Formed)/span, 0, 1)
}

// EaseStep advances pos toward target by the frame-rate-independent
// exponential-decay step for the given per-second rate and clamped frame
// delta: the same convergence fraction results from n small steps as
// from one step n times as long. The result never overshoots: it stays
// on the segment between pos and target, approaching but never exactly
// reaching the target in finite time.
func EaseStep(pos, target math32.Vector3, rate, dt float32) math32.Vector3 {
	alpha := 1 - math32.Exp(-rate*dt)
	return pos.Lerp(target, alpha)
}

// AngMotionMax is the maximum angular motion per step while tumbling.
const AngMotionMax = math.Pi / 4

// stepSpin accumulates the scattered tumbling rotation from the
// element's angular velocity, limiting per-step motion to AngMotionMax.
func (el *Element) stepSpin(dt float32) {
	ang := el.Spin.Length()
	if ang == 0 {
		return
	}
	if ang*dt > AngMotionMax {
		ang = AngMotionMax / dt
	}
	axis := el.Spin.Normal()
	var dq math32.Quat
	dq.SetFromAxisAngle(axis, ang*dt)
	el.Quat = dq.Mul(el.Quat)
	el.Quat.Normalize()
}

// stepWobble sets the settled orientation: a small bounded oscillation
// around the element's facing, recomputed each frame. When face is true
// the element also yaws to face outward from the central axis at its
// current position, which moves every frame and thus must be recomputed.
func (el *Element) stepWobble(elapsed, amp float32, face bool) {
	ph := elapsed*el.WobbleSpeed + el.WobbleOff
	rx := amp * math32.Sin(ph)
	rz := amp * math32.Cos(ph*0.83)
	yaw := float32(0)
	if face {
		// outward direction from the vertical axis through the tree center
		yaw = math32.Atan2(el.Pos.X, el.Pos.Z)
	}
	el.Quat.SetFromEuler(math32.Vec3(rx, yaw, rz))
}
