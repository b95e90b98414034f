// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choreo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage(t *testing.T) {
	st := &Stage{}
	assert.Equal(t, Scattered, st.State())
	assert.Equal(t, float32(0), st.Drift())

	assert.Equal(t, Formed, st.Toggle())
	assert.Equal(t, Formed, st.State())
	assert.Equal(t, Scattered, st.Toggle())

	st.SetDrift(-0.35)
	assert.Equal(t, float32(-0.35), st.Drift())
}

func TestStageConcurrentReads(t *testing.T) {
	st := &Stage{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			st.SetState(SceneStates(i % 2))
			st.SetDrift(float32(i))
		}
	}()
	for i := 0; i < 1000; i++ {
		s := st.State()
		assert.True(t, s == Scattered || s == Formed)
		_ = st.Drift()
	}
	wg.Wait()
}

func TestSceneStatesString(t *testing.T) {
	assert.Equal(t, "Scattered", Scattered.String())
	assert.Equal(t, "Formed", Formed.String())
	var s SceneStates
	assert.NoError(t, s.SetString("Formed"))
	assert.Equal(t, Formed, s)
	assert.Error(t, s.SetString("Exploded"))
}

func TestSceneReadsStateOncePerTick(t *testing.T) {
	sc := &Scene{}
	var seen []SceneStates
	sc.Add(tickFunc(func(elapsed, dt float32, state SceneStates) {
		seen = append(seen, state)
		// a mid-frame write lands only on the next frame for later tickers
		sc.Stage.SetState(Formed)
	}))
	sc.Add(tickFunc(func(elapsed, dt float32, state SceneStates) {
		seen = append(seen, state)
	}))
	sc.Tick(0.016, 0.016)
	assert.Equal(t, []SceneStates{Scattered, Scattered}, seen)
	sc.Tick(0.032, 0.016)
	assert.Equal(t, []SceneStates{Scattered, Scattered, Formed, Formed}, seen)
}

type tickFunc func(elapsed, dt float32, state SceneStates)

func (f tickFunc) Tick(elapsed, dt float32, state SceneStates) {
	f(elapsed, dt, state)
}
