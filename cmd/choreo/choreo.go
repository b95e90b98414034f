// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command choreo runs the particle choreography scene in the terminal:
// a tree of foliage, photo ornaments, and lights that assembles and
// disperses, driven by the spacebar or by a websocket gesture source.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cogentcore.org/choreo"
	"cogentcore.org/choreo/gesture"
	"cogentcore.org/choreo/media"
	"cogentcore.org/choreo/tui"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate core generate -add-types -add-funcs

// Config is the command configuration.
type Config struct {

	// Foliage is the number of foliage points.
	Foliage int `default:"900"`

	// Ornaments is the number of photo/video ornaments.
	Ornaments int `default:"24"`

	// Lights is the number of tree lights.
	Lights int `default:"60"`

	// Orbiters is the number of orbiting elements.
	Orbiters int `default:"8"`

	// BurstParticles is the number of particles per celebration burst.
	BurstParticles int `default:"120"`

	// Height is the tree cone height.
	Height float32 `default:"7"`

	// Radius is the tree cone base radius.
	Radius float32 `default:"3"`

	// Scatter is the dispersed-cloud radius.
	Scatter float32 `default:"12"`

	// FPS is the target frame rate.
	FPS int `default:"30"`

	// Workers shards population updates across goroutines; 0 is serial.
	Workers int

	// Seed seeds the endpoint and motion randomization; 0 uses the clock.
	Seed int64

	// Media is a directory of numbered photo/video assets for the
	// ornaments; empty runs without payloads.
	Media string

	// Prefix is the asset base-name prefix before the index number.
	Prefix string `default:"media-"`

	// Gesture is a websocket URL of a hand-gesture classifier feed;
	// empty runs with keyboard control only.
	Gesture string
}

func main() { //types:skip
	opts := cli.DefaultOptions("choreo", "Interactive dual-state particle choreography scene in the terminal.")
	cli.Run(opts, &Config{}, Run)
}

// Run assembles the scene and runs the terminal UI until quit.
func Run(c *Config) error { //cli:cmd -root
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var pr choreo.Params
	pr.Defaults()
	pr.Height = c.Height
	pr.Radius = c.Radius
	pr.ScatterRadius = c.Scatter
	pr.Workers = c.Workers

	foliage := pr
	foliage.Noise.Amp = 0.08
	orn := pr
	orn.Shell = true
	orn.Face = true
	lights := pr
	lights.Radius = c.Radius * 1.05 // just outside the foliage

	fol := choreo.NewPopulation(c.Foliage, rng, foliage)
	orns := choreo.NewPopulation(c.Ornaments, rng, orn)
	lts := choreo.NewPopulation(c.Lights, rng, lights)

	var op choreo.OrbitParams
	op.Defaults()
	orbit := choreo.NewOrbit(c.Orbiters, rng, op)

	var bp choreo.BurstParams
	bp.Defaults()
	bp.Origin.Y = c.Height
	burst := choreo.NewBurst(c.BurstParticles, rng, bp)

	sc := &choreo.Scene{}
	sc.Add(fol, orns, lts, orbit, burst)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rs media.Resolver
	if c.Media != "" {
		dr, err := media.NewDir(c.Media, c.Prefix)
		if err != nil {
			return err
		}
		if err := dr.Watch(ctx); err != nil {
			return err
		}
		defer func() { errors.Log(dr.Close()) }()
		logx.PrintfInfo("media: %d assets resolved from %s", dr.Len(), c.Media)
		rs = dr
	}

	if c.Gesture != "" {
		pl := gesture.NewPipeline(gesture.NewSocketSource(c.Gesture), &sc.Stage)
		if err := pl.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := pl.Stop(); err != nil {
				logx.PrintlnWarn("gesture: stop:", err)
			}
			st := pl.Stats()
			logx.PrintfDebug("gesture: %d readings, %d applied", st.Seen, st.Applied)
		}()
	}

	m := tui.NewModel(sc, fol, orns, lts, orbit, burst, rs)
	m.FPS = c.FPS
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("choreo: %w", err)
	}
	return nil
}
