// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui is a terminal render sink for the choreography engine,
// built on bubbletea. The tea tick loop provides the frame clock
// (elapsed and delta seconds); each frame the model ticks the scene
// once, then projects every element into a character grid. Elements
// whose payloads have not resolved yet are skipped at draw time but
// keep ticking, so they appear in place when the payload arrives.
package tui

import (
	"fmt"
	"strings"
	"time"

	"cogentcore.org/choreo"
	"cogentcore.org/choreo/media"
	"cogentcore.org/core/math32"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameMsg is the per-frame clock message.
type FrameMsg time.Time

var (
	foliageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	ornamentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	lightStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	orbitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	burstStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// burstRunes index by fade level, brightest first.
var burstRunes = []rune{'●', '•', '∙', '·'}

// Model is the bubbletea model driving and drawing one scene.
type Model struct {

	// Scene is the engine; the model ticks it once per frame.
	Scene *choreo.Scene

	// Foliage, Ornaments, and Lights are the interpolating populations.
	Foliage   *choreo.Population
	Ornaments *choreo.Population
	Lights    *choreo.Population

	// Orbit is the always-active orbiting population.
	Orbit *choreo.Orbit

	// Burst is the trigger-activated celebration burst.
	Burst *choreo.Burst

	// Resolver resolves ornament payloads; may be nil.
	Resolver media.Resolver

	// FPS is the target frame rate.
	FPS int `default:"30"`

	// AutoRotate is the settled-state camera rotation speed
	// (radians per second), added to the gesture drift.
	AutoRotate float32 `default:"0.2"`

	width  int
	height int
	start  time.Time
	last   time.Time
	yaw    float32
	frames int
	fired  bool
}

// NewModel returns a model for the given scene and populations.
func NewModel(sc *choreo.Scene, foliage, ornaments, lights *choreo.Population, orbit *choreo.Orbit, burst *choreo.Burst, rs media.Resolver) *Model {
	return &Model{
		Scene:      sc,
		Foliage:    foliage,
		Ornaments:  ornaments,
		Lights:     lights,
		Orbit:      orbit,
		Burst:      burst,
		Resolver:   rs,
		FPS:        30,
		AutoRotate: 0.2,
	}
}

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd {
	m.start = time.Now()
	m.last = m.start
	return m.frame()
}

func (m *Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.FPS), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update handles the frame clock, the manual scene toggle, and the
// burst trigger.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			// manual override writes the stage through the same path
			// as the gesture pipeline
			m.Scene.Stage.Toggle()
		case "b":
			if m.Burst != nil {
				m.Burst.SetTrigger(true)
				m.fired = true
			}
		}
		return m, nil
	case FrameMsg:
		m.Step(time.Time(msg))
		return m, m.frame()
	}
	return m, nil
}

// Step advances the scene by one frame at the given wall-clock time:
// computes elapsed/delta, resolves pending payloads, applies camera
// drift, and ticks every population.
func (m *Model) Step(now time.Time) {
	elapsed := float32(now.Sub(m.start).Seconds())
	dt := choreo.ClampDelta(float32(now.Sub(m.last).Seconds()))
	m.last = now
	m.frames++

	m.resolvePayloads()

	// camera: gesture drift always applies; gentle auto-rotation only
	// once the formed shape has settled
	rot := m.Scene.Stage.Drift()
	if m.Scene.Stage.State() == choreo.Formed && m.Foliage != nil &&
		m.Foliage.Settled(choreo.Formed, 0.1) {
		rot += m.AutoRotate
	}
	m.yaw += rot * dt

	m.Scene.Tick(elapsed, dt)

	// complete the trigger pulse so the next press is a fresh rising edge
	if m.fired {
		m.Burst.SetTrigger(false)
		m.fired = false
	}
}

// resolvePayloads assigns newly resolved payloads to ornament elements.
// Unresolved elements keep ticking and stay undrawn.
func (m *Model) resolvePayloads() {
	if m.Resolver == nil || m.Ornaments == nil {
		return
	}
	for i := range m.Ornaments.Elements {
		el := &m.Ornaments.Elements[i]
		if el.Payload != nil {
			continue
		}
		if pl, ok := m.Resolver.Resolve(i); ok {
			el.Payload = pl
		}
	}
}

// Project maps a world position through the yaw camera onto cell
// coordinates. ok is false when the point is behind the camera or off
// screen.
func (m *Model) Project(p math32.Vector3, w, h int) (x, y int, depth float32, ok bool) {
	const camDist = 22
	const camHeight = 3.5
	cy := math32.Cos(m.yaw)
	sy := math32.Sin(m.yaw)
	rx := p.X*cy - p.Z*sy
	rz := p.X*sy + p.Z*cy + camDist
	if rz <= 1 {
		return 0, 0, 0, false
	}
	scale := float32(h) * 1.4
	sx := rx/rz*scale*2 + float32(w)/2 // *2: cells are taller than wide
	sv := float32(h)/2 - (p.Y-camHeight)/rz*scale
	x, y = int(sx), int(sv)
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, 0, false
	}
	return x, y, rz, true
}

// cell is one drawn character with its depth for nearest-wins placement.
type cell struct {
	r     rune
	style lipgloss.Style
	depth float32
}

// View projects all populations into the grid, nearest element per
// cell, and appends the status line.
func (m *Model) View() string {
	w, h := m.width, m.height-1
	if w <= 0 || h <= 0 {
		return ""
	}
	grid := make([]cell, w*h)

	put := func(p math32.Vector3, r rune, st lipgloss.Style) {
		x, y, depth, ok := m.Project(p, w, h)
		if !ok {
			return
		}
		c := &grid[y*w+x]
		if c.r != 0 && c.depth <= depth {
			return
		}
		*c = cell{r: r, style: st, depth: depth}
	}

	if m.Foliage != nil {
		for i := range m.Foliage.Elements {
			put(m.Foliage.Elements[i].Pos, '·', foliageStyle)
		}
	}
	if m.Lights != nil {
		for i := range m.Lights.Elements {
			put(m.Lights.Elements[i].Pos, '✦', lightStyle)
		}
	}
	if m.Ornaments != nil {
		for i := range m.Ornaments.Elements {
			el := &m.Ornaments.Elements[i]
			if el.Payload == nil {
				continue // not resolved yet: tick, don't draw
			}
			r := '◉'
			if pl, ok := el.Payload.(*media.Payload); ok && pl.Kind == media.Video {
				r = '▣'
			}
			put(el.Pos, r, ornamentStyle)
		}
	}
	if m.Orbit != nil {
		for i := range m.Orbit.Elements {
			put(m.Orbit.Elements[i].Pos, '*', orbitStyle)
		}
	}
	if m.Burst != nil && m.Burst.Active() {
		for i := range m.Burst.Particles {
			p := &m.Burst.Particles[i]
			if p.Alpha <= 0 {
				continue
			}
			lvl := int((1 - p.Alpha) * float32(len(burstRunes)))
			if lvl >= len(burstRunes) {
				lvl = len(burstRunes) - 1
			}
			put(p.Pos, burstRunes[lvl], burstStyle)
		}
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid[y*w+x]
			if c.r == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteString(c.style.Render(string(c.r)))
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(m.status()))
	return b.String()
}

func (m *Model) status() string {
	resolved := 0
	if m.Ornaments != nil {
		for i := range m.Ornaments.Elements {
			if m.Ornaments.Elements[i].Payload != nil {
				resolved++
			}
		}
	}
	return fmt.Sprintf(" %s | drift %+.2f | media %d | space: toggle  b: burst  q: quit",
		m.Scene.Stage.State(), m.Scene.Stage.Drift(), resolved)
}
