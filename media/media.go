// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package media resolves logical element indexes to visual payloads
// (photos, looping videos) for ornament populations. Resolution is
// best-effort and never an error from the engine's point of view: an
// element whose payload has not resolved yet simply renders nothing
// while continuing to tick, so it appears in place, with no position
// pop, the moment its asset arrives.
package media

//go:generate core generate -add-types

import "sync"

// Kinds is the payload media kind.
type Kinds int32 //enums:enum

const (
	// Image is a still photo payload.
	Image Kinds = iota

	// Video is a looping muted video payload.
	Video
)

// Payload is one resolved visual payload. The choreography engine
// treats it as opaque; only the render sink interprets it.
type Payload struct {

	// Kind is the media kind.
	Kind Kinds

	// Path is the asset location.
	Path string
}

// Resolver resolves a logical element index to a payload. The second
// result reports whether the asset has resolved yet; false is not an
// error condition.
type Resolver interface {
	Resolve(index int) (*Payload, bool)
}

// Static is a fully resolved payload list, for callers that enumerate
// assets up front.
type Static struct {
	mu       sync.RWMutex
	payloads []*Payload
}

// NewStatic returns a resolver over the given payload list.
func NewStatic(payloads []*Payload) *Static {
	return &Static{payloads: payloads}
}

// Resolve returns the payload at index, or false if out of range or nil.
func (st *Static) Resolve(index int) (*Payload, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if index < 0 || index >= len(st.payloads) || st.payloads[index] == nil {
		return nil, false
	}
	return st.payloads[index], true
}
