// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"cogentcore.org/choreo"
	"cogentcore.org/core/base/logx"
)

// Source produces readings at its own cadence. Start acquires the
// underlying resources (camera stream, inference session, socket) and
// returns the reading channel, which closes when the source stops.
// Close releases everything; the in-flight read loop observes the
// context rather than being force-killed.
type Source interface {
	Start(ctx context.Context) (<-chan Reading, error)
	Close() error
}

// Stats counts pipeline activity. All counters are written atomically
// by the pipeline goroutine and safe to read at any time.
type Stats struct {

	// Seen is the total number of readings consumed.
	Seen uint64

	// Applied is the number of readings that changed the scene state.
	Applied uint64

	// Ignored is the number of readings that left the state unchanged
	// (sub-threshold confidence, unrecognized label, or no-op).
	Ignored uint64
}

// Pipeline connects a [Source] to a [choreo.Stage] through a [Mapper].
// It is the single writer of the stage: each reading overwrites the
// previous one, and the engine picks up whatever is current at its next
// frame. Start/Stop form a scoped acquisition pair: Stop cancels the
// loop, closes the source, and waits for the loop to drain.
type Pipeline struct {

	// Mapper maps readings to stage writes.
	Mapper Mapper

	source Source
	stage  *choreo.Stage

	seen    atomic.Uint64
	applied atomic.Uint64
	ignored atomic.Uint64

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPipeline returns a pipeline feeding the given stage from the given
// source, with the default two-label mapping.
func NewPipeline(src Source, st *choreo.Stage) *Pipeline {
	pl := &Pipeline{source: src, stage: st}
	pl.Mapper.Defaults()
	return pl
}

// Start acquires the source and launches the read loop. The loop exits
// when ctx is canceled, Stop is called, or the source channel closes.
func (pl *Pipeline) Start(ctx context.Context) error {
	if pl.cancel != nil {
		return fmt.Errorf("gesture.Pipeline: already started")
	}
	ctx, cancel := context.WithCancel(ctx)
	readings, err := pl.source.Start(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("gesture.Pipeline: source start: %w", err)
	}
	pl.cancel = cancel
	pl.wg.Add(1)
	go func() {
		defer pl.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case rd, ok := <-readings:
				if !ok {
					return
				}
				pl.seen.Add(1)
				if pl.Mapper.Apply(rd, pl.stage) {
					pl.applied.Add(1)
					logx.PrintlnDebug("gesture: state ->", pl.stage.State())
				} else {
					pl.ignored.Add(1)
				}
			}
		}
	}()
	return nil
}

// Stop tears the pipeline down: cancels the loop, closes the source,
// and waits for the loop to exit. Safe to call once after Start.
func (pl *Pipeline) Stop() error {
	if pl.cancel == nil {
		return nil
	}
	pl.cancel()
	err := pl.source.Close()
	pl.wg.Wait()
	pl.cancel = nil
	return err
}

// Stats returns a snapshot of the pipeline counters.
func (pl *Pipeline) Stats() Stats {
	return Stats{
		Seen:    pl.seen.Load(),
		Applied: pl.applied.Load(),
		Ignored: pl.ignored.Load(),
	}
}
