// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/h2non/filetype"
)

// Exts are the file extensions probed for each index, in order.
var Exts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".mp4", ".webm", ".mov"}

// Dir resolves numbered assets from a directory: index i maps to
// Prefix + i + one of [Exts]. Probing is sequential from 0 and stops
// after MaxMisses consecutive missing indexes, so sparse numbering is
// tolerated up to that gap size. A filesystem watcher admits assets
// that arrive after probing, with no re-probe needed.
type Dir struct {

	// Path is the asset directory.
	Path string

	// Prefix is the base-name prefix before the index number.
	Prefix string `default:"media-"`

	// MaxMisses is the number of consecutive missing indexes after
	// which sequential probing stops.
	MaxMisses int `default:"5"`

	mu       sync.RWMutex
	payloads map[int]*Payload
	watcher  *fsnotify.Watcher
}

// NewDir returns a directory resolver and runs the initial probe.
func NewDir(path, prefix string) (*Dir, error) {
	dr := &Dir{Path: path, Prefix: prefix, MaxMisses: 5, payloads: map[int]*Payload{}}
	if err := dr.Probe(); err != nil {
		return nil, err
	}
	return dr, nil
}

// Probe performs the sequential existence scan. Already resolved
// indexes are kept.
func (dr *Dir) Probe() error {
	if _, err := os.Stat(dr.Path); err != nil {
		return fmt.Errorf("media.Dir: %w", err)
	}
	misses := 0
	for i := 0; misses < dr.MaxMisses; i++ {
		if pl := dr.probeIndex(i); pl != nil {
			dr.mu.Lock()
			dr.payloads[i] = pl
			dr.mu.Unlock()
			misses = 0
		} else {
			misses++
		}
	}
	return nil
}

// probeIndex checks every candidate extension for one index.
func (dr *Dir) probeIndex(i int) *Payload {
	for _, ext := range Exts {
		path := filepath.Join(dr.Path, fmt.Sprintf("%s%d%s", dr.Prefix, i, ext))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		kind, err := Classify(path)
		if err != nil {
			logx.PrintfDebug("media: %s: %v", path, err)
			continue
		}
		return &Payload{Kind: kind, Path: path}
	}
	return nil
}

// Classify sniffs the media kind from the file header.
func Classify(path string) (Kinds, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image, err
	}
	defer f.Close()
	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return Image, err
	}
	head = head[:n]
	switch {
	case filetype.IsImage(head):
		return Image, nil
	case filetype.IsVideo(head):
		return Video, nil
	}
	return Image, fmt.Errorf("media.Classify: %s: not an image or video", path)
}

// Resolve returns the payload for index, or false while unresolved.
func (dr *Dir) Resolve(index int) (*Payload, bool) {
	dr.mu.RLock()
	defer dr.mu.RUnlock()
	pl, ok := dr.payloads[index]
	return pl, ok
}

// Len returns the number of resolved payloads.
func (dr *Dir) Len() int {
	dr.mu.RLock()
	defer dr.mu.RUnlock()
	return len(dr.payloads)
}

// Watch starts a filesystem watcher that admits assets created after
// the initial probe. It returns once watching is established; the
// event loop runs until ctx is canceled or Close is called.
func (dr *Dir) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("media.Dir: watcher: %w", err)
	}
	if err := w.Add(dr.Path); err != nil {
		w.Close()
		return fmt.Errorf("media.Dir: watch %s: %w", dr.Path, err)
	}
	dr.watcher = w
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.Close()
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) {
					dr.admit(ev.Name)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logx.PrintlnDebug("media: watch error:", err)
			}
		}
	}()
	return nil
}

// admit resolves one newly arrived file if its name matches the
// numbering scheme and it was not already resolved.
func (dr *Dir) admit(path string) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if !strings.HasPrefix(name, dr.Prefix) {
		return
	}
	var idx int
	if _, err := fmt.Sscanf(strings.TrimPrefix(name, dr.Prefix), "%d", &idx); err != nil {
		return
	}
	dr.mu.RLock()
	_, have := dr.payloads[idx]
	dr.mu.RUnlock()
	if have {
		return
	}
	kind, err := Classify(path)
	if err != nil {
		return
	}
	dr.mu.Lock()
	dr.payloads[idx] = &Payload{Kind: kind, Path: path}
	dr.mu.Unlock()
	logx.PrintfDebug("media: resolved %d: %s", idx, path)
}

// Close stops the watcher if one is running.
func (dr *Dir) Close() error {
	if dr.watcher != nil {
		return dr.watcher.Close()
	}
	return nil
}
