// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal valid file headers for kind sniffing
var (
	pngHead = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	mp4Head = []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'm', 'p', '4', '2'}
)

func writeAsset(t *testing.T, dir, name string, head []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), head, 0666))
}

func TestDirProbe(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "media-0.png", pngHead)
	writeAsset(t, dir, "media-1.mp4", mp4Head)
	writeAsset(t, dir, "media-3.png", pngHead) // gap at 2

	dr, err := NewDir(dir, "media-")
	require.NoError(t, err)

	pl, ok := dr.Resolve(0)
	require.True(t, ok)
	assert.Equal(t, Image, pl.Kind)

	pl, ok = dr.Resolve(1)
	require.True(t, ok)
	assert.Equal(t, Video, pl.Kind)

	// a gap smaller than MaxMisses does not stop the probe
	_, ok = dr.Resolve(2)
	assert.False(t, ok)
	_, ok = dr.Resolve(3)
	assert.True(t, ok)

	assert.Equal(t, 3, dr.Len())
}

func TestDirProbeEarlyStop(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "media-0.png", pngHead)
	// beyond MaxMisses consecutive misses: never reached
	writeAsset(t, dir, "media-9.png", pngHead)

	dr, err := NewDir(dir, "media-")
	require.NoError(t, err)
	assert.Equal(t, 1, dr.Len())
	_, ok := dr.Resolve(9)
	assert.False(t, ok)
}

func TestDirWatch(t *testing.T) {
	dir := t.TempDir()
	dr, err := NewDir(dir, "media-")
	require.NoError(t, err)
	assert.Equal(t, 0, dr.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, dr.Watch(ctx))
	defer dr.Close()

	writeAsset(t, dir, "media-0.png", pngHead)
	assert.Eventually(t, func() bool {
		_, ok := dr.Resolve(0)
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	// non-matching names are ignored
	writeAsset(t, dir, "notes.txt", []byte("hi"))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, dr.Len())
}

func TestDirMissing(t *testing.T) {
	_, err := NewDir(filepath.Join(t.TempDir(), "nope"), "media-")
	assert.Error(t, err)
}

func TestClassifyUnknown(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "junk.bin", []byte("not media at all"))
	_, err := Classify(filepath.Join(dir, "junk.bin"))
	assert.Error(t, err)
}

func TestStatic(t *testing.T) {
	st := NewStatic([]*Payload{
		{Kind: Image, Path: "a.png"},
		nil,
		{Kind: Video, Path: "b.mp4"},
	})
	pl, ok := st.Resolve(0)
	require.True(t, ok)
	assert.Equal(t, "a.png", pl.Path)

	_, ok = st.Resolve(1)
	assert.False(t, ok)
	_, ok = st.Resolve(-1)
	assert.False(t, ok)
	_, ok = st.Resolve(3)
	assert.False(t, ok)

	pl, ok = st.Resolve(2)
	require.True(t, ok)
	assert.Equal(t, Video, pl.Kind)
}
