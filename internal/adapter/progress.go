// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"io"
	"sync"
)

// progressTracker turns byte counts into a de-duplicated, non-decreasing
// percentage stream. It is safe for concurrent use since the HTTP transport
// reads the body on its own goroutine.
type progressTracker struct {
	mu      sync.Mutex
	total   int64
	read    int64
	last    int
	stopped bool
	emit    ProgressFunc
}

func newProgressTracker(total int64, emit ProgressFunc) *progressTracker {
	return &progressTracker{total: total, last: -1, emit: emit}
}

// report emits p if it is larger than the last emitted value.
func (t *progressTracker) report(p int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.emit == nil || t.stopped || p <= t.last {
		return
	}
	t.last = p
	t.emit(p)
}

func (t *progressTracker) add(n int) {
	if n <= 0 || t.total <= 0 {
		return
	}

	t.mu.Lock()
	t.read += int64(n)
	p := int(t.read * 100 / t.total)
	t.mu.Unlock()

	// 100 is reserved for a confirmed upload.
	t.report(min(p, 99))
}

// complete emits 100 and stops the stream.
func (t *progressTracker) complete() {
	t.report(100)
	t.stop()
}

// stop suppresses every later emission.
func (t *progressTracker) stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

// countingReader reports consumed bytes to a progressTracker.
type countingReader struct {
	r       io.Reader
	tracker *progressTracker
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.tracker.add(n)
	return n, err
}
