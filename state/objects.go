// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/glitz/driver"
)

// ErrStaleHandle is returned when a handle names an object that has been
// deleted.
var ErrStaleHandle = errors.New("state: stale object handle")

// Handle is a connection-scoped reference to a tracked driver object. The
// zero Handle names no object.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h names no object.
func (h Handle) IsZero() bool { return h.gen == 0 }

// String returns a diagnostic representation.
func (h Handle) String() string {
	return fmt.Sprintf("handle(%d@%d)", h.index, h.gen)
}

type objectEntry struct {
	kind    driver.ObjectKind
	id      uint64
	gen     uint32
	pending bool
}

// objectTable is an arena of tracked objects. Slots are recycled after
// deletion with a bumped generation, so stale handles never alias a new
// object.
type objectTable struct {
	mu      sync.Mutex
	entries []objectEntry
	free    []uint32
	drops   []Handle
}

// Track registers a driver object with the connection and returns its
// handle.
func (c *Connection) Track(kind driver.ObjectKind, id uint64) Handle {
	t := &c.objects
	t.mu.Lock()
	defer t.mu.Unlock()

	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.entries))
		t.entries = append(t.entries, objectEntry{})
	}
	e := &t.entries[idx]
	e.gen++
	if e.gen == 0 {
		e.gen = 1
	}
	e.kind = kind
	e.id = id
	e.pending = false
	return Handle{index: idx, gen: e.gen}
}

// Lookup returns the kind and driver id of a tracked object. Objects
// queued for release are still returned until the drop queue is drained.
func (c *Connection) Lookup(h Handle) (driver.ObjectKind, uint64, error) {
	t := &c.objects
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entry(h)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	return e.kind, e.id, nil
}

func (t *objectTable) entry(h Handle) (*objectEntry, bool) {
	if h.IsZero() || int(h.index) >= len(t.entries) {
		return nil, false
	}
	e := &t.entries[h.index]
	if e.gen != h.gen || e.kind == 0 {
		return nil, false
	}
	return e, true
}

// Release queues the object for deletion. It is safe to call from any
// goroutine and releasing a handle twice is a no-op.
func (c *Connection) Release(h Handle) {
	t := &c.objects
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entry(h)
	if !ok || e.pending {
		return
	}
	e.pending = true
	t.drops = append(t.drops, h)
}

// PendingDrops returns the number of objects queued for deletion.
func (c *Connection) PendingDrops() int {
	c.objects.mu.Lock()
	defer c.objects.mu.Unlock()
	return len(c.objects.drops)
}

// DrainDropQueue deletes every queued object and returns how many were
// deleted.
func (c *Connection) DrainDropQueue() int {
	t := &c.objects
	t.mu.Lock()
	drops := t.drops
	t.drops = nil
	type victim struct {
		kind driver.ObjectKind
		id   uint64
	}
	victims := make([]victim, 0, len(drops))
	for _, h := range drops {
		e, ok := t.entry(h)
		if !ok {
			continue
		}
		victims = append(victims, victim{e.kind, e.id})
		e.kind = 0
		e.id = 0
		e.pending = false
		t.free = append(t.free, h.index)
	}
	t.mu.Unlock()

	for _, v := range victims {
		c.DeleteObject(v.kind, v.id)
	}
	if len(victims) > 0 {
		slogger().Debug("state: drop queue drained", "context", c.id, "deleted", len(victims))
	}
	return len(victims)
}

// DeleteObject deletes a driver object immediately and forgets any cached
// binding of it.
func (c *Connection) DeleteObject(kind driver.ObjectKind, id uint64) {
	if id == driver.InvalidID {
		return
	}
	c.dyn.forget(kind, id)
	c.device.Delete(kind, id)
}
