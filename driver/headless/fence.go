// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import "github.com/gogpu/glitz/driver"

// FenceSync inserts a fence at the current clock tick.
func (d *Device) FenceSync() (driver.FenceID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fn := d.opts.fenceSync; fn != nil {
		if err := fn(); err != nil {
			return driver.FenceID(driver.InvalidID), err
		}
	}
	id := driver.FenceID(d.newID())
	d.fences[id] = d.clock
	d.record("FenceSync", id)
	return id, nil
}

// IsSignaled reports whether a fence has signaled. Unknown fences report
// true.
func (d *Device) IsSignaled(f driver.FenceID) bool {
	d.mu.Lock()
	inserted, ok := d.fences[f]
	status := d.opts.fenceStatus
	clock := d.clock
	d.record("IsSignaled", f)
	d.mu.Unlock()

	if !ok {
		return true
	}
	if status != nil {
		return status(f)
	}
	return clock-inserted >= d.opts.fenceLatency
}

// DeleteSync deletes a fence.
func (d *Device) DeleteSync(f driver.FenceID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DeleteSync", f)
	delete(d.fences, f)
}

// Advance moves the fence clock forward by n ticks.
func (d *Device) Advance(n uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clock += n
	slogger().Debug("headless: clock advanced", "clock", d.clock)
}

// PendingFences returns the number of fences not yet deleted.
func (d *Device) PendingFences() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.fences)
}
