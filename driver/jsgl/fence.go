// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package jsgl

import (
	"github.com/gogpu/glitz"
	"github.com/gogpu/glitz/driver"
)

// FenceSync inserts a fence after the commands issued so far.
func (d *Device) FenceSync() (driver.FenceID, error) {
	s := d.gl.Call("fenceSync", glSyncGPUCommandsComplete, 0)
	if s.IsNull() {
		if d.lost() {
			return 0, driver.ErrContextLost
		}
		return 0, errFenceFailed
	}
	d.next++
	id := driver.FenceID(d.next)
	d.fences[id] = s
	// Fences are only signaled once the queued commands are submitted.
	d.gl.Call("flush")
	return id, nil
}

// IsSignaled reports whether the fence has signaled. Unknown fences and a
// lost context report true so that waiting tasks are released.
func (d *Device) IsSignaled(f driver.FenceID) bool {
	s, ok := d.fences[f]
	if !ok || d.lost() {
		return true
	}
	return d.gl.Call("getSyncParameter", s, glSyncStatus).Int() == glSignaled
}

// DeleteSync deletes a fence.
func (d *Device) DeleteSync(f driver.FenceID) {
	s, ok := d.fences[f]
	if !ok {
		return
	}
	delete(d.fences, f)
	d.gl.Call("deleteSync", s)
	glitz.Logger().Debug("jsgl: fence deleted", "fence", f)
}
