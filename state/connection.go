// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"sync/atomic"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/internal/lru"
)

// lastContextID is the process-wide context id counter. Ids start at 1;
// zero is reserved for tasks that may run on any context.
var lastContextID atomic.Uint64

// NextContextID returns a fresh, process-unique context id.
func NextContextID() uint64 {
	return lastContextID.Add(1)
}

// Connection is a device plus the cached state of that device.
type Connection struct {
	device driver.Device
	id     uint64
	limits driver.Limits

	dyn     dynamicState
	objects objectTable

	textureUnits    *lru.Index
	uniformBindings *lru.Index
}

// NewConnection wraps device in a connection with a fresh context id. The
// device is assumed to be in its initial state.
func NewConnection(device driver.Device) *Connection {
	limits := device.Limits()
	c := &Connection{
		device:          device,
		id:              NextContextID(),
		limits:          limits,
		dyn:             newDynamicState(limits),
		textureUnits:    lru.NewIndex(max(limits.MaxCombinedTextureUnits, 1)),
		uniformBindings: lru.NewIndex(max(limits.MaxUniformBufferBindings, 1)),
	}
	slogger().Debug("state: connection created",
		"context", c.id,
		"textureUnits", limits.MaxCombinedTextureUnits,
		"uniformBindings", limits.MaxUniformBufferBindings,
		"vertexAttribs", limits.MaxVertexAttribs)
	return c
}

// ID returns the connection's context id.
func (c *Connection) ID() uint64 { return c.id }

// Device returns the underlying device. Calls made directly on the device
// bypass the state cache; callers must not change state the cache tracks.
func (c *Connection) Device() driver.Device { return c.device }

// Limits returns the device limits the connection was created with.
func (c *Connection) Limits() driver.Limits { return c.limits }

// LeastRecentTextureUnit returns the texture unit that has gone unused the
// longest. Uploads use it as a scratch unit so that recently bound textures
// stay bound.
func (c *Connection) LeastRecentTextureUnit() uint32 {
	return uint32(c.textureUnits.UseLRU())
}

// LeastRecentUniformBinding returns the uniform buffer binding index that
// has gone unused the longest.
func (c *Connection) LeastRecentUniformBinding() uint32 {
	return uint32(c.uniformBindings.UseLRU())
}

// SetActiveTextureLRU makes the least recently used texture unit active and
// returns it.
func (c *Connection) SetActiveTextureLRU() uint32 {
	unit := c.LeastRecentTextureUnit()
	c.setActiveTexture(unit)
	return unit
}
