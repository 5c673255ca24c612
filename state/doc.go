// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package state owns the single mutable connection to a graphics device.
//
// A [Connection] wraps a [driver.Device] together with a cache of the
// device's dynamic state: the current program, buffer, texture, sampler and
// vertex attribute bindings and the fixed-function state. Every setter
// compares against the cache and issues no driver call when the requested
// value is already current.
//
// Driver objects created through a connection are registered in its object
// table. Releasing a handle does not delete the object immediately; it is
// queued and deleted by [Connection.DrainDropQueue], which also drops any
// cached binding of the object so a stale binding is never reported as
// current.
//
// A Connection is not safe for concurrent use, with the exception of
// [Connection.Release], which may be called from any goroutine.
package state
