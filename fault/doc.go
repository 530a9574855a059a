// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Recoverable conditions (duplicate keys, missing keys, bad input)
// are returned as one of the classed errors below.  Broken tree
// invariants are not recoverable and go through Panicf, which logs
// on the PANIC channel before panicking.
package fault
