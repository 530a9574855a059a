// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - apply a list of tree operations
//
// A script is a key type and a list of operations, normally read from
// a Lua configuration file:
//
//	return {
//	    key_type = "integer",
//	    operations = {
//	        { action = "insert", values = { 4, 6, 8, 2, 1, 5, 7, 9 } },
//	        { action = "print" },
//	        { action = "remove", values = { 4 } },
//	        { action = "check" },
//	        { action = "draw", values = { "detail" } },
//	    },
//	}
//
// Rejected inserts and removes are counted and logged but do not stop
// the script, any other failure does.
package replay
