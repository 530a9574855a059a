// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlrun - replay the tree operations listed in a Lua configuration
// file and print the resulting tree
//
// usage: avlrun [--verbose] [--quiet] [--watch] --config-file=FILE
//
// with --watch the script is replayed on a fresh tree every time the
// file is written, until the file is removed or the program is
// interrupted.
package main
