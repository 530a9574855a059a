// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that caches the height of every
// sub-tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node exclusively owns its two children, there are no parent
// pointers.  All structural changes are done by recursive routines
// that return the (possibly different) root of the sub-tree they were
// given, and the parent stores that result back into its own link.
// Heights are recomputed on the way back up, so the path from a
// changed node to the root is always rebalanced bottom-up.
//
// Keys are unique; inserting an existing key or deleting a missing
// one is reported as an error and leaves the tree unchanged.
package avl
