// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - build an AVL tree from command line values
//
//   avl-cli print 4 6 8 2 1 5 7 9
//   avl-cli print --remove=4 4 6 8 2 1 5 7 9
//   avl-cli draw --detail 4 6 8 2 1 5 7 9
//   avl-cli --strings keys pear apple fig
//   avl-cli demo
//
// Values are integers unless the global --strings flag is set.
// Duplicate values and removals of absent values are reported with
// --verbose and otherwise ignored.
package main
