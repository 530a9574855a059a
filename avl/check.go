// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckOrder - keys must be strictly ascending in an in-order walk
func (tree *Tree) CheckOrder() bool {
	var previous Item
	for it := tree.Iterate(); it.HasNext(); {
		p := it.Next()
		if nil != previous && previous.Compare(p.key) >= 0 {
			fmt.Printf("order fail at node: %v  previous: %v\n", p.key, previous)
			return false
		}
		previous = p.key
	}
	return true
}

// CheckHeights - every cached height must match its children
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns the real height of a sub-tree
func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		fmt.Printf("height fail at node: %v   actual: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalance - sub-tree heights of every node differ by at most one
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}
	d := height(p.left) - height(p.right)
	if d < -1 || d > 1 {
		fmt.Printf("balance fail at node: %v   left: %d  right: %d\n", p.key, height(p.left), height(p.right))
		return false
	}
	if !checkBalance(p.left) {
		return false
	}
	return checkBalance(p.right)
}

// CheckCounts - cached node counts must match the tree contents
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	if !ok {
		return false
	}
	if n != tree.count {
		fmt.Printf("count fail at root   actual: %d  expected: %d\n", tree.count, n)
		return false
	}
	return true
}

func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	n := 1 + nl + nr
	if n != p.nodes {
		fmt.Printf("count fail at node: %v   actual: %d  expected: %d\n", p.key, p.nodes, n)
		return 0, false
	}
	return n, true
}

// Check - run every consistency check
func (tree *Tree) Check() bool {
	return tree.CheckOrder() && tree.CheckHeights() && tree.CheckBalance() && tree.CheckCounts()
}
