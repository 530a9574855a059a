// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// height of a possibly absent sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// node count of a possibly absent sub-tree
func nodes(p *Node) int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// recompute the cached values from the children
func (p *Node) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.nodes = 1 + nodes(p.left) + nodes(p.right)
}

// single left rotation, the right child becomes the sub-tree root
//
//	  p              p1
//	 / \            /  \
//	a   p1   →     p    c
//	   /  \       / \
//	  b    c     a   b
func rotateLeft(p *Node) *Node {
	if nil == p {
		fault.Panicf("rotate left: nil node")
	}
	p1 := p.right
	if nil == p1 {
		fault.Panicf("rotate left: node %v has no right sub-tree", p.key)
	}
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()
	return p1
}

// single right rotation, the left child becomes the sub-tree root
func rotateRight(p *Node) *Node {
	if nil == p {
		fault.Panicf("rotate right: nil node")
	}
	p1 := p.left
	if nil == p1 {
		fault.Panicf("rotate right: node %v has no left sub-tree", p.key)
	}
	p.left = p1.right
	p1.right = p

	p.update()
	p1.update()
	return p1
}

// restore the AVL condition at p after one of its sub-trees changed
// height by at most one, returns the new sub-tree root
func rebalance(p *Node) *Node {
	p.update()

	hl := height(p.left)
	hr := height(p.right)

	switch {
	case hl > hr+1: // left heavy
		p1 := p.left
		if height(p1.right) > height(p1.left) {
			// double LR rotation
			p.left = rotateLeft(p1)
		}
		return rotateRight(p)

	case hr > hl+1: // right heavy
		p1 := p.right
		if height(p1.left) > height(p1.right) {
			// double RL rotation
			p.right = rotateRight(p1)
		}
		return rotateLeft(p)
	}
	return p
}
