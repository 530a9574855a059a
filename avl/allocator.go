// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // 1 + max(height(left), height(right))
	nodes  int   // number of nodes in this sub-tree, including this one
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key Item) *Node {
	p := tree.pool
	if nil == p {
		if 0 != tree.free {
			fault.Panicf("pool corrupt: empty list with %d free nodes", tree.free)
		}
		return &Node{
			key:    key,
			height: 1,
			nodes:  1,
		}
	}
	tree.pool = p.right
	tree.free -= 1

	p.key = key
	p.height = 1
	p.nodes = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	return p
}

// reclaim a node and keep it in the tree's pool while the pool is
// below its limit
func (tree *Tree) freeNode(p *Node) {
	p.left = nil
	p.key = nil
	p.height = 0
	p.nodes = 0

	if tree.free >= tree.poolLimit {
		p.right = nil
		return
	}
	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.free += 1
}

// Clear - remove every node, the tree is empty afterwards
//
// nodes obtained earlier from the tree must not be used after this,
// they may have been reclaimed for later inserts
func (tree *Tree) Clear() {
	tree.clear(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: post-order teardown so children are released first
func (tree *Tree) clear(p *Node) {
	if nil == p {
		return
	}
	tree.clear(p.left)
	tree.clear(p.right)
	tree.freeNode(p)
}
