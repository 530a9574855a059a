// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns fault.ErrItemNotFound if the key is not present, the tree
// is not modified in that case
func (tree *Tree) Delete(key Item) error {
	root, removed := tree.delete(key, tree.root)
	if !removed {
		return fault.ErrItemNotFound
	}
	tree.root = root
	tree.count -= 1
	return nil
}

// internal delete routine
// returns the possibly updated sub-tree root
func (tree *Tree) delete(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		return tree.remove(p), true
	}

	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// delete: unlink p and return whatever replaces it
func (tree *Tree) remove(p *Node) *Node {
	switch {
	case nil == p.left && nil == p.right:
		tree.freeNode(p)
		return nil

	case nil == p.left:
		q := p.right
		if nil != q.left || nil != q.right {
			fault.Panicf("delete: sole right child of %v is not a leaf", p.key)
		}
		tree.freeNode(p)
		return q

	case nil == p.right:
		q := p.left
		if nil != q.left || nil != q.right {
			fault.Panicf("delete: sole left child of %v is not a leaf", p.key)
		}
		tree.freeNode(p)
		return q
	}

	// two children: take the neighbouring key from the taller side,
	// the right side on a tie, then delete that key from the side
	removed := false
	if height(p.right) >= height(p.left) {
		p.key = p.right.first().key
		p.right, removed = tree.delete(p.key, p.right)
	} else {
		p.key = p.left.last().key
		p.left, removed = tree.delete(p.key, p.left)
	}
	if !removed {
		fault.Panicf("delete: replacement key %v vanished from sub-tree", p.key)
	}
	return rebalance(p)
}
