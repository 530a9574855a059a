// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new node into the tree
//
// returns fault.ErrDuplicateItem if the key is already present, the
// tree is not modified in that case
func (tree *Tree) Insert(key Item) error {
	root, added := tree.insert(key, tree.root)
	if !added {
		return fault.ErrDuplicateItem
	}
	tree.root = root
	tree.count += 1
	return nil
}

// internal routine for insert
// returns the possibly updated sub-tree root
func (tree *Tree) insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return tree.newNode(key), true
	}

	added := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, added = tree.insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added = tree.insert(key, p.right)
	default:
		return p, false
	}

	// nothing below changed, so no heights need fixing
	if !added {
		return p, false
	}
	return rebalance(p), true
}
