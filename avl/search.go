// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns the node and its zero based in-order index,
// or nil and -1 if the key is not present
//
// the node is only valid until the next Insert, Delete or Clear:
// rotations move nodes and removed nodes are reused for new keys
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key Item) bool {
	p, _ := tree.Search(key)
	return nil != p
}

func search(key Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	c := tree.key.Compare(key)
	switch {
	case c > 0: // tree.key > key
		return search(key, tree.left, index)
	case c < 0: // tree.key < key
		return search(key, tree.right, index+nodes(tree.left)+1)
	default:
		return tree, index + nodes(tree.left)
	}
}
