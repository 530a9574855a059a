// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Iterator - in-order walk over a tree
//
// nodes have no parent pointers so the path back up is kept on an
// explicit stack, the top of the stack is always the next node.
// The tree must not be modified while an iterator is in use.
type Iterator struct {
	stack []*Node
}

// Iterate - return an iterator positioned before the lowest key
func (tree *Tree) Iterate() *Iterator {
	it := &Iterator{
		stack: make([]*Node, 0, height(tree.root)),
	}
	it.push(tree.root)
	return it
}

// descend the left spine of a sub-tree
func (it *Iterator) push(p *Node) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// HasNext - true if Next will return a node
func (it *Iterator) HasNext() bool {
	return len(it.stack) > 0
}

// Next - return the node with the next highest key value or nil if
// no more nodes
func (it *Iterator) Next() *Node {
	n := len(it.stack)
	if 0 == n {
		return nil
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.push(p.right)
	return p
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	for it := tree.Iterate(); it.HasNext(); {
		keys = append(keys, it.Next().key)
	}
	return keys
}
