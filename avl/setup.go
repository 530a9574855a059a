// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int

	pool      *Node // reclaimed nodes linked through their right pointer
	free      int   // number of nodes in the pool
	poolLimit int   // reclaimed nodes beyond this are left to the garbage collector
}

// largest number of reclaimed nodes a tree keeps for reuse
const defaultPoolLimit = 1024

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:      nil,
		count:     0,
		poolLimit: defaultPoolLimit,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Left - left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}
