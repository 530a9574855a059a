// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leaf(v int) *Node {
	return &Node{key: Int(v), height: 1, nodes: 1}
}

func join(l *Node, v int, r *Node) *Node {
	p := &Node{key: Int(v), left: l, right: r}
	p.update()
	return p
}

func inOrder(p *Node) []int {
	if nil == p {
		return nil
	}
	s := inOrder(p.left)
	s = append(s, int(p.key.(Int)))
	return append(s, inOrder(p.right)...)
}

func TestRotateLeft(t *testing.T) {
	//   2
	//  / \
	// 1   4
	//    / \
	//   3   5
	three := leaf(3)
	four := join(three, 4, leaf(5))
	two := join(leaf(1), 2, four)

	before := inOrder(two)
	p := rotateLeft(two)

	assert.Equal(t, four, p, "former right child must be the new root")
	assert.Equal(t, before, inOrder(p), "in-order changed")
	assert.Equal(t, two, p.left)
	assert.Equal(t, three, two.right, "right child's left sub-tree must move across")
	assert.Equal(t, 2, two.height)
	assert.Equal(t, 3, p.height)
	assert.Equal(t, 3, two.nodes)
	assert.Equal(t, 5, p.nodes)
}

func TestRotateRight(t *testing.T) {
	//     4
	//    / \
	//   2   5
	//  / \
	// 1   3
	three := leaf(3)
	two := join(leaf(1), 2, three)
	four := join(two, 4, leaf(5))

	before := inOrder(four)
	p := rotateRight(four)

	assert.Equal(t, two, p)
	assert.Equal(t, before, inOrder(p))
	assert.Equal(t, four, p.right)
	assert.Equal(t, three, four.left)
	assert.Equal(t, 2, four.height)
	assert.Equal(t, 3, p.height)
}

func TestRotateMissingChild(t *testing.T) {
	assert.PanicsWithValue(t, "rotate left: node 7 has no right sub-tree", func() {
		rotateLeft(join(leaf(6), 7, nil))
	})
	assert.PanicsWithValue(t, "rotate right: node 7 has no left sub-tree", func() {
		rotateRight(join(nil, 7, leaf(8)))
	})
	assert.Panics(t, func() {
		rotateLeft(nil)
	})
}

func TestRebalanceCases(t *testing.T) {
	cases := []struct {
		name string
		root *Node
		key  int
	}{
		{"left-left", join(join(leaf(1), 2, nil), 3, nil), 2},
		{"left-right", join(join(nil, 1, leaf(2)), 3, nil), 2},
		{"right-right", join(nil, 1, join(nil, 2, leaf(3))), 2},
		{"right-left", join(nil, 1, join(leaf(2), 3, nil)), 2},
	}
	for _, c := range cases {
		p := rebalance(c.root)
		assert.Equal(t, Int(c.key), p.key, c.name)
		assert.Equal(t, []int{1, 2, 3}, inOrder(p), c.name)
		assert.Equal(t, 2, p.height, c.name)
		assert.Equal(t, 1, height(p.left), c.name)
		assert.Equal(t, 1, height(p.right), c.name)
	}
}

// with equal sub-tree heights the successor from the right is used
func TestDeleteTieUsesRight(t *testing.T) {
	tree := New()
	for _, v := range []int{20, 10, 30, 5, 15, 25, 35} {
		assert.NoError(t, tree.Insert(Int(v)))
	}
	assert.Equal(t, height(tree.root.left), height(tree.root.right))

	right := tree.root.right
	assert.NoError(t, tree.Delete(Int(20)))

	assert.Equal(t, Int(25), tree.root.key, "successor must replace the root")
	assert.Equal(t, right, tree.root.right, "right sub-tree root must be kept")
	assert.Equal(t, []int{5, 10, 15, 25, 30, 35}, inOrder(tree.root))
	assert.True(t, tree.Check())

	small := New()
	for _, v := range []int{2, 1, 3} {
		assert.NoError(t, small.Insert(Int(v)))
	}
	assert.NoError(t, small.Delete(Int(2)))
	assert.Equal(t, Int(3), small.root.key)
	assert.Equal(t, Int(1), small.root.left.key)
	assert.Nil(t, small.root.right)
}

// a taller left side supplies the predecessor
func TestDeleteTallerLeft(t *testing.T) {
	tree := New()
	for _, v := range []int{3, 2, 4, 1} {
		assert.NoError(t, tree.Insert(Int(v)))
	}
	assert.NoError(t, tree.Delete(Int(3)))

	assert.Equal(t, Int(2), tree.root.key)
	assert.Equal(t, Int(1), tree.root.left.key)
	assert.Equal(t, Int(4), tree.root.right.key)
	assert.True(t, tree.Check())
}

func TestDeleteSoleChildMustBeLeaf(t *testing.T) {
	tree := New()
	// not reachable through Insert: a single right child with children
	tree.root = join(nil, 1, join(leaf(2), 3, leaf(4)))
	tree.count = 4

	assert.Panics(t, func() {
		tree.Delete(Int(1))
	})
}

func TestFreeList(t *testing.T) {
	tree := New()
	for _, v := range []int{1, 2, 3} {
		assert.NoError(t, tree.Insert(Int(v)))
	}
	assert.Equal(t, 0, tree.free)

	old := tree.root.left
	assert.NoError(t, tree.Delete(Int(1)))
	assert.Equal(t, 1, tree.free)
	assert.Nil(t, old.key, "reclaimed node must not keep its key")

	assert.NoError(t, tree.Insert(Int(0)))
	assert.Equal(t, 0, tree.free)
	assert.Equal(t, old, tree.root.left, "reclaimed node must be reused")
	assert.Equal(t, Int(0), old.key)

	tree.Clear()
	assert.Equal(t, 3, tree.free)
	assert.Nil(t, tree.root)
}

func TestFreeListLimit(t *testing.T) {
	tree := New()
	assert.Equal(t, defaultPoolLimit, tree.poolLimit)
	tree.poolLimit = 2

	for v := 1; v <= 10; v += 1 {
		assert.NoError(t, tree.Insert(Int(v)))
	}
	for v := 1; v <= 5; v += 1 {
		assert.NoError(t, tree.Delete(Int(v)))
	}
	assert.Equal(t, 2, tree.free, "pool must stop at its limit")

	tree.Clear()
	assert.Equal(t, 2, tree.free)

	n := 0
	for p := tree.pool; nil != p; p = p.right {
		n += 1
	}
	assert.Equal(t, 2, n, "pool list length")

	for v := 1; v <= 4; v += 1 {
		assert.NoError(t, tree.Insert(Int(v)))
	}
	assert.Equal(t, 0, tree.free)
	assert.True(t, tree.Check())
}
