// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// Print - write the tree level by level, one line per level
//
// absent children are shown as "null" and still occupy two slots on
// the following line, so line n always has 2^(n-1) entries.  Output
// stops after Height() lines.
func (tree *Tree) Print(w io.Writer) {
	if nil == tree.root {
		fmt.Fprintln(w, "Empty tree")
		return
	}

	queue := []*Node{tree.root}
	for row := 0; row < tree.root.height; row += 1 {
		next := make([]*Node, 0, 2*len(queue))
		for i, p := range queue {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			if nil == p {
				fmt.Fprint(w, "null")
				next = append(next, nil, nil)
			} else {
				fmt.Fprintf(w, "%v", p.key)
				next = append(next, p.left, p.right)
			}
		}
		fmt.Fprintln(w)
		queue = next
	}
}

// to control the draw routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Draw - display an ASCII graphic representation of the tree,
// root on the left, higher keys above
//
// returns the maximum depth of the tree
func (tree *Tree) Draw(w io.Writer, detail bool) int {
	return drawTree(w, tree.root, "", root, detail)
}

// internal draw - returns the maximum depth of the tree
func drawTree(w io.Writer, tree *Node, prefix string, br branch, detail bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = drawTree(w, tree.right, prefix+t, right, detail)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if detail {
		fmt.Fprintf(w, "%v h:%d %+d/[%d,%d]\n", tree.key, tree.height, height(tree.right)-height(tree.left), nodes(tree.left), nodes(tree.right))
	} else {
		fmt.Fprintf(w, "%v\n", tree.key)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = drawTree(w, tree.left, prefix+t, left, detail)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
