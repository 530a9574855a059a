// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avltree/avl Item

// Item - a key item must implement the Compare function
//
// Compare returns a negative value if the receiver orders before the
// argument, zero if equal and a positive value if after.  The argument
// is always another key of the same tree.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Int - integer key
type Int int

// Compare - integer ordering
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - string key
type String string

// Compare - lexical ordering
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}
