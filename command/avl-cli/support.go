// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/replay"
)

// build a tree from the command arguments and the --remove flag
func buildTree(c *cli.Context, m *metadata) (*avl.Tree, error) {

	values := c.Args()
	if 0 == len(values) {
		return nil, ErrNoValues
	}

	tree := avl.New()
	for _, v := range values {
		if err := insertValue(tree, m, v); nil != err {
			return nil, err
		}
	}

	removals := c.String("remove")
	if "" == removals {
		return tree, nil
	}
	for _, v := range strings.Split(removals, ",") {
		if err := removeValue(tree, m, strings.TrimSpace(v)); nil != err {
			return nil, err
		}
	}
	return tree, nil
}

func insertValue(tree *avl.Tree, m *metadata, v string) error {
	key, err := replay.ParseKey(m.keyType, v)
	if nil != err {
		return fmt.Errorf("value: %q  error: %s", v, err)
	}
	err = tree.Insert(key)
	if fault.IsErrExists(err) {
		if m.verbose {
			fmt.Fprintf(m.e, "insert: %v  ignored: %s\n", key, err)
		}
		return nil
	}
	return err
}

func removeValue(tree *avl.Tree, m *metadata, v string) error {
	key, err := replay.ParseKey(m.keyType, v)
	if nil != err {
		return fmt.Errorf("value: %q  error: %s", v, err)
	}
	err = tree.Delete(key)
	if fault.IsErrNotFound(err) {
		if m.verbose {
			fmt.Fprintf(m.e, "remove: %v  ignored: %s\n", key, err)
		}
		return nil
	}
	return err
}
