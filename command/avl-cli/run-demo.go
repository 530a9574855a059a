// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

var demoValues = []int{4, 6, 8, 2, 1, 5, 7, 9}

const demoRemove = 4

func runDemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree := avl.New()
	for _, v := range demoValues {
		if err := tree.Insert(avl.Int(v)); nil != err {
			return err
		}
	}
	tree.Print(m.w)

	if err := tree.Delete(avl.Int(demoRemove)); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "remove: %d\n", demoRemove)
	tree.Print(m.w)

	return nil
}
