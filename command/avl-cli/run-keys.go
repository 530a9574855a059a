// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type keysReply struct {
	Count  int           `json:"count"`
	Height int           `json:"height"`
	Keys   []interface{} `json:"keys"`
}

func runKeys(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	reply := keysReply{
		Count:  tree.Count(),
		Height: tree.Height(),
		Keys:   make([]interface{}, 0, tree.Count()),
	}
	for _, k := range tree.Keys() {
		reply.Keys = append(reply.Keys, k)
	}

	return printJson(m.w, reply)
}
