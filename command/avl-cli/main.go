// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/replay"
)

type metadata struct {
	keyType string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build a height balanced tree and display it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "strings, s",
			Usage: " treat values as strings instead of integers",
		},
	}

	removeFlag := cli.StringFlag{
		Name:  "remove, r",
		Value: "",
		Usage: " comma separated `VALUES` to remove after inserting",
	}

	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "insert values and print the tree level by level",
			ArgsUsage: "VALUES...",
			Flags:     []cli.Flag{removeFlag},
			Action:    runPrint,
		},
		{
			Name:      "draw",
			Usage:     "insert values and draw the tree sideways",
			ArgsUsage: "VALUES...",
			Flags: []cli.Flag{
				removeFlag,
				cli.BoolFlag{
					Name:  "detail, d",
					Usage: " show height, balance and node counts",
				},
			},
			Action: runDraw,
		},
		{
			Name:      "keys",
			Usage:     "insert values and list them in order as JSON",
			ArgsUsage: "VALUES...",
			Flags:     []cli.Flag{removeFlag},
			Action:    runKeys,
		},
		{
			Name:   "demo",
			Usage:  "insert 4 6 8 2 1 5 7 9, print, remove 4 and print again",
			Action: runDemo,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		keyType := replay.IntegerKeys
		if c.GlobalBool("strings") {
			keyType = replay.StringKeys
		}
		c.App.Metadata["config"] = &metadata{
			keyType: keyType,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
