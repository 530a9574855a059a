// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// run the app with the given arguments and collect both outputs
func runApp(t *testing.T, args ...string) (string, string, error) {
	var w, e bytes.Buffer
	app := newApp(&w, &e)
	err := app.Run(append([]string{"avl-cli"}, args...))
	return w.String(), e.String(), err
}

func TestPrint(t *testing.T) {
	out, _, err := runApp(t, "print", "4", "6", "8", "2", "1", "5", "7", "9")
	assert.NoError(t, err)
	assert.Equal(t, "4\n2 6\n1 null 5 8\nnull null null null null null 7 9\n", out)
}

func TestPrintRemove(t *testing.T) {
	out, e, err := runApp(t, "--verbose", "print", "--remove=4,40", "4", "6", "8", "2", "1", "5", "7", "9", "9")
	assert.NoError(t, err)
	assert.Equal(t, "5\n2 8\n1 null 6 9\nnull null null null null 7 null null\n", out)
	assert.Contains(t, e, "insert: 9  ignored: duplicate item")
	assert.Contains(t, e, "remove: 40  ignored: item not found")
	assert.Contains(t, e, "nodes: 7  height: 4")
}

func TestPrintQuietRejects(t *testing.T) {
	_, e, err := runApp(t, "print", "-r", "3", "1", "1")
	assert.NoError(t, err)
	assert.Equal(t, "", e, "rejects are only reported when verbose")
}

func TestPrintErrors(t *testing.T) {
	_, _, err := runApp(t, "print")
	assert.Equal(t, ErrNoValues, err)

	_, _, err = runApp(t, "print", "one")
	assert.Error(t, err)

	_, _, err = runApp(t, "print", "--remove=x", "1")
	assert.Error(t, err)
}

func TestDraw(t *testing.T) {
	out, e, err := runApp(t, "-v", "draw", "1", "2", "3")
	assert.NoError(t, err)
	assert.Equal(t, "       /------+ 3\n|------+ 2\n       \\------+ 1\n", out)
	assert.Equal(t, "depth: 2\n", e)
}

func TestKeys(t *testing.T) {
	out, _, err := runApp(t, "--strings", "keys", "pear", "apple", "fig")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"count":3,"height":2,"keys":["apple","fig","pear"]}`, out)

	out, _, err = runApp(t, "keys", "-r", "2", "3", "2", "1")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"count":2,"height":2,"keys":[1,3]}`, out)
}

func TestRemoveListIsTrimmed(t *testing.T) {
	out, e, err := runApp(t, "--strings", "-v", "keys", "--remove=fig, kiwi", "pear", "fig", "kiwi")
	assert.NoError(t, err)
	assert.Equal(t, "", e, "every removal must match")
	assert.JSONEq(t, `{"count":1,"height":1,"keys":["pear"]}`, out)
}

func TestDemo(t *testing.T) {
	out, _, err := runApp(t, "demo")
	assert.NoError(t, err)

	expected := "4\n" +
		"2 6\n" +
		"1 null 5 8\n" +
		"null null null null null null 7 9\n" +
		"remove: 4\n" +
		"5\n" +
		"2 8\n" +
		"1 null 6 9\n" +
		"null null null null null 7 null null\n"
	assert.Equal(t, expected, out)
}

func TestVersion(t *testing.T) {
	out, _, err := runApp(t, "version")
	assert.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
