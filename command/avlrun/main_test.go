// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

var testDirectory string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "avlrun")
	if nil != err {
		panic(fmt.Sprintf("temp dir failed: %s", err))
	}
	testDirectory = dir

	var logConfig = logger.Configuration{
		Directory: dir,
		File:      "avlrun.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

const roundTripScript = `
return {
    key_type = "integer",
    logging = {
        directory = "logs",
        file = "run.log",
    },
    operations = {
        { action = "insert", values = { 4, 6, 8, 2, 1, 5, 7, 9 } },
        { action = "remove", values = { 4, 40 } },
        { action = "check" },
        { action = "print" },
    },
}
`

// write a script into its own directory inside the test directory
func writeConfiguration(t *testing.T, name string, content string) string {
	dir := filepath.Join(testDirectory, name)
	if err := os.MkdirAll(dir, 0700); nil != err {
		t.Fatalf("mkdir error: %s", err)
	}
	fileName := filepath.Join(dir, "avlrun.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, "config", roundTripScript)

	c, err := getConfiguration(fileName)
	assert.NoError(t, err)

	dir := filepath.Dir(fileName)
	assert.Equal(t, dir, c.DataDirectory)
	assert.Equal(t, filepath.Join(dir, "logs"), c.Logging.Directory)
	assert.Equal(t, "run.log", c.Logging.File)
	assert.Equal(t, defaultLogCount, c.Logging.Count, "default must be kept")
	assert.True(t, strings.HasPrefix(c.Logging.Directory, dir))
	assert.DirExists(t, c.Logging.Directory)

	script := c.Script()
	assert.Equal(t, "integer", script.KeyType)
	assert.Len(t, script.Operations, 4)
	assert.Equal(t, []string{"4", "6", "8", "2", "1", "5", "7", "9"}, script.Operations[0].Values)
}

func TestGetConfigurationErrors(t *testing.T) {
	_, err := getConfiguration(filepath.Join(testDirectory, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)

	fileName := writeConfiguration(t, "badlog", `return { logging = { file = "a/b.log" } }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err)

	fileName = writeConfiguration(t, "baddata", `return { data_directory = "no-such-directory" }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err)
}

func TestRunScript(t *testing.T) {
	fileName := writeConfiguration(t, "run", roundTripScript)
	c, err := getConfiguration(fileName)
	assert.NoError(t, err)

	var b strings.Builder
	assert.NoError(t, runScript(c, &b, false))

	expected := "5\n" +
		"2 8\n" +
		"1 null 6 9\n" +
		"null null null null null 7 null null\n" +
		"inserted: 8  duplicates: 0  removed: 1  not found: 1  nodes: 7  height: 4\n"
	assert.Equal(t, expected, b.String())

	b.Reset()
	assert.NoError(t, runScript(c, &b, true))
	assert.False(t, strings.Contains(b.String(), "inserted:"), "quiet must omit the summary")
}

func TestRunScriptError(t *testing.T) {
	fileName := writeConfiguration(t, "runerror", `return { operations = { { action = "fly" } } }`)
	c, err := getConfiguration(fileName)
	assert.NoError(t, err)

	err = runScript(c, ioutil.Discard, false)
	assert.Equal(t, fault.ErrInvalidAction, err)
}
