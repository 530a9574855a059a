// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/replay"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--watch] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	err = runScript(theConfiguration, os.Stdout, quiet)
	if 0 == len(options["watch"]) {
		if nil != err {
			fault.Criticalf("replay error: %s", err)
			exitwithstatus.Message("%s: replay error: %s", program, err)
		}
		return
	}
	if nil != err {
		log.Errorf("replay error: %s", err)
		fmt.Fprintf(os.Stderr, "%s: replay error: %s\n", program, err)
	}

	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New(FileWatcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	defer watcher.Close()

	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}

	// wait for changes or a signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-channels.change:
			log.Infof("reload: %s", configurationFile)
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration error: %s", err)
				fmt.Fprintf(os.Stderr, "%s: configuration error: %s\n", program, err)
				continue
			}
			if err := runScript(c, os.Stdout, quiet); nil != err {
				log.Errorf("replay error: %s", err)
				fmt.Fprintf(os.Stderr, "%s: replay error: %s\n", program, err)
			}

		case <-channels.remove:
			log.Warnf("configuration removed: %s", configurationFile)
			return

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return
		}
	}
}

// replay the configured script on a new tree and summarise the result
func runScript(c *Configuration, w io.Writer, quiet bool) error {
	log := logger.New("replay")
	tree, summary, err := replay.Run(c.Script(), w, log)
	if nil != err {
		return err
	}
	if !quiet {
		fmt.Fprintf(w, "inserted: %d  duplicates: %d  removed: %d  not found: %d  nodes: %d  height: %d\n",
			summary.Inserted,
			summary.Duplicates,
			summary.Removed,
			summary.NotFound,
			tree.Count(),
			tree.Height(),
		)
	}
	return nil
}
