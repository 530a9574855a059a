// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's position
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf("%s%s", caller(2), fmt.Sprintf(format, arguments...))
}

// Panicf - log the formatted message once and panic with it
//
// the panic value is the formatted message itself so that a recover
// can inspect it
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	internalCriticalf("%s%s", caller(2), message)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// position of the n-th caller as a log prefix
func caller(n int) string {
	if _, file, line, ok := runtime.Caller(n); ok {
		return fmt.Sprintf("(%q:%d) ", file, line)
	}
	return ""
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
