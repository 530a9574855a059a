// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigDirPath        = InvalidError("config is not a folder")
	ErrConfigNotTable       = InvalidError("config must return a table")
	ErrDuplicateItem        = ExistsError("duplicate item")
	ErrEmptyOperationList   = InvalidError("operation list is empty")
	ErrInvalidAction        = InvalidError("invalid action")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrItemNotFound         = NotFoundError("item not found")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrRequiredConfigFile   = InvalidError("config file is required")
	ErrRequiredValues       = InvalidError("at least one value is required")
	ErrTreeInconsistent     = ProcessError("tree is inconsistent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
