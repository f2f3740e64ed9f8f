// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type CapacityError GenericError
type DepthError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised   = ExistsError("already initialised")
	CapacityLimit        = CapacityError("tree has reached maximum capacity")
	DepthLimit           = DepthError("tree has reached maximum depth")
	InvalidCount         = InvalidError("count is invalid")
	InvalidLoggerChannel = InvalidError("invalid logger channel")
	InvalidRestoreData   = InvalidError("restore data is invalid")
	InvalidScoreValue    = InvalidError("score value is invalid")
	KeyNotOrderable      = InvalidError("key is not totally ordered")
	NilKey               = InvalidError("key cannot be nil")
	NotFoundIdentifier   = NotFoundError("identifier is not found")
	NotInitialised       = NotFoundError("not initialised")
	RequiredIdentifier   = InvalidError("identifier is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CapacityError) Error() string { return string(e) }
func (e DepthError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrCapacity(e error) bool { _, ok := e.(CapacityError); return ok }
func IsErrDepth(e error) bool    { _, ok := e.(DepthError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
