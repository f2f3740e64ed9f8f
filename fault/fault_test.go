// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/scoretree/fault"
)

var (
	ErrCapacityOne = fault.CapacityError("capacity one")
	ErrCapacityTwo = fault.CapacityError("capacity two")
	ErrDepthOne    = fault.DepthError("depth one")
	ErrDepthTwo    = fault.DepthError("depth two")
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes stay distinguishable
func TestErrorClass(t *testing.T) {
	errorList := []struct {
		err      error
		capacity bool
		depth    bool
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrCapacityOne, true, false, false, false, false, false},
		{ErrCapacityTwo, true, false, false, false, false, false},
		{ErrDepthOne, false, true, false, false, false, false},
		{ErrDepthTwo, false, true, false, false, false, false},
		{ErrExistsOne, false, false, true, false, false, false},
		{ErrExistsTwo, false, false, true, false, false, false},
		{ErrInvalidOne, false, false, false, true, false, false},
		{ErrInvalidTwo, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrCapacity(item.err) != item.capacity {
			t.Errorf("%d: capacity class mismatch for: %v", i, item.err)
		}
		if fault.IsErrDepth(item.err) != item.depth {
			t.Errorf("%d: depth class mismatch for: %v", i, item.err)
		}
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists class mismatch for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid class mismatch for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found class mismatch for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process class mismatch for: %v", i, item.err)
		}
	}
}

// the shared instances must compare equal to themselves only
func TestSentinelComparison(t *testing.T) {
	if fault.CapacityLimit != fault.CapacityLimit {
		t.Fatal("capacity sentinel not comparable")
	}
	if fault.NilKey == fault.KeyNotOrderable {
		t.Fatal("distinct sentinels compare equal")
	}
	var e error = fault.DepthLimit
	if e != fault.DepthLimit {
		t.Fatal("sentinel lost through error interface")
	}
}
