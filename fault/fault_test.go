// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
)

// test that the error classes can be determined
func TestClassification(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		notFound bool
	}{
		{ErrInvalidOne, true, false},
		{ErrInvalidTwo, true, false},
		{ErrNotFoundOne, false, true},
		{ErrNotFoundTwo, false, true},
		{fault.GenericError("generic"), false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
	}
}

// a dynamically built error keeps its message and its class
func TestMessage(t *testing.T) {
	err := fault.NotFoundError(fmt.Sprintf("no node with key: %v", 999))
	if !fault.IsErrNotFound(err) {
		t.Fatalf("expected 'not found' class for err = %v", err)
	}
	if "no node with key: 999" != err.Error() {
		t.Fatalf("wrong message: %q", err.Error())
	}
}
