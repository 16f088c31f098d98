// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: parent pointer checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		actual := interface{}(nil)
		if nil != p.up {
			actual = p.up.key
		}
		expected := interface{}(nil)
		if nil != up {
			expected = up.key
		}
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, actual, expected)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - check cached heights and balance factors
// every cached height must match the height recomputed from scratch
// and every balance factor must be -1, 0 or +1
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: height and balance checker
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, okl := checkBalance(p.left)
	hr, okr := checkBalance(p.right)
	if !okl || !okr {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		fmt.Printf("height mismatch at node: %v   cached: %d  actual: %d\n", p.key, p.height, h)
		return h, false
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		fmt.Printf("out of balance at node: %v   balance factor: %+d\n", p.key, bf)
		return h, false
	}
	return h, true
}

// CheckOrder - check that keys are ordered over the whole tree
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: ordering checker, bounds are exclusive, nil for none
func checkOrder(p *Node, min Item, max Item) bool {
	if nil == p {
		return true
	}
	if nil != min && p.key.Compare(min) <= 0 {
		fmt.Printf("out of order node: %v   must be after: %v\n", p.key, min)
		return false
	}
	if nil != max && p.key.Compare(max) >= 0 {
		fmt.Printf("out of order node: %v   must be before: %v\n", p.key, max)
		return false
	}
	if !checkOrder(p.left, min, p.key) {
		return false
	}
	return checkOrder(p.right, p.key, max)
}
