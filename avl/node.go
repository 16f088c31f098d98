// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"
)

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the two child sub-trees
// the children must already carry correct heights
func (p *Node) updateHeight() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// BalanceFactor - left sub-tree height minus right sub-tree height
// a positive value indicates a left-heavy node
func (p *Node) BalanceFactor() int {
	return height(p.left) - height(p.right)
}

// IsBalanced - true if the balance factor is -1, 0 or +1
func (p *Node) IsBalanced() bool {
	bf := p.BalanceFactor()
	return bf > -2 && bf < 2
}

// HasKey - true if the stored key compares equal to key
func (p *Node) HasKey(key Item) bool {
	return 0 == p.key.Compare(key)
}

// HasValue - true if the stored value is equal to value
func (p *Node) HasValue(value interface{}) bool {
	return reflect.DeepEqual(p.value, value)
}

// HasParent - true if the node is not the root
func (p *Node) HasParent() bool {
	return nil != p.up
}

// HasLeftChild - true if a left sub-tree is present
func (p *Node) HasLeftChild() bool {
	return nil != p.left
}

// HasRightChild - true if a right sub-tree is present
func (p *Node) HasRightChild() bool {
	return nil != p.right
}

// HasBothChildren - true if left and right sub-trees are present
func (p *Node) HasBothChildren() bool {
	return nil != p.left && nil != p.right
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// IsLeftChild - true if the node is the left child of its parent
// only call after checking HasParent
func (p *Node) IsLeftChild() bool {
	return p == p.up.left
}

// IsRightChild - true if the node is the right child of its parent
// only call after checking HasParent
func (p *Node) IsRightChild() bool {
	return p == p.up.right
}
