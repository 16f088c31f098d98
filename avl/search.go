// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node with a specific key
// returns nil if the key is not present
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// SearchValue - find the key of the first node storing a value
//
// the scan visits each node before its left sub-tree and its left
// sub-tree before its right one; the first equal value in that order
// wins, so nodes storing the same value are not distinguished further
// values are not indexed and the cost is always proportional to the
// tree size
// returns nil if no node stores the value
func (tree *Tree) SearchValue(value interface{}) Item {
	p := searchValue(value, tree.root)
	if nil == p {
		return nil
	}
	return p.key
}

// internal: recursive scan for a value
func searchValue(value interface{}, p *Node) *Node {
	if nil == p {
		return nil
	}
	if p.HasValue(value) {
		return p
	}
	if q := searchValue(value, p.left); nil != q {
		return q
	}
	return searchValue(value, p.right)
}
