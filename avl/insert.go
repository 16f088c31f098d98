// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key and associated value to the tree
// returns true if a new node was added, false if the key was
// already present and only its value was overwritten
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count += 1
		return true
	}

	p := tree.root
	for {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			if nil == p.left {
				q := newNode(key, value)
				q.up = p
				p.left = q
				tree.count += 1
				tree.rebalanceUpward(q)
				return true
			}
			p = p.left
		case -1: // p.key < key
			if nil == p.right {
				q := newNode(key, value)
				q.up = p
				p.right = q
				tree.count += 1
				tree.rebalanceUpward(q)
				return true
			}
			p = p.right
		default: // duplicate key: overwrite the value
			p.value = value
			return false
		}
	}
}
