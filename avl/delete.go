// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Delete - remove the node with a specific key
// returns the value that was stored under the key
// returns a not found error holding the key if it is not present
func (tree *Tree) Delete(key Item) (interface{}, error) {
	p := tree.Search(key)
	if nil == p {
		return nil, fault.NotFoundError(fmt.Sprintf("no node with key: %v", key))
	}
	value := p.value
	tree.deleteNode(p)
	tree.count -= 1
	freeNode(p) // return deleted node to pool
	return value, nil
}

// find the node that will take over the position of a deleted node:
// the rightmost node of the left sub-tree if one exists, otherwise
// the leftmost node of the right sub-tree
// returns nil only for a childless node
func replacement(p *Node) *Node {
	if nil != p.left {
		s := p.left
		for nil != s.right {
			s = s.right
		}
		return s
	}
	if nil != p.right {
		s := p.right
		for nil != s.left {
			s = s.left
		}
		return s
	}
	return nil
}

// internal: unlink one node, rebalancing the remaining tree
// the unlinked node keeps its key and value for the caller
func (tree *Tree) deleteNode(p *Node) {
	switch {
	case nil != p.left && nil != p.right, nil == p.up:
		// a node with two children, or the root with fewer:
		// relink the closest-keyed node into this position
		s := replacement(p)
		if nil == s { // childless root
			tree.root = nil
			return
		}

		// extract the replacement from its current position;
		// this recursion ends in one of the simpler cases below
		// and its rebalancing may restructure the sub-trees
		// still hanging off p, so p's links are re-read after
		tree.deleteNode(s)

		tree.replaceNode(p, s)
		s.left = p.left
		if nil != s.left {
			s.left.up = s
		}
		s.right = p.right
		if nil != s.right {
			s.right.up = s
		}
		tree.rebalanceUpward(s)

	case nil != p.left: // only a left child
		c := p.left
		tree.replaceNode(p, c)
		tree.rebalanceUpward(c)

	case nil != p.right: // only a right child
		c := p.right
		tree.replaceNode(p, c)
		tree.rebalanceUpward(c)

	default: // a leaf below the root
		parent := p.up
		tree.replaceNode(p, nil)
		tree.rebalanceUpward(parent)
	}
}
