// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// splice q into the position p occupies, updating the root pointer
// or the child link of p's parent as appropriate
// q may be nil when a node is removed without replacement
// p keeps its own child links
func (tree *Tree) replaceNode(p *Node, q *Node) {
	if nil != q {
		q.up = p.up
	}
	if nil == p.up {
		tree.root = q
	} else if p == p.up.left {
		p.up.left = q
	} else {
		p.up.right = q
	}
}

// rotate the sub-tree rooted at p to the right, promoting its left
// child; returns the new sub-tree root
//
// cached heights are recomputed demoted node first since it becomes
// a child of the promoted one
func (tree *Tree) rotateRight(p *Node) *Node {
	q := p.left
	p.left = q.right
	if nil != p.left {
		p.left.up = p
	}
	tree.replaceNode(p, q)
	q.right = p
	p.up = q
	p.updateHeight()
	q.updateHeight()
	return q
}

// mirror image of rotateRight, promoting the right child
func (tree *Tree) rotateLeft(p *Node) *Node {
	q := p.right
	p.right = q.left
	if nil != p.right {
		p.right.up = p
	}
	tree.replaceNode(p, q)
	q.left = p
	p.up = q
	p.updateHeight()
	q.updateHeight()
	return q
}

// double rotation for a left-heavy node whose left child leans right
func (tree *Tree) rotateLeftRight(p *Node) *Node {
	tree.rotateLeft(p.left)
	return tree.rotateRight(p)
}

// double rotation for a right-heavy node whose right child leans left
func (tree *Tree) rotateRightLeft(p *Node) *Node {
	tree.rotateRight(p.right)
	return tree.rotateLeft(p)
}
