// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// restore the balance of a single node, rotating if necessary
// returns the node now occupying the position
//
// a balance factor above +1 guarantees a left child and one below
// -1 a right child, so the child accesses cannot fault
func (tree *Tree) rebalance(p *Node) *Node {
	bf := p.BalanceFactor()
	if bf > 1 { // left-heavy
		if p.left.BalanceFactor() >= 0 {
			return tree.rotateRight(p)
		}
		return tree.rotateLeftRight(p)
	} else if bf < -1 { // right-heavy
		if p.right.BalanceFactor() <= 0 {
			return tree.rotateLeft(p)
		}
		return tree.rotateRightLeft(p)
	}
	return p
}

// walk from p towards the root after a structural change,
// recomputing each cached height and rotating any node that has
// become unbalanced
//
// a rotation recomputes the heights of the nodes it moves, so the
// walk resumes from the parent of the promoted node
func (tree *Tree) rebalanceUpward(p *Node) {
	for nil != p {
		p.updateHeight()
		p = tree.rebalance(p).up
	}
}
