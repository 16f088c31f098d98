// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// record the position of each key using only public accessors
type nodeShape struct {
	key     int
	depth   uint
	balance int
	parent  interface{}
}

func treeShape(tree *avl.Tree, keys []int) []nodeShape {
	shape := make([]nodeShape, 0, len(keys))
	for _, k := range keys {
		node := tree.Search(intItem(k))
		if nil == node {
			continue
		}
		parent := interface{}(nil)
		if node.HasParent() {
			parent = node.Parent().Key()
		}
		shape = append(shape, nodeShape{
			key:     k,
			depth:   node.Depth(),
			balance: node.BalanceFactor(),
			parent:  parent,
		})
	}
	return shape
}

// a duplicate insert must overwrite the stored value and leave the
// node count unchanged
func TestInsertDuplicateOverwrites(t *testing.T) {
	tree := avl.New()

	added := tree.Insert(intItem(10), "first")
	assert.True(t, added, "first insert added no node")
	added = tree.Insert(intItem(20), "second")
	assert.True(t, added, "second insert added no node")

	added = tree.Insert(intItem(10), "replaced")
	assert.False(t, added, "duplicate insert added a node")
	assert.Equal(t, 2, tree.Count(), "wrong node count")

	node := tree.Search(intItem(10))
	assert.NotNil(t, node, "key: 10 not found")
	assert.Equal(t, "replaced", node.Value(), "value was not overwritten")
}

// a value update must not cause any structural change
func TestUpdateValue(t *testing.T) {
	keys := []int{60, 41, 74, 16, 53, 65, 25}

	tree := avl.New()
	for _, k := range keys {
		tree.Insert(intItem(k), fmt.Sprintf("value-%d", k))
	}

	before := treeShape(tree, keys)

	err := tree.UpdateValue(intItem(41), "updated-41")
	assert.Nil(t, err, "update error")

	node := tree.Search(intItem(41))
	assert.NotNil(t, node, "key: 41 not found")
	assert.Equal(t, "updated-41", node.Value(), "value not updated")

	assert.Equal(t, before, treeShape(tree, keys), "tree shape changed")

	err = tree.UpdateValue(intItem(999), "nothing")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class: %v", err)
	assert.Contains(t, err.Error(), "999", "error does not name the key")
}

// reverse lookup returns the key of the first node in scan order
func TestSearchValue(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(2), "two")
	tree.Insert(intItem(1), "one")
	tree.Insert(intItem(3), "three")

	assert.Equal(t, intItem(1), tree.SearchValue("one"), "wrong key for value")
	assert.Equal(t, intItem(3), tree.SearchValue("three"), "wrong key for value")
	assert.Nil(t, tree.SearchValue("missing"), "unexpected key for absent value")

	// several nodes store the same value: the scan order is node,
	// left sub-tree then right sub-tree, so the root wins here
	shared := avl.New()
	shared.Insert(intItem(2), "same")
	shared.Insert(intItem(1), "same")
	shared.Insert(intItem(3), "same")
	assert.Equal(t, intItem(2), shared.SearchValue("same"), "wrong first match")
}

// absence is an error only for update and delete
func TestNotFound(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(1), "one")

	assert.Nil(t, tree.Search(intItem(999)), "unexpected node")
	assert.Nil(t, tree.SearchValue("nine"), "unexpected key")

	_, err := tree.Delete(intItem(999))
	assert.True(t, fault.IsErrNotFound(err), "wrong error class: %v", err)
	assert.Contains(t, err.Error(), "999", "error does not name the key")

	err = tree.UpdateValue(intItem(999), "nine")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class: %v", err)

	// nothing was disturbed
	assert.Equal(t, 1, tree.Count(), "count changed")
	node := tree.Search(intItem(1))
	assert.NotNil(t, node, "key: 1 lost")
	assert.Equal(t, "one", node.Value(), "value changed")
}

func TestNodePredicates(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(2), "two")
	tree.Insert(intItem(1), "one")
	tree.Insert(intItem(3), "three")

	root := tree.Root()
	assert.NotNil(t, root, "empty tree")
	assert.True(t, root.HasKey(intItem(2)), "root key mismatch")
	assert.True(t, root.HasValue("two"), "root value mismatch")
	assert.False(t, root.HasParent(), "root has a parent")
	assert.True(t, root.HasBothChildren(), "root missing children")
	assert.True(t, root.HasLeftChild(), "root missing left child")
	assert.True(t, root.HasRightChild(), "root missing right child")
	assert.False(t, root.IsLeaf(), "root is a leaf")
	assert.True(t, root.IsBalanced(), "root out of balance")
	assert.Equal(t, uint(0), root.Depth(), "root depth")

	one := tree.Search(intItem(1))
	assert.NotNil(t, one, "key: 1 not found")
	assert.True(t, one.IsLeaf(), "leaf has children")
	assert.True(t, one.HasParent(), "leaf has no parent")
	assert.True(t, one.IsLeftChild(), "not a left child")
	assert.False(t, one.IsRightChild(), "a right child")
	assert.Equal(t, root, one.Parent(), "wrong parent")
	assert.Equal(t, uint(1), one.Depth(), "wrong depth")

	three := tree.Search(intItem(3))
	assert.NotNil(t, three, "key: 3 not found")
	assert.True(t, three.IsRightChild(), "not a right child")
	assert.False(t, three.HasKey(intItem(2)), "foreign key matched")
	assert.False(t, three.HasValue("two"), "foreign value matched")
}

func TestHeight(t *testing.T) {
	tree := avl.New()
	assert.Equal(t, -1, tree.Height(), "empty tree height")
	assert.True(t, tree.IsEmpty(), "tree not empty")

	tree.Insert(intItem(1), "one")
	assert.Equal(t, 0, tree.Height(), "single node height")

	// ascending inserts pack seven nodes into a full tree
	for k := 2; k <= 7; k += 1 {
		tree.Insert(intItem(k), k)
	}
	assert.Equal(t, 7, tree.Count(), "wrong count")
	assert.Equal(t, 2, tree.Height(), "seven node height")
}
