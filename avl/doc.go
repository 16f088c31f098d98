// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced key/value tree with parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its own sub-tree (a leaf has height
// zero) so that the balance factor of any node is available in
// constant time and insert, update and delete all stay logarithmic
// in the node count.
//
// An insert with an already present key overwrites the stored value
// and reports that no node was added.  Delete does not copy data
// around: a node with two children is replaced by relinking its
// closest-keyed node (the rightmost node of the left sub-tree when
// one exists, otherwise the leftmost node of the right sub-tree), so
// surviving nodes keep stable addresses across any rebalancing.
package avl
