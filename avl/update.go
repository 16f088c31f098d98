// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// UpdateValue - replace the value stored under a key
// returns a not found error holding the key if it is not present
// the tree structure is untouched so no rebalancing happens
func (tree *Tree) UpdateValue(key Item, value interface{}) error {
	p := tree.Search(key)
	if nil == p {
		return fault.NotFoundError(fmt.Sprintf("no node with key: %v", key))
	}
	p.value = value
	return nil
}
