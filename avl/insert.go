// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/scoretree/fault"
)

// Insert - add a new key to the tree
//
// returns true if a new node was created, false if the key was
// already present; a duplicate is a normal no-op, not an error
func (tree *Tree) Insert(key Item) (bool, error) {
	if err := validateKey(key); nil != err {
		return false, err
	}
	tree.m.Lock()
	defer tree.m.Unlock()
	return tree.insert(key)
}

// internal: assumes the lock is held
//
// the capacity check happens here, inside the critical section, so a
// concurrent pair of inserts cannot both pass the same free slot
func (tree *Tree) insert(key Item) (bool, error) {
	if 0 != tree.maxSize && tree.count >= tree.maxSize {
		return false, fault.CapacityLimit
	}
	root, added, err := insert(tree.root, key, 1, tree.maxDepth)
	if nil != err {
		return false, err
	}
	tree.root = root
	if added {
		tree.count += 1
	}
	return added, nil
}

// recursive insert routine
//
// descends to the insertion point, then recomputes the height and
// rebalances at every node on the way back up; a depth error unwinds
// before any node is created so the tree is left unchanged
func insert(p *Node, key Item, depth int, maxDepth int) (*Node, bool, error) {
	if depth > maxDepth {
		return p, false, fault.DepthLimit
	}
	if nil == p { // insert new node
		return newNode(key), true, nil
	}

	added := false
	err := error(nil)
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, added, err = insert(p.left, key, depth+1, maxDepth)
	case c < 0: // p.key < key
		p.right, added, err = insert(p.right, key, depth+1, maxDepth)
	default: // already present
		return p, false, nil
	}
	if nil != err || !added {
		return p, added, err
	}

	p.height = 1 + max(height(p.left), height(p.right))
	return rebalance(p), true, nil
}
