// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/scoretree/fault"
)

// DefaultMaxDepth - depth ceiling used when no explicit limit is given
//
// a balanced tree of this depth would need around 2^700 nodes, so the
// limit only trips on a corrupted or misconfigured tree
const DefaultMaxDepth = 1000

// Tree - type to hold the root node of a tree
//
// the mutex guards root and count; every public operation locks it
// exactly once and the recursive internals never lock
type Tree struct {
	m        sync.Mutex
	root     *Node
	count    int
	maxSize  int // zero = unlimited
	maxDepth int
}

// New - create an initially empty tree without a size limit
func New() *Tree {
	return NewWithLimits(0, 0)
}

// NewWithLimits - create an initially empty tree with resource limits
//
// maxSize limits the number of stored keys, zero or negative for
// unlimited; maxDepth limits the recursion depth, zero or negative
// selects DefaultMaxDepth.  Both are fixed for the life of the tree.
func NewWithLimits(maxSize int, maxDepth int) *Tree {
	if maxSize < 0 {
		maxSize = 0
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Tree{
		root:     nil,
		count:    0,
		maxSize:  maxSize,
		maxDepth: maxDepth,
	}
}

// IsEmpty - true if tree contains no keys
func (tree *Tree) IsEmpty() bool {
	tree.m.Lock()
	defer tree.m.Unlock()
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree) Count() int {
	tree.m.Lock()
	defer tree.m.Unlock()
	return tree.count
}

// Height - current height of the tree, zero when empty
func (tree *Tree) Height() int {
	tree.m.Lock()
	defer tree.m.Unlock()
	return height(tree.root)
}

// Clear - discard all keys, keeping the configured limits
func (tree *Tree) Clear() {
	tree.m.Lock()
	defer tree.m.Unlock()
	tree.clear()
}

// internal: assumes the lock is held
func (tree *Tree) clear() {
	freeSubtree(tree.root)
	tree.root = nil
	tree.count = 0
}

// ensure a key is usable before any tree access
//
// a nil key is rejected outright; a key whose Compare panics against
// its own value, or does not report equality with itself, cannot
// provide the total order the tree relies on
func validateKey(key Item) (err error) {
	if nil == key {
		return fault.NilKey
	}
	defer func() {
		if nil != recover() {
			err = fault.KeyNotOrderable
		}
	}()
	if 0 != key.Compare(key) {
		err = fault.KeyNotOrderable
	}
	return err
}
