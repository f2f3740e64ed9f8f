// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific key
//
// returns nil when the key is absent; the lock is still taken so the
// read observes a fully balanced tree
func (tree *Tree) Search(key Item) (*Node, error) {
	if err := validateKey(key); nil != err {
		return nil, err
	}
	tree.m.Lock()
	defer tree.m.Unlock()
	return search(tree.root, key), nil
}

// Contains - membership test
//
// delegates to the unlocked search routine while holding the lock
func (tree *Tree) Contains(key Item) (bool, error) {
	if err := validateKey(key); nil != err {
		return false, err
	}
	tree.m.Lock()
	defer tree.m.Unlock()
	return nil != search(tree.root, key), nil
}

// internal: iterative descent, assumes the lock is held
func search(p *Node, key Item) *Node {
	for nil != p {
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
