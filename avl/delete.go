// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove a specific key from the tree
//
// returns true if the key was found and removed, false otherwise; the
// shape, count and content are untouched when the key is absent
func (tree *Tree) Delete(key Item) (bool, error) {
	if err := validateKey(key); nil != err {
		return false, err
	}
	tree.m.Lock()
	defer tree.m.Unlock()

	root, removed := delete(tree.root, key)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed, nil
}

// internal delete routine
//
// three structural cases at the matching node:
//  1. no children: unlink it
//  2. one child: splice the child into its place
//  3. two children: copy the in-order successor key here, then remove
//     the successor from the right subtree (it has at most one child,
//     so that removal terminates in case 1 or 2)
//
// height and balance are reapplied at every node on the path back up
func delete(p *Node, key Item) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, removed = delete(p.left, key)
	case c < 0: // p.key < key
		p.right, removed = delete(p.right, key)
	default: // found: remove p
		if nil == p.left {
			r := p.right
			freeNode(p) // return deleted node to pool
			return r, true
		}
		if nil == p.right {
			l := p.left
			freeNode(p)
			return l, true
		}
		successor := first(p.right)
		p.key = successor.key
		p.right, _ = delete(p.right, successor.key)
		removed = true
	}
	if !removed {
		return p, false
	}

	p.height = 1 + max(height(p.left), height(p.right))
	return rebalance(p), true
}
