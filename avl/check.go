// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Check - full consistency scan for test and debug use
//
// verifies at every node: BST ordering within the enclosing bounds,
// |height(left)-height(right)| <= 1, a correctly cached height, and
// that the stored count matches the reachable nodes; O(n), not for
// production hot paths
func (tree *Tree) Check() bool {
	tree.m.Lock()
	defer tree.m.Unlock()
	ok, n := check(tree.root, nil, nil)
	return ok && n == tree.count
}

// internal: consistency checker, lo/hi are exclusive bounds
func check(p *Node, lo Item, hi Item) (bool, int) {
	if nil == p {
		return true, 0
	}
	if nil != lo && lo.Compare(p.key) >= 0 {
		return false, 0
	}
	if nil != hi && hi.Compare(p.key) <= 0 {
		return false, 0
	}
	if b := balanceFactor(p); b > 1 || b < -1 {
		return false, 0
	}
	if p.height != 1+max(height(p.left), height(p.right)) {
		return false, 0
	}
	okL, nL := check(p.left, lo, p.key)
	if !okL {
		return false, 0
	}
	okR, nR := check(p.right, p.key, hi)
	if !okR {
		return false, 0
	}
	return true, 1 + nL + nR
}
