// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent subtree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor: height(left) - height(right)
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

// single right rotation
//
//	      p              p1
//	     / \            /  \
//	    p1  T3    =>   T1   p
//	   /  \                / \
//	  T1   T2            T2   T3
//
// heights are recomputed child before parent: p drops below p1, so p
// must be updated first
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.height = 1 + max(height(p.left), height(p.right))
	p1.height = 1 + max(height(p1.left), height(p1.right))

	return p1
}

// single left rotation, mirror of rotateRight
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.height = 1 + max(height(p.left), height(p.right))
	p1.height = 1 + max(height(p1.left), height(p1.right))

	return p1
}

// restore the AVL invariant at p after a structural change below it
//
// the decision depends only on the current balance factors, never on
// which key moved, so the same routine serves insert and delete
func rebalance(p *Node) *Node {
	balance := balanceFactor(p)

	if balance > 1 { // left-heavy
		if balanceFactor(p.left) >= 0 {
			// LL: single right rotation
			return rotateRight(p)
		}
		// LR: rotate the left child left first
		p.left = rotateLeft(p.left)
		return rotateRight(p)
	}

	if balance < -1 { // right-heavy
		if balanceFactor(p.right) <= 0 {
			// RR: single left rotation
			return rotateLeft(p)
		}
		// RL: rotate the right child right first
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}

	return p
}
