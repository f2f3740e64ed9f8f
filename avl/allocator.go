// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Item - a key must provide a total order over its own type
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
	String() string          // for diagnostic output
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // cached height, leaf = 1
}

// Key - read the key from a node
func (p *Node) Key() Item {
	return p.key
}

// Height - cached height of the subtree rooted here
func (p *Node) Height() int {
	return p.height
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key Item) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			height: 1,
		}
	}
	p := pool
	pool = p.right
	p.key = key
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.right = pool // use as free list pointer

	node.left = nil
	node.key = nil
	node.height = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// reclaim a whole subtree, post-order so children go first
func freeSubtree(node *Node) {
	if nil == node {
		return
	}
	freeSubtree(node.left)
	freeSubtree(node.right)
	freeNode(node)
}
