// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key, nil when empty
func (tree *Tree) First() *Node {
	tree.m.Lock()
	defer tree.m.Unlock()
	return first(tree.root)
}

// Last - return the node with the highest key, nil when empty
func (tree *Tree) Last() *Node {
	tree.m.Lock()
	defer tree.m.Unlock()
	return last(tree.root)
}

// internal: lowest node in a sub-tree
func first(p *Node) *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func last(p *Node) *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// InOrder - all keys in ascending order
//
// the keys are copied to a snapshot under the lock; the returned
// slice is independent of any later mutation
func (tree *Tree) InOrder() []Item {
	tree.m.Lock()
	defer tree.m.Unlock()
	return inOrder(tree.root, make([]Item, 0, tree.count))
}

// PreOrder - keys in node-left-right order, a structural export
func (tree *Tree) PreOrder() []Item {
	tree.m.Lock()
	defer tree.m.Unlock()
	return preOrder(tree.root, make([]Item, 0, tree.count))
}

// PostOrder - keys in left-right-node order, a structural export
func (tree *Tree) PostOrder() []Item {
	tree.m.Lock()
	defer tree.m.Unlock()
	return postOrder(tree.root, make([]Item, 0, tree.count))
}

func inOrder(p *Node, buffer []Item) []Item {
	if nil == p {
		return buffer
	}
	buffer = inOrder(p.left, buffer)
	buffer = append(buffer, p.key)
	return inOrder(p.right, buffer)
}

func preOrder(p *Node, buffer []Item) []Item {
	if nil == p {
		return buffer
	}
	buffer = append(buffer, p.key)
	buffer = preOrder(p.left, buffer)
	return preOrder(p.right, buffer)
}

func postOrder(p *Node, buffer []Item) []Item {
	if nil == p {
		return buffer
	}
	buffer = postOrder(p.left, buffer)
	buffer = postOrder(p.right, buffer)
	return append(buffer, p.key)
}

// ToList - export the current sorted content
func (tree *Tree) ToList() []Item {
	return tree.InOrder()
}

// FromList - clear the tree and insert each key in the given order
//
// duplicate keys in the input are silently skipped, matching the
// Insert duplicate policy; all keys are validated before the existing
// content is discarded, so an invalid key leaves the tree unchanged;
// a capacity or depth failure aborts the load part way and is
// returned to the caller
func (tree *Tree) FromList(keys []Item) error {
	for _, key := range keys {
		if err := validateKey(key); nil != err {
			return err
		}
	}

	tree.m.Lock()
	defer tree.m.Unlock()

	tree.clear()
	for _, key := range keys {
		if _, err := tree.insert(key); nil != err {
			return err
		}
	}
	return nil
}
