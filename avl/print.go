// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree; showHeight additionally
// prints the cached height and balance factor of each node
func (tree *Tree) Print(w io.Writer, showHeight bool) int {
	tree.m.Lock()
	defer tree.m.Unlock()
	return printTree(w, tree.root, "", root, showHeight)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *Node, prefix string, br branch, showHeight bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, showHeight)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if showHeight {
		fmt.Fprintf(w, "%q ^%d %+2d\n", p.key, p.height, balanceFactor(p))
	} else {
		fmt.Fprintf(w, "%q\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, showHeight)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
