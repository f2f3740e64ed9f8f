// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a thread-safe AVL balanced tree of ordered keys
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.  This version
// caches the height of each subtree instead of a balance factor,
// carries no parent pointers, and serialises every public operation
// behind a single mutex.  The recursive core below the mutex never
// locks, so no public operation ever needs to re-acquire.
//
// Enumeration copies the keys to a snapshot while the lock is held
// and releases before the caller consumes it, so an iteration never
// observes a partially rotated tree and is unaffected by later
// mutations.
//
// A duplicate key is rejected, not overwritten: the tree is an
// ordered set of keys, not a key to value map.  A caller that needs
// to move a key deletes the old one and inserts the new one.
//
// Optional limits guard resources: a maximum node count to bound
// memory and a maximum depth as a stack overflow backstop.  Balancing
// keeps the depth near 1.44·log2(n), so the depth limit only matters
// under pathological configuration.
package avl
