// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package registry keeps student records in an AVL tree keyed by roll number.
package registry

import (
	"fmt"
	"iter"
)

type avlNode struct {
	Record Record
	Height int
	Left   *avlNode
	Right  *avlNode
}

// Index is the operation set the shell uses to talk to a record store.
type Index interface {
	Insert(rec Record) error
	Find(key int) (Record, error)
	Update(key int, f Fields) error
	Remove(key int) error
	InOrder() iter.Seq[Record]
	Len() int
}

// Tree is a height-balanced binary search tree of Records. It is not safe for
// concurrent use.
type Tree struct {
	root *avlNode
	size int
}

var _ Index = (*Tree)(nil)

func NewTree() *Tree {
	return &Tree{}
}

func (tree *Tree) getHeight(node *avlNode) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (tree *Tree) updateHeight(node *avlNode) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *Tree) getBalanceFactor(node *avlNode) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}

func (tree *Tree) rotateLeft(node *avlNode) *avlNode {
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	// Lower node first, pivot is now its parent.
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *Tree) rotateRight(node *avlNode) *avlNode {
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// rebalance restores the AVL bound at node and returns the root of the
// (possibly rotated) subtree.
func (tree *Tree) rebalance(node *avlNode) *avlNode {
	tree.updateHeight(node)
	balanceFactor := tree.getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(node.Left) >= 0 {
			return tree.rotateRight(node)
		}
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(node.Right) <= 0 {
			return tree.rotateLeft(node)
		}
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// Insert stores rec. If rec.Key is already present the tree is left untouched
// and ErrDuplicateKey is returned.
func (tree *Tree) Insert(rec Record) error {
	root, err := tree.insertRecursive(tree.root, rec)
	if err != nil {
		return err
	}
	tree.root = root
	tree.size++
	return nil
}

func (tree *Tree) insertRecursive(node *avlNode, rec Record) (*avlNode, error) {
	if node == nil {
		return &avlNode{Record: rec, Height: 1}, nil
	}

	var err error
	switch {
	case rec.Key < node.Record.Key:
		node.Left, err = tree.insertRecursive(node.Left, rec)
	case rec.Key > node.Record.Key:
		node.Right, err = tree.insertRecursive(node.Right, rec)
	default:
		return node, keyErr("insert", rec.Key, ErrDuplicateKey)
	}
	if err != nil {
		return node, err
	}

	return tree.rebalance(node), nil
}

// Find returns a copy of the record stored under key.
func (tree *Tree) Find(key int) (Record, error) {
	node := tree.search(key)
	if node == nil {
		return Record{}, keyErr("find", key, ErrNotFound)
	}
	return node.Record, nil
}

// Contains reports whether a record with key is stored.
func (tree *Tree) Contains(key int) bool {
	return tree.search(key) != nil
}

func (tree *Tree) search(key int) *avlNode {
	node := tree.root
	for node != nil {
		switch {
		case key < node.Record.Key:
			node = node.Left
		case key > node.Record.Key:
			node = node.Right
		default:
			return node
		}
	}
	return nil
}

// Update overwrites every field except the key. The tree shape does not change.
func (tree *Tree) Update(key int, f Fields) error {
	node := tree.search(key)
	if node == nil {
		return keyErr("update", key, ErrNotFound)
	}
	node.Record.Fields = f
	return nil
}

// Remove deletes the record stored under key.
func (tree *Tree) Remove(key int) error {
	if !tree.Contains(key) {
		return keyErr("remove", key, ErrNotFound)
	}
	tree.root = tree.deleteRecursive(tree.root, key)
	tree.size--
	return nil
}

func (tree *Tree) deleteRecursive(node *avlNode, key int) *avlNode {
	if node == nil {
		return nil
	}

	if key < node.Record.Key {
		node.Left = tree.deleteRecursive(node.Left, key)
	} else if key > node.Record.Key {
		node.Right = tree.deleteRecursive(node.Right, key)
	} else {
		if node.Left == nil {
			return node.Right
		}
		if node.Right == nil {
			return node.Left
		}
		// Two children: take over the successor's record, then drop the
		// successor from the right subtree.
		successor := tree.findMin(node.Right)
		node.Record = successor.Record
		node.Right = tree.deleteRecursive(node.Right, successor.Record.Key)
	}

	return tree.rebalance(node)
}

func (tree *Tree) findMin(node *avlNode) *avlNode {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

func (tree *Tree) findMax(node *avlNode) *avlNode {
	for node.Right != nil {
		node = node.Right
	}
	return node
}

// InOrder yields records in ascending key order. Each range over the returned
// sequence walks the tree as it is when the range starts; the tree must not be
// modified until the range finishes.
func (tree *Tree) InOrder() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		inOrderWalk(tree.root, yield)
	}
}

func inOrderWalk(node *avlNode, yield func(Record) bool) bool {
	if node == nil {
		return true
	}
	if !inOrderWalk(node.Left, yield) {
		return false
	}
	if !yield(node.Record) {
		return false
	}
	return inOrderWalk(node.Right, yield)
}

// Keys returns every stored roll number in ascending order.
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.size)
	for rec := range tree.InOrder() {
		keys = append(keys, rec.Key)
	}
	return keys
}

// Len returns the number of stored records.
func (tree *Tree) Len() int {
	return tree.size
}

// Height returns the height of the tree; 0 when empty.
func (tree *Tree) Height() int {
	return tree.getHeight(tree.root)
}

// Min returns the record with the smallest roll number.
func (tree *Tree) Min() (Record, bool) {
	if tree.root == nil {
		return Record{}, false
	}
	return tree.findMin(tree.root).Record, true
}

// Max returns the record with the largest roll number.
func (tree *Tree) Max() (Record, bool) {
	if tree.root == nil {
		return Record{}, false
	}
	return tree.findMax(tree.root).Record, true
}

// Check walks the whole tree and reports the first broken invariant: key
// order, a stale cached height, a balance factor outside [-1, 1], or a node
// count that disagrees with Len.
func (tree *Tree) Check() error {
	count := 0
	if _, err := tree.checkNode(tree.root, nil, nil, &count); err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("size mismatch: counted %d nodes, tracked %d", count, tree.size)
	}
	return nil
}

func (tree *Tree) checkNode(node *avlNode, low, high *int, count *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	key := node.Record.Key
	if low != nil && key <= *low {
		return 0, fmt.Errorf("key %d is not greater than ancestor %d", key, *low)
	}
	if high != nil && key >= *high {
		return 0, fmt.Errorf("key %d is not less than ancestor %d", key, *high)
	}
	*count++

	lh, err := tree.checkNode(node.Left, low, &key, count)
	if err != nil {
		return 0, err
	}
	rh, err := tree.checkNode(node.Right, &key, high, count)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.Height != h {
		return 0, fmt.Errorf("key %d caches height %d, actual %d", key, node.Height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("key %d has balance factor %d", key, bf)
	}
	return h, nil
}
