package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Representation invariant validation utilities. These only ever read the
// structure; they are meant for tests and for the RepOK assertion gate.

var (
	ErrRootViolation  = errors.New("[fbtree] black root violation")
	ErrColorViolation = errors.New("[fbtree] double-black color violation")
	ErrRedViolation   = errors.New("[fbtree] red-red violation")
	ErrBlackViolation = errors.New("[fbtree] black-height violation")
	ErrOrderViolation = errors.New("[fbtree] bst order violation")
	ErrChainViolation = errors.New("[fbtree] bucket chain violation")
)

// RootViolationValidate checks that the root, if present, is black.
func RootViolationValidate(root *Block) error {
	if root != nil && root.color != Black {
		return ErrRootViolation
	}
	return nil
}

// ColorViolationValidate checks that every stable node carries a color from
// the {Black, Red} domain. The transient deficiency marker of a removal is
// a tagged return value, not a color, so any other value means corruption.
func ColorViolationValidate(root *Block) error {
	if root == nil {
		return nil
	}
	if root.color != Black && root.color != Red {
		return ErrColorViolation
	}
	if err := ColorViolationValidate(root.left); err != nil {
		return err
	}
	return ColorViolationValidate(root.right)
}

// RedViolationValidate checks that no red node has a red child.
func RedViolationValidate(root *Block) error {
	if root == nil {
		return nil
	}
	if isRed(root) && (isRed(root.left) || isRed(root.right)) {
		return ErrRedViolation
	}
	if err := RedViolationValidate(root.left); err != nil {
		return err
	}
	return RedViolationValidate(root.right)
}

// BlackViolationValidate checks that every path from a node down to any leaf
// crosses the same number of black nodes.
func BlackViolationValidate(root *Block) error {
	if root == nil {
		return nil
	}
	leftHeight := BlackHeight(root.left)
	rightHeight := BlackHeight(root.right)
	if isBlack(root.left) {
		leftHeight++
	}
	if isBlack(root.right) {
		rightHeight++
	}
	if leftHeight != rightHeight {
		return fmt.Errorf("%w: left %d, right %d", ErrBlackViolation, leftHeight, rightHeight)
	}
	if err := BlackViolationValidate(root.left); err != nil {
		return err
	}
	return BlackViolationValidate(root.right)
}

// OrderViolationValidate checks strict BST ordering of the tree proper and
// that every chain member shares its bucket head's capacity.
func OrderViolationValidate(root *Block) error {
	return orderValidate(root, 0, false, ^uint64(0), false)
}

func orderValidate(n *Block, lo uint64, hasLo bool, hi uint64, hasHi bool) error {
	if n == nil {
		return nil
	}
	if (hasLo && n.capacity <= lo) || (hasHi && n.capacity >= hi) {
		return ErrOrderViolation
	}
	for aux := n.next; aux != nil; aux = aux.next {
		if aux.capacity != n.capacity || aux.left != nil || aux.right != nil {
			return ErrChainViolation
		}
	}
	if err := orderValidate(n.left, lo, hasLo, n.capacity, true); err != nil {
		return err
	}
	return orderValidate(n.right, n.capacity, true, hi, hasHi)
}

// RepOK asserts the whole representation invariant:
//   - the root of the tree is black;
//   - no node carries the transient double-black marker;
//   - if a node is red, both children are black;
//   - every path from a node down to any leaf contains the same number of
//     black nodes;
//   - capacities strictly increase left to right, duplicates live in chains.
//
// A violation means the structure is corrupted beyond recovery, so RepOK
// panics instead of returning an error. Otherwise the root is returned
// unchanged.
func RepOK(root *Block) *Block {
	err := multierr.Combine(
		RootViolationValidate(root),
		ColorViolationValidate(root),
		RedViolationValidate(root),
		BlackViolationValidate(root),
		OrderViolationValidate(root),
	)
	if err != nil {
		panic(fmt.Sprintf("[fbtree] representation invariant violated: %v", err))
	}
	return root
}
