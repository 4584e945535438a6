package rbtree

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrRedRoot      = errors.New("rbtree: root is red")
	ErrRedViolation = errors.New("rbtree: red node has red parent")
	ErrBlackHeight  = errors.New("rbtree: unequal black height")
	ErrOrder        = errors.New("rbtree: ordering violated")
	ErrBrokenLink   = errors.New("rbtree: child does not point back to parent")
	ErrSize         = errors.New("rbtree: node count does not match Len")
)

// Validate checks every red-black and ordering invariant and returns
// the black height of the root (nil leaves excluded). It walks the
// whole tree; use it in tests and debugging, not on hot paths.
func (t *Tree[T]) Validate() (int, error) {
	if t.root == nil {
		if t.size != 0 {
			return 0, errors.Wrapf(ErrSize, "empty tree with Len %d", t.size)
		}
		return 0, nil
	}
	if t.root.parent != nil {
		return 0, errors.Wrapf(ErrBrokenLink, "root %v has a parent", t.root.value)
	}
	if t.root.color == Red {
		return 0, errors.Wrapf(ErrRedRoot, "root %v", t.root.value)
	}

	leafHeight := -1
	count := 0
	// depth counts the black nodes above n on the path from the root.
	stack := []frame[T]{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.n
		count++

		if n.color == Red && n.parent.IsRed() {
			return 0, errors.Wrapf(ErrRedViolation, "node %v under %v", n.value, n.parent.value)
		}
		blacks := f.depth
		if n.color == Black {
			blacks++
		}

		for _, c := range []*Node[T]{n.left, n.right} {
			if c == nil {
				if leafHeight < 0 {
					leafHeight = blacks
				} else if blacks != leafHeight {
					return 0, errors.Wrapf(ErrBlackHeight, "path through %v has %d, want %d", n.value, blacks, leafHeight)
				}
				continue
			}
			if c.parent != n {
				return 0, errors.Wrapf(ErrBrokenLink, "child %v of %v", c.value, n.value)
			}
			stack = append(stack, frame[T]{c, blacks})
		}
	}
	if count != t.size {
		return 0, errors.Wrapf(ErrSize, "counted %d nodes, Len %d", count, t.size)
	}
	if err := t.checkOrder(); err != nil {
		return 0, err
	}
	return leafHeight, nil
}

// checkOrder verifies the in-order sequence is non-decreasing.
// Rotations may lift an equal value above its duplicate, so equal
// values are accepted on either side of a node.
func (t *Tree[T]) checkOrder() error {
	var prev *Node[T]
	var stack []*Node[T]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if prev != nil && t.compare(prev.value, n.value) > 0 {
			return errors.Wrapf(ErrOrder, "%v precedes %v in order", prev.value, n.value)
		}
		prev = n
		n = n.right
	}
	return nil
}
