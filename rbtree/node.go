package rbtree

type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	default:
		return "?"
	}
}

// Node is a single tree entry. left and right own their subtrees;
// parent is a back-reference used for upward walks during fixup.
type Node[T any] struct {
	value  T
	color  Color
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

func (n *Node[T]) Value() T     { return n.value }
func (n *Node[T]) Color() Color { return n.color }
func (n *Node[T]) IsRed() bool  { return n != nil && n.color == Red }

// IsBlack treats a nil node as black, like the empty leaves it stands for.
func (n *Node[T]) IsBlack() bool { return n == nil || n.color == Black }

// ---- relationship accessors ----
//
// All of them accept a nil receiver and return nil instead of
// following an absent link.

func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

func (n *Node[T]) Grandparent() *Node[T] {
	return n.Parent().Parent()
}

// Sibling returns the other child of n's parent, or nil for the root.
func (n *Node[T]) Sibling() *Node[T] {
	p := n.Parent()
	if p == nil {
		return nil
	}
	if n == p.left {
		return p.right
	}
	return p.left
}

func (n *Node[T]) Uncle() *Node[T] {
	if n.Grandparent() == nil {
		return nil
	}
	return n.parent.Sibling()
}

func (n *Node[T]) isLeftChild() bool {
	return n.parent != nil && n == n.parent.left
}
