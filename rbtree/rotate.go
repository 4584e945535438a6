package rbtree

// rotateLeft promotes x.right into x's place; x becomes its left child
// and inherits its former left subtree as x.right.
//
//	    x              y
//	   / \            / \
//	  a   y    ->    x   c
//	     / \        / \
//	    b   c      a   b
func (t *Tree[T]) rotateLeft(x *Node[T]) {
	y := x.right
	if y == nil {
		panic("rbtree: rotateLeft without right child")
	}
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y

	t.stats.LeftRotations++
	if t.debug {
		t.log.Debug("rotate", "dir", "left", "value", x.value)
	}
}

// rotateRight is the mirror of rotateLeft and requires y.left.
func (t *Tree[T]) rotateRight(y *Node[T]) {
	x := y.left
	if x == nil {
		panic("rbtree: rotateRight without left child")
	}
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	t.replaceChild(y, x)
	x.right = y
	y.parent = x

	t.stats.RightRotations++
	if t.debug {
		t.log.Debug("rotate", "dir", "right", "value", y.value)
	}
}

// replaceChild hangs repl where old used to be under old's parent,
// updating the root when old was topmost.
func (t *Tree[T]) replaceChild(old, repl *Node[T]) {
	p := old.parent
	repl.parent = p
	switch {
	case p == nil:
		t.root = repl
	case old == p.left:
		p.left = repl
	default:
		p.right = repl
	}
}
