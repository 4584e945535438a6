package rbtree

// Insert adds v to the tree. Duplicates are kept: an equal value goes
// to the left of the node it is compared against.
func (t *Tree[T]) Insert(v T) {
	t.stats.Inserts++
	t.size++

	if t.root == nil {
		t.root = t.newNode(v, nil, Black)
		return
	}

	x := t.root
	for {
		if t.compare(v, x.value) > 0 {
			if x.right == nil {
				x.right = t.newNode(v, x, Red)
				t.fixup(x.right)
				return
			}
			x = x.right
		} else {
			if x.left == nil {
				x.left = t.newNode(v, x, Red)
				t.fixup(x.left)
				return
			}
			x = x.left
		}
	}
}

// shape is the position of a node relative to its grandparent:
// first the parent's side, then the node's side.
type shape uint8

const (
	leftLeft shape = iota
	leftRight
	rightLeft
	rightRight
)

func shapeOf[T any](n *Node[T]) shape {
	parentLeft := n.parent.isLeftChild()
	nodeLeft := n.isLeftChild()
	switch {
	case parentLeft && nodeLeft:
		return leftLeft
	case parentLeft:
		return leftRight
	case nodeLeft:
		return rightLeft
	default:
		return rightRight
	}
}

// fixup restores the red-black properties after n was attached as a
// red leaf. Red uncles push the violation two levels up and the loop
// continues from the grandparent; every other case ends the repair.
func (t *Tree[T]) fixup(n *Node[T]) {
	for {
		p := n.parent
		if p == nil {
			n.color = Black
			t.hit(CaseRoot, n)
			return
		}
		if p.color == Black {
			t.hit(CaseBlackParent, n)
			return
		}

		// p is red, so it is not the root and g exists.
		g := p.parent
		if u := n.Uncle(); u.IsRed() {
			t.hit(CaseRedUncle, n)
			p.color = Black
			u.color = Black
			g.color = Red
			n = g
			continue
		}

		switch shapeOf(n) {
		case leftRight:
			t.hit(CaseBent, n)
			t.rotateLeft(p)
			n = p
		case rightLeft:
			t.hit(CaseBent, n)
			t.rotateRight(p)
			n = p
		}

		t.line(n)
		return
	}
}

// line resolves a straight left-left or right-right chain at n's
// grandparent.
func (t *Tree[T]) line(n *Node[T]) {
	t.hit(CaseLine, n)
	p := n.parent
	g := p.parent
	if shapeOf(n) == leftLeft {
		t.rotateRight(g)
	} else {
		t.rotateLeft(g)
	}
	p.color = Black
	g.color = Red
}

func (t *Tree[T]) hit(c Case, n *Node[T]) {
	t.stats.Cases[c]++
	if t.debug {
		t.log.Debug("fixup", "case", c.String(), "value", n.value)
	}
}
