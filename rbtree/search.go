package rbtree

// Search returns a node holding a value equal to v. With duplicates
// present any of the equal nodes may be returned.
func (t *Tree[T]) Search(v T) (*Node[T], bool) {
	n := t.root
	for n != nil {
		c := t.compare(v, n.value)
		switch {
		case c == 0:
			return n, true
		case c > 0:
			n = n.right
		default:
			n = n.left
		}
	}
	return nil, false
}

func (t *Tree[T]) Contains(v T) bool {
	_, ok := t.Search(v)
	return ok
}
