package rbtree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

const emptyDump = "(empty)"

// Dump renders the tree shape for debugging. Each entry reads
// "value (R|B)"; the right subtree is listed before the left one and
// tagged with its side. The output is not meant to be parsed.
func (t *Tree[T]) Dump() string {
	if t.root == nil {
		return emptyDump + "\n"
	}
	tree := treeprint.NewWithRoot(label(t.root))
	dumpChildren(tree, t.root)
	return tree.String()
}

func (t *Tree[T]) String() string { return t.Dump() }

// Fprint writes Dump to w.
func (t *Tree[T]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, t.Dump())
	return err
}

func dumpChildren[T any](branch treeprint.Tree, n *Node[T]) {
	for _, c := range []struct {
		side  string
		child *Node[T]
	}{{"R", n.right}, {"L", n.left}} {
		if c.child == nil {
			continue
		}
		if c.child.left == nil && c.child.right == nil {
			branch.AddMetaNode(c.side, label(c.child))
			continue
		}
		dumpChildren(branch.AddMetaBranch(c.side, label(c.child)), c.child)
	}
}

func label[T any](n *Node[T]) string {
	return fmt.Sprintf("%v (%s)", n.value, n.color)
}
