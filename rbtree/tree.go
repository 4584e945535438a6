package rbtree

import (
	"cmp"
	"context"
	"log/slog"

	"redblack/infra/memory"
)

// Config controls how a tree orders and reports.
type Config[T any] struct {
	// Compare returns <0, 0 or >0 when a sorts before, equal to or
	// after b. Required.
	Compare func(a, b T) int

	// Logger receives debug records for every fixup case and rotation.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Tree is a red-black tree. The zero value is not usable; build one
// with New, NewWithRoot or NewWithConfig.
type Tree[T any] struct {
	root    *Node[T]
	size    int
	compare func(a, b T) int

	nodes *memory.Pool[Node[T]]
	stats Stats

	log   *slog.Logger
	debug bool
}

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *Tree[T] {
	return NewWithConfig(Config[T]{Compare: cmp.Compare[T]})
}

// NewWithRoot returns a tree holding v as its single, black, root.
func NewWithRoot[T cmp.Ordered](v T) *Tree[T] {
	t := New[T]()
	t.Insert(v)
	return t
}

func NewWithConfig[T any](cfg Config[T]) *Tree[T] {
	if cfg.Compare == nil {
		panic("rbtree: Config.Compare is required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("system", "rbtree")

	return &Tree[T]{
		compare: cfg.Compare,
		nodes:   memory.NewPool(func() *Node[T] { return &Node[T]{} }, nil),
		log:     log,
		debug:   log.Enabled(context.Background(), slog.LevelDebug),
	}
}

// Root returns the topmost node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

func (t *Tree[T]) Len() int    { return t.size }
func (t *Tree[T]) Empty() bool { return t.root == nil }

// Stats returns a copy of the rebalancing counters.
func (t *Tree[T]) Stats() Stats { return t.stats }

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	best := 0
	stack := []frame[T]{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > best {
			best = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame[T]{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame[T]{f.n.right, f.depth + 1})
		}
	}
	return best
}

// Clear releases every node and leaves the tree empty. The walk uses
// an explicit stack so deep trees do not grow the goroutine stack.
// Nodes obtained from Root or Search before Clear must not be used
// afterwards.
func (t *Tree[T]) Clear() {
	if t.root == nil {
		return
	}
	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		t.nodes.Put(n)
	}
	t.root = nil
	t.size = 0
}

func (t *Tree[T]) newNode(v T, parent *Node[T], c Color) *Node[T] {
	n := t.nodes.Get()
	n.value = v
	n.color = c
	n.parent = parent
	n.left, n.right = nil, nil
	return n
}

// frame is a node paired with a per-path counter for iterative walks.
type frame[T any] struct {
	n     *Node[T]
	depth int
}
