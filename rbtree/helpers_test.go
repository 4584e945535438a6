package rbtree

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func inorder[T any](t *Tree[T]) []T {
	var out []T
	var stack []*Node[T]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.value)
		n = n.right
	}
	return out
}

func build(vals ...int) *Tree[int] {
	tree := New[int]()
	for _, v := range vals {
		tree.Insert(v)
	}
	return tree
}

func mustFind(t *testing.T, tree *Tree[int], v int) *Node[int] {
	t.Helper()
	n, ok := tree.Search(v)
	require.True(t, ok, "value %d not found", v)
	return n
}

func requireValid[T any](t *testing.T, tree *Tree[T]) int {
	t.Helper()
	bh, err := tree.Validate()
	require.NoError(t, err, "tree:\n%s", tree.Dump())
	return bh
}

type testWriter struct {
	t testing.TB
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(string(p))
	return len(p), nil
}

func slogForTest(t testing.TB) *slog.Logger {
	hopts := slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	return slog.New(slog.NewTextHandler(&testWriter{t}, &hopts))
}

func slogToBufferWriter(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
