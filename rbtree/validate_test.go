package rbtree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmpty(t *testing.T) {
	bh, err := New[int]().Validate()
	require.NoError(t, err)
	assert.Equal(t, 0, bh)
}

func TestValidateDetectsCorruption(t *testing.T) {
	for _, tc := range []struct {
		name    string
		corrupt func(tree *Tree[int])
		want    error
	}{
		{
			name:    "red root",
			corrupt: func(tree *Tree[int]) { tree.root.color = Red },
			want:    ErrRedRoot,
		},
		{
			name: "recolored inner node",
			corrupt: func(tree *Tree[int]) {
				// 10(B) 5(B) 15(B) 3(R): paint 5 red
				tree.root.left.color = Red
			},
			want: ErrBlackHeight,
		},
		{
			name: "red under red",
			corrupt: func(tree *Tree[int]) {
				n3 := tree.root.left.left
				n3.parent.color = Red
				tree.root.right.color = Red
			},
			want: ErrRedViolation,
		},
		{
			name: "black height",
			corrupt: func(tree *Tree[int]) {
				tree.root.left.left.color = Black
			},
			want: ErrBlackHeight,
		},
		{
			name: "ordering",
			corrupt: func(tree *Tree[int]) {
				tree.root.left.left.value = 12
			},
			want: ErrOrder,
		},
		{
			name: "broken parent link",
			corrupt: func(tree *Tree[int]) {
				tree.root.left.left.parent = tree.root
			},
			want: ErrBrokenLink,
		},
		{
			name:    "size",
			corrupt: func(tree *Tree[int]) { tree.size++ },
			want:    ErrSize,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tree := build(10, 5, 15, 3)
			requireValid(t, tree)

			tc.corrupt(tree)
			_, err := tree.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestValidateEmptyWithSize(t *testing.T) {
	tree := New[int]()
	tree.size = 2
	_, err := tree.Validate()
	assert.True(t, errors.Is(err, ErrSize))
}
