package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorString(t *testing.T) {
	assert.Equal(t, "R", Red.String())
	assert.Equal(t, "B", Black.String())
	assert.Equal(t, "?", Color(7).String())
}

func TestRelationsOnBalancedTree(t *testing.T) {
	// 10(B) -> 5(B), 15(B); 3(R) under 5
	tree := build(10, 5, 15, 3)
	root := tree.Root()
	n3 := mustFind(t, tree, 3)
	n5 := mustFind(t, tree, 5)
	n15 := mustFind(t, tree, 15)

	assert.Same(t, n5, n3.Parent())
	assert.Same(t, root, n3.Grandparent())
	assert.Same(t, n15, n3.Uncle())
	assert.Nil(t, n3.Sibling())

	assert.Same(t, n15, n5.Sibling())
	assert.Same(t, n5, n15.Sibling())
	assert.Nil(t, n5.Grandparent())
	assert.Nil(t, n5.Uncle(), "children of the root have no uncle")
}

func TestRelationsOnRoot(t *testing.T) {
	tree := NewWithRoot(1)
	root := tree.Root()

	assert.Nil(t, root.Parent())
	assert.Nil(t, root.Grandparent())
	assert.Nil(t, root.Sibling())
	assert.Nil(t, root.Uncle())
}

func TestRelationsOnNilNode(t *testing.T) {
	var n *Node[int]

	assert.Nil(t, n.Parent())
	assert.Nil(t, n.Grandparent())
	assert.Nil(t, n.Sibling())
	assert.Nil(t, n.Uncle())
	assert.True(t, n.IsBlack())
	assert.False(t, n.IsRed())
}

func TestNodeAccessors(t *testing.T) {
	tree := build(1, 2)
	n2 := mustFind(t, tree, 2)

	assert.Equal(t, 2, n2.Value())
	assert.Equal(t, Red, n2.Color())
	assert.True(t, n2.IsRed())
	assert.False(t, n2.IsBlack())
	assert.True(t, tree.Root().IsBlack())
}
