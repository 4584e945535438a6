// Package rbtree implements an ordered red-black tree of single values.
//
// The tree keeps its height logarithmic under any insertion order by
// running a five-case fixup after every Insert: root, black parent,
// red uncle, bent shape and straight line. Duplicates are accepted;
// a value strictly greater than a node descends right, anything else
// descends left.
//
// A Tree is single-writer. Callers that share one across goroutines
// must serialize access themselves.
package rbtree
