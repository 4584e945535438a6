// Package memory provides typed object recycling for the tree.
//
// Pool wraps sync.Pool with a constructor and a reset hook so that
// released nodes come back zeroed and carry no references into the
// structure they were detached from.
package memory
