//go:build repok
// +build repok

package tree

// Representation invariant checking on every public entry and exit point.
// Enabled by the repok build tag; severely slows performance.

func repCheck(root *Block) *Block {
	return RepOK(root)
}
