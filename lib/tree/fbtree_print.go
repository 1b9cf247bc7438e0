package tree

import (
	"fmt"
	"io"
	"strings"
)

// Diagnostic renderers. Read-only, no invariants of their own.

const (
	styleBoldBlack = "\033[34;1m"
	styleBoldRed   = "\033[31;1m"
	styleNone      = "\033[0m"
)

// FprintChain writes the capacities of a bucket chain starting at head.
func FprintChain(w io.Writer, head *Block) {
	for ; head != nil; head = head.next {
		fmt.Fprintf(w, "%d ", head.capacity)
	}
}

// FprintInOrder writes every capacity in ascending order, chain duplicates
// included.
func FprintInOrder(w io.Writer, root *Block) {
	if root == nil {
		return
	}
	FprintInOrder(w, root.left)
	fmt.Fprintf(w, "%d ", root.capacity)
	FprintChain(w, root.next)
	FprintInOrder(w, root.right)
}

// FprintNode writes one node with its color and black-height.
func FprintNode(w io.Writer, n *Block) {
	style := styleBoldBlack
	if n.color == Red {
		style = styleBoldRed
	}
	fmt.Fprintf(w, "%s%d", style, n.capacity)
	if c := n.capacity; c < 128 && isAlnum(byte(c)) {
		fmt.Fprintf(w, " (%c)", rune(c))
	}
	fmt.Fprintf(w, "%s (bh: %d)\n", styleNone, BlackHeight(n))
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Fprint renders the tree the way the "tree" command line program renders
// directories.
func Fprint(w io.Writer, root *Block) {
	if root == nil {
		return
	}
	io.WriteString(w, " ")
	FprintNode(w, root)
	fprintChildren(w, root, "")
}

// Sprint is Fprint into a string.
func Sprint(root *Block) string {
	builder := &strings.Builder{}
	Fprint(builder, root)
	return builder.String()
}

func fprintChildren(w io.Writer, n *Block, prefix string) {
	switch {
	case n.right == nil:
		fprintSubtree(w, n.left, prefix, true)
	case n.left == nil:
		fprintSubtree(w, n.right, prefix, true)
	default:
		fprintSubtree(w, n.right, prefix, false)
		fprintSubtree(w, n.left, prefix, true)
	}
}

func fprintSubtree(w io.Writer, n *Block, prefix string, tail bool) {
	if n == nil {
		return
	}
	io.WriteString(w, prefix)
	if tail {
		io.WriteString(w, " └── ")
	} else {
		io.WriteString(w, " ├── ")
	}
	FprintNode(w, n)

	childPrefix := prefix + " │   "
	if tail {
		childPrefix = prefix + "     "
	}
	fprintChildren(w, n, childPrefix)
}
