package tree

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

// Block is one free-block descriptor inside the size index. The tree owns
// the left/right/next links and the color; PrevDist and InUse belong to the
// embedding allocator and are carried verbatim, never interpreted.
type Block struct {
	left  *Block
	right *Block
	// Head of the singly-linked bucket of blocks sharing this capacity.
	// Chain members never take part in rotations or black-height.
	next     *Block
	capacity uint64
	color    RBColor

	// Allocator payload. Insertion resets both fields, so callers must save
	// them before Insert and reassign afterwards.
	PrevDist uint64
	InUse    bool
}

func (b *Block) Capacity() uint64 {
	return b.capacity
}

func (b *Block) Color() RBColor {
	return b.color
}

func (b *Block) Left() *Block {
	if b == nil {
		return nil
	}
	return b.left
}

func (b *Block) Right() *Block {
	if b == nil {
		return nil
	}
	return b.right
}

func (b *Block) Next() *Block {
	if b == nil {
		return nil
	}
	return b.next
}

// ChainLen counts the bucket members behind this node, excluding the
// tree-resident head itself.
func (b *Block) ChainLen() int {
	n := 0
	for aux := b.Next(); aux != nil; aux = aux.next {
		n++
	}
	return n
}

func (b *Block) isLeaf() bool {
	return b != nil && b.left == nil && b.right == nil
}
