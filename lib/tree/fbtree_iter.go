package tree

import "iter"

// Foreach walks the index in ascending capacity order, calling action for
// every tree-resident node until it returns false. Chain members are not
// visited individually; their count is handed to the action instead.
func Foreach(root *Block, action func(idx int64, color RBColor, capacity uint64, chainLen int) bool) {
	aux := root
	if aux == nil {
		return
	}

	stack := make([]*Block, 0, 1+Height(root))
	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.capacity, aux.ChainLen()) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// All returns a lazy, restartable in-order sequence of (capacity, chain
// length) pairs. The index must not be mutated while a pass is running.
func All(root *Block) iter.Seq2[uint64, int] {
	return func(yield func(uint64, int) bool) {
		Foreach(root, func(_ int64, _ RBColor, capacity uint64, chainLen int) bool {
			return yield(capacity, chainLen)
		})
	}
}

// Len counts every block the index owns, chain members included.
func Len(root *Block) int64 {
	count := int64(0)
	Foreach(root, func(_ int64, _ RBColor, _ uint64, chainLen int) bool {
		count += int64(1 + chainLen)
		return true
	})
	return count
}
