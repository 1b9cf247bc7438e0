package tree

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL leaves are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL leaves goes through the same number of black nodes. (black-violation)
// p5. The root is black.
//
// The index is keyed by block capacity. Duplicate capacities never become
// separate tree nodes; they are pushed onto the resident node's bucket chain,
// which stays outside the balancing logic entirely.
//
// Every mutating operation consumes the old root handle and returns the new
// one. A caller must never reuse a stale handle.

// subtree is the result of detaching a node somewhere below a position.
// deficient marks a subtree whose every path is one black node short (the
// transient double-black of textbook deletion). It only exists between the
// frames of a single removal call and never survives into a stable tree.
type subtree struct {
	node      *Block
	deficient bool
}

func isBlack(node *Block) bool {
	return node == nil || node.color == Black
}

func isRed(node *Block) bool {
	return node != nil && node.color == Red
}

// initBlock claims a node for the index: capacity is assigned and every
// other field, payload included, is reset.
func initBlock(node *Block, capacity uint64) *Block {
	node.capacity = capacity
	node.left = nil
	node.right = nil
	node.next = nil
	node.color = Black
	node.PrevDist = 0
	node.InUse = false
	return node
}

// New builds a singleton index owning the given node.
// Equivalent to Insert(nil, node, capacity).
func New(node *Block, capacity uint64) *Block {
	return Insert(nil, node, capacity)
}

// Insert adds node to the index under the given capacity and returns the new
// root. A nil node leaves the index untouched. The node's links, flags and
// payload fields are reset (see Block), so any payload value that must
// survive has to be saved before the call and reassigned after.
func Insert(root, node *Block, capacity uint64) *Block {
	repCheck(root)
	if node == nil {
		return root
	}
	newRoot := insert(root, node, capacity)
	newRoot.color = Black // p5 holds unconditionally after insertion
	trackAlloc()
	return repCheck(newRoot)
}

func insert(n, node *Block, capacity uint64) *Block {
	if n == nil {
		return initBlock(node, capacity)
	}

	switch c := n.capacity; {
	case capacity == c:
		// Same capacity: O(1) bucket push, no repaint, no rebalance.
		node = initBlock(node, capacity)
		node.next = n.next
		n.next = node
		return n
	case capacity < c:
		left := n.left
		newLeft := insert(left, node, capacity)
		if left == nil {
			newLeft.color = Red // fresh leaves start red (p4 holds, p3 at risk)
		}
		n.left = newLeft
	default:
		right := n.right
		newRight := insert(right, node, capacity)
		if right == nil {
			newRight.color = Red
		}
		n.right = newRight
	}

	return fixRedRed(n)
}

/*
fixRedRed repairs one red-red violation between a child and grandchild of n
on the unwind of an insertion, returning the local root (changed only when a
rotation happened).

<X> is a RED node. [X] is a BLACK node (or NIL).

i1: Both the parent P and the uncle U are red. Repaint; grandpa G turns red,
so the violation may ripple one level up (the next frame handles it).

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

i2: The uncle U is black and X is the outer grandchild. One rotation at G
absorbs the violation.

	    [G]                 [P]
	    / \    r-rotate(G)  / \
	  <P> [U]  ==========> <X> <G>
	  /                          \
	<X>                          [U]

i3: The uncle U is black and X is the inner grandchild. A double rotation
lifts X itself into the local root.

	    [G]                  [X]
	    / \    lr-rotate     / \
	  <P> [U]  ==========> <P> <G>
	    \                        \
	    <X>                      [U]
*/
func fixRedRed(n *Block) *Block {
	left, right := n.left, n.right
	if isRed(left) {
		if ll := left.left; isRed(ll) {
			if isRed(right) {
				/* i1 */
				left.color = Black
				right.color = Black
				n.color = Red
				return n
			}
			/* i2 */
			n.left = left.right
			left.right = n
			n.color = Red
			left.color = Black
			return left
		}
		if lr := left.right; isRed(lr) {
			if isRed(right) {
				/* i1 */
				left.color = Black
				right.color = Black
				n.color = Red
				return n
			}
			/* i3 */
			n.left = lr.right
			lr.right = n
			left.right = lr.left
			lr.left = left
			n.color = Red
			lr.color = Black
			return lr
		}
	}
	if isRed(right) {
		if rl := right.left; isRed(rl) {
			if isRed(left) {
				/* i1 */
				left.color = Black
				right.color = Black
				n.color = Red
				return n
			}
			/* i3 mirrored */
			n.right = rl.left
			rl.left = n
			right.left = rl.right
			rl.right = right
			n.color = Red
			rl.color = Black
			return rl
		}
		if rr := right.right; isRed(rr) {
			if isRed(left) {
				/* i1 */
				left.color = Black
				right.color = Black
				n.color = Red
				return n
			}
			/* i2 mirrored */
			n.right = right.left
			right.left = n
			n.color = Red
			right.color = Black
			return right
		}
	}
	return n
}

// RemoveAtLeast detaches the smallest block whose capacity is at least the
// requested one. It returns the new root and the removed block, or the
// original root and nil when no block is large enough.
func RemoveAtLeast(root *Block, capacity uint64) (*Block, *Block) {
	repCheck(root)
	sub, removed := removeAtLeast(root, capacity)
	if removed != nil {
		trackFree()
	}
	return repCheck(stabilize(sub)), removed
}

// Best-fit search policy: an exact match is taken on the spot. When the
// target is below the current capacity a better fit may hide on the left, so
// the left subtree is tried first and the current node is only the fallback.
// When the target is above, only the right subtree can qualify.
func removeAtLeast(n *Block, capacity uint64) (subtree, *Block) {
	if n == nil {
		return subtree{}, nil
	}

	switch c := n.capacity; {
	case capacity == c:
		return takeBucket(n)
	case capacity < c:
		sub, removed := removeAtLeast(n.left, capacity)
		if removed == nil {
			// Nothing on the left fits better than n itself.
			return takeBucket(n)
		}
		n.left = sub.node
		if sub.deficient {
			return fixLeftDeficit(n), removed
		}
		return subtree{node: n}, removed
	default:
		sub, removed := removeAtLeast(n.right, capacity)
		if removed == nil {
			return subtree{node: n}, nil
		}
		n.right = sub.node
		if sub.deficient {
			return fixRightDeficit(n), removed
		}
		return subtree{node: n}, removed
	}
}

// RemoveNode detaches the given block, matched by identity, from wherever it
// resides, bucket chains included. It returns the new root and the removed
// block, or the original root and nil when the identity is not present.
func RemoveNode(root, node *Block) (*Block, *Block) {
	repCheck(root)
	if node == nil {
		return root, nil
	}
	sub, removed := removeNode(root, node, node.capacity)
	if removed != nil {
		trackFree()
	}
	return repCheck(stabilize(sub)), removed
}

func removeNode(n, node *Block, capacity uint64) (subtree, *Block) {
	if n == nil {
		return subtree{}, nil
	}

	switch c := n.capacity; {
	case capacity == c:
		return takeIdentity(n, node)
	case capacity < c:
		sub, removed := removeNode(n.left, node, capacity)
		n.left = sub.node
		if sub.deficient {
			return fixLeftDeficit(n), removed
		}
		return subtree{node: n}, removed
	default:
		sub, removed := removeNode(n.right, node, capacity)
		n.right = sub.node
		if sub.deficient {
			return fixRightDeficit(n), removed
		}
		return subtree{node: n}, removed
	}
}

// stabilize normalizes the result of a removal into a stable handle: a
// deficit that reached the root is simply dropped by forcing the root black
// (or collapsing to the empty tree), permanently lowering the black-height
// by one. Always safe, always terminal.
func stabilize(sub subtree) *Block {
	if sub.node != nil {
		sub.node.color = Black
	}
	return sub.node
}

// takeBucket removes one block from the bucket rooted at n: the first chain
// member when the chain is non-empty (topology untouched), otherwise n
// itself is excised from the balanced structure.
func takeBucket(n *Block) (subtree, *Block) {
	if target := n.next; target != nil {
		n.next = target.next
		target.next = nil
		return subtree{node: n}, target
	}
	return excise(n)
}

// takeIdentity removes the specific block `node` from the bucket rooted at
// n, which holds node's capacity if the index holds it at all.
func takeIdentity(n, node *Block) (subtree, *Block) {
	if node != n {
		// node can only live inside n's chain.
		for prev, target := n, n.next; target != nil; prev, target = target, target.next {
			if target == node {
				prev.next = target.next
				target.next = nil
				return subtree{node: n}, target
			}
		}
		return subtree{node: n}, nil
	}

	if next := n.next; next != nil {
		// The bucket head is wanted but the bucket is not empty: splice the
		// next chain member's identity into n's tree slot. Only the color
		// transfers; capacity and payload stay with their own nodes.
		next.left = n.left
		next.right = n.right
		next.color = n.color
		n.left = nil
		n.right = nil
		n.next = nil
		return subtree{node: next}, n
	}
	return excise(n)
}

/*
excise physically detaches n, whose bucket chain is empty, from the balanced
structure.

e1: No children. Removing a red leaf costs nothing; removing a black one
leaves the gap one black short.

e2: One child. The promoted child must be red (p4), and repainting it black
preserves the height. A black child is tolerated anyway and yields a deficit.

e3: Two children. The in-order successor (leftmost of the right subtree) is
spliced into n's slot, inheriting n's color. Its own chain, if any, travels
with it. The vacancy it leaves behind resolves as e1/e2, and any deficit is
repaired bottom-up along the exact path walked to reach it.
*/
func excise(n *Block) (subtree, *Block) {
	left, right := n.left, n.right
	switch {
	case left == nil && right == nil:
		/* e1 */
		return subtree{deficient: n.color == Black}, n
	case left == nil:
		/* e2 */
		n.right = nil
		if right.color == Red {
			right.color = Black
			return subtree{node: right}, n
		}
		return subtree{node: right, deficient: true}, n
	case right == nil:
		/* e2 */
		n.left = nil
		if left.color == Red {
			left.color = Black
			return subtree{node: left}, n
		}
		return subtree{node: left, deficient: true}, n
	}

	/* e3 */
	sub, succ := detachMin(right)
	succ.left = left
	succ.right = sub.node
	succ.color = n.color
	n.left = nil
	n.right = nil
	if sub.deficient {
		return fixRightDeficit(succ), n
	}
	return subtree{node: succ}, n
}

// detachMin unlinks the leftmost node of the subtree rooted at n and repairs
// any black deficit on the unwind, so the deficit is absorbed as close to
// the vacancy as possible before it can travel upward.
func detachMin(n *Block) (subtree, *Block) {
	if n.left == nil {
		right := n.right
		n.right = nil
		switch {
		case right == nil:
			return subtree{deficient: n.color == Black}, n
		case right.color == Red:
			right.color = Black
			return subtree{node: right}, n
		default:
			return subtree{node: right, deficient: true}, n
		}
	}

	sub, min := detachMin(n.left)
	n.left = sub.node
	if sub.deficient {
		return fixLeftDeficit(n), min
	}
	return subtree{node: n}, min
}

/*
fixLeftDeficit repairs a one-black deficit in n's left subtree and returns
the new local root; the result is deficient only when the deficit escapes
past n. fixRightDeficit is the mirror.

<X> is a RED node. [X] is a BLACK node (or NIL). {X} is either.
X marks the deficient side, S its sibling, Sc/Sd the near and far nephews.

d1: S is red, so P is black (p3). Rotate S up and repaint; the deficit moves
one level down where its new sibling is black, and one more pass settles it
for good (P is now red, so d4 cannot recurse further).

	  [P]                   [S]
	  / \    l-rotate(P)    / \
	[X] <S>  ==========>  <P> [Sd]
	    / \               / \
	 [Sc] [Sd]          [X] [Sc]

d2: S is black, near nephew Sc is red. A double rotation lifts Sc into P's
slot and color; both sides regain their height.

	  {P}                  {Sc}
	  / \    rl-rotate     /  \
	[X] [S]  ==========> [P]  [S]
	    / \              /      \
	  <Sc> {Sd}        [X]      {Sd}

d3: S is black, far nephew Sd is red. A single rotation absorbs the deficit.

	  {P}                   {S}
	  / \    l-rotate(P)    / \
	[X] [S]  ==========>  [P] [Sd]
	    / \               / \
	 [Sc] <Sd>          [X] [Sc]

d4: S and both nephews are black. Repainting S red balances P's two sides
locally but leaves the whole subtree one black short: a red P absorbs it by
turning black, a black P passes the deficit to its own parent.

	  {P}             [P*]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]
*/
func fixLeftDeficit(n *Block) subtree {
	// The deficient side is one black short, so the sibling side is
	// non-empty by p4.
	s := n.right
	if isRed(s) {
		/* d1 */
		n.right = s.left
		s.left = n
		n.color = Red
		s.color = Black
		inner := fixLeftDeficit(n)
		s.left = inner.node
		return subtree{node: s}
	}
	if sc := s.left; isRed(sc) {
		/* d2 */
		n.right = sc.left
		sc.left = n
		s.left = sc.right
		sc.right = s
		sc.color = n.color
		n.color = Black
		return subtree{node: sc}
	}
	if sd := s.right; isRed(sd) {
		/* d3 */
		n.right = s.left
		s.left = n
		s.color = n.color
		n.color = Black
		sd.color = Black
		return subtree{node: s}
	}
	/* d4 */
	s.color = Red
	if n.color == Red {
		n.color = Black
		return subtree{node: n}
	}
	return subtree{node: n, deficient: true}
}

func fixRightDeficit(n *Block) subtree {
	s := n.left
	if isRed(s) {
		/* d1 */
		n.left = s.right
		s.right = n
		n.color = Red
		s.color = Black
		inner := fixRightDeficit(n)
		s.right = inner.node
		return subtree{node: s}
	}
	if sc := s.right; isRed(sc) {
		/* d2 */
		n.left = sc.right
		sc.right = n
		s.right = sc.left
		sc.left = s
		sc.color = n.color
		n.color = Black
		return subtree{node: sc}
	}
	if sd := s.left; isRed(sd) {
		/* d3 */
		n.left = s.right
		s.right = n
		s.color = n.color
		n.color = Black
		sd.color = Black
		return subtree{node: s}
	}
	/* d4 */
	s.color = Red
	if n.color == Red {
		n.color = Black
		return subtree{node: n}
	}
	return subtree{node: n, deficient: true}
}

// Height reports the length of the longest root-to-node path, counted in
// edges. Empty and singleton trees both have height 0.
func Height(root *Block) int {
	if root == nil || root.isLeaf() {
		return 0
	}
	leftHeight := 1 + Height(root.left)
	rightHeight := 1 + Height(root.right)
	if leftHeight > rightHeight {
		return leftHeight
	}
	return rightHeight
}

// BlackHeight reports the number of black nodes from the root down to any
// leaf, excluding the root itself and counting the nil leaf. Uniform on
// every path by p4, so walking the left spine suffices.
func BlackHeight(root *Block) int {
	if root == nil {
		return 0
	}
	if root.left == nil {
		return 1
	}
	if root.left.color == Black {
		return 1 + BlackHeight(root.left)
	}
	return BlackHeight(root.left)
}

// Release unlinks every node in the index, chains included, handing the
// whole structure back to the caller.
func Release(root *Block) {
	if root == nil {
		return
	}
	Release(root.left)
	ReleaseChain(root.next)
	Release(root.right)
	root.left = nil
	root.right = nil
	root.next = nil
	trackFree()
}

// ReleaseChain unlinks every node of a bucket chain starting at head.
// Chain members have no children by construction.
func ReleaseChain(head *Block) {
	for head != nil {
		next := head.next
		head.next = nil
		trackFree()
		head = next
	}
}
