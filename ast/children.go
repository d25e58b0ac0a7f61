package ast

// ChildNodes returns the node's ordered children. The returned slice is the
// node's live backing storage, not a copy: callers may index into it to
// replace a child in place (see ReplaceChildAt for the ownership-aware
// form), but must not reslice it directly — use AppendChild, PrependChild,
// InsertChildBefore and RemoveChildAt for that, which keep the slice's
// length in sync with fixed-arity expectations.
func (n *Node) ChildNodes() []*Node { return n.children }

// NumChildren returns len(n.ChildNodes()).
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the child at pos, or nil ("absent") if pos is out of
// range or the slot itself holds the absent sentinel.
func (n *Node) ChildAt(pos int) *Node {
	if pos < 0 || pos >= len(n.children) {
		return nil
	}
	return n.children[pos]
}

// AppendChild adds c as the new last child, transferring ownership of c to
// n. Returns n for chaining.
func (n *Node) AppendChild(c *Node) *Node {
	n.children = append(n.children, c)
	return n
}

// PrependChild adds c as the new first child, transferring ownership of c
// to n. Returns n for chaining.
func (n *Node) PrependChild(c *Node) *Node {
	n.children = append([]*Node{c}, n.children...)
	return n
}

// InsertChildBefore inserts c immediately before the child currently at
// pos, transferring ownership of c to n. Inserting at pos == NumChildren()
// appends. Returns n for chaining.
func (n *Node) InsertChildBefore(c *Node, pos int) *Node {
	if pos < 0 {
		pos = 0
	}
	if pos > len(n.children) {
		pos = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = c
	return n
}

// RemoveChildAt detaches and returns the child at pos, transferring
// ownership to the caller. Returns nil if pos is out of range.
func (n *Node) RemoveChildAt(pos int) *Node {
	if pos < 0 || pos >= len(n.children) {
		return nil
	}
	removed := n.children[pos]
	n.children = append(n.children[:pos], n.children[pos+1:]...)
	return removed
}

// ReplaceChildAt swaps in c at pos and returns the previously-owned child,
// transferring ownership both ways: c becomes owned by n, and the returned
// node becomes owned by the caller. Out-of-range pos is a no-op returning
// nil.
func (n *Node) ReplaceChildAt(pos int, c *Node) *Node {
	if pos < 0 || pos >= len(n.children) {
		return nil
	}
	old := n.children[pos]
	n.children[pos] = c
	return old
}
