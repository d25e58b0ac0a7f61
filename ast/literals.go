package ast

import (
	"errors"
	"math"
)

// Sentinel errors for the narrow error taxonomy this library needs.
// Checked with errors.Is, not type-switched, since none of them carry
// payload beyond their message.
var (
	// ErrStructuralViolation marks an arity mismatch detected at render or
	// reduce time (e.g. an If built with fewer than three children).
	ErrStructuralViolation = errors.New("ast: structural violation")

	// ErrPayloadOutOfRange marks a NumericLiteral constructed with a
	// non-finite value (NaN or ±Inf). Non-finite values must be
	// materialized as an expression (e.g. the result of 1/0) rather than a
	// literal; the numfmt contract only covers finite doubles.
	ErrPayloadOutOfRange = errors.New("ast: payload out of range")

	// ErrInvariantViolation marks a reducer precondition failure, such as a
	// child slot expected to hold an Expression holding a Statement
	// instead. Treated as programmer error, not a recoverable condition.
	ErrInvariantViolation = errors.New("ast: invariant violation")
)

// NewNumericLiteral builds a NumericLiteral node. value must be finite;
// non-finite values return ErrPayloadOutOfRange rather than a node.
func NewNumericLiteral(value float64, lineno int) (*Node, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, ErrPayloadOutOfRange
	}
	n := newNode(KindNumericLiteral, lineno)
	n.numValue = value
	return n, nil
}

// Value returns a NumericLiteral's numeric value.
func (n *Node) Value() float64 { return n.numValue }

// NewStringLiteral builds a StringLiteral node. When quoted is true, value
// must already include the surrounding quotes and escaped body exactly as
// a lexer would have produced; when false, value is the raw, unescaped
// content to be wrapped in double quotes at print time.
func NewStringLiteral(value string, quoted bool, lineno int) *Node {
	n := newNode(KindStringLiteral, lineno)
	n.strValue = value
	n.quoted = quoted
	return n
}

// StringValue returns a StringLiteral's raw payload exactly as stored
// (quoted or not — see Quoted).
func (n *Node) StringValue() string { return n.strValue }

// Quoted reports whether a StringLiteral's StringValue already includes
// its surrounding quotes.
func (n *Node) Quoted() bool { return n.quoted }

// UnquotedValue returns the StringLiteral's content without surrounding
// quotes: StringValue() as-is when Quoted() is false, or StringValue()
// with the outermost matching quote characters stripped (escapes left
// untouched) when Quoted() is true.
func (n *Node) UnquotedValue() string {
	if !n.quoted {
		return n.strValue
	}
	s := n.strValue
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// NewRegexLiteral builds a RegexLiteral node from its body (the text
// between the slashes) and its flags (e.g. "gi").
func NewRegexLiteral(body, flags string, lineno int) *Node {
	n := newNode(KindRegexLiteral, lineno)
	n.strValue = body
	n.strValue2 = flags
	return n
}

// RegexBody returns a RegexLiteral's body text.
func (n *Node) RegexBody() string { return n.strValue }

// RegexFlags returns a RegexLiteral's flag letters.
func (n *Node) RegexFlags() string { return n.strValue2 }

// NewBooleanLiteral builds a BooleanLiteral node.
func NewBooleanLiteral(value bool, lineno int) *Node {
	n := newNode(KindBooleanLiteral, lineno)
	n.boolValue = value
	return n
}

// BoolValue returns a BooleanLiteral's value.
func (n *Node) BoolValue() bool { return n.boolValue }

// NewNullLiteral builds a NullLiteral node (`null`).
func NewNullLiteral(lineno int) *Node { return newNode(KindNullLiteral, lineno) }

// NewThis builds a This node (`this`).
func NewThis(lineno int) *Node { return newNode(KindThis, lineno) }

// NewEmptyExpression builds the empty-expression-slot node, e.g. the
// missing middle clause of `for(;;)`. It is a real leaf node (renders as
// the empty string), not the absent sentinel.
func NewEmptyExpression(lineno int) *Node { return newNode(KindEmptyExpression, lineno) }

// NewIdentifier builds an Identifier node.
func NewIdentifier(name string, lineno int) *Node {
	n := newNode(KindIdentifier, lineno)
	n.strValue = name
	return n
}

// Name returns an Identifier's name.
func (n *Node) Name() string { return n.strValue }

// Rename overwrites an Identifier's name in place and returns n for
// chaining.
func (n *Node) Rename(name string) *Node {
	n.strValue = name
	return n
}
