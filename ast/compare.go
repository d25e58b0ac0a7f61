package ast

// IsConstantTruthy reports whether n's value is statically known to be
// truthy: a nonzero NumericLiteral, a BooleanLiteral(true), or a
// Parenthetical wrapping a constant-truthy expression. No other node may
// claim constant truthiness — conservatism here is required for reducer
// soundness, so this is not "best effort constant folding," it is an
// exact, narrow predicate.
func IsConstantTruthy(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.kind {
	case KindNumericLiteral:
		return n.numValue != 0
	case KindBooleanLiteral:
		return n.boolValue
	case KindParenthetical:
		return IsConstantTruthy(n.ChildAt(0))
	default:
		return false
	}
}

// IsConstantFalsy is the symmetric counterpart of IsConstantTruthy.
func IsConstantFalsy(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.kind {
	case KindNumericLiteral:
		return n.numValue == 0
	case KindBooleanLiteral:
		return !n.boolValue
	case KindParenthetical:
		return IsConstantFalsy(n.ChildAt(0))
	default:
		return false
	}
}

// IsConstant reports whether n's truthiness is statically decidable at
// all, i.e. IsConstantTruthy(n) || IsConstantFalsy(n).
func IsConstant(n *Node) bool {
	return IsConstantTruthy(n) || IsConstantFalsy(n)
}

// IsValidLVal reports whether n may legally appear in an lvalue position:
// an Identifier, a StaticMemberExpression, a DynamicMemberExpression, or a
// Parenthetical whose inner node is itself an lvalue.
func IsValidLVal(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.kind {
	case KindIdentifier, KindStaticMemberExpression, KindDynamicMemberExpression:
		return true
	case KindParenthetical:
		return IsValidLVal(n.ChildAt(0))
	default:
		return false
	}
}

// IsEval reports whether a FunctionCall's callee is literally the
// identifier "eval". It does not affect printing or reduction; it is
// exposed purely for external scope-analysis callers, mirroring the
// source's isEval helper on FunctionCall.
func (n *Node) IsEval() bool {
	if n == nil || n.kind != KindFunctionCall {
		return false
	}
	callee := n.ChildAt(0)
	return callee != nil && callee.kind == KindIdentifier && callee.strValue == "eval"
}
