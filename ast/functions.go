package ast

// NewArgList builds an ArgList from its child expressions (when used as a
// call's argument list) or parameter Identifiers (when used as a
// function's parameter list).
func NewArgList(lineno int, items ...*Node) *Node {
	return newNode(KindArgList, lineno, items...)
}

// Items returns an ArgList's children.
func (n *Node) Items() []*Node { return n.children }

// NewFunctionDeclaration builds a named `function name(params) {body}`
// declaration. name must be an Identifier (never absent — see
// NewFunctionExpression for the anonymous form).
func NewFunctionDeclaration(name, params, body *Node, lineno int) *Node {
	return newNode(KindFunctionDeclaration, lineno, name, params, body)
}

// NewFunctionExpression builds a `function [name](params) {body}`
// expression. name may be nil (absent) for an anonymous function
// expression.
func NewFunctionExpression(name, params, body *Node, lineno int) *Node {
	return newNode(KindFunctionExpression, lineno, name, params, body)
}

// FunctionName returns the Identifier name of a FunctionDeclaration, or
// the (possibly absent) name of a FunctionExpression.
func (n *Node) FunctionName() *Node { return n.ChildAt(0) }

// Params returns the ArgList of parameter Identifiers of a
// FunctionDeclaration or FunctionExpression.
func (n *Node) Params() *Node { return n.ChildAt(1) }

// FunctionBody returns the StatementList body of a FunctionDeclaration or
// FunctionExpression (its third child).
func (n *Node) FunctionBody() *Node { return n.ChildAt(2) }
