package ast

// NewProgram builds the top-level container node. A Program defaults to
// lineno 1 when the caller has no better information.
func NewProgram(statements ...*Node) *Node {
	return newNode(KindProgram, 1, statements...)
}

// NewStatementList builds a StatementList from its statement children.
func NewStatementList(lineno int, statements ...*Node) *Node {
	return newNode(KindStatementList, lineno, statements...)
}

// Statements returns the statement children of a Program, StatementList or
// ArgList.
func (n *Node) Statements() []*Node { return n.children }

// ForceBraces reports whether a StatementList occupying a block position
// must render with braces even when it has exactly one statement and
// compact mode would otherwise omit them. Set when a block is moved into
// a new position by a rewrite that relies on it staying visually
// delimited (see reducer.reduceIf's empty-then/non-empty-else case).
func (n *Node) ForceBraces() bool { return n.forceBraces }

// SetForceBraces overwrites the force-braces flag in place and returns n.
func (n *Node) SetForceBraces(v bool) *Node {
	n.forceBraces = v
	return n
}

// NewIf builds an `if (cond) then else` node. els may be nil (absent).
func NewIf(cond, then, els *Node, lineno int) *Node {
	return newNode(KindIf, lineno, cond, then, els)
}

// NewWhile builds a `while (cond) body` node.
func NewWhile(cond, body *Node, lineno int) *Node {
	return newNode(KindWhile, lineno, cond, body)
}

// NewDoWhile builds a `do body while (cond)` node. Children are stored as
// (body, cond) — see Body/Cond accessors below — matching the source
// order the printer must emit them in.
func NewDoWhile(body, cond *Node, lineno int) *Node {
	return newNode(KindDoWhile, lineno, body, cond)
}

// Body returns the loop body of a While, DoWhile, ForLoop or ForIn, or the
// block of a With, or a FunctionDeclaration/FunctionExpression's
// StatementList.
func (n *Node) Body() *Node {
	switch n.kind {
	case KindWhile:
		return n.ChildAt(1)
	case KindDoWhile:
		return n.ChildAt(0)
	default:
		return n.ChildAt(len(n.children) - 1)
	}
}

// DoWhileCond returns the condition of a DoWhile (its second child).
func (n *Node) DoWhileCond() *Node { return n.ChildAt(1) }

// NewForLoop builds a classic `for(init; cond; update) body` node. Any of
// init, cond, update may be an EmptyExpression node (not absent — see
// NewEmptyExpression) to represent an omitted clause.
func NewForLoop(init, cond, update, body *Node, lineno int) *Node {
	return newNode(KindForLoop, lineno, init, cond, update, body)
}

// Init returns the init clause of a ForLoop.
func (n *Node) Init() *Node { return n.ChildAt(0) }

// ForCond returns the condition clause of a ForLoop.
func (n *Node) ForCond() *Node { return n.ChildAt(1) }

// Update returns the update clause of a ForLoop.
func (n *Node) Update() *Node { return n.ChildAt(2) }

// ForBody returns the body of a ForLoop (its fourth child).
func (n *Node) ForBody() *Node { return n.ChildAt(3) }

// NewForIn builds a `for (lhs in rhs) body` node.
func NewForIn(lhs, rhs, body *Node, lineno int) *Node {
	return newNode(KindForIn, lineno, lhs, rhs, body)
}

// Lhs returns the left-hand side of a ForIn.
func (n *Node) Lhs() *Node { return n.ChildAt(0) }

// Rhs returns the right-hand side of a ForIn.
func (n *Node) Rhs() *Node { return n.ChildAt(1) }

// NewWith builds a `with (object) body` node.
func NewWith(object, body *Node, lineno int) *Node {
	return newNode(KindWith, lineno, object, body)
}

// NewTry builds a `try {tryBlock} catch(catchParam) {catchBlock} finally
// {finallyBlock}` node. catchParam and catchBlock must both be absent or
// both present; finallyBlock may independently be absent.
func NewTry(tryBlock, catchParam, catchBlock, finallyBlock *Node, lineno int) *Node {
	return newNode(KindTry, lineno, tryBlock, catchParam, catchBlock, finallyBlock)
}

// TryBlock returns the guarded block of a Try.
func (n *Node) TryBlock() *Node { return n.ChildAt(0) }

// CatchParam returns the catch parameter identifier of a Try, or nil if
// there is no catch clause.
func (n *Node) CatchParam() *Node { return n.ChildAt(1) }

// CatchBlock returns the catch block of a Try, or nil if there is no catch
// clause.
func (n *Node) CatchBlock() *Node { return n.ChildAt(2) }

// FinallyBlock returns the finally block of a Try, or nil if there is none.
func (n *Node) FinallyBlock() *Node { return n.ChildAt(3) }

// NewSwitch builds a `switch (discriminant) { ... }` node. body is a
// StatementList mixing CaseClause/DefaultClause markers with the
// statements that follow them.
func NewSwitch(discriminant, body *Node, lineno int) *Node {
	return newNode(KindSwitch, lineno, discriminant, body)
}

// Discriminant returns the discriminant expression of a Switch.
func (n *Node) Discriminant() *Node { return n.ChildAt(0) }

// SwitchBody returns the body StatementList of a Switch.
func (n *Node) SwitchBody() *Node { return n.ChildAt(1) }

// NewCaseClause builds a `case expr:` marker node.
func NewCaseClause(expr *Node, lineno int) *Node {
	return newNode(KindCaseClause, lineno, expr)
}

// CaseExpr returns the matched expression of a CaseClause.
func (n *Node) CaseExpr() *Node { return n.ChildAt(0) }

// NewDefaultClause builds a `default:` marker node (no children).
func NewDefaultClause(lineno int) *Node { return newNode(KindDefaultClause, lineno) }

// NewVarDeclaration builds a `var ...` declaration from its identifier or
// Assignment children. iterator marks it embedded in a for-header, which
// suppresses the trailing semicolon at print time.
func NewVarDeclaration(iterator bool, lineno int, decls ...*Node) *Node {
	n := newNode(KindVarDeclaration, lineno, decls...)
	n.iterator = iterator
	return n
}

// Iterator reports whether a VarDeclaration is embedded in a for-header.
func (n *Node) Iterator() bool { return n.iterator }

// SetIterator overwrites the iterator flag in place and returns n.
func (n *Node) SetIterator(v bool) *Node {
	n.iterator = v
	return n
}

// Declarations returns a VarDeclaration's identifier/Assignment children.
func (n *Node) Declarations() []*Node { return n.children }

// NewStatementWithExpression builds a throw/return/continue/break
// statement. operand may be nil (absent) for a bare `return;`,
// `continue;` or `break;`.
func NewStatementWithExpression(kind StatementKind, operand *Node, lineno int) *Node {
	n := newNode(KindStatementWithExpression, lineno, operand)
	n.stmtKind = kind
	return n
}

// StatementKind returns which of throw/return/continue/break a
// StatementWithExpression represents.
func (n *Node) StatementKind() StatementKind { return n.stmtKind }

// Expr returns the operand of a StatementWithExpression, or nil if it is a
// bare statement.
func (n *Node) Expr() *Node { return n.ChildAt(0) }

// NewLabel builds a `identifier: statement` node.
func NewLabel(id, statement *Node, lineno int) *Node {
	return newNode(KindLabel, lineno, id, statement)
}

// LabelIdent returns the Identifier child of a Label.
func (n *Node) LabelIdent() *Node { return n.ChildAt(0) }

// LabelStatement returns the labeled statement child of a Label.
func (n *Node) LabelStatement() *Node { return n.ChildAt(1) }
