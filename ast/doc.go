// Package ast defines the Abstract Syntax Tree node types for an
// ECMAScript-3-compatible JavaScript program.
//
// The tree represents the hierarchical structure of a JavaScript program
// after parsing (the parser itself is an external collaborator this
// package never builds or depends on). Every node is a *Node carrying a
// Kind discriminator, a
// line number, and an ordered, double-ended list of children; variant
// payload (operator text, literal values, flags) lives directly on Node
// and is only meaningful for the kinds that use it.
//
// Node categories:
//   - Leaves: NumericLiteral, StringLiteral, RegexLiteral, BooleanLiteral,
//     NullLiteral, This, EmptyExpression, Identifier
//   - Composite expressions: Parenthetical, Unary, Postfix, Operator,
//     Assignment, ConditionalExpression, FunctionCall,
//     FunctionConstructor, Static/DynamicMemberExpression, ObjectLiteral,
//     ObjectLiteralProperty, ArrayLiteral
//   - Declarations / statements: Program, StatementList,
//     FunctionDeclaration, FunctionExpression, ArgList, If, While,
//     DoWhile, ForLoop, ForIn, With, Try, Switch, CaseClause,
//     DefaultClause, VarDeclaration, StatementWithExpression, Label
//
// All child slots transfer ownership on detach (RemoveChildAt,
// ReplaceChildAt): the caller becomes responsible for the detached
// subtree. A slot may hold the absent sentinel (a nil *Node), which is
// distinct from an empty child list.
package ast
