package ast

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Encode serializes n to the JSON tree-interchange format: an object per
// node keyed by a "kind" discriminator and variant-specific payload
// fields, with a "children" array recursing into child nodes (an absent
// child slot round-trips as JSON null). Built with sjson rather than
// encoding/json, since the tagged-union Node has no struct to hang
// field tags from.
func Encode(n *Node) (string, error) {
	raw, err := encodeNode(n)
	if err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(raw))), nil
}

func encodeNode(n *Node) (string, error) {
	if n == nil {
		return "null", nil
	}

	js := "{}"
	var err error
	if js, err = sjson.Set(js, "kind", n.Kind().String()); err != nil {
		return "", err
	}
	if js, err = sjson.Set(js, "lineno", n.Lineno()); err != nil {
		return "", err
	}

	switch n.Kind() {
	case KindNumericLiteral:
		js, err = sjson.Set(js, "value", n.Value())
	case KindStringLiteral:
		if js, err = sjson.Set(js, "value", n.StringValue()); err == nil {
			js, err = sjson.Set(js, "quoted", n.Quoted())
		}
	case KindRegexLiteral:
		if js, err = sjson.Set(js, "body", n.RegexBody()); err == nil {
			js, err = sjson.Set(js, "flags", n.RegexFlags())
		}
	case KindBooleanLiteral:
		js, err = sjson.Set(js, "value", n.BoolValue())
	case KindIdentifier:
		js, err = sjson.Set(js, "name", n.Name())
	case KindUnary, KindPostfix, KindOperator, KindAssignment:
		js, err = sjson.Set(js, "op", n.Op())
	case KindVarDeclaration:
		js, err = sjson.Set(js, "iterator", n.Iterator())
	case KindStatementWithExpression:
		js, err = sjson.Set(js, "statement", n.StatementKind().String())
	}
	if err != nil {
		return "", err
	}

	childrenJSON := "[]"
	for i := 0; i < n.NumChildren(); i++ {
		childJSON, err := encodeNode(n.ChildAt(i))
		if err != nil {
			return "", err
		}
		if childrenJSON, err = sjson.SetRaw(childrenJSON, strconv.Itoa(i), childJSON); err != nil {
			return "", err
		}
	}
	if js, err = sjson.SetRaw(js, "children", childrenJSON); err != nil {
		return "", err
	}
	return js, nil
}

// Decode parses the JSON tree-interchange format produced by Encode back
// into a Node tree. Dispatch on the "kind" discriminator is done with
// gjson rather than a two-pass encoding/json unmarshal into an
// intermediate struct.
func Decode(data string) (*Node, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("interchange: invalid JSON")
	}
	return decodeValue(gjson.Parse(data))
}

func decodeValue(v gjson.Result) (*Node, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}

	kind := v.Get("kind").String()
	lineno := int(v.Get("lineno").Int())

	childResults := v.Get("children").Array()
	children := make([]*Node, len(childResults))
	for i, c := range childResults {
		child, err := decodeValue(c)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	switch kind {
	case "NumericLiteral":
		return NewNumericLiteral(v.Get("value").Float(), lineno)
	case "StringLiteral":
		return NewStringLiteral(v.Get("value").String(), v.Get("quoted").Bool(), lineno), nil
	case "RegexLiteral":
		return NewRegexLiteral(v.Get("body").String(), v.Get("flags").String(), lineno), nil
	case "BooleanLiteral":
		return NewBooleanLiteral(v.Get("value").Bool(), lineno), nil
	case "NullLiteral":
		return NewNullLiteral(lineno), nil
	case "This":
		return NewThis(lineno), nil
	case "EmptyExpression":
		return NewEmptyExpression(lineno), nil
	case "Identifier":
		return NewIdentifier(v.Get("name").String(), lineno), nil
	case "Parenthetical":
		return NewParenthetical(at(children, 0), lineno), nil
	case "Unary":
		return NewUnary(v.Get("op").String(), at(children, 0), lineno), nil
	case "Postfix":
		return NewPostfix(v.Get("op").String(), at(children, 0), lineno), nil
	case "Operator":
		return NewOperator(v.Get("op").String(), at(children, 0), at(children, 1), lineno), nil
	case "Assignment":
		return NewAssignment(v.Get("op").String(), at(children, 0), at(children, 1), lineno), nil
	case "ConditionalExpression":
		return NewConditionalExpression(at(children, 0), at(children, 1), at(children, 2), lineno), nil
	case "FunctionCall":
		return NewFunctionCall(at(children, 0), at(children, 1), lineno), nil
	case "FunctionConstructor":
		return NewFunctionConstructor(at(children, 0), at(children, 1), lineno), nil
	case "StaticMemberExpression":
		return NewStaticMemberExpression(at(children, 0), at(children, 1), lineno), nil
	case "DynamicMemberExpression":
		return NewDynamicMemberExpression(at(children, 0), at(children, 1), lineno), nil
	case "ObjectLiteral":
		return NewObjectLiteral(lineno, children...), nil
	case "ObjectLiteralProperty":
		return NewObjectLiteralProperty(at(children, 0), at(children, 1), lineno), nil
	case "ArrayLiteral":
		return NewArrayLiteral(lineno, children...), nil
	case "Program":
		return NewProgram(children...), nil
	case "StatementList":
		return NewStatementList(lineno, children...), nil
	case "FunctionDeclaration":
		return NewFunctionDeclaration(at(children, 0), at(children, 1), at(children, 2), lineno), nil
	case "FunctionExpression":
		return NewFunctionExpression(at(children, 0), at(children, 1), at(children, 2), lineno), nil
	case "ArgList":
		return NewArgList(lineno, children...), nil
	case "If":
		return NewIf(at(children, 0), at(children, 1), at(children, 2), lineno), nil
	case "While":
		return NewWhile(at(children, 0), at(children, 1), lineno), nil
	case "DoWhile":
		return NewDoWhile(at(children, 0), at(children, 1), lineno), nil
	case "ForLoop":
		return NewForLoop(at(children, 0), at(children, 1), at(children, 2), at(children, 3), lineno), nil
	case "ForIn":
		return NewForIn(at(children, 0), at(children, 1), at(children, 2), lineno), nil
	case "With":
		return NewWith(at(children, 0), at(children, 1), lineno), nil
	case "Try":
		return NewTry(at(children, 0), at(children, 1), at(children, 2), at(children, 3), lineno), nil
	case "Switch":
		return NewSwitch(at(children, 0), at(children, 1), lineno), nil
	case "CaseClause":
		return NewCaseClause(at(children, 0), lineno), nil
	case "DefaultClause":
		return NewDefaultClause(lineno), nil
	case "VarDeclaration":
		return NewVarDeclaration(v.Get("iterator").Bool(), lineno, children...), nil
	case "StatementWithExpression":
		stmtKind, err := parseStatementKind(v.Get("statement").String())
		if err != nil {
			return nil, err
		}
		return NewStatementWithExpression(stmtKind, at(children, 0), lineno), nil
	case "Label":
		return NewLabel(at(children, 0), at(children, 1), lineno), nil
	default:
		return nil, fmt.Errorf("interchange: unknown node kind %q", kind)
	}
}

// at returns children[i], or nil (absent) if i is out of range — the
// children array in a decoded "children" slot may be shorter than a
// fixed-arity Kind expects only when the document itself is malformed.
// The missing slots then decode as absent rather than this function
// panicking; the constructor still gives the node its full slot count.
func at(children []*Node, i int) *Node {
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}

func parseStatementKind(s string) (StatementKind, error) {
	switch s {
	case "throw":
		return StmtThrow, nil
	case "return":
		return StmtReturn, nil
	case "continue":
		return StmtContinue, nil
	case "break":
		return StmtBreak, nil
	default:
		return 0, fmt.Errorf("interchange: unknown statement kind %q", s)
	}
}
