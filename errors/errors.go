// Package errors formats a failure encountered while reducing or
// printing a tree into a message anchored to the source line the
// offending node came from, in the spirit of go-dws's compiler
// diagnostics but narrowed to line-only positions: nodes in this module
// carry a line number (ast.Node.Lineno) and nothing finer.
package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-dws/ast"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// SourceError pairs a diagnostic message with the line of source it
// refers to, optionally scoped to a file name.
type SourceError struct {
	Line    int
	Message string
	Source  string
	File    string
}

// NewSourceError builds a SourceError anchored at line in source.
func NewSourceError(line int, message, source, file string) *SourceError {
	return &SourceError{Line: line, Message: message, Source: source, File: file}
}

// FromNode builds a SourceError from a tree operation's error, anchored
// at n's line number (0 when n is absent). The CLI passes the decoded
// root node, so a CheckArity or Reduce failure is reported at the root's
// line rather than as a bare error string.
func FromNode(n *ast.Node, err error, source, file string) *SourceError {
	line := 0
	if !ast.IsAbsent(n) {
		line = n.Lineno()
	}
	return NewSourceError(line, err.Error(), source, file)
}

func (e *SourceError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Format renders e as a single diagnostic: a header line naming the
// file and line (or just the line, if File is empty), the offending
// source line prefixed with its line number, and a caret pointing at
// its start.
func (e *SourceError) Format(color bool) string {
	var b strings.Builder
	if e.File != "" {
		fmt.Fprintf(&b, "Error in %s:%d: %s\n", e.File, e.Line, e.Message)
	} else {
		fmt.Fprintf(&b, "Error at line %d: %s\n", e.Line, e.Message)
	}
	if line := e.getSourceLine(e.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", e.Line)
		writeGutteredLine(&b, gutter, line, color)
		b.WriteString(strings.Repeat(" ", len(gutter)))
		writeCaret(&b, color)
	}
	return b.String()
}

// FormatWithContext is Format plus contextLines of surrounding source on
// either side, each with its own gutter, so a reader can see the
// statement the offending line sits inside.
func (e *SourceError) FormatWithContext(contextLines int, color bool) string {
	var b strings.Builder
	if e.File != "" {
		fmt.Fprintf(&b, "Error in %s:%d: %s\n", e.File, e.Line, e.Message)
	} else {
		fmt.Fprintf(&b, "Error at line %d: %s\n", e.Line, e.Message)
	}

	start := e.Line - contextLines
	if start < 1 {
		start = 1
	}
	lines := e.getSourceContext(e.Line, e.Line-start, contextLines)
	gutterWidth := len(strconv.Itoa(e.Line + contextLines))
	for i, line := range lines {
		lineNum := start + i
		gutter := fmt.Sprintf("%*d | ", gutterWidth, lineNum)
		if lineNum == e.Line {
			writeGutteredLine(&b, gutter, line, color)
			b.WriteString(strings.Repeat(" ", len(gutter)))
			writeCaret(&b, color)
		} else {
			fmt.Fprintf(&b, "%s%s\n", gutter, line)
		}
	}
	return b.String()
}

func writeGutteredLine(b *strings.Builder, gutter, line string, color bool) {
	if color {
		fmt.Fprintf(b, "%s%s%s\n", gutter, colorRed, line)
		b.WriteString(colorReset)
		b.WriteByte('\n')
		return
	}
	fmt.Fprintf(b, "%s%s\n", gutter, line)
}

func writeCaret(b *strings.Builder, color bool) {
	if color {
		fmt.Fprintf(b, "%s^%s\n", colorRed, colorReset)
		return
	}
	b.WriteString("^\n")
}

// getSourceLine returns the 1-indexed lineNum'th line of e.Source, or ""
// if lineNum is out of range.
func (e *SourceError) getSourceLine(lineNum int) string {
	if lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// getSourceContext returns up to contextBefore lines before lineNum,
// lineNum itself, and up to contextAfter lines after, clamped to the
// source's actual bounds.
func (e *SourceError) getSourceContext(lineNum, contextBefore, contextAfter int) []string {
	lines := strings.Split(e.Source, "\n")
	start := lineNum - contextBefore
	if start < 1 {
		start = 1
	}
	end := lineNum + contextAfter
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return nil
	}
	return lines[start-1 : end]
}

// FormatErrors renders a batch of errors as a numbered report, or "" if
// errs is empty.
func FormatErrors(errs []*SourceError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Compilation failed with %d error(s)\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&b, "\n[Error %d of %d]\n", i+1, len(errs))
		b.WriteString(e.Format(color))
	}
	return b.String()
}
