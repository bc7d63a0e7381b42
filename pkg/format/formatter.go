package format

import (
	"strings"
)

// Options controls how a Formatter is built
type Options struct {
	// Pretty renders every clause on its own line and indents nested statements
	Pretty bool
	// IndentSize specifies the number of spaces for each indent level
	IndentSize int
}

// Defaults are the standard formatting options: one-line output, two space indentation
// when pretty output is requested.
var Defaults = Options{
	Pretty:     false,
	IndentSize: 2,
}

// Formatter is the token set used by every clause renderer. The zero value is not
// useful; use OneLine, MultiLine or New.
type Formatter struct {
	// LineBreak is emitted between clauses in multi-line mode and is empty otherwise
	LineBreak string
	// Indent is repeated once per nesting level after every line break
	Indent string
	// Comma separates list elements
	Comma string
	// Space separates keywords from their values
	Space string

	depth int
}

var (
	// OneLine renders a statement on a single line. It backs String().
	OneLine = Formatter{Comma: ", ", Space: " "}

	// MultiLine renders one clause per line with nested statements indented. It backs
	// Pretty() and the debug output.
	MultiLine = Formatter{LineBreak: "\n", Indent: "  ", Comma: ", ", Space: " "}
)

// New creates a Formatter from the given options
func New(opts Options) Formatter {
	if !opts.Pretty {
		return OneLine
	}

	size := opts.IndentSize
	if size <= 0 {
		size = Defaults.IndentSize
	}

	f := MultiLine
	f.Indent = strings.Repeat(" ", size)
	return f
}

// Pretty reports whether the formatter renders multi-line output.
func (f Formatter) Pretty() bool {
	return f.LineBreak != ""
}

// Depth returns the nesting level of the formatter.
func (f Formatter) Depth() int {
	return f.depth
}

// Nested returns a copy of the formatter one indentation level deeper. It is used to
// render child statements of WITH bindings and set operations.
func (f Formatter) Nested() Formatter {
	f.depth++
	return f
}

// Break returns a line break followed by the indentation of the current level. In
// one-line mode it is empty.
func (f Formatter) Break() string {
	if !f.Pretty() {
		return ""
	}

	return f.LineBreak + strings.Repeat(f.Indent, f.depth)
}

// End terminates a rendered clause: a Break in multi-line mode, a Space otherwise.
func (f Formatter) End() string {
	if f.Pretty() {
		return f.Break()
	}

	return f.Space
}

// Join joins items with the Comma token.
func (f Formatter) Join(items []string) string {
	return strings.Join(items, f.Comma)
}

// Lines joins items with a comma, placing each item on its own line one level deeper
// in multi-line mode. The first item is not indented; callers position it.
func (f Formatter) Lines(items []string) string {
	if !f.Pretty() {
		return f.Join(items)
	}

	return strings.Join(items, strings.TrimRight(f.Comma, " ")+f.Nested().Break())
}

// Block wraps items in parentheses. In multi-line mode every item is placed on its own
// line one level deeper and the closing parenthesis is aligned with the current level.
//
// Example:
//
//	OneLine.Block([]string{"id int", "name text"})    // (id int, name text)
//	MultiLine.Block([]string{"id int", "name text"})  // (\n  id int,\n  name text\n)
func (f Formatter) Block(items []string) string {
	if !f.Pretty() {
		return "(" + f.Join(items) + ")"
	}

	return "(" + f.Nested().Break() + f.Lines(items) + f.Break() + ")"
}

// Reindent shifts every line after the first of an already rendered statement one
// level deeper. One-line output is returned unchanged.
func (f Formatter) Reindent(sql string) string {
	if !f.Pretty() {
		return sql
	}

	return strings.ReplaceAll(sql, f.LineBreak, f.LineBreak+f.Indent)
}
