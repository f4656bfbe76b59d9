package dsl

import "strings"

// Expr is a compiled diagram expression. The set of implementations is closed:
// Term, NonTerm, Comment, Empty, Sequence, Stack, Choice, Optional, Repeat and
// LabeledBox.
//
// String returns the expression in canonical notation.
type Expr interface {
	String() string
	expr()
}

// Term is a literal token, drawn as a terminal box.
type Term struct{ Text string }

// NonTerm references a named production, drawn as a non-terminal box.
type NonTerm struct{ Text string }

// Comment is a free-form annotation.
type Comment struct{ Text string }

// Empty is a zero-width placeholder.
type Empty struct{}

// Sequence draws its items left to right.
type Sequence struct{ Items []Expr }

// Stack draws its items top to bottom.
type Stack struct{ Items []Expr }

// Choice draws its items as alternatives.
type Choice struct{ Items []Expr }

// Optional marks Inner as skippable.
type Optional struct{ Inner Expr }

// Repeat allows Body to repeat with Sep drawn between repetitions.
type Repeat struct {
	Body Expr
	Sep  Expr
}

// LabeledBox draws Inner inside a box annotated with Label.
type LabeledBox struct {
	Inner Expr
	Label Expr
}

func (Term) expr()       {}
func (NonTerm) expr()    {}
func (Comment) expr()    {}
func (Empty) expr()      {}
func (Sequence) expr()   {}
func (Stack) expr()      {}
func (Choice) expr()     {}
func (Optional) expr()   {}
func (Repeat) expr()     {}
func (LabeledBox) expr() {}

func (e Term) String() string    { return quote(e.Text, '"') }
func (e NonTerm) String() string { return quote(e.Text, '\'') }
func (e Comment) String() string { return quote(e.Text, '`') }
func (Empty) String() string     { return "!" }

func (e Sequence) String() string { return list('[', e.Items, ']') }
func (e Stack) String() string    { return list('{', e.Items, '}') }
func (e Choice) String() string   { return list('<', e.Items, '>') }

func (e Optional) String() string {
	return operand(e.Inner, levelOpt) + "?"
}

func (e Repeat) String() string {
	return operand(e.Body, levelOpt) + "*" + operand(e.Sep, levelOpt)
}

func (e LabeledBox) String() string {
	return operand(e.Inner, levelRpt) + "#" + operand(e.Label, levelRpt)
}

// Binding levels of the postfix operators, tightest first.
const (
	levelOpt = iota + 1
	levelRpt
	levelLBox
)

func level(e Expr) int {
	switch e.(type) {
	case Repeat:
		return levelRpt
	case LabeledBox:
		return levelLBox
	default:
		return levelOpt
	}
}

// operand renders e for a position that accepts at most the given level. The
// notation has no grouping parentheses, so a looser expression is wrapped in a
// one-item sequence.
func operand(e Expr, limit int) string {
	if level(e) > limit {
		return "[" + e.String() + "]"
	}
	return e.String()
}

func list(opener byte, items []Expr, closer byte) string {
	var b strings.Builder
	b.WriteByte(opener)
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteByte(closer)
	return b.String()
}

func quote(text string, delim byte) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(delim)
	for i := 0; i < len(text); i++ {
		if text[i] == delim || text[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}
	b.WriteByte(delim)
	return b.String()
}

// Format renders top-level expressions in canonical notation, one per line.
// Parsing the result yields the same expressions for any tree produced by
// Parse.
func Format(exprs []Expr) string {
	var b strings.Builder
	for _, e := range exprs {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
