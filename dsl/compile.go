package dsl

import (
	"fmt"

	"github.com/martinemde/railroad-dsl/railroad"
)

// CompiledDiagram is the result of compiling a document.
type CompiledDiagram struct {
	Width   int
	Height  int
	Diagram *railroad.Diagram
}

// Parse recognizes source text and builds one Expr per top-level diagram.
// Returns a *SyntaxError on failure.
func Parse(src []byte, opts ...Option) ([]Expr, error) {
	doc, err := ParseDocument(src, opts...)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Compile parses src and lays it out as a diagram styled with css. Each
// top-level expression is framed by start and end markers; several of them
// are stacked in a vertical grid in source order.
func Compile(src, css string, opts ...Option) (*CompiledDiagram, error) {
	exprs, err := Parse([]byte(src), opts...)
	if err != nil {
		return nil, err
	}

	framed := make([]railroad.Node, len(exprs))
	for i, e := range exprs {
		framed[i] = railroad.NewSequence(railroad.NewStart(), ToNode(e), railroad.NewEnd())
	}

	var root railroad.Node
	if len(framed) == 1 {
		root = framed[0]
	} else {
		root = railroad.NewVerticalGrid(framed...)
	}

	d := railroad.NewDiagram(root, css)
	return &CompiledDiagram{
		Width:   d.Width(),
		Height:  d.Height(),
		Diagram: d,
	}, nil
}

// ToNode converts an expression into the equivalent railroad node.
func ToNode(e Expr) railroad.Node {
	switch e := e.(type) {
	case Term:
		return railroad.NewTerminal(e.Text)
	case NonTerm:
		return railroad.NewNonTerminal(e.Text)
	case Comment:
		return railroad.NewComment(e.Text)
	case Empty:
		return railroad.NewEmpty()
	case Sequence:
		return railroad.NewSequence(toNodes(e.Items)...)
	case Stack:
		return railroad.NewStack(toNodes(e.Items)...)
	case Choice:
		return railroad.NewChoice(toNodes(e.Items)...)
	case Optional:
		return railroad.NewOptional(ToNode(e.Inner))
	case Repeat:
		return railroad.NewRepeat(ToNode(e.Body), ToNode(e.Sep))
	case LabeledBox:
		return railroad.NewLabeledBox(ToNode(e.Inner), ToNode(e.Label))
	default:
		panic(fmt.Sprintf("dsl: unexpected expression type %T", e))
	}
}

func toNodes(exprs []Expr) []railroad.Node {
	nodes := make([]railroad.Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = ToNode(e)
	}
	return nodes
}
