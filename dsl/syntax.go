package dsl

// SimpleKind discriminates the alternatives of a simple expression.
type SimpleKind int

const (
	SimpleTerm SimpleKind = iota
	SimpleNonTerm
	SimpleComment
	SimpleEmpty
	SimpleSequence
	SimpleStack
	SimpleChoice
)

func (k SimpleKind) String() string {
	switch k {
	case SimpleTerm:
		return "term"
	case SimpleNonTerm:
		return "nonterm"
	case SimpleComment:
		return "comment"
	case SimpleEmpty:
		return "empty"
	case SimpleSequence:
		return "sequence"
	case SimpleStack:
		return "stack"
	case SimpleChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Document is the concrete syntax tree of a whole source text: one or more
// top-level diagrams in source order.
type Document struct {
	Diagrams []*LBoxExpr
}

// LBoxExpr is a repeat expression with an optional "#" label.
type LBoxExpr struct {
	Body  *RptExpr
	Label *RptExpr // nil when no "#" follows
	Pos   Position
}

// RptExpr is an optional expression with an optional "*" separator.
type RptExpr struct {
	Body *OptExpr
	Sep  *OptExpr // nil when no "*" follows
	Pos  Position
}

// OptExpr is a simple expression followed by zero or more "?" marks.
type OptExpr struct {
	Simple *SimpleExpr
	Marks  []Position // one entry per "?", in source order
	Pos    Position
}

// SimpleExpr is a leaf or bracketed expression.
type SimpleExpr struct {
	Kind  SimpleKind
	Raw   string      // inner text with escapes, for term, nonterm and comment
	Items []*LBoxExpr // list contents, for sequence, stack and choice
	Pos   Position
}
