package railroad

import "unicode/utf8"

const (
	arcRadius  = 10 // radius of rail curves
	boxHeight  = 22 // height of terminal, non-terminal and comment boxes
	boxPadding = 10 // horizontal padding around box text
	charWidth  = 8  // estimated advance of one monospace character
	itemGap    = 10 // horizontal space between sequence items
	branchGap  = 2 * arcRadius
	stackGap   = 4 * arcRadius
)

// Node is an element of a diagram. All node kinds are provided by this
// package.
type Node interface {
	Width() int
	Height() int
	// EntryHeight is the distance from the top of the node to the line that
	// enters on the left and leaves on the right.
	EntryHeight() int

	draw(w *svgWriter, x, y int)
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s) * charWidth
}

func maxWidth(nodes []Node) int {
	m := 0
	for _, n := range nodes {
		if n.Width() > m {
			m = n.Width()
		}
	}
	return m
}

// box is the shared layout of terminals and non-terminals.
type box struct {
	text   string
	class  string
	radius int
}

func (b *box) Width() int       { return textWidth(b.text) + 2*boxPadding }
func (b *box) Height() int      { return boxHeight }
func (b *box) EntryHeight() int { return boxHeight / 2 }

func (b *box) draw(w *svgWriter, x, y int) {
	w.openGroup(b.class)
	w.rect(x, y, b.Width(), b.Height(), b.radius, `fill="#fff" stroke="#000" stroke-width="2"`)
	w.text(b.class, x+b.Width()/2, y+b.EntryHeight(), b.text)
	w.closeGroup()
}

// Terminal is a literal token drawn in a rounded box.
type Terminal struct{ box }

// NewTerminal returns a terminal showing text.
func NewTerminal(text string) *Terminal {
	return &Terminal{box{text: text, class: "terminal", radius: boxHeight / 2}}
}

// NonTerminal is a reference to another production drawn in a square box.
type NonTerminal struct{ box }

// NewNonTerminal returns a non-terminal showing text.
func NewNonTerminal(text string) *NonTerminal {
	return &NonTerminal{box{text: text, class: "nonterminal"}}
}

// Comment is unboxed annotation text.
type Comment struct {
	text string
}

// NewComment returns a comment showing text.
func NewComment(text string) *Comment {
	return &Comment{text: text}
}

func (c *Comment) Width() int       { return textWidth(c.text) + boxPadding }
func (c *Comment) Height() int      { return boxHeight }
func (c *Comment) EntryHeight() int { return boxHeight / 2 }

func (c *Comment) draw(w *svgWriter, x, y int) {
	w.openGroup("comment")
	w.text("comment", x+c.Width()/2, y+c.EntryHeight(), c.text)
	w.closeGroup()
}

// Empty takes no space and draws nothing.
type Empty struct{}

// NewEmpty returns an empty node.
func NewEmpty() *Empty { return &Empty{} }

func (*Empty) Width() int                { return 0 }
func (*Empty) Height() int               { return 0 }
func (*Empty) EntryHeight() int          { return 0 }
func (*Empty) draw(*svgWriter, int, int) {}

// Start marks the left end of a diagram.
type Start struct{}

// NewStart returns a start marker.
func NewStart() *Start { return &Start{} }

func (*Start) Width() int       { return 2 * arcRadius }
func (*Start) Height() int      { return boxHeight }
func (*Start) EntryHeight() int { return boxHeight / 2 }

func (s *Start) draw(w *svgWriter, x, y int) {
	p := newPath(x, y+arcRadius/2).verticalTo(y + boxHeight - arcRadius/2)
	p.moveTo(x, y+s.EntryHeight()).horizontalTo(x + s.Width())
	w.openGroup("start")
	w.path(p)
	w.closeGroup()
}

// End marks the right end of a diagram.
type End struct{}

// NewEnd returns an end marker.
func NewEnd() *End { return &End{} }

func (*End) Width() int       { return 2 * arcRadius }
func (*End) Height() int      { return boxHeight }
func (*End) EntryHeight() int { return boxHeight / 2 }

func (e *End) draw(w *svgWriter, x, y int) {
	p := newPath(x, y+e.EntryHeight()).horizontalTo(x + e.Width())
	p.moveTo(x+e.Width(), y+arcRadius/2).verticalTo(y + boxHeight - arcRadius/2)
	w.openGroup("end")
	w.path(p)
	w.closeGroup()
}
