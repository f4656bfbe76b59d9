package railroad

// Sequence places its children left to right on a shared line.
type Sequence struct {
	children []Node
	entry    int
	below    int
	width    int
}

// NewSequence returns a sequence of children.
func NewSequence(children ...Node) *Sequence {
	s := &Sequence{children: children}
	for i, c := range children {
		if c.EntryHeight() > s.entry {
			s.entry = c.EntryHeight()
		}
		if d := c.Height() - c.EntryHeight(); d > s.below {
			s.below = d
		}
		s.width += c.Width()
		if i > 0 {
			s.width += itemGap
		}
	}
	return s
}

func (s *Sequence) Width() int       { return s.width }
func (s *Sequence) Height() int      { return s.entry + s.below }
func (s *Sequence) EntryHeight() int { return s.entry }

func (s *Sequence) draw(w *svgWriter, x, y int) {
	w.openGroup("sequence")
	line := y + s.entry
	cx := x
	for i, c := range s.children {
		c.draw(w, cx, line-c.EntryHeight())
		cx += c.Width()
		if i < len(s.children)-1 {
			w.path(newPath(cx, line).horizontalTo(cx + itemGap))
			cx += itemGap
		}
	}
	w.closeGroup()
}

// rows stacks nodes vertically with a fixed gap and records each row's top.
type rows struct {
	children []Node
	tops     []int
	height   int
}

func newRows(children []Node, gap int) rows {
	r := rows{children: children, tops: make([]int, len(children))}
	for i, c := range children {
		if i > 0 {
			r.height += gap
		}
		r.tops[i] = r.height
		r.height += c.Height()
	}
	return r
}

// line returns the y offset of row i's entry line.
func (r rows) line(i int) int {
	return r.tops[i] + r.children[i].EntryHeight()
}

// Stack places its children top to bottom. The rail wraps from the end of one
// row to the start of the next and returns to the entry line on the right.
type Stack struct {
	rows  rows
	inner int
}

// NewStack returns a stack of children.
func NewStack(children ...Node) *Stack {
	return &Stack{rows: newRows(children, stackGap), inner: maxWidth(children)}
}

func (s *Stack) Width() int {
	switch len(s.rows.children) {
	case 0:
		return 0
	case 1:
		return s.inner
	default:
		return s.inner + 6*arcRadius
	}
}

func (s *Stack) Height() int { return s.rows.height }

func (s *Stack) EntryHeight() int {
	if len(s.rows.children) == 0 {
		return 0
	}
	return s.rows.line(0)
}

func (s *Stack) draw(w *svgWriter, x, y int) {
	w.openGroup("stack")
	defer w.closeGroup()

	children := s.rows.children
	if len(children) == 1 {
		children[0].draw(w, x, y)
		return
	}

	left := x + 2*arcRadius
	right := left + s.inner
	entry := y + s.EntryHeight()
	for i, c := range children {
		line := y + s.rows.line(i)
		if i == 0 {
			w.path(newPath(x, line).horizontalTo(left))
		}
		c.draw(w, left, y+s.rows.tops[i])
		w.path(newPath(left+c.Width(), line).horizontalTo(right))

		if i < len(children)-1 {
			mid := y + s.rows.tops[i] + c.Height() + stackGap/2
			next := y + s.rows.line(i+1)
			w.path(newPath(right, line).
				arcBy(arcRadius, arcRadius, true).
				verticalTo(mid-arcRadius).
				arcBy(-arcRadius, arcRadius, true).
				horizontalTo(left).
				arcBy(-arcRadius, arcRadius, false).
				verticalTo(next-arcRadius).
				arcBy(arcRadius, arcRadius, false))
			continue
		}

		w.path(newPath(right, line).
			horizontalTo(right+arcRadius).
			arcBy(arcRadius, -arcRadius, false).
			verticalTo(entry+arcRadius).
			arcBy(arcRadius, -arcRadius, true).
			horizontalTo(x + s.Width()))
	}
}

// Choice places alternatives top to bottom. The first alternative sits on the
// entry line; the others branch off below it and rejoin on the right.
type Choice struct {
	rows  rows
	inner int
}

// NewChoice returns a choice between children.
func NewChoice(children ...Node) *Choice {
	return &Choice{rows: newRows(children, branchGap), inner: maxWidth(children)}
}

func (c *Choice) Width() int {
	switch len(c.rows.children) {
	case 0:
		return 0
	case 1:
		return c.inner
	default:
		return c.inner + 4*arcRadius
	}
}

func (c *Choice) Height() int { return c.rows.height }

func (c *Choice) EntryHeight() int {
	if len(c.rows.children) == 0 {
		return 0
	}
	return c.rows.line(0)
}

func (c *Choice) draw(w *svgWriter, x, y int) {
	w.openGroup("choice")
	defer w.closeGroup()

	children := c.rows.children
	if len(children) == 1 {
		children[0].draw(w, x, y)
		return
	}

	left := x + 2*arcRadius
	right := x + c.Width() - 2*arcRadius
	entry := y + c.EntryHeight()
	for i, alt := range children {
		line := y + c.rows.line(i)
		alt.draw(w, left, y+c.rows.tops[i])
		if i == 0 {
			w.path(newPath(x, line).horizontalTo(left))
			w.path(newPath(left+alt.Width(), line).horizontalTo(x + c.Width()))
			continue
		}
		w.path(newPath(x, entry).
			arcBy(arcRadius, arcRadius, true).
			verticalTo(line-arcRadius).
			arcBy(arcRadius, arcRadius, false))
		w.path(newPath(left+alt.Width(), line).
			horizontalTo(right).
			arcBy(arcRadius, -arcRadius, false).
			verticalTo(entry+arcRadius).
			arcBy(arcRadius, -arcRadius, true))
	}
}

// Optional is a choice between skipping and passing through its child.
type Optional struct {
	*Choice
}

// NewOptional returns an optional wrapper around child.
func NewOptional(child Node) *Optional {
	return &Optional{NewChoice(NewEmpty(), child)}
}

// Repeat draws its body on the entry line and a loop back through the
// separator below it.
type Repeat struct {
	body, sep Node
	inner     int
}

// NewRepeat returns a repetition of body separated by sep.
func NewRepeat(body, sep Node) *Repeat {
	return &Repeat{body: body, sep: sep, inner: maxWidth([]Node{body, sep})}
}

func (r *Repeat) Width() int       { return r.inner + 4*arcRadius }
func (r *Repeat) Height() int      { return r.body.Height() + branchGap + r.sep.Height() }
func (r *Repeat) EntryHeight() int { return r.body.EntryHeight() }

func (r *Repeat) draw(w *svgWriter, x, y int) {
	w.openGroup("repeat")
	defer w.closeGroup()

	left := x + 2*arcRadius
	right := x + r.Width() - 2*arcRadius
	line := y + r.EntryHeight()
	sepTop := y + r.body.Height() + branchGap
	sepLine := sepTop + r.sep.EntryHeight()

	w.path(newPath(x, line).horizontalTo(left))
	r.body.draw(w, left, y)
	w.path(newPath(left+r.body.Width(), line).horizontalTo(x + r.Width()))

	w.path(newPath(right, line).
		arcBy(arcRadius, arcRadius, true).
		verticalTo(sepLine-arcRadius).
		arcBy(-arcRadius, arcRadius, true).
		horizontalTo(left + r.sep.Width()))
	r.sep.draw(w, left, sepTop)
	w.path(newPath(left, sepLine).
		arcBy(-arcRadius, -arcRadius, true).
		verticalTo(line+arcRadius).
		arcBy(arcRadius, -arcRadius, true))
}

// LabeledBox draws its child inside a dashed frame with a label above it.
type LabeledBox struct {
	child, label Node
	inner        int
}

// NewLabeledBox returns child framed and annotated with label.
func NewLabeledBox(child, label Node) *LabeledBox {
	return &LabeledBox{child: child, label: label, inner: maxWidth([]Node{child, label})}
}

func (b *LabeledBox) Width() int { return b.inner + 2*boxPadding }

func (b *LabeledBox) Height() int {
	return b.childTop() + b.child.Height() + boxPadding
}

func (b *LabeledBox) EntryHeight() int { return b.childTop() + b.child.EntryHeight() }

func (b *LabeledBox) childTop() int { return boxPadding + b.label.Height() + itemGap }

func (b *LabeledBox) draw(w *svgWriter, x, y int) {
	w.openGroup("labeledbox")
	defer w.closeGroup()

	line := y + b.EntryHeight()
	w.rect(x, y, b.Width(), b.Height(), arcRadius/2, `fill="none" stroke="#888" stroke-dasharray="4 2"`)
	b.label.draw(w, x+boxPadding, y+boxPadding)
	w.path(newPath(x, line).horizontalTo(x + boxPadding))
	b.child.draw(w, x+boxPadding, y+b.childTop())
	w.path(newPath(x+boxPadding+b.child.Width(), line).horizontalTo(x + b.Width()))
}

// VerticalGrid stacks independent diagrams without connecting them.
type VerticalGrid struct {
	rows  rows
	inner int
}

// NewVerticalGrid returns a grid of children, one per row.
func NewVerticalGrid(children ...Node) *VerticalGrid {
	return &VerticalGrid{rows: newRows(children, boxPadding), inner: maxWidth(children)}
}

func (g *VerticalGrid) Width() int     { return g.inner }
func (g *VerticalGrid) Height() int    { return g.rows.height }
func (*VerticalGrid) EntryHeight() int { return 0 }

func (g *VerticalGrid) draw(w *svgWriter, x, y int) {
	w.openGroup("grid")
	for i, c := range g.rows.children {
		c.draw(w, x, y+g.rows.tops[i])
	}
	w.closeGroup()
}
