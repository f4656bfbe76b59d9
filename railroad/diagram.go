package railroad

import (
	"fmt"
	"strings"
)

// margin is the blank border around a diagram.
const margin = 10

// Diagram is a complete drawing: a root node plus the stylesheet embedded in
// the SVG output.
type Diagram struct {
	Root Node
	CSS  string
}

// NewDiagram returns a diagram drawing root styled with css.
func NewDiagram(root Node, css string) *Diagram {
	return &Diagram{Root: root, CSS: css}
}

// Width returns the width of the SVG canvas in pixels.
func (d *Diagram) Width() int { return d.Root.Width() + 2*margin }

// Height returns the height of the SVG canvas in pixels.
func (d *Diagram) Height() int { return d.Root.Height() + 2*margin }

// String renders the diagram as a standalone SVG document.
func (d *Diagram) String() string {
	var w svgWriter
	width, height := d.Width(), d.Height()
	fmt.Fprintf(&w.b, `<svg xmlns="http://www.w3.org/2000/svg" class="railroad" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	if d.CSS != "" {
		w.b.WriteString("<style><![CDATA[\n")
		w.b.WriteString(strings.ReplaceAll(d.CSS, "]]>", "]]]]><![CDATA[>"))
		w.b.WriteString("\n]]></style>\n")
	}
	fmt.Fprintf(&w.b, `<rect class="background" width="%d" height="%d" fill="#fff"/>`+"\n", width, height)
	d.Root.draw(&w, margin, margin)
	w.b.WriteString("</svg>\n")
	return w.String()
}

// Label is a piece of text in a drawn diagram, centred on (X, Y) in canvas
// coordinates.
type Label struct {
	X, Y  int
	Text  string
	Class string // terminal, nonterminal or comment
}

// Labels returns every text element of the diagram in drawing order.
func (d *Diagram) Labels() []Label {
	var w svgWriter
	d.Root.draw(&w, margin, margin)
	return w.labels
}
