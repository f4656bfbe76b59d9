package railroad

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// svgWriter accumulates SVG elements. Presentation attributes are written next
// to class names so the output stays legible for consumers without CSS.
type svgWriter struct {
	b      strings.Builder
	labels []Label
}

func (w *svgWriter) openGroup(class string) {
	fmt.Fprintf(&w.b, "<g class=%q>\n", class)
}

func (w *svgWriter) closeGroup() {
	w.b.WriteString("</g>\n")
}

func (w *svgWriter) path(p *path) {
	if p.empty() {
		return
	}
	fmt.Fprintf(&w.b, "<path d=%q fill=\"none\" stroke=\"#000\" stroke-width=\"2\"/>\n", p.String())
}

func (w *svgWriter) rect(x, y, width, height, radius int, extra string) {
	fmt.Fprintf(&w.b, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" rx=\"%d\" ry=\"%d\" %s/>\n",
		x, y, width, height, radius, radius, extra)
}

func (w *svgWriter) text(class string, x, y int, s string) {
	fmt.Fprintf(&w.b, "<text class=%q x=\"%d\" y=\"%d\" font-family=\"monospace\" font-size=\"14\" text-anchor=\"middle\" dominant-baseline=\"central\">",
		class, x, y)
	_ = xml.EscapeText(&w.b, []byte(s))
	w.b.WriteString("</text>\n")
	w.labels = append(w.labels, Label{X: x, Y: y, Text: s, Class: class})
}

func (w *svgWriter) String() string {
	return w.b.String()
}

// path builds the d attribute of an SVG path.
type path struct {
	b strings.Builder
}

func newPath(x, y int) *path {
	p := &path{}
	return p.moveTo(x, y)
}

func (p *path) empty() bool {
	return p.b.Len() == 0
}

func (p *path) moveTo(x, y int) *path {
	if !p.empty() {
		p.b.WriteByte(' ')
	}
	fmt.Fprintf(&p.b, "M%d %d", x, y)
	return p
}

func (p *path) horizontalTo(x int) *path {
	fmt.Fprintf(&p.b, " H%d", x)
	return p
}

func (p *path) verticalTo(y int) *path {
	fmt.Fprintf(&p.b, " V%d", y)
	return p
}

// arcBy draws a quarter circle of radius arcRadius ending at (dx, dy) relative
// to the current point.
func (p *path) arcBy(dx, dy int, clockwise bool) *path {
	sweep := 0
	if clockwise {
		sweep = 1
	}
	fmt.Fprintf(&p.b, " a%d %d 0 0 %d %d %d", arcRadius, arcRadius, sweep, dx, dy)
	return p
}

func (p *path) String() string {
	return p.b.String()
}
