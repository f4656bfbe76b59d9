package railroad

import "fmt"

// DefaultCSS styles diagrams with dark lines on a light background.
const DefaultCSS = `svg.railroad rect.background {
    fill: hsl(30, 20%, 95%);
}
svg.railroad path {
    stroke-width: 3;
    stroke: black;
    fill: none;
}
svg.railroad text {
    font: bold 14px monospace;
    fill: black;
    text-anchor: middle;
    dominant-baseline: central;
}
svg.railroad text.comment {
    font: italic 12px monospace;
}
svg.railroad text.nonterminal {
    font-style: italic;
}
svg.railroad g.terminal > rect,
svg.railroad g.nonterminal > rect {
    stroke-width: 3;
    stroke: black;
    fill: hsl(120, 100%, 90%);
}
svg.railroad g.nonterminal > rect {
    fill: hsl(120, 60%, 80%);
}
svg.railroad g.labeledbox > rect {
    stroke-width: 1;
    stroke: grey;
    stroke-dasharray: 5px;
    fill: hsla(0, 0%, 100%, 0.5);
}
`

// DarkCSS styles diagrams with light lines on a dark background.
const DarkCSS = `svg.railroad rect.background {
    fill: hsl(220, 15%, 15%);
}
svg.railroad path {
    stroke-width: 3;
    stroke: hsl(0, 0%, 85%);
    fill: none;
}
svg.railroad text {
    font: bold 14px monospace;
    fill: hsl(0, 0%, 90%);
    text-anchor: middle;
    dominant-baseline: central;
}
svg.railroad text.comment {
    font: italic 12px monospace;
}
svg.railroad text.nonterminal {
    font-style: italic;
}
svg.railroad g.terminal > rect,
svg.railroad g.nonterminal > rect {
    stroke-width: 3;
    stroke: hsl(0, 0%, 85%);
    fill: hsl(210, 30%, 30%);
}
svg.railroad g.nonterminal > rect {
    fill: hsl(260, 25%, 32%);
}
svg.railroad g.labeledbox > rect {
    stroke-width: 1;
    stroke: hsl(0, 0%, 60%);
    stroke-dasharray: 5px;
    fill: hsla(0, 0%, 0%, 0.3);
}
`

// Theme selects one of the built-in stylesheets.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// CSS returns the stylesheet of the theme.
func (t Theme) CSS() string {
	if t == ThemeDark {
		return DarkCSS
	}
	return DefaultCSS
}

// ParseTheme returns the theme with the given name.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return 0, fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
}
