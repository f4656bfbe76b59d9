package dsl

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrDanglingEscape is returned by Unescape when text ends in a backslash.
var ErrDanglingEscape = errors.New("backslash at end of quoted text")

// Unescape removes backslash escapes from quoted text: a backslash followed by
// any character yields that character.
func Unescape(raw string) (string, error) {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw, nil
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		if raw[i] != '\\' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", ErrDanglingEscape
		}
		_, size := utf8.DecodeRuneInString(raw[i+1:])
		b.WriteString(raw[i+1 : i+1+size])
		i += 1 + size
	}
	return b.String(), nil
}

// Build converts a concrete syntax tree into one Expr per top-level diagram.
func Build(doc *Document) ([]Expr, error) {
	exprs := make([]Expr, 0, len(doc.Diagrams))
	for _, d := range doc.Diagrams {
		e, err := buildLBox(d)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func buildLBox(n *LBoxExpr) (Expr, error) {
	body, err := buildRpt(n.Body)
	if err != nil {
		return nil, err
	}
	if n.Label == nil {
		return body, nil
	}
	label, err := buildRpt(n.Label)
	if err != nil {
		return nil, err
	}
	return LabeledBox{Inner: body, Label: label}, nil
}

func buildRpt(n *RptExpr) (Expr, error) {
	body, err := buildOpt(n.Body)
	if err != nil {
		return nil, err
	}
	if n.Sep == nil {
		return body, nil
	}
	sep, err := buildOpt(n.Sep)
	if err != nil {
		return nil, err
	}
	return Repeat{Body: body, Sep: sep}, nil
}

// buildOpt wraps the simple expression once per "?" mark, innermost first.
func buildOpt(n *OptExpr) (Expr, error) {
	e, err := buildSimple(n.Simple)
	if err != nil {
		return nil, err
	}
	for range n.Marks {
		e = Optional{Inner: e}
	}
	return e, nil
}

func buildSimple(n *SimpleExpr) (Expr, error) {
	switch n.Kind {
	case SimpleTerm, SimpleNonTerm, SimpleComment:
		text, err := Unescape(n.Raw)
		if err != nil {
			return nil, &SyntaxError{Pos: n.Pos, Message: err.Error()}
		}
		switch n.Kind {
		case SimpleTerm:
			return Term{Text: text}, nil
		case SimpleNonTerm:
			return NonTerm{Text: text}, nil
		default:
			return Comment{Text: text}, nil
		}

	case SimpleEmpty:
		return Empty{}, nil

	case SimpleSequence, SimpleStack, SimpleChoice:
		items := make([]Expr, 0, len(n.Items))
		for _, item := range n.Items {
			e, err := buildLBox(item)
			if err != nil {
				return nil, err
			}
			items = append(items, e)
		}
		switch n.Kind {
		case SimpleSequence:
			return Sequence{Items: items}, nil
		case SimpleStack:
			return Stack{Items: items}, nil
		default:
			return Choice{Items: items}, nil
		}

	default:
		return nil, &SyntaxError{Pos: n.Pos, Message: "unknown expression kind " + n.Kind.String()}
	}
}
