package dsl

import "fmt"

// ParseDocument recognizes source text and returns its concrete syntax tree.
// Returns a *SyntaxError on failure.
func ParseDocument(src []byte, opts ...Option) (*Document, error) {
	p := &parser{
		lex:  NewLexer(src),
		opts: newOptions(opts),
	}
	return p.parseDocument()
}

type parser struct {
	lex   *Lexer
	opts  options
	depth int
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

// accept consumes the next token if it has the given kind.
func (p *parser) accept(kind TokenKind) (Token, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, false, err
	}
	if tok.Kind != kind {
		return tok, false, nil
	}
	_, _ = p.next()
	return tok, true, nil
}

func startsExpr(kind TokenKind) bool {
	switch kind {
	case TokenTerm, TokenNonTerm, TokenComment, TokenBang,
		TokenLBracket, TokenLBrace, TokenLAngle:
		return true
	}
	return false
}

func (p *parser) parseDocument() (*Document, error) {
	doc := &Document{}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if len(doc.Diagrams) > 0 {
			if tok.Kind == TokenEOF {
				return doc, nil
			}
			if p.opts.singleDiagram {
				e := unexpected(tok, "EOF")
				e.Message = "only one diagram is allowed"
				return nil, e
			}
			if !startsExpr(tok.Kind) {
				return nil, unexpected(tok, "expression or EOF")
			}
		}

		d, err := p.parseLBox()
		if err != nil {
			return nil, err
		}
		doc.Diagrams = append(doc.Diagrams, d)
	}
}

func (p *parser) parseLBox() (*LBoxExpr, error) {
	body, err := p.parseRpt()
	if err != nil {
		return nil, err
	}
	e := &LBoxExpr{Body: body, Pos: body.Pos}

	if _, ok, err := p.accept(TokenHash); err != nil {
		return nil, err
	} else if ok {
		if e.Label, err = p.parseRpt(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (p *parser) parseRpt() (*RptExpr, error) {
	body, err := p.parseOpt()
	if err != nil {
		return nil, err
	}
	e := &RptExpr{Body: body, Pos: body.Pos}

	if _, ok, err := p.accept(TokenStar); err != nil {
		return nil, err
	} else if ok {
		if e.Sep, err = p.parseOpt(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (p *parser) parseOpt() (*OptExpr, error) {
	simple, err := p.parseSimple()
	if err != nil {
		return nil, err
	}
	e := &OptExpr{Simple: simple, Pos: simple.Pos}

	for {
		tok, ok, err := p.accept(TokenQuestion)
		if err != nil {
			return nil, err
		}
		if !ok {
			return e, nil
		}
		e.Marks = append(e.Marks, tok.Pos)
	}
}

func (p *parser) parseSimple() (*SimpleExpr, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenTerm:
		return &SimpleExpr{Kind: SimpleTerm, Raw: tok.Literal, Pos: tok.Pos}, nil
	case TokenNonTerm:
		return &SimpleExpr{Kind: SimpleNonTerm, Raw: tok.Literal, Pos: tok.Pos}, nil
	case TokenComment:
		return &SimpleExpr{Kind: SimpleComment, Raw: tok.Literal, Pos: tok.Pos}, nil
	case TokenBang:
		return &SimpleExpr{Kind: SimpleEmpty, Pos: tok.Pos}, nil
	case TokenLBracket:
		return p.parseList(tok, SimpleSequence, TokenRBracket)
	case TokenLBrace:
		return p.parseList(tok, SimpleStack, TokenRBrace)
	case TokenLAngle:
		return p.parseList(tok, SimpleChoice, TokenRAngle)
	default:
		return nil, unexpected(tok, "expression")
	}
}

// parseList parses the comma separated items after an opening bracket and
// the matching closing bracket.
func (p *parser) parseList(open Token, kind SimpleKind, closer TokenKind) (*SimpleExpr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return nil, &SyntaxError{
			Pos:     open.Pos,
			Message: fmt.Sprintf("nesting exceeds maximum depth of %d", p.opts.maxDepth),
		}
	}

	e := &SimpleExpr{Kind: kind, Pos: open.Pos}
	for {
		item, err := p.parseLBox()
		if err != nil {
			return nil, err
		}
		e.Items = append(e.Items, item)

		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenComma:
			continue
		case closer:
			return e, nil
		default:
			return nil, unexpected(tok, fmt.Sprintf("%s or %s", TokenComma, closer))
		}
	}
}
