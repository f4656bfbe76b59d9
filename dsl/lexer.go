package dsl

import "unicode/utf8"

// Lexer splits diagram source into tokens and keeps one token of lookahead
// for the parser. Quoted text is returned raw; escapes survive until Build.
type Lexer struct {
	src []byte
	at  Position // location of the next unread byte

	ahead    Token
	hasAhead bool
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, at: Position{Line: 1, Column: 1}}
}

// Peek returns the upcoming token and leaves it in place.
func (l *Lexer) Peek() (Token, error) {
	if !l.hasAhead {
		tok, err := l.scan()
		if err != nil {
			return Token{}, err
		}
		l.ahead, l.hasAhead = tok, true
	}
	return l.ahead, nil
}

// Next returns the upcoming token and moves past it.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.Peek()
	if err != nil {
		return Token{}, err
	}
	l.hasAhead = false
	return tok, nil
}

func (l *Lexer) rest() []byte {
	return l.src[l.at.Offset:]
}

// current returns the next unread byte, or 0 at end of input.
func (l *Lexer) current() byte {
	if len(l.rest()) == 0 {
		return 0
	}
	return l.src[l.at.Offset]
}

// advance moves past one rune; columns count runes, offsets count bytes.
func (l *Lexer) advance() {
	r, size := utf8.DecodeRune(l.rest())
	l.at.Offset += size
	if r == '\n' {
		l.at.Line++
		l.at.Column = 1
	} else {
		l.at.Column++
	}
}

func (l *Lexer) skipWhitespace() {
	for len(l.rest()) > 0 {
		switch l.current() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()

	pos := l.at
	if len(l.rest()) == 0 {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}
	ch := l.current()

	if kind, ok := punctuation[ch]; ok {
		l.advance()
		return Token{Kind: kind, Literal: string(ch), Pos: pos}, nil
	}

	if kind, ok := delimiters[ch]; ok {
		return l.scanQuoted(kind, ch)
	}

	l.advance()
	return Token{Kind: TokenIllegal, Literal: string(l.src[pos.Offset:l.at.Offset]), Pos: pos}, nil
}

// scanQuoted consumes text between a pair of delim bytes. A backslash and the
// character after it are always taken as a pair, so an escaped delimiter never
// closes the text. The literal keeps the escapes; Unescape removes them.
func (l *Lexer) scanQuoted(kind TokenKind, delim byte) (Token, error) {
	pos := l.at
	l.advance()
	start := l.at.Offset

	for {
		if len(l.rest()) == 0 {
			return Token{}, &SyntaxError{
				Pos:      pos,
				Message:  "unterminated " + kind.String(),
				Expected: "closing " + string(rune(delim)),
				Got:      "EOF",
			}
		}
		switch l.current() {
		case delim:
			lit := string(l.src[start:l.at.Offset])
			l.advance()
			return Token{Kind: kind, Literal: lit, Pos: pos}, nil
		case '\\':
			l.advance()
			if len(l.rest()) > 0 {
				l.advance()
			}
		default:
			l.advance()
		}
	}
}
