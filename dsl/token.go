package dsl

import "fmt"

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF     TokenKind = iota
	TokenIllegal           // any byte that starts no token
	TokenTerm              // "..."
	TokenNonTerm           // '...'
	TokenComment           // `...`
	TokenBang              // !
	TokenLBracket          // [
	TokenRBracket          // ]
	TokenLBrace            // {
	TokenRBrace            // }
	TokenLAngle            // <
	TokenRAngle            // >
	TokenComma             // ,
	TokenQuestion          // ?
	TokenStar              // *
	TokenHash              // #
)

var tokenNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenIllegal:  "illegal character",
	TokenTerm:     "terminal",
	TokenNonTerm:  "non-terminal",
	TokenComment:  "comment",
	TokenBang:     "'!'",
	TokenLBracket: "'['",
	TokenRBracket: "']'",
	TokenLBrace:   "'{'",
	TokenRBrace:   "'}'",
	TokenLAngle:   "'<'",
	TokenRAngle:   "'>'",
	TokenComma:    "','",
	TokenQuestion: "'?'",
	TokenStar:     "'*'",
	TokenHash:     "'#'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // raw inner text for quoted kinds (escapes kept), source text otherwise
	Pos     Position
}

func (t Token) describe() string {
	switch t.Kind {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("%q", t.Literal)
	case TokenTerm, TokenNonTerm, TokenComment:
		return fmt.Sprintf("%s (%q)", t.Kind, t.Literal)
	default:
		return t.Kind.String()
	}
}

// punctuation maps single-byte tokens to their kinds.
var punctuation = map[byte]TokenKind{
	'!': TokenBang,
	'[': TokenLBracket,
	']': TokenRBracket,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'<': TokenLAngle,
	'>': TokenRAngle,
	',': TokenComma,
	'?': TokenQuestion,
	'*': TokenStar,
	'#': TokenHash,
}

// delimiters maps the opening byte of quoted text to its token kind.
var delimiters = map[byte]TokenKind{
	'"':  TokenTerm,
	'\'': TokenNonTerm,
	'`':  TokenComment,
}
