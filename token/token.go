// Package token defines the tokens consumed by the parser. Tokens are produced
// by an upstream lexer and layout pass; this package only describes them.
package token

import (
	"fmt"
	"strings"
)

// Type describes the type of a token as a string.
type Type string

// Token types
const (
	EOF     = "EOF"
	ILLEGAL = "ILLEGAL"
	IDENT   = "IDENT"

	ARROW         = "->"
	BACKSLASH     = "\\"
	COLON         = ":"
	EQUALS        = "="
	FORALL_SYMBOL = "∀"
	LBRACE        = "{"
	LPAREN        = "("
	PERIOD        = "."
	RBRACE        = "}"
	RPAREN        = ")"
	SEMICOLON     = ";"
	UNDERSCORE    = "_"

	CONSTRUCTOR = "constructor"
	DATA        = "data"
	FIELD       = "field"
	FORALL      = "forall"
	IMPORT      = "import"
	IN          = "in"
	INFIX       = "infix"
	INFIXL      = "infixl"
	INFIXR      = "infixr"
	LET         = "let"
	MODULE      = "module"
	OPEN        = "open"
	RECORD      = "record"
	TYPE        = "Type"
	WHERE       = "where"
	WITH        = "with"
)

// Reserved keywords
var keywords = map[string]Type{
	"constructor": CONSTRUCTOR,
	"data":        DATA,
	"field":       FIELD,
	"forall":      FORALL,
	"import":      IMPORT,
	"in":          IN,
	"infix":       INFIX,
	"infixl":      INFIXL,
	"infixr":      INFIXR,
	"let":         LET,
	"module":      MODULE,
	"open":        OPEN,
	"record":      RECORD,
	"Type":        TYPE,
	"where":       WHERE,
	"with":        WITH,
}

// symbols are the punctuation tokens that are spelled as words by the lexer.
var symbols = map[string]Type{
	"->": ARROW,
	":":  COLON,
	"=":  EQUALS,
	"_":  UNDERSCORE,
	"∀":  FORALL_SYMBOL,
	"\\": BACKSLASH,
	".":  PERIOD,
	"(":  LPAREN,
	")":  RPAREN,
	"{":  LBRACE,
	"}":  RBRACE,
	";":  SEMICOLON,
}

// LookupIdentifier returns the keyword or symbol type for a word, or IDENT.
func LookupIdentifier(word string) Type {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	if tok, ok := symbols[word]; ok {
		return tok
	}
	return IDENT
}

// Text returns the spelling used for the token type in messages.
func (t Type) Text() string {
	switch t {
	case IDENT:
		return "identifier"
	case EOF:
		return "end of file"
	case ILLEGAL:
		return "illegal token"
	}
	return string(t)
}

// Valid reports whether t is one of the token types above.
func (t Type) Valid() bool {
	switch t {
	case EOF, ILLEGAL, IDENT:
		return true
	}
	_, isKeyword := keywords[string(t)]
	_, isSymbol := symbols[string(t)]
	return isKeyword || isSymbol
}

// Presence distinguishes tokens that appear in the source from tokens that
// were synthesized by the layout pass or by parser recovery.
type Presence uint8

const (
	Present Presence = iota
	Implicit
)

func (p Presence) String() string {
	if p == Implicit {
		return "implicit"
	}
	return "present"
}

// MarshalText implements encoding.TextMarshaler.
func (p Presence) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Presence) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "present":
		*p = Present
	case "implicit":
		*p = Implicit
	default:
		return fmt.Errorf("invalid token presence %q", text)
	}
	return nil
}

// Trivia is the whitespace and comment text attached to a token.
type Trivia string

// ContainsNewline reports whether the trivia spans a line break.
func (t Trivia) ContainsNewline() bool {
	return strings.ContainsAny(string(t), "\n\r")
}

// Token represents one token of the input.
type Token struct {
	Type           Type     `json:"type"`
	Text           string   `json:"text"`
	Presence       Presence `json:"presence,omitempty"`
	LeadingTrivia  Trivia   `json:"leading,omitempty"`
	TrailingTrivia Trivia   `json:"trailing,omitempty"`
}

// New returns a present token with no trivia.
func New(typ Type, text string) Token {
	return Token{Type: typ, Text: text}
}

// Synthesize returns an implicit token of the given type. Implicit tokens
// occupy no bytes of the source.
func Synthesize(typ Type) Token {
	text := string(typ)
	if typ == EOF {
		text = ""
	}
	return Token{Type: typ, Text: text, Presence: Implicit}
}

// IsImplicit reports whether the token was synthesized.
func (t Token) IsImplicit() bool {
	return t.Presence == Implicit
}

// ByteSize returns the number of source bytes covered by the token including
// its trivia. Implicit tokens have zero width.
func (t Token) ByteSize() int {
	if t.IsImplicit() {
		return 0
	}
	return len(t.LeadingTrivia) + len(t.Text) + len(t.TrailingTrivia)
}

// SourceText returns the exact source text of the token including trivia.
func (t Token) SourceText() string {
	if t.IsImplicit() {
		return ""
	}
	return string(t.LeadingTrivia) + t.Text + string(t.TrailingTrivia)
}

// Describe returns the text used for the token in diagnostics.
func (t Token) Describe() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Type.Text()
}

// Source concatenates the source text of a token stream.
func Source(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.SourceText())
	}
	return sb.String()
}
