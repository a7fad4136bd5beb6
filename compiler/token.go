package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Token types for the Jack lexer
// ---------------------------------------------------------------------------

// TokenType represents the type of a token.
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	TokenKeyword    // class, function, let, while, ...
	TokenSymbol     // { } ( ) [ ] . , ; + - * / & | < > = ~
	TokenInteger    // 0..32767
	TokenString     // "hello" (no escapes)
	TokenIdentifier // foo, Main, _tmp3
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenError:      "ERROR",
	TokenKeyword:    "KEYWORD",
	TokenSymbol:     "SYMBOL",
	TokenInteger:    "INTEGER",
	TokenString:     "STRING",
	TokenIdentifier: "IDENTIFIER",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", t)
}

// Position represents a source location.
type Position struct {
	Offset int // byte offset
	Line   int // 1-based line number
	Column int // 1-based column number
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Literal string   // the raw text (for strings, the content without quotes)
	Pos     Position // start position
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	if t.Type == TokenError {
		return fmt.Sprintf("ERROR(%s)", t.Literal)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}

// Is reports whether the token is a symbol or keyword with the given text.
func (t Token) Is(lit string) bool {
	return (t.Type == TokenSymbol || t.Type == TokenKeyword) && t.Literal == lit
}

// MaxIntConstant is the largest representable integer constant.
const MaxIntConstant = 32767

// Reserved words of the Jack grammar.
var keywords = map[string]bool{
	"class":       true,
	"constructor": true,
	"function":    true,
	"method":      true,
	"field":       true,
	"static":      true,
	"var":         true,
	"int":         true,
	"char":        true,
	"boolean":     true,
	"void":        true,
	"true":        true,
	"false":       true,
	"null":        true,
	"this":        true,
	"let":         true,
	"do":          true,
	"if":          true,
	"else":        true,
	"while":       true,
	"return":      true,
}

// IsSymbolChar returns true if r is one of the fixed single-character symbols.
func IsSymbolChar(r rune) bool {
	switch r {
	case '{', '}', '(', ')', '[', ']', '.', ',', ';',
		'+', '-', '*', '/', '&', '|', '<', '>', '=', '~':
		return true
	}
	return false
}
