package compiler

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Lexer: Tokenizer for Jack syntax
// ---------------------------------------------------------------------------

// Lexer tokenizes Jack source code. Tokens are produced lazily, one per call
// to NextToken; malformed input surfaces as a TokenError token carrying the
// diagnostic text.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      rune // current character
	line    int  // line of current character (1-based)
	col     int  // column of current character (1-based)
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar reads the next character, keeping line and col pointing at it.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.col++

	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
		l.pos = l.readPos
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
		l.ch = r
		l.pos = l.readPos
		l.readPos += size
	}
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// position returns the current position.
func (l *Lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	if tok, bad := l.skipWhitespaceAndComments(); bad {
		return tok
	}

	pos := l.position()

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Literal: "", Pos: pos}

	case IsSymbolChar(l.ch):
		ch := l.ch
		l.readChar()
		return Token{Type: TokenSymbol, Literal: string(ch), Pos: pos}

	case l.ch == '"':
		return l.readString(pos)

	case isDigit(l.ch):
		return l.readInteger(pos)

	case isLetter(l.ch) || l.ch == '_':
		return l.readIdentifierOrKeyword(pos)

	default:
		ch := l.ch
		l.readChar()
		return Token{Type: TokenError, Literal: fmt.Sprintf("unexpected character %q", ch), Pos: pos}
	}
}

// skipWhitespaceAndComments skips whitespace, // line comments, and /* */
// block comments (the /** */ doc variant is just a block comment). An
// unterminated block comment is returned as an error token.
func (l *Lexer) skipWhitespaceAndComments() (Token, bool) {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		if l.ch == '/' && l.peekChar() == '*' {
			pos := l.position()
			l.readChar() // consume /
			l.readChar() // consume *
			for {
				if l.ch == 0 {
					return Token{Type: TokenError, Literal: "unterminated block comment", Pos: pos}, true
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // consume *
					l.readChar() // consume /
					break
				}
				l.readChar()
			}
			continue
		}

		return Token{}, false
	}
}

// readString reads a string constant. Jack strings have no escape sequences
// and may not contain a newline or a double quote.
func (l *Lexer) readString(pos Position) Token {
	l.readChar() // consume opening "

	start := l.pos
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return Token{Type: TokenError, Literal: "unterminated string constant", Pos: pos}
		}
		l.readChar()
	}

	literal := l.input[start:l.pos]
	l.readChar() // consume closing "

	return Token{Type: TokenString, Literal: literal, Pos: pos}
}

// readInteger reads an integer constant in the range 0..32767.
func (l *Lexer) readInteger(pos Position) Token {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	// Maximal munch: a letter glued to a digit run is not a new token.
	if isLetter(l.ch) || l.ch == '_' {
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return Token{Type: TokenError, Literal: fmt.Sprintf("malformed integer constant %q", l.input[start:l.pos]), Pos: pos}
	}

	literal := l.input[start:l.pos]
	value, err := strconv.Atoi(literal)
	if err != nil || value > MaxIntConstant {
		return Token{Type: TokenError, Literal: fmt.Sprintf("integer constant %s out of range 0..%d", literal, MaxIntConstant), Pos: pos}
	}

	return Token{Type: TokenInteger, Literal: literal, Pos: pos}
}

// readIdentifierOrKeyword reads an identifier or keyword.
func (l *Lexer) readIdentifierOrKeyword(pos Position) Token {
	start := l.pos

	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	literal := l.input[start:l.pos]
	if keywords[literal] {
		return Token{Type: TokenKeyword, Literal: literal, Pos: pos}
	}

	return Token{Type: TokenIdentifier, Literal: literal, Pos: pos}
}

// Helper functions

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize returns all tokens from the input, stopping at EOF or the first
// error token.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}
	return tokens
}
