package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Error taxonomy: lex, syntax, and symbol errors
// ---------------------------------------------------------------------------

// All three error kinds are file-scoped and fatal: compilation of the
// offending file stops at the first one, and no output is produced for it.

// LexError describes a malformed token: a bad character, an unterminated
// string or comment, or an out-of-range integer constant.
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// SyntaxError describes a token sequence that violates the grammar.
type SyntaxError struct {
	Pos   Position
	Token string // the offending lexeme
	Msg   string // what was expected
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	}
	return fmt.Sprintf("line %d, column %d: %s, got %q", e.Pos.Line, e.Pos.Column, e.Msg, e.Token)
}

// SymbolError describes a duplicate declaration, an unresolved identifier,
// or a subroutine call with the wrong number of arguments.
type SymbolError struct {
	Pos  Position
	Name string // the identifier involved
	Msg  string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s %q", e.Pos.Line, e.Pos.Column, e.Msg, e.Name)
}
