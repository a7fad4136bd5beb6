package compiler

import (
	"strings"
	"testing"
)

func TestLexerSymbols(t *testing.T) {
	input := `{ } ( ) [ ] . , ; + - * / & | < > = ~`
	want := strings.Fields(input)

	l := NewLexer(input)
	for i, lit := range want {
		tok := l.NextToken()
		if tok.Type != TokenSymbol {
			t.Errorf("token[%d] type = %v, want SYMBOL", i, tok.Type)
		}
		if tok.Literal != lit {
			t.Errorf("token[%d] literal = %q, want %q", i, tok.Literal, lit)
		}
	}
	if tok := l.NextToken(); tok.Type != TokenEOF {
		t.Errorf("trailing token = %v, want EOF", tok)
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	input := `class classless var x let lettuce _count foo123 boolean`
	expected := []struct {
		typ TokenType
		lit string
	}{
		{TokenKeyword, "class"},
		{TokenIdentifier, "classless"},
		{TokenKeyword, "var"},
		{TokenIdentifier, "x"},
		{TokenKeyword, "let"},
		{TokenIdentifier, "lettuce"},
		{TokenIdentifier, "_count"},
		{TokenIdentifier, "foo123"},
		{TokenKeyword, "boolean"},
		{TokenEOF, ""},
	}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Errorf("token[%d] type = %v, want %v", i, tok.Type, exp.typ)
		}
		if tok.Literal != exp.lit {
			t.Errorf("token[%d] literal = %q, want %q", i, tok.Literal, exp.lit)
		}
	}
}

func TestLexerMaximalMunch(t *testing.T) {
	// x12y is one identifier, not x12 then y.
	l := NewLexer("x12y")
	tok := l.NextToken()
	if tok.Type != TokenIdentifier || tok.Literal != "x12y" {
		t.Errorf("token = %v %q, want IDENTIFIER \"x12y\"", tok.Type, tok.Literal)
	}
}

func TestLexerIntegers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"42", "42"},
		{"32767", "32767"},
	}

	for _, tc := range tests {
		l := NewLexer(tc.input)
		tok := l.NextToken()
		if tok.Type != TokenInteger {
			t.Errorf("Lexer(%q): type = %v, want INTEGER", tc.input, tok.Type)
		}
		if tok.Literal != tc.want {
			t.Errorf("Lexer(%q): literal = %q, want %q", tc.input, tok.Literal, tc.want)
		}
	}
}

func TestLexerIntegerOutOfRange(t *testing.T) {
	l := NewLexer("32768")
	tok := l.NextToken()
	if tok.Type != TokenError {
		t.Fatalf("token type = %v, want ERROR", tok.Type)
	}
	if !strings.Contains(tok.Literal, "out of range") {
		t.Errorf("error = %q, want out of range message", tok.Literal)
	}
}

func TestLexerMalformedInteger(t *testing.T) {
	// A digit run glued to letters is a malformed token, not two tokens.
	l := NewLexer("12ab")
	tok := l.NextToken()
	if tok.Type != TokenError {
		t.Fatalf("token type = %v, want ERROR", tok.Type)
	}
}

func TestLexerStrings(t *testing.T) {
	l := NewLexer(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != TokenString {
		t.Fatalf("token type = %v, want STRING", tok.Type)
	}
	if tok.Literal != "hello world" {
		t.Errorf("literal = %q, want %q", tok.Literal, "hello world")
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	tests := []string{
		`"runs off the end`,
		"\"crosses a\nnewline\"",
	}
	for _, input := range tests {
		l := NewLexer(input)
		tok := l.NextToken()
		if tok.Type != TokenError {
			t.Errorf("Lexer(%q): type = %v, want ERROR", input, tok.Type)
		}
	}
}

func TestLexerComments(t *testing.T) {
	input := `// line comment
	x /* block
	comment */ y /** doc comment */ z`

	l := NewLexer(input)
	var lits []string
	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		if tok.Type == TokenError {
			t.Fatalf("unexpected lex error: %s", tok.Literal)
		}
		lits = append(lits, tok.Literal)
	}

	want := []string{"x", "y", "z"}
	if len(lits) != len(want) {
		t.Fatalf("tokens = %v, want %v", lits, want)
	}
	for i := range want {
		if lits[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, lits[i], want[i])
		}
	}
}

func TestLexerUnterminatedComment(t *testing.T) {
	l := NewLexer("x /* never closed")
	if tok := l.NextToken(); tok.Type != TokenIdentifier {
		t.Fatalf("first token type = %v, want IDENTIFIER", tok.Type)
	}
	tok := l.NextToken()
	if tok.Type != TokenError {
		t.Errorf("token type = %v, want ERROR", tok.Type)
	}
}

func TestLexerDivisionIsNotAComment(t *testing.T) {
	l := NewLexer("a / b")
	var types []TokenType
	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
		types = append(types, tok.Type)
	}
	want := []TokenType{TokenIdentifier, TokenSymbol, TokenIdentifier}
	if len(types) != len(want) {
		t.Fatalf("token types = %v, want %v", types, want)
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	l := NewLexer("let x = $;")
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type == TokenError {
			t.Fatalf("token[%d] unexpectedly an error: %s", i, tok.Literal)
		}
	}
	tok := l.NextToken()
	if tok.Type != TokenError {
		t.Errorf("token type = %v, want ERROR", tok.Type)
	}
}

func TestLexerPositions(t *testing.T) {
	input := "class Main {\n  field int x;\n}"
	l := NewLexer(input)

	tok := l.NextToken() // class
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("class pos = %d:%d, want 1:1", tok.Pos.Line, tok.Pos.Column)
	}
	l.NextToken()       // Main
	l.NextToken()       // {
	tok = l.NextToken() // field
	if tok.Pos.Line != 2 || tok.Pos.Column != 3 {
		t.Errorf("field pos = %d:%d, want 2:3", tok.Pos.Line, tok.Pos.Column)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("let x = 5;")
	want := []TokenType{TokenKeyword, TokenIdentifier, TokenSymbol, TokenInteger, TokenSymbol, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token[%d] type = %v, want %v", i, tokens[i].Type, typ)
		}
	}

	// Stops at the first error token.
	tokens = Tokenize(`let s = "oops`)
	if last := tokens[len(tokens)-1]; last.Type != TokenError {
		t.Errorf("last token = %v, want ERROR", last)
	}
}

func TestLexerWhitespaceOnly(t *testing.T) {
	l := NewLexer("   \t\n\r  ")
	tok := l.NextToken()
	if tok.Type != TokenEOF {
		t.Errorf("token type = %v, want EOF", tok.Type)
	}
}
