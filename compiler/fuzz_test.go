package compiler

import "testing"

// ---------------------------------------------------------------------------
// FuzzLexer / FuzzCompile: the front end never panics on arbitrary input.
// ---------------------------------------------------------------------------

var fuzzSeeds = []string{
	// Symbols
	`{ } ( ) [ ] . , ; + - * / & | < > = ~`,
	// Integers
	`0`, `42`, `32767`, `32768`, `12ab`,
	// Strings
	`"hello"`, `""`, `"a < b"`, `"unterminated`,
	// Identifiers and keywords
	`class`, `classless`, `_x`, `foo123`, `this`, `null`,
	// Comments
	"// line\nx", `/* block */ y`, `/** doc */ z`, `/* unterminated`,
	// Expressions
	`1 + 2 * 3`, `-(~5)`, `a[i + 1]`, `p.getX()`,
	// Statements
	`let x = 5;`, `if (x > 0) { return 1; } else { return 2; }`,
	`while (n > 0) { let n = n - 1; }`,
	`do Output.printInt(1+2);`,
	// Whole classes
	`class Main { function void main() { do Output.printInt(1+2); return; } }`,
	`class Point {
		field int x, y;
		constructor Point new(int ax, int ay) { let x = ax; let y = ay; return this; }
		method int getX() { return x; }
	}`,
	// Malformed programs
	`class`, `class Main {`, `class Main { function } }`,
	`class Main { function void f() { let = ; } }`,
	// Unicode
	`"こんにちは"`, `café`,
	// Empty and whitespace
	``, `   `, "\t\n\r",
}

func FuzzLexer(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		l := NewLexer(input)
		for i := 0; i < len(input)+1; i++ {
			tok := l.NextToken()
			if tok.Type == TokenEOF || tok.Type == TokenError {
				break
			}
		}
	})
}

func FuzzCompile(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		mod, err := Compile(input)
		if err == nil && mod == nil {
			t.Error("Compile returned neither a module nor an error")
		}
		if err != nil && mod != nil {
			t.Error("Compile returned a module alongside an error")
		}
	})
}
