package compiler

import "strings"

// xmlTags maps token types to their tag names in the token dump.
var xmlTags = map[TokenType]string{
	TokenKeyword:    "keyword",
	TokenSymbol:     "symbol",
	TokenInteger:    "integerConstant",
	TokenString:     "stringConstant",
	TokenIdentifier: "identifier",
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// TokensXML lexes the source and renders the token stream as a tagged dump,
// one element per token inside a <tokens> wrapper. Useful for inspecting
// what the lexer saw without compiling.
func TokensXML(source string) (string, error) {
	lexer := NewLexer(source)

	var b strings.Builder
	b.WriteString("<tokens>\n")
	for {
		tok := lexer.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		if tok.Type == TokenError {
			return "", &LexError{Pos: tok.Pos, Msg: tok.Literal}
		}
		b.WriteString("<" + xmlTags[tok.Type] + "> ")
		b.WriteString(xmlEscaper.Replace(tok.Literal))
		b.WriteString(" </" + xmlTags[tok.Type] + ">\n")
	}
	b.WriteString("</tokens>\n")
	return b.String(), nil
}
