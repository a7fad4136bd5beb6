package compiler

import (
	"fmt"
	"strconv"
)

// ---------------------------------------------------------------------------
// Compiler: recursive descent parser and code generator for Jack
// ---------------------------------------------------------------------------

// The compiler is single pass: each grammar production is one compileX method
// that validates syntax and emits virtual machine code as it goes, consulting
// the symbol table for every identifier. A light signature scan over the
// token stream runs first so calls to the current class's subroutines can be
// arity-checked at the call site.

// Module is the compiled output of one class: an ordered instruction
// sequence, subroutines concatenated in declaration order.
type Module struct {
	ClassName    string
	Instructions []string
}

// String renders the module as text, one instruction per line.
func (m *Module) String() string {
	e := ""
	for _, ins := range m.Instructions {
		e += ins + "\n"
	}
	return e
}

// binaryOps maps expression operators to virtual machine commands. * and /
// are absent: they compile to Math.multiply / Math.divide calls.
var binaryOps = map[string]string{
	"+": OpAdd,
	"-": OpSub,
	"&": OpAnd,
	"|": OpOr,
	"<": OpLt,
	">": OpGt,
	"=": OpEq,
}

// signature records one subroutine declared by the class being compiled.
type signature struct {
	kind   string // constructor, function, or method
	params int    // declared parameter count, receiver excluded
}

// Compiler compiles one class's source text. Instances are single use and
// share no state, so independent files may compile in parallel.
type Compiler struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token

	symbols *SymbolTable
	emitter *Emitter

	className  string
	signatures map[string]signature

	// current subroutine context
	subKind string // constructor, function, or method
}

// Compile compiles one class into a virtual machine module. The returned
// error is a *LexError, *SyntaxError, or *SymbolError; on error no partial
// module is returned.
func Compile(source string) (*Module, error) {
	sigs, err := scanSignatures(source)
	if err != nil {
		return nil, err
	}

	c := &Compiler{
		lexer:      NewLexer(source),
		symbols:    NewSymbolTable(),
		emitter:    NewEmitter(),
		signatures: sigs,
	}

	// Read two tokens to fill curToken and peekToken.
	if err := c.nextToken(); err != nil {
		return nil, err
	}
	if err := c.nextToken(); err != nil {
		return nil, err
	}

	if err := c.compileClass(); err != nil {
		return nil, err
	}

	return &Module{
		ClassName:    c.className,
		Instructions: c.emitter.Instructions(),
	}, nil
}

// ---------------------------------------------------------------------------
// Token stream helpers
// ---------------------------------------------------------------------------

// nextToken advances to the next token. A malformed token surfaces here as a
// *LexError.
func (c *Compiler) nextToken() error {
	c.curToken = c.peekToken
	c.peekToken = c.lexer.NextToken()
	if c.curToken.Type == TokenError {
		return &LexError{Pos: c.curToken.Pos, Msg: c.curToken.Literal}
	}
	return nil
}

func (c *Compiler) syntaxErrorf(format string, args ...interface{}) error {
	return &SyntaxError{
		Pos:   c.curToken.Pos,
		Token: c.curToken.Literal,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// expect consumes the given symbol or keyword, or fails with a syntax error.
func (c *Compiler) expect(lit string) error {
	if !c.curToken.Is(lit) {
		return c.syntaxErrorf("expected %q", lit)
	}
	return c.nextToken()
}

// expectIdentifier consumes and returns an identifier token.
func (c *Compiler) expectIdentifier(what string) (Token, error) {
	if c.curToken.Type != TokenIdentifier {
		return Token{}, c.syntaxErrorf("expected %s", what)
	}
	tok := c.curToken
	return tok, c.nextToken()
}

// ---------------------------------------------------------------------------
// Program structure
// ---------------------------------------------------------------------------

// compileClass compiles 'class' className '{' classVarDec* subroutineDec* '}'.
func (c *Compiler) compileClass() error {
	if err := c.expect("class"); err != nil {
		return err
	}

	nameTok, err := c.expectIdentifier("class name")
	if err != nil {
		return err
	}
	c.className = nameTok.Literal
	c.symbols.StartClass()

	if err := c.expect("{"); err != nil {
		return err
	}

	for c.curToken.Is("static") || c.curToken.Is("field") {
		if err := c.compileClassVarDec(); err != nil {
			return err
		}
	}

	for c.curToken.Is("constructor") || c.curToken.Is("function") || c.curToken.Is("method") {
		if err := c.compileSubroutine(); err != nil {
			return err
		}
	}

	if err := c.expect("}"); err != nil {
		return err
	}

	if c.curToken.Type != TokenEOF {
		return c.syntaxErrorf("expected end of file after class body")
	}
	return nil
}

// compileClassVarDec compiles ('static'|'field') type varName (',' varName)* ';'.
func (c *Compiler) compileClassVarDec() error {
	kind := KindStatic
	if c.curToken.Is("field") {
		kind = KindField
	}
	if err := c.nextToken(); err != nil {
		return err
	}

	typ, err := c.compileType()
	if err != nil {
		return err
	}

	for {
		nameTok, err := c.expectIdentifier("variable name")
		if err != nil {
			return err
		}
		if _, ok := c.symbols.Define(nameTok.Literal, typ, kind); !ok {
			return &SymbolError{Pos: nameTok.Pos, Name: nameTok.Literal, Msg: "duplicate declaration of"}
		}
		if !c.curToken.Is(",") {
			break
		}
		if err := c.nextToken(); err != nil {
			return err
		}
	}

	return c.expect(";")
}

// compileType consumes a type: int, char, boolean, or a class name.
func (c *Compiler) compileType() (string, error) {
	if c.curToken.Is("int") || c.curToken.Is("char") || c.curToken.Is("boolean") ||
		c.curToken.Type == TokenIdentifier {
		typ := c.curToken.Literal
		return typ, c.nextToken()
	}
	return "", c.syntaxErrorf("expected a type")
}

// compileSubroutine compiles one constructor, function, or method through its
// body. The function instruction is emitted once the local count is known.
func (c *Compiler) compileSubroutine() error {
	kind := c.curToken.Literal
	c.subKind = kind
	if err := c.nextToken(); err != nil {
		return err
	}

	// Return type: void or a type. Recorded only for the grammar; return
	// statements supply the value.
	if c.curToken.Is("void") {
		if err := c.nextToken(); err != nil {
			return err
		}
	} else {
		if _, err := c.compileType(); err != nil {
			return err
		}
	}

	nameTok, err := c.expectIdentifier("subroutine name")
	if err != nil {
		return err
	}

	c.symbols.StartSubroutine(c.className, kind == "method")

	if err := c.expect("("); err != nil {
		return err
	}
	if err := c.compileParameterList(); err != nil {
		return err
	}
	if err := c.expect(")"); err != nil {
		return err
	}

	if err := c.expect("{"); err != nil {
		return err
	}
	for c.curToken.Is("var") {
		if err := c.compileVarDec(); err != nil {
			return err
		}
	}

	c.emitter.WriteFunction(c.className+"."+nameTok.Literal, c.symbols.Count(KindLocal))

	switch kind {
	case "constructor":
		// Allocate one slot per field and bind the result as the receiver.
		c.emitter.WritePush(SegConstant, c.symbols.Count(KindField))
		c.emitter.WriteCall("Memory.alloc", 1)
		c.emitter.WritePop(SegPointer, 0)
	case "method":
		// The caller passed the receiver as argument 0.
		c.emitter.WritePush(SegArgument, 0)
		c.emitter.WritePop(SegPointer, 0)
	}

	if err := c.compileStatements(); err != nil {
		return err
	}
	return c.expect("}")
}

// compileParameterList compiles a possibly empty 'type name (, type name)*'.
func (c *Compiler) compileParameterList() error {
	if c.curToken.Is(")") {
		return nil
	}

	for {
		typ, err := c.compileType()
		if err != nil {
			return err
		}
		nameTok, err := c.expectIdentifier("parameter name")
		if err != nil {
			return err
		}
		if _, ok := c.symbols.Define(nameTok.Literal, typ, KindArg); !ok {
			return &SymbolError{Pos: nameTok.Pos, Name: nameTok.Literal, Msg: "duplicate declaration of"}
		}
		if !c.curToken.Is(",") {
			return nil
		}
		if err := c.nextToken(); err != nil {
			return err
		}
	}
}

// compileVarDec compiles 'var' type varName (',' varName)* ';'.
func (c *Compiler) compileVarDec() error {
	if err := c.nextToken(); err != nil { // consume var
		return err
	}

	typ, err := c.compileType()
	if err != nil {
		return err
	}

	for {
		nameTok, err := c.expectIdentifier("variable name")
		if err != nil {
			return err
		}
		if _, ok := c.symbols.Define(nameTok.Literal, typ, KindLocal); !ok {
			return &SymbolError{Pos: nameTok.Pos, Name: nameTok.Literal, Msg: "duplicate declaration of"}
		}
		if !c.curToken.Is(",") {
			break
		}
		if err := c.nextToken(); err != nil {
			return err
		}
	}

	return c.expect(";")
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (c *Compiler) compileStatements() error {
	for {
		switch {
		case c.curToken.Is("let"):
			if err := c.compileLet(); err != nil {
				return err
			}
		case c.curToken.Is("if"):
			if err := c.compileIf(); err != nil {
				return err
			}
		case c.curToken.Is("while"):
			if err := c.compileWhile(); err != nil {
				return err
			}
		case c.curToken.Is("do"):
			if err := c.compileDo(); err != nil {
				return err
			}
		case c.curToken.Is("return"):
			if err := c.compileReturn(); err != nil {
				return err
			}
		case c.curToken.Is("}"):
			return nil
		default:
			return c.syntaxErrorf("expected a statement")
		}
	}
}

// compileLet compiles 'let' varName ('[' expression ']')? '=' expression ';'.
// Array targets go through the two-step indirect store: the element address
// is computed first, parked in temp 0 around the right-hand side, then
// written through pointer 1 / that.
func (c *Compiler) compileLet() error {
	if err := c.nextToken(); err != nil { // consume let
		return err
	}

	nameTok, err := c.expectIdentifier("variable name")
	if err != nil {
		return err
	}
	sym, ok := c.symbols.Lookup(nameTok.Literal)
	if !ok {
		return &SymbolError{Pos: nameTok.Pos, Name: nameTok.Literal, Msg: "unresolved identifier"}
	}

	indexed := false
	if c.curToken.Is("[") {
		indexed = true
		c.emitter.WritePush(sym.Kind.Segment(), sym.Index)
		if err := c.nextToken(); err != nil {
			return err
		}
		if err := c.compileExpression(); err != nil {
			return err
		}
		if err := c.expect("]"); err != nil {
			return err
		}
		c.emitter.WriteArithmetic(OpAdd)
	}

	if err := c.expect("="); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expect(";"); err != nil {
		return err
	}

	if indexed {
		c.emitter.WritePop(SegTemp, 0)
		c.emitter.WritePop(SegPointer, 1)
		c.emitter.WritePush(SegTemp, 0)
		c.emitter.WritePop(SegThat, 0)
	} else {
		c.emitter.WritePop(sym.Kind.Segment(), sym.Index)
	}
	return nil
}

// compileIf compiles 'if' '(' expression ')' '{' statements '}' with an
// optional else block. Both labels are drawn up front so sibling constructs
// never share names.
func (c *Compiler) compileIf() error {
	if err := c.nextToken(); err != nil { // consume if
		return err
	}

	if err := c.expect("("); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expect(")"); err != nil {
		return err
	}

	elseLabel := c.emitter.FreshLabel("IF")
	endLabel := c.emitter.FreshLabel("IF")

	c.emitter.WriteArithmetic(OpNot)
	c.emitter.WriteIf(elseLabel)

	if err := c.expect("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.expect("}"); err != nil {
		return err
	}

	if !c.curToken.Is("else") {
		c.emitter.WriteLabel(elseLabel)
		return nil
	}

	c.emitter.WriteGoto(endLabel)
	c.emitter.WriteLabel(elseLabel)
	if err := c.nextToken(); err != nil { // consume else
		return err
	}
	if err := c.expect("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.expect("}"); err != nil {
		return err
	}
	c.emitter.WriteLabel(endLabel)
	return nil
}

// compileWhile compiles 'while' '(' expression ')' '{' statements '}'.
func (c *Compiler) compileWhile() error {
	if err := c.nextToken(); err != nil { // consume while
		return err
	}

	topLabel := c.emitter.FreshLabel("WHILE")
	endLabel := c.emitter.FreshLabel("WHILE")

	c.emitter.WriteLabel(topLabel)

	if err := c.expect("("); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expect(")"); err != nil {
		return err
	}

	c.emitter.WriteArithmetic(OpNot)
	c.emitter.WriteIf(endLabel)

	if err := c.expect("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.expect("}"); err != nil {
		return err
	}

	c.emitter.WriteGoto(topLabel)
	c.emitter.WriteLabel(endLabel)
	return nil
}

// compileDo compiles 'do' subroutineCall ';' and discards the result.
func (c *Compiler) compileDo() error {
	if err := c.nextToken(); err != nil { // consume do
		return err
	}

	if c.curToken.Type != TokenIdentifier {
		return c.syntaxErrorf("expected a subroutine call")
	}
	if err := c.compileSubroutineCall(); err != nil {
		return err
	}
	if err := c.expect(";"); err != nil {
		return err
	}

	// Every call leaves one value on the stack.
	c.emitter.WritePop(SegTemp, 0)
	return nil
}

// compileReturn compiles 'return' expression? ';'. Void returns push the
// default 0 so every subroutine leaves exactly one value on the stack.
func (c *Compiler) compileReturn() error {
	retPos := c.curToken.Pos
	if err := c.nextToken(); err != nil { // consume return
		return err
	}

	if c.curToken.Is(";") {
		if c.subKind == "constructor" {
			return &SyntaxError{Pos: retPos, Msg: "constructor must return this"}
		}
		c.emitter.WritePush(SegConstant, 0)
	} else {
		if err := c.compileExpression(); err != nil {
			return err
		}
	}

	if err := c.expect(";"); err != nil {
		return err
	}
	c.emitter.WriteReturn()
	return nil
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// compileExpression compiles term (op term)*. Evaluation is strictly left to
// right with uniform precedence; parentheses are the only grouping mechanism.
func (c *Compiler) compileExpression() error {
	if err := c.compileTerm(); err != nil {
		return err
	}

	for c.curToken.Type == TokenSymbol && c.isBinaryOp(c.curToken.Literal) {
		op := c.curToken.Literal
		if err := c.nextToken(); err != nil {
			return err
		}
		if err := c.compileTerm(); err != nil {
			return err
		}
		c.emitOp(op)
	}
	return nil
}

func (c *Compiler) isBinaryOp(lit string) bool {
	if lit == "*" || lit == "/" {
		return true
	}
	_, ok := binaryOps[lit]
	return ok
}

// emitOp emits the code for a binary operator. The target machine has no
// multiply or divide commands; those route through the Math library.
func (c *Compiler) emitOp(op string) {
	switch op {
	case "*":
		c.emitter.WriteCall("Math.multiply", 2)
	case "/":
		c.emitter.WriteCall("Math.divide", 2)
	default:
		c.emitter.WriteArithmetic(binaryOps[op])
	}
}

func (c *Compiler) compileTerm() error {
	switch {
	case c.curToken.Type == TokenInteger:
		value, _ := strconv.Atoi(c.curToken.Literal)
		c.emitter.WritePush(SegConstant, value)
		return c.nextToken()

	case c.curToken.Type == TokenString:
		return c.compileStringConstant()

	case c.curToken.Is("true"):
		c.emitter.WritePush(SegConstant, 1)
		c.emitter.WriteArithmetic(OpNeg)
		return c.nextToken()

	case c.curToken.Is("false"), c.curToken.Is("null"):
		c.emitter.WritePush(SegConstant, 0)
		return c.nextToken()

	case c.curToken.Is("this"):
		c.emitter.WritePush(SegPointer, 0)
		return c.nextToken()

	case c.curToken.Is("-"), c.curToken.Is("~"):
		op := OpNeg
		if c.curToken.Is("~") {
			op = OpNot
		}
		if err := c.nextToken(); err != nil {
			return err
		}
		if err := c.compileTerm(); err != nil {
			return err
		}
		c.emitter.WriteArithmetic(op)
		return nil

	case c.curToken.Is("("):
		if err := c.nextToken(); err != nil {
			return err
		}
		if err := c.compileExpression(); err != nil {
			return err
		}
		return c.expect(")")

	case c.curToken.Type == TokenIdentifier:
		if c.peekToken.Is("(") || c.peekToken.Is(".") {
			return c.compileSubroutineCall()
		}
		if c.peekToken.Is("[") {
			return c.compileArrayRead()
		}
		// Plain variable reference.
		sym, ok := c.symbols.Lookup(c.curToken.Literal)
		if !ok {
			return &SymbolError{Pos: c.curToken.Pos, Name: c.curToken.Literal, Msg: "unresolved identifier"}
		}
		c.emitter.WritePush(sym.Kind.Segment(), sym.Index)
		return c.nextToken()

	default:
		return c.syntaxErrorf("expected a term")
	}
}

// compileStringConstant builds the string at runtime: allocate with
// String.new, then append one character code at a time.
func (c *Compiler) compileStringConstant() error {
	runes := []rune(c.curToken.Literal)
	c.emitter.WritePush(SegConstant, len(runes))
	c.emitter.WriteCall("String.new", 1)
	for _, r := range runes {
		c.emitter.WritePush(SegConstant, int(r))
		c.emitter.WriteCall("String.appendChar", 2)
	}
	return c.nextToken()
}

// compileArrayRead compiles varName '[' expression ']' as a term: base plus
// index through pointer 1 / that.
func (c *Compiler) compileArrayRead() error {
	nameTok, err := c.expectIdentifier("variable name")
	if err != nil {
		return err
	}
	sym, ok := c.symbols.Lookup(nameTok.Literal)
	if !ok {
		return &SymbolError{Pos: nameTok.Pos, Name: nameTok.Literal, Msg: "unresolved identifier"}
	}
	c.emitter.WritePush(sym.Kind.Segment(), sym.Index)

	if err := c.expect("["); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expect("]"); err != nil {
		return err
	}

	c.emitter.WriteArithmetic(OpAdd)
	c.emitter.WritePop(SegPointer, 1)
	c.emitter.WritePush(SegThat, 0)
	return nil
}

// ---------------------------------------------------------------------------
// Subroutine calls
// ---------------------------------------------------------------------------

// compileSubroutineCall compiles the three call forms:
//
//	sub(args)            implicit receiver, method of the current class
//	Class.sub(args)      constructor or function call, no receiver
//	obj.sub(args)        method call with obj pushed as the receiver
//
// The argument count passed to the call instruction includes the receiver
// when one is pushed. Calls that resolve to the current class are checked
// against the declared signatures before the call instruction is emitted.
func (c *Compiler) compileSubroutineCall() error {
	firstTok, err := c.expectIdentifier("subroutine name")
	if err != nil {
		return err
	}

	var calleeClass, subName string
	viaReceiver := false
	nArgs := 0

	if c.curToken.Is(".") {
		if err := c.nextToken(); err != nil {
			return err
		}
		subTok, err := c.expectIdentifier("subroutine name")
		if err != nil {
			return err
		}
		subName = subTok.Literal

		if sym, ok := c.symbols.Lookup(firstTok.Literal); ok {
			// Method call through a variable: the object is the receiver.
			c.emitter.WritePush(sym.Kind.Segment(), sym.Index)
			calleeClass = sym.Type
			viaReceiver = true
			nArgs = 1
		} else {
			// Not a variable, so a class name.
			calleeClass = firstTok.Literal
		}
	} else {
		// Unqualified: a method of the current class on the implicit receiver.
		calleeClass = c.className
		subName = firstTok.Literal
		sig, ok := c.signatures[subName]
		if !ok {
			return &SymbolError{Pos: firstTok.Pos, Name: subName, Msg: "unresolved subroutine"}
		}
		if sig.kind != "method" {
			return &SymbolError{Pos: firstTok.Pos, Name: subName, Msg: sig.kind + " called as a method:"}
		}
		c.emitter.WritePush(SegPointer, 0)
		viaReceiver = true
		nArgs = 1
	}

	if err := c.expect("("); err != nil {
		return err
	}
	argc, err := c.compileExpressionList()
	if err != nil {
		return err
	}
	if err := c.expect(")"); err != nil {
		return err
	}
	nArgs += argc

	// Arity is checkable only for the current class; calls into other
	// classes compile per independent-compilation rules.
	if calleeClass == c.className {
		sig, ok := c.signatures[subName]
		if !ok {
			return &SymbolError{Pos: firstTok.Pos, Name: subName, Msg: "unresolved subroutine"}
		}
		if viaReceiver && sig.kind != "method" {
			return &SymbolError{Pos: firstTok.Pos, Name: subName, Msg: sig.kind + " called as a method:"}
		}
		if !viaReceiver && sig.kind == "method" {
			return &SymbolError{Pos: firstTok.Pos, Name: subName, Msg: "method called without receiver:"}
		}
		if argc != sig.params {
			return &SymbolError{
				Pos:  firstTok.Pos,
				Name: subName,
				Msg:  fmt.Sprintf("wrong argument count (%d, want %d) for", argc, sig.params),
			}
		}
	}

	c.emitter.WriteCall(calleeClass+"."+subName, nArgs)
	return nil
}

// compileExpressionList compiles a possibly empty comma-separated expression
// list, returning the number of expressions.
func (c *Compiler) compileExpressionList() (int, error) {
	if c.curToken.Is(")") {
		return 0, nil
	}

	count := 1
	if err := c.compileExpression(); err != nil {
		return 0, err
	}
	for c.curToken.Is(",") {
		if err := c.nextToken(); err != nil {
			return 0, err
		}
		if err := c.compileExpression(); err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Signature scan
// ---------------------------------------------------------------------------

// scanSignatures makes one cheap pass over the token stream collecting the
// kind and parameter count of every subroutine the class declares. Brace
// depth keeps the scan at the class level; depth counts brace tokens, and a
// string literal lexes to a single token no matter what braces its text
// contains. Malformed declarations are left for the main pass to report.
func scanSignatures(source string) (map[string]signature, error) {
	l := NewLexer(source)
	sigs := make(map[string]signature)
	depth := 0

	for {
		tok := l.NextToken()
		switch {
		case tok.Type == TokenEOF:
			return sigs, nil

		case tok.Type == TokenError:
			return nil, &LexError{Pos: tok.Pos, Msg: tok.Literal}

		case tok.Is("{"):
			depth++

		case tok.Is("}"):
			depth--

		case depth == 1 && (tok.Is("constructor") || tok.Is("function") || tok.Is("method")):
			kind := tok.Literal

			retTok := l.NextToken() // return type
			if retTok.Type == TokenError {
				return nil, &LexError{Pos: retTok.Pos, Msg: retTok.Literal}
			}
			nameTok := l.NextToken()
			if nameTok.Type == TokenError {
				return nil, &LexError{Pos: nameTok.Pos, Msg: nameTok.Literal}
			}
			if nameTok.Type != TokenIdentifier {
				continue
			}
			openTok := l.NextToken()
			if openTok.Type == TokenError {
				return nil, &LexError{Pos: openTok.Pos, Msg: openTok.Literal}
			}
			if !openTok.Is("(") {
				continue
			}

			params := 0
			commas := 0
			sawParam := false
			for {
				t := l.NextToken()
				if t.Type == TokenEOF {
					return sigs, nil
				}
				if t.Type == TokenError {
					return nil, &LexError{Pos: t.Pos, Msg: t.Literal}
				}
				if t.Is(")") {
					break
				}
				if t.Is(",") {
					commas++
				} else {
					sawParam = true
				}
			}
			if sawParam {
				params = commas + 1
			}

			if _, dup := sigs[nameTok.Literal]; dup {
				return nil, &SymbolError{Pos: nameTok.Pos, Name: nameTok.Literal, Msg: "duplicate subroutine declaration of"}
			}
			sigs[nameTok.Literal] = signature{kind: kind, params: params}
		}
	}
}
