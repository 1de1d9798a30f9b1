package parser

import (
	"fmt"
	"strconv"
)

type precedence int

const (
	_ precedence = iota
	LOWEST
	EQUALS      // ==, !=
	LESSGREATER // >, <
	SUM         // +, -
	PRODUCT     // *, /
	PREFIX      // -x, !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

var precedences = map[TokenType]precedence{
	TOKEN_EQ:       EQUALS,
	TOKEN_NOT_EQ:   EQUALS,
	TOKEN_LT:       LESSGREATER,
	TOKEN_GT:       LESSGREATER,
	TOKEN_PLUS:     SUM,
	TOKEN_MINUS:    SUM,
	TOKEN_SLASH:    PRODUCT,
	TOKEN_STAR:     PRODUCT,
	TOKEN_LPAREN:   CALL,
	TOKEN_LBRACKET: INDEX,
}

type (
	prefixParseFn func() Expr
	infixParseFn  func(Expr) Expr
)

// Parser is a Pratt (operator-precedence) parser over a Lexer's token stream.
type Parser struct {
	lexer *Lexer

	current Token
	peek    Token

	errors []string

	prefixParseFns map[TokenType]prefixParseFn
	infixParseFns  map[TokenType]infixParseFn
}

// NewParser creates a Parser reading from input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}

	p.prefixParseFns = make(map[TokenType]prefixParseFn)
	p.registerPrefix(TOKEN_IDENT, p.parseIdentifier)
	p.registerPrefix(TOKEN_INT, p.parseIntegerLiteral)
	p.registerPrefix(TOKEN_STRING, p.parseStringLiteral)
	p.registerPrefix(TOKEN_BANG, p.parsePrefixExpression)
	p.registerPrefix(TOKEN_MINUS, p.parsePrefixExpression)
	p.registerPrefix(TOKEN_TRUE, p.parseBoolean)
	p.registerPrefix(TOKEN_FALSE, p.parseBoolean)
	p.registerPrefix(TOKEN_LPAREN, p.parseGroupedExpression)
	p.registerPrefix(TOKEN_IF, p.parseIfExpression)
	p.registerPrefix(TOKEN_FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(TOKEN_LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(TOKEN_LBRACE, p.parseHashLiteral)
	p.registerPrefix(TOKEN_MACRO, p.parseMacroLiteral)

	p.infixParseFns = make(map[TokenType]infixParseFn)
	p.registerInfix(TOKEN_PLUS, p.parseInfixExpression)
	p.registerInfix(TOKEN_MINUS, p.parseInfixExpression)
	p.registerInfix(TOKEN_SLASH, p.parseInfixExpression)
	p.registerInfix(TOKEN_STAR, p.parseInfixExpression)
	p.registerInfix(TOKEN_EQ, p.parseInfixExpression)
	p.registerInfix(TOKEN_NOT_EQ, p.parseInfixExpression)
	p.registerInfix(TOKEN_LT, p.parseInfixExpression)
	p.registerInfix(TOKEN_GT, p.parseInfixExpression)
	p.registerInfix(TOKEN_LPAREN, p.parseCallExpression)
	p.registerInfix(TOKEN_LBRACKET, p.parseIndexExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

// Errors returns the accumulated parse errors, if any.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) peekPrecedence() precedence {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) currentPrecedence() precedence {
	if pr, ok := precedences[p.current.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) expectPeek(t TokenType) bool {
	if p.peek.Type == t {
		p.nextToken()
		return true
	}
	p.addError("expected next token to be %s, got %s instead", t, p.peek.Type)
	return false
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Stmt{}}

	for p.current.Type != TOKEN_EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() Stmt {
	switch p.current.Type {
	case TOKEN_LET:
		return p.parseLetStatement()
	case TOKEN_RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Stmt {
	stmt := &LetStatement{Tok: p.current}

	if !p.expectPeek(TOKEN_IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Tok: p.current, Value: p.current.Literal}

	if !p.expectPeek(TOKEN_ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peek.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() Stmt {
	stmt := &ReturnStatement{Tok: p.current}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peek.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() Stmt {
	stmt := &ExpressionStatement{Tok: p.current}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peek.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpression(prec precedence) Expr {
	prefix := p.prefixParseFns[p.current.Type]
	if prefix == nil {
		p.addError("no prefix parse function for %s found", p.current.Type)
		return nil
	}
	left := prefix()

	for p.peek.Type != TOKEN_SEMICOLON && prec < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() Expr {
	return &Identifier{Tok: p.current, Value: p.current.Literal}
}

func (p *Parser) parseIntegerLiteral() Expr {
	value, err := strconv.ParseInt(p.current.Literal, 10, 64)
	if err != nil {
		p.addError("could not parse %q as integer", p.current.Literal)
		return nil
	}
	return &IntegerLiteral{Tok: p.current, Value: value}
}

func (p *Parser) parseStringLiteral() Expr {
	return &StringLiteral{Tok: p.current, Value: p.current.Literal}
}

func (p *Parser) parseBoolean() Expr {
	return &Boolean{Tok: p.current, Value: p.current.Type == TOKEN_TRUE}
}

func (p *Parser) parsePrefixExpression() Expr {
	expr := &PrefixExpression{Tok: p.current, Operator: p.current.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left Expr) Expr {
	expr := &InfixExpression{
		Tok:      p.current,
		Left:     left,
		Operator: p.current.Literal,
	}
	prec := p.currentPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseGroupedExpression() Expr {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(TOKEN_RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() Expr {
	expr := &IfExpression{Tok: p.current}

	if !p.expectPeek(TOKEN_LPAREN) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(TOKEN_RPAREN) {
		return nil
	}
	if !p.expectPeek(TOKEN_LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peek.Type == TOKEN_ELSE {
		p.nextToken()
		if !p.expectPeek(TOKEN_LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Tok: p.current, Statements: []Stmt{}}
	p.nextToken()

	for p.current.Type != TOKEN_RBRACE && p.current.Type != TOKEN_EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

func (p *Parser) parseFunctionLiteral() Expr {
	lit := &FunctionLiteral{Tok: p.current}

	if !p.expectPeek(TOKEN_LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(TOKEN_LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() []*Identifier {
	identifiers := []*Identifier{}

	if p.peek.Type == TOKEN_RPAREN {
		p.nextToken()
		return identifiers
	}

	p.nextToken()
	identifiers = append(identifiers, &Identifier{Tok: p.current, Value: p.current.Literal})

	for p.peek.Type == TOKEN_COMMA {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &Identifier{Tok: p.current, Value: p.current.Literal})
	}

	if !p.expectPeek(TOKEN_RPAREN) {
		return nil
	}

	return identifiers
}

func (p *Parser) parseMacroLiteral() Expr {
	lit := &MacroLiteral{Tok: p.current}

	if !p.expectPeek(TOKEN_LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(TOKEN_LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseCallExpression(function Expr) Expr {
	expr := &CallExpression{Tok: p.current, Function: function}
	expr.Arguments = p.parseExpressionList(TOKEN_RPAREN)
	return expr
}

func (p *Parser) parseExpressionList(end TokenType) []Expr {
	list := []Expr{}

	if p.peek.Type == end {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peek.Type == TOKEN_COMMA {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

func (p *Parser) parseArrayLiteral() Expr {
	arr := &ArrayLiteral{Tok: p.current}
	arr.Elements = p.parseExpressionList(TOKEN_RBRACKET)
	return arr
}

func (p *Parser) parseIndexExpression(left Expr) Expr {
	expr := &IndexExpression{Tok: p.current, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(TOKEN_RBRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseHashLiteral() Expr {
	hash := &HashLiteral{Tok: p.current}

	for p.peek.Type != TOKEN_RBRACE {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(TOKEN_COLON) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, HashPair{Key: key, Value: value})

		if p.peek.Type != TOKEN_RBRACE && !p.expectPeek(TOKEN_COMMA) {
			return nil
		}
	}

	if !p.expectPeek(TOKEN_RBRACE) {
		return nil
	}

	return hash
}
