/*
File    : suji/parser/parser.go
Author  : The Suji Authors
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the Suji language.

The parser converts the lexer's token stream into an AST. Statements are
parsed by recursive descent; expressions by precedence climbing over two
function maps, one for tokens that can start an expression and one for
infix/postfix operators.

Notable grammar decisions:
  - every stage of a process pipeline (|) must syntactically be an
    invocation — a call, a method call or a backtick command; a bare
    function name as a stage is a parse error,
  - assignment is the lowest-precedence expression; destructuring
    (a, b = expr) is recognised at statement level,
  - | in prefix position opens a lambda parameter list, || in prefix
    position is a zero-argument lambda,
  - newlines terminate statements except inside groups and interpolations
    (the lexer suppresses them there).

Errors are collected rather than panicking, so one parse reports multiple
diagnostics, but the parser never silently recovers inside a statement: on
error it resynchronises at the next statement boundary.
*/
package parser

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/lexer"
)

// Operator precedence levels, low to high.
const (
	LOWEST     = iota
	ASSIGN     // = += -= *= /= %=        (right)
	PIPEAPPLY  // |> (left)  <| (right)
	PIPELINE   // |                        (left)
	LOGIC_OR   // ||                       (left)
	LOGIC_AND  // &&                       (left)
	EQUALITY   // == != ~ !~               (left)
	COMPARISON // < <= > >=                (left)
	RANGE      // .. ..=                   (non-assoc)
	SUM        // + -                      (left)
	PRODUCT    // * / %                    (left)
	POWER      // ^                        (right)
	UNARY      // prefix - !
	COMPOSE    // >> <<                    (left)
	POSTFIX    // call, index, slice, member, method, ++ --
)

// precedences maps operator tokens to their binding power.
var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN_OP:        ASSIGN,
	lexer.PLUS_ASSIGN:      ASSIGN,
	lexer.MINUS_ASSIGN:     ASSIGN,
	lexer.MUL_ASSIGN:       ASSIGN,
	lexer.DIV_ASSIGN:       ASSIGN,
	lexer.MOD_ASSIGN:       ASSIGN,
	lexer.PIPE_RIGHT_OP:    PIPEAPPLY,
	lexer.PIPE_LEFT_OP:     PIPEAPPLY,
	lexer.PIPE_OP:          PIPELINE,
	lexer.OR_OP:            LOGIC_OR,
	lexer.AND_OP:           LOGIC_AND,
	lexer.EQ_OP:            EQUALITY,
	lexer.NE_OP:            EQUALITY,
	lexer.MATCH_OP:         EQUALITY,
	lexer.NOT_MATCH_OP:     EQUALITY,
	lexer.LT_OP:            COMPARISON,
	lexer.LE_OP:            COMPARISON,
	lexer.GT_OP:            COMPARISON,
	lexer.GE_OP:            COMPARISON,
	lexer.RANGE_OP:         RANGE,
	lexer.RANGE_INCL_OP:    RANGE,
	lexer.PLUS_OP:          SUM,
	lexer.MINUS_OP:         SUM,
	lexer.MUL_OP:           PRODUCT,
	lexer.DIV_OP:           PRODUCT,
	lexer.MOD_OP:           PRODUCT,
	lexer.POW_OP:           POWER,
	lexer.COMPOSE_RIGHT_OP: COMPOSE,
	lexer.COMPOSE_LEFT_OP:  COMPOSE,
	lexer.LEFT_PAREN:       POSTFIX,
	lexer.LEFT_BRACKET:     POSTFIX,
	lexer.COLON_OP:         POSTFIX,
	lexer.DCOLON_OP:        POSTFIX,
	lexer.INCR_OP:          POSTFIX,
	lexer.DECR_OP:          POSTFIX,
}

// unaryParseFunction parses a token that can begin an expression; it is
// invoked with CurrToken on that token and must leave CurrToken on the
// last token of the parsed expression.
type unaryParseFunction func() ExpressionNode

// binaryParseFunction parses an infix or postfix operator; it is invoked
// with CurrToken on the operator.
type binaryParseFunction func(left ExpressionNode) ExpressionNode

// Parser holds the parsing state: the lexer, a two-token window, the Pratt
// function maps and the collected errors.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	UnaryFuncs  map[lexer.TokenType]unaryParseFunction
	BinaryFuncs map[lexer.TokenType]binaryParseFunction

	// sliceColon is set while parsing the index expression of target[...]:
	// there a ':' is the slice separator, not member access. Nested
	// parenthesised contexts clear and restore it.
	sliceColon bool

	Errors []*diag.Error
}

// NewParser creates a parser over the given source text.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.init()
	return par
}

// init registers the Pratt parse functions and primes the token window.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)

	// Tokens that can begin an expression.
	par.UnaryFuncs[lexer.NUMBER_LIT] = par.parseNumberLiteral
	par.UnaryFuncs[lexer.STRING_LIT] = par.parseStringLiteral
	par.UnaryFuncs[lexer.STRING_START] = par.parseTemplateString
	par.UnaryFuncs[lexer.SHELL_LIT] = par.parseShellCommand
	par.UnaryFuncs[lexer.SHELL_START] = par.parseShellTemplate
	par.UnaryFuncs[lexer.REGEX_LIT] = par.parseRegexLiteral
	par.UnaryFuncs[lexer.TRUE_KEY] = par.parseBoolLiteral
	par.UnaryFuncs[lexer.FALSE_KEY] = par.parseBoolLiteral
	par.UnaryFuncs[lexer.NIL_LIT] = par.parseNilLiteral
	par.UnaryFuncs[lexer.IDENTIFIER_ID] = par.parseIdentifier
	par.UnaryFuncs[lexer.LEFT_PAREN] = par.parseGroupOrTuple
	par.UnaryFuncs[lexer.LEFT_BRACKET] = par.parseListLiteral
	par.UnaryFuncs[lexer.LEFT_BRACE] = par.parseMapLiteral
	par.UnaryFuncs[lexer.MINUS_OP] = par.parseUnary
	par.UnaryFuncs[lexer.NOT_OP] = par.parseUnary
	par.UnaryFuncs[lexer.PIPE_OP] = par.parseLambda
	par.UnaryFuncs[lexer.OR_OP] = par.parseZeroArgLambda
	par.UnaryFuncs[lexer.MATCH_KEY] = par.parseMatch

	// Infix and postfix operators.
	for _, t := range []lexer.TokenType{
		lexer.ASSIGN_OP, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN,
		lexer.MUL_ASSIGN, lexer.DIV_ASSIGN, lexer.MOD_ASSIGN,
	} {
		par.BinaryFuncs[t] = par.parseAssignment
	}
	for _, t := range []lexer.TokenType{
		lexer.OR_OP, lexer.AND_OP, lexer.EQ_OP, lexer.NE_OP,
		lexer.MATCH_OP, lexer.NOT_MATCH_OP,
		lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP,
		lexer.MOD_OP, lexer.COMPOSE_RIGHT_OP, lexer.COMPOSE_LEFT_OP,
	} {
		par.BinaryFuncs[t] = par.parseBinary
	}
	par.BinaryFuncs[lexer.POW_OP] = par.parseRightAssocBinary
	par.BinaryFuncs[lexer.PIPE_RIGHT_OP] = par.parseBinary
	par.BinaryFuncs[lexer.PIPE_LEFT_OP] = par.parseRightAssocBinary
	par.BinaryFuncs[lexer.PIPE_OP] = par.parsePipeline
	par.BinaryFuncs[lexer.RANGE_OP] = par.parseRange
	par.BinaryFuncs[lexer.RANGE_INCL_OP] = par.parseRange
	par.BinaryFuncs[lexer.LEFT_PAREN] = par.parseCall
	par.BinaryFuncs[lexer.LEFT_BRACKET] = par.parseIndexOrSlice
	par.BinaryFuncs[lexer.COLON_OP] = par.parseMember
	par.BinaryFuncs[lexer.DCOLON_OP] = par.parseMethodCall
	par.BinaryFuncs[lexer.INCR_OP] = par.parsePostfix
	par.BinaryFuncs[lexer.DECR_OP] = par.parsePostfix

	// Prime the two-token window.
	par.Advance()
	par.Advance()
}

// Advance shifts the token window one token forward.
func (par *Parser) Advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// Parse parses the whole source and returns the AST root. Lexer errors are
// folded into the parser's error list so callers inspect one place.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{}
	for !par.CurrToken.Is(lexer.EOF_TYPE) {
		if par.CurrToken.Is(lexer.NEWLINE_TYPE) || par.CurrToken.Is(lexer.SEMICOLON_DELIM) {
			par.Advance()
			continue
		}
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
			par.expectStatementEnd()
		} else {
			par.synchronize()
		}
	}
	par.Errors = append(par.Errors, par.Lex.Errors...)
	return root
}

// HasErrors reports whether parsing produced any diagnostics.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// parseExpression is the Pratt core: parse a prefix expression, then fold
// in operators whose precedence exceeds the caller's floor.
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unary := par.UnaryFuncs[par.CurrToken.Type]
	if unary == nil {
		par.errorf(diag.ExpectedExpression, par.CurrToken.Span,
			"expected an expression, found %q", par.CurrToken.Literal)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}

	for precedence < par.peekPrecedence() {
		binary := par.BinaryFuncs[par.NextToken.Type]
		if binary == nil {
			break
		}
		par.Advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// peekPrecedence returns the binding power of the upcoming token, LOWEST
// when it is not an operator. Inside a bracketed index a ':' separates
// slice bounds and never binds as member access.
func (par *Parser) peekPrecedence() int {
	if par.sliceColon && par.NextToken.Is(lexer.COLON_OP) {
		return LOWEST
	}
	if prec, ok := precedences[par.NextToken.Type]; ok {
		return prec
	}
	return LOWEST
}
