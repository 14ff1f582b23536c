/*
File    : suji/lexer/token.go
Author  : The Suji Authors
*/
package lexer

import (
	"fmt"

	"github.com/suji-lang/suji/diag"
)

// TokenType represents the type of a lexical token in the Suji language.
// It is defined as a string to allow for easy comparison and debugging.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Suji language,
// organized into logical groups.
const (
	// Special Types
	EOF_TYPE     TokenType = "EOF"     // End of the input stream
	INVALID_TYPE TokenType = "INVALID" // Unrecognized or malformed token
	NEWLINE_TYPE TokenType = "NEWLINE" // Statement-separating newline

	// Arithmetic Operators
	PLUS_OP  TokenType = "+" // Addition / concatenation
	MINUS_OP TokenType = "-" // Subtraction / negation
	MUL_OP   TokenType = "*" // Multiplication
	DIV_OP   TokenType = "/" // Division
	MOD_OP   TokenType = "%" // Modulo
	POW_OP   TokenType = "^" // Exponentiation

	// Compound assignment operators
	PLUS_ASSIGN  TokenType = "+=" // Add and assign
	MINUS_ASSIGN TokenType = "-=" // Subtract and assign
	MUL_ASSIGN   TokenType = "*=" // Multiply and assign
	DIV_ASSIGN   TokenType = "/=" // Divide and assign
	MOD_ASSIGN   TokenType = "%=" // Modulo and assign

	// Increment / decrement (postfix, mutate the bound name)
	INCR_OP TokenType = "++" // Increment
	DECR_OP TokenType = "--" // Decrement

	// Comparison Operators
	GT_OP TokenType = ">"  // Greater than
	LT_OP TokenType = "<"  // Less than
	GE_OP TokenType = ">=" // Greater than or equal
	LE_OP TokenType = "<=" // Less than or equal
	EQ_OP TokenType = "==" // Equality
	NE_OP TokenType = "!=" // Inequality

	// Regex match operators
	MATCH_OP     TokenType = "~"  // String matches regex
	NOT_MATCH_OP TokenType = "!~" // String does not match regex

	// Assignment and logic
	ASSIGN_OP TokenType = "="  // Assignment
	NOT_OP    TokenType = "!"  // Logical NOT
	AND_OP    TokenType = "&&" // Logical AND
	OR_OP     TokenType = "||" // Logical OR (also: zero-arg lambda head)

	// Pipelines and application
	PIPE_OP       TokenType = "|"  // Process pipeline (also: lambda head)
	PIPE_RIGHT_OP TokenType = "|>" // Pipe-apply, left to right
	PIPE_LEFT_OP  TokenType = "<|" // Pipe-apply, right to left

	// Function composition
	COMPOSE_RIGHT_OP TokenType = ">>" // f >> g  =>  |x| g(f(x))
	COMPOSE_LEFT_OP  TokenType = "<<" // f << g  =>  |x| f(g(x))

	// Ranges
	RANGE_OP      TokenType = ".."  // Half-open range a..b
	RANGE_INCL_OP TokenType = "..=" // Inclusive range a..=b

	// Access operators
	COLON_OP  TokenType = ":"  // Member access / map key separator / slice
	DCOLON_OP TokenType = "::" // Method call
	ARROW_OP  TokenType = "=>" // Match arm arrow

	// Keywords
	LOOP_KEY     TokenType = "loop"     // Loop statement
	THROUGH_KEY  TokenType = "through"  // loop through EXPR
	WITH_KEY     TokenType = "with"     // loop ... with IDS
	AS_KEY       TokenType = "as"       // loop as LABEL
	MATCH_KEY    TokenType = "match"    // Match expression
	BREAK_KEY    TokenType = "break"    // Break out of a loop
	CONTINUE_KEY TokenType = "continue" // Continue a loop
	RETURN_KEY   TokenType = "return"   // Return from a function
	IMPORT_KEY   TokenType = "import"   // Import a module
	EXPORT_KEY   TokenType = "export"   // Export module bindings
	TRUE_KEY     TokenType = "true"     // Boolean true literal
	FALSE_KEY    TokenType = "false"    // Boolean false literal
	NIL_LIT      TokenType = "nil"      // Nil literal

	// Identifiers and literals
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined name
	NUMBER_LIT    TokenType = "NumberLiteral" // Decimal number literal
	STRING_LIT    TokenType = "StringLiteral" // String with no interpolation
	REGEX_LIT     TokenType = "RegexLiteral"  // /pattern/

	// Interpolated string parts. A string containing ${...} is emitted as
	// STRING_START, then (expression tokens between INTERP_START/INTERP_END
	// and STRING_SEGMENT pieces), terminated by STRING_END. Backtick shell
	// templates follow the same scheme with the SHELL_* types.
	STRING_START   TokenType = "StringStart"   // Opening segment of a template string
	STRING_SEGMENT TokenType = "StringSegment" // Literal segment between interpolations
	STRING_END     TokenType = "StringEnd"     // Closing segment of a template string
	SHELL_LIT      TokenType = "ShellLiteral"  // Backtick command with no interpolation
	SHELL_START    TokenType = "ShellStart"    // Opening segment of a shell template
	SHELL_SEGMENT  TokenType = "ShellSegment"  // Literal segment of a shell template
	SHELL_END      TokenType = "ShellEnd"      // Closing segment of a shell template
	INTERP_START   TokenType = "InterpStart"   // ${ inside a string or shell template
	INTERP_END     TokenType = "InterpEnd"     // } closing an interpolation

	// Structural Tokens
	LEFT_PAREN    TokenType = "(" // Grouping, calls, tuples
	RIGHT_PAREN   TokenType = ")"
	LEFT_BRACE    TokenType = "{" // Blocks and map literals
	RIGHT_BRACE   TokenType = "}"
	LEFT_BRACKET  TokenType = "[" // List literals, indexing, slicing
	RIGHT_BRACKET TokenType = "]"

	// Delimiters
	COMMA_DELIM     TokenType = "," // Separates elements and parameters
	SEMICOLON_DELIM TokenType = ";" // Statement terminator
)

// KEYWORDS_MAP maps keyword strings to their token types. When the lexer
// reads an identifier-shaped word it consults this map to decide whether
// the word is reserved.
var KEYWORDS_MAP = map[string]TokenType{
	"loop":     LOOP_KEY,
	"through":  THROUGH_KEY,
	"with":     WITH_KEY,
	"as":       AS_KEY,
	"match":    MATCH_KEY,
	"break":    BREAK_KEY,
	"continue": CONTINUE_KEY,
	"return":   RETURN_KEY,
	"import":   IMPORT_KEY,
	"export":   EXPORT_KEY,
	"true":     TRUE_KEY,
	"false":    FALSE_KEY,
	"nil":      NIL_LIT,
}

// Token represents a single lexical token in Suji source code.
// Literal holds the decoded text (for strings, the unescaped contents;
// for regexes, the pattern between the slashes). Span locates the token
// in the source for diagnostics.
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // Decoded text of the token
	Span    diag.Span // Source location
}

// NewToken creates a Token with the given type and literal and no span.
// Used by tests that do not care about source positions.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

// NewTokenWithSpan creates a Token carrying full source-location metadata.
func NewTokenWithSpan(tokenType TokenType, literal string, span diag.Span) Token {
	return Token{Type: tokenType, Literal: literal, Span: span}
}

// String renders the token as "literal:type" for debugging.
func (tok Token) String() string {
	return fmt.Sprintf("%s:%v", tok.Literal, tok.Type)
}

// Is reports whether the token has the given type.
func (tok Token) Is(t TokenType) bool {
	return tok.Type == t
}
