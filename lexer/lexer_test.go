/*
File    : suji/lexer/lexer_test.go
Author  : The Suji Authors
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConsumeToken represents one tokenization test case.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// collect runs the lexer over the input and returns all tokens before EOF,
// stripped of spans for easy comparison.
func collect(t *testing.T, input string) []Token {
	t.Helper()
	lex := NewLexer(input)
	var toks []Token
	for {
		tok := lex.NextToken()
		if tok.Type == EOF_TYPE {
			return toks
		}
		toks = append(toks, NewToken(tok.Type, tok.Literal))
	}
}

func TestLexer_Operators(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2 * 31 - 12 / 4 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(MUL_OP, "*"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(DIV_OP, "/"),
				NewToken(NUMBER_LIT, "4"),
			},
		},
		{
			Input: `a |> f <| b | c() >> << :: : => .. ..=`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(PIPE_RIGHT_OP, "|>"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(PIPE_LEFT_OP, "<|"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(PIPE_OP, "|"),
				NewToken(IDENTIFIER_ID, "c"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(COMPOSE_RIGHT_OP, ">>"),
				NewToken(COMPOSE_LEFT_OP, "<<"),
				NewToken(DCOLON_OP, "::"),
				NewToken(COLON_OP, ":"),
				NewToken(ARROW_OP, "=>"),
				NewToken(RANGE_OP, ".."),
				NewToken(RANGE_INCL_OP, "..="),
			},
		},
		{
			Input: `x += 1; y ++ z -- !~ ~`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PLUS_ASSIGN, "+="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(INCR_OP, "++"),
				NewToken(IDENTIFIER_ID, "z"),
				NewToken(DECR_OP, "--"),
				NewToken(NOT_MATCH_OP, "!~"),
				NewToken(MATCH_OP, "~"),
			},
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.ExpectedTokens, collect(t, test.Input), "input: %s", test.Input)
	}
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := collect(t, `loop through xs with k, v { break outer }`)
	expected := []Token{
		NewToken(LOOP_KEY, "loop"),
		NewToken(THROUGH_KEY, "through"),
		NewToken(IDENTIFIER_ID, "xs"),
		NewToken(WITH_KEY, "with"),
		NewToken(IDENTIFIER_ID, "k"),
		NewToken(COMMA_DELIM, ","),
		NewToken(IDENTIFIER_ID, "v"),
		NewToken(LEFT_BRACE, "{"),
		NewToken(BREAK_KEY, "break"),
		NewToken(IDENTIFIER_ID, "outer"),
		NewToken(RIGHT_BRACE, "}"),
	}
	assert.Equal(t, expected, toks)
}

// Regex-vs-division boundary cases from the language design notes:
// a/b, a / /re/, return /re/, (/re/), |x| /re/.
func TestLexer_RegexVsDivision(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `a/b`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(DIV_OP, "/"),
				NewToken(IDENTIFIER_ID, "b"),
			},
		},
		{
			Input: `a / /re/`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(DIV_OP, "/"),
				NewToken(REGEX_LIT, "re"),
			},
		},
		{
			Input: `return /re/`,
			ExpectedTokens: []Token{
				NewToken(RETURN_KEY, "return"),
				NewToken(REGEX_LIT, "re"),
			},
		},
		{
			Input: `(/re/)`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(REGEX_LIT, "re"),
				NewToken(RIGHT_PAREN, ")"),
			},
		},
		{
			Input: `|x| /re/`,
			ExpectedTokens: []Token{
				NewToken(PIPE_OP, "|"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PIPE_OP, "|"),
				NewToken(REGEX_LIT, "re"),
			},
		},
		{
			// Escaped slash and a character class containing '/'.
			Input: `x = /a\/b[/]c/`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(REGEX_LIT, "a/b[/]c"),
			},
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.ExpectedTokens, collect(t, test.Input), "input: %s", test.Input)
	}
}

func TestLexer_UnterminatedRegex(t *testing.T) {
	lex := NewLexer("x = /abc\n")
	for {
		if tok := lex.NextToken(); tok.Type == EOF_TYPE {
			break
		}
	}
	require.NotEmpty(t, lex.Errors)
	assert.Equal(t, "UnterminatedRegex", string(lex.Errors[0].Kind))
}

func TestLexer_SimpleStrings(t *testing.T) {
	toks := collect(t, `"hello" 'world' "a\tb\n" "\x41\u{1F600}"`)
	expected := []Token{
		NewToken(STRING_LIT, "hello"),
		NewToken(STRING_LIT, "world"),
		NewToken(STRING_LIT, "a\tb\n"),
		NewToken(STRING_LIT, "A\U0001F600"),
	}
	assert.Equal(t, expected, toks)
}

func TestLexer_TripleQuotedString(t *testing.T) {
	toks := collect(t, "\"\"\"\nline one\nline two\"\"\"")
	expected := []Token{
		NewToken(STRING_LIT, "line one\nline two"),
	}
	assert.Equal(t, expected, toks)
}

func TestLexer_StringInterpolation(t *testing.T) {
	toks := collect(t, `"Hello, ${name}!"`)
	expected := []Token{
		NewToken(STRING_START, "Hello, "),
		NewToken(INTERP_START, "${"),
		NewToken(IDENTIFIER_ID, "name"),
		NewToken(INTERP_END, "}"),
		NewToken(STRING_END, "!"),
	}
	assert.Equal(t, expected, toks)
}

func TestLexer_NestedInterpolation(t *testing.T) {
	toks := collect(t, `"a${ "b${x}c" }d"`)
	expected := []Token{
		NewToken(STRING_START, "a"),
		NewToken(INTERP_START, "${"),
		NewToken(STRING_START, "b"),
		NewToken(INTERP_START, "${"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(INTERP_END, "}"),
		NewToken(STRING_END, "c"),
		NewToken(INTERP_END, "}"),
		NewToken(STRING_END, "d"),
	}
	assert.Equal(t, expected, toks)
}

// Braces inside an interpolation must not close it early: the map literal's
// '}' belongs to the map, the second one to the interpolation.
func TestLexer_InterpolationBraceDepth(t *testing.T) {
	toks := collect(t, `"v=${ {a: 1} }"`)
	expected := []Token{
		NewToken(STRING_START, "v="),
		NewToken(INTERP_START, "${"),
		NewToken(LEFT_BRACE, "{"),
		NewToken(IDENTIFIER_ID, "a"),
		NewToken(COLON_OP, ":"),
		NewToken(NUMBER_LIT, "1"),
		NewToken(RIGHT_BRACE, "}"),
		NewToken(INTERP_END, "}"),
		NewToken(STRING_END, ""),
	}
	assert.Equal(t, expected, toks)
}

func TestLexer_ShellTemplates(t *testing.T) {
	toks := collect(t, "`ls -la` `grep ${pat} file`")
	expected := []Token{
		NewToken(SHELL_LIT, "ls -la"),
		NewToken(SHELL_START, "grep "),
		NewToken(INTERP_START, "${"),
		NewToken(IDENTIFIER_ID, "pat"),
		NewToken(INTERP_END, "}"),
		NewToken(SHELL_END, " file"),
	}
	assert.Equal(t, expected, toks)
}

func TestLexer_NewlinesAndGroups(t *testing.T) {
	// Newlines separate statements at top level but not inside groups.
	toks := collect(t, "a = 1\nb = [1,\n2]\n")
	expected := []Token{
		NewToken(IDENTIFIER_ID, "a"),
		NewToken(ASSIGN_OP, "="),
		NewToken(NUMBER_LIT, "1"),
		NewToken(NEWLINE_TYPE, "\n"),
		NewToken(IDENTIFIER_ID, "b"),
		NewToken(ASSIGN_OP, "="),
		NewToken(LEFT_BRACKET, "["),
		NewToken(NUMBER_LIT, "1"),
		NewToken(COMMA_DELIM, ","),
		NewToken(NUMBER_LIT, "2"),
		NewToken(RIGHT_BRACKET, "]"),
		NewToken(NEWLINE_TYPE, "\n"),
	}
	assert.Equal(t, expected, toks)
}

func TestLexer_CommentsSkipped(t *testing.T) {
	toks := collect(t, "x # trailing comment\n# full line\ny")
	expected := []Token{
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(NEWLINE_TYPE, "\n"),
		NewToken(IDENTIFIER_ID, "y"),
	}
	assert.Equal(t, expected, toks)
}

func TestLexer_Spans(t *testing.T) {
	lex := NewLexer("ab + cd")
	tok := lex.NextToken()
	require.Equal(t, IDENTIFIER_ID, tok.Type)
	assert.Equal(t, 1, tok.Span.Line)
	assert.Equal(t, 1, tok.Span.Column)
	assert.Equal(t, 0, tok.Span.Start)
	assert.Equal(t, 2, tok.Span.End)

	tok = lex.NextToken() // +
	tok = lex.NextToken() // cd
	assert.Equal(t, 6, tok.Span.Column)
}
