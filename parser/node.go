/*
File    : suji/parser/node.go
Author  : The Suji Authors
*/
package parser

import (
	"strings"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/lexer"
	"github.com/suji-lang/suji/values"
)

// Node is the base interface for all AST nodes. Literal reconstructs an
// approximate source form for diagnostics and debugging; Span locates the
// node in the source.
type Node interface {
	Literal() string
	Span() diag.Span
}

// StatementNode is the base interface for statements.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode is the base interface for expressions. Every expression
// is also usable as a statement.
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// PatternNode is the base interface for match-arm patterns.
type PatternNode interface {
	Node
	Pattern()
}

// RootNode is the root of the AST: the ordered statements of a program or
// module source file.
type RootNode struct {
	Statements []StatementNode
}

func (n *RootNode) Literal() string {
	var parts []string
	for _, stmt := range n.Statements {
		parts = append(parts, stmt.Literal())
	}
	return strings.Join(parts, "; ")
}

func (n *RootNode) Span() diag.Span {
	if len(n.Statements) > 0 {
		return n.Statements[0].Span()
	}
	return diag.Span{}
}

// joinLiterals renders a comma-separated literal list.
func joinLiterals[T Node](nodes []T, sep string) string {
	var parts []string
	for _, n := range nodes {
		parts = append(parts, n.Literal())
	}
	return strings.Join(parts, sep)
}

// ---- literal expressions ----

// NumberLiteralNode is a decimal number literal such as 42 or 3.14.
type NumberLiteralNode struct {
	Token lexer.Token
	Value *values.Number
}

func (n *NumberLiteralNode) Literal() string { return n.Token.Literal }
func (n *NumberLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *NumberLiteralNode) Statement()      {}
func (n *NumberLiteralNode) Expression()     {}

// BoolLiteralNode is true or false.
type BoolLiteralNode struct {
	Token lexer.Token
	Value bool
}

func (n *BoolLiteralNode) Literal() string { return n.Token.Literal }
func (n *BoolLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *BoolLiteralNode) Statement()      {}
func (n *BoolLiteralNode) Expression()     {}

// NilLiteralNode is the nil literal.
type NilLiteralNode struct {
	Token lexer.Token
}

func (n *NilLiteralNode) Literal() string { return "nil" }
func (n *NilLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *NilLiteralNode) Statement()      {}
func (n *NilLiteralNode) Expression()     {}

// StringLiteralNode is a string with no interpolation, already unescaped.
type StringLiteralNode struct {
	Token lexer.Token
	Value string
}

func (n *StringLiteralNode) Literal() string { return `"` + n.Value + `"` }
func (n *StringLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *StringLiteralNode) Statement()      {}
func (n *StringLiteralNode) Expression()     {}

// TemplateStringNode is a string with ${...} interpolations: an alternating
// sequence of literal segments (StringLiteralNode) and embedded expressions.
type TemplateStringNode struct {
	Token lexer.Token
	Parts []ExpressionNode
}

func (n *TemplateStringNode) Literal() string { return `"` + joinLiterals(n.Parts, "") + `"` }
func (n *TemplateStringNode) Span() diag.Span { return n.Token.Span }
func (n *TemplateStringNode) Statement()      {}
func (n *TemplateStringNode) Expression()     {}

// ShellCommandNode is a backtick template. Parts follow the same scheme as
// TemplateStringNode; the expanded text is passed to the host shell.
type ShellCommandNode struct {
	Token lexer.Token
	Parts []ExpressionNode
}

func (n *ShellCommandNode) Literal() string { return "`" + joinLiterals(n.Parts, "") + "`" }
func (n *ShellCommandNode) Span() diag.Span { return n.Token.Span }
func (n *ShellCommandNode) Statement()      {}
func (n *ShellCommandNode) Expression()     {}

// RegexLiteralNode is a /pattern/ literal, compiled at parse time.
type RegexLiteralNode struct {
	Token lexer.Token
	Regex *values.Regex
}

func (n *RegexLiteralNode) Literal() string { return "/" + n.Token.Literal + "/" }
func (n *RegexLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *RegexLiteralNode) Statement()      {}
func (n *RegexLiteralNode) Expression()     {}

// ListLiteralNode is [e1, e2, ...].
type ListLiteralNode struct {
	Token    lexer.Token
	Elements []ExpressionNode
}

func (n *ListLiteralNode) Literal() string { return "[" + joinLiterals(n.Elements, ", ") + "]" }
func (n *ListLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *ListLiteralNode) Statement()      {}
func (n *ListLiteralNode) Expression()     {}

// MapLiteralNode is {k1: v1, k2: v2}. Keys and Values are parallel slices
// preserving source order.
type MapLiteralNode struct {
	Token  lexer.Token
	Keys   []ExpressionNode
	Values []ExpressionNode
}

func (n *MapLiteralNode) Literal() string {
	var parts []string
	for i := range n.Keys {
		parts = append(parts, n.Keys[i].Literal()+": "+n.Values[i].Literal())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (n *MapLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *MapLiteralNode) Statement()      {}
func (n *MapLiteralNode) Expression()     {}

// TupleLiteralNode is (e1, e2, ...).
type TupleLiteralNode struct {
	Token    lexer.Token
	Elements []ExpressionNode
}

func (n *TupleLiteralNode) Literal() string { return "(" + joinLiterals(n.Elements, ", ") + ")" }
func (n *TupleLiteralNode) Span() diag.Span { return n.Token.Span }
func (n *TupleLiteralNode) Statement()      {}
func (n *TupleLiteralNode) Expression()     {}

// RangeNode is a..b (half-open) or a..=b (inclusive).
type RangeNode struct {
	Token     lexer.Token
	Start     ExpressionNode
	End       ExpressionNode
	Inclusive bool
}

func (n *RangeNode) Literal() string {
	op := ".."
	if n.Inclusive {
		op = "..="
	}
	return n.Start.Literal() + op + n.End.Literal()
}
func (n *RangeNode) Span() diag.Span { return n.Token.Span }
func (n *RangeNode) Statement()      {}
func (n *RangeNode) Expression()     {}

// ---- identifiers and access ----

// IdentifierNode is a variable or function reference.
type IdentifierNode struct {
	Token lexer.Token
	Name  string
}

func (n *IdentifierNode) Literal() string { return n.Name }
func (n *IdentifierNode) Span() diag.Span { return n.Token.Span }
func (n *IdentifierNode) Statement()      {}
func (n *IdentifierNode) Expression()     {}

// IndexNode is target[index].
type IndexNode struct {
	Token  lexer.Token
	Target ExpressionNode
	Index  ExpressionNode
}

func (n *IndexNode) Literal() string { return n.Target.Literal() + "[" + n.Index.Literal() + "]" }
func (n *IndexNode) Span() diag.Span { return n.Token.Span }
func (n *IndexNode) Statement()      {}
func (n *IndexNode) Expression()     {}

// SliceNode is target[start:end]; either bound may be omitted.
type SliceNode struct {
	Token  lexer.Token
	Target ExpressionNode
	Start  ExpressionNode // nil means from the beginning
	End    ExpressionNode // nil means to the end
}

func (n *SliceNode) Literal() string {
	start, end := "", ""
	if n.Start != nil {
		start = n.Start.Literal()
	}
	if n.End != nil {
		end = n.End.Literal()
	}
	return n.Target.Literal() + "[" + start + ":" + end + "]"
}
func (n *SliceNode) Span() diag.Span { return n.Token.Span }
func (n *SliceNode) Statement()      {}
func (n *SliceNode) Expression()     {}

// MemberNode is target:name — module member access.
type MemberNode struct {
	Token  lexer.Token
	Target ExpressionNode
	Name   string
}

func (n *MemberNode) Literal() string { return n.Target.Literal() + ":" + n.Name }
func (n *MemberNode) Span() diag.Span { return n.Token.Span }
func (n *MemberNode) Statement()      {}
func (n *MemberNode) Expression()     {}

// MethodCallNode is target::name(args) — value-kind method dispatch.
type MethodCallNode struct {
	Token  lexer.Token
	Target ExpressionNode
	Name   string
	Args   []ExpressionNode
}

func (n *MethodCallNode) Literal() string {
	return n.Target.Literal() + "::" + n.Name + "(" + joinLiterals(n.Args, ", ") + ")"
}
func (n *MethodCallNode) Span() diag.Span { return n.Token.Span }
func (n *MethodCallNode) Statement()      {}
func (n *MethodCallNode) Expression()     {}

// CallNode is callee(args).
type CallNode struct {
	Token  lexer.Token
	Callee ExpressionNode
	Args   []ExpressionNode
}

func (n *CallNode) Literal() string {
	return n.Callee.Literal() + "(" + joinLiterals(n.Args, ", ") + ")"
}
func (n *CallNode) Span() diag.Span { return n.Token.Span }
func (n *CallNode) Statement()      {}
func (n *CallNode) Expression()     {}

// ---- operators ----

// UnaryNode is a prefix operation: -x or !x.
type UnaryNode struct {
	Op    lexer.Token
	Right ExpressionNode
}

func (n *UnaryNode) Literal() string { return "(" + n.Op.Literal + n.Right.Literal() + ")" }
func (n *UnaryNode) Span() diag.Span { return n.Op.Span }
func (n *UnaryNode) Statement()      {}
func (n *UnaryNode) Expression()     {}

// BinaryNode is an infix operation: arithmetic, comparison, logic, regex
// match, pipe-apply and function composition all share this shape.
type BinaryNode struct {
	Op    lexer.Token
	Left  ExpressionNode
	Right ExpressionNode
}

func (n *BinaryNode) Literal() string {
	return "(" + n.Left.Literal() + " " + n.Op.Literal + " " + n.Right.Literal() + ")"
}
func (n *BinaryNode) Span() diag.Span { return n.Op.Span }
func (n *BinaryNode) Statement()      {}
func (n *BinaryNode) Expression()     {}

// PostfixNode is target++ or target--, which mutate the bound name.
type PostfixNode struct {
	Op     lexer.Token
	Target ExpressionNode
}

func (n *PostfixNode) Literal() string { return n.Target.Literal() + n.Op.Literal }
func (n *PostfixNode) Span() diag.Span { return n.Op.Span }
func (n *PostfixNode) Statement()      {}
func (n *PostfixNode) Expression()     {}

// ---- functions ----

// Param is one lambda parameter, optionally with a default value that is
// evaluated at call time when the argument is omitted.
type Param struct {
	Name    string
	Default ExpressionNode
}

// LambdaNode is |params| expr or |params| { stmts }. Exactly one of
// ExprBody and BlockBody is set.
type LambdaNode struct {
	Token     lexer.Token
	Params    []*Param
	ExprBody  ExpressionNode
	BlockBody *BlockStatementNode
}

func (n *LambdaNode) Literal() string {
	var params []string
	for _, p := range n.Params {
		if p.Default != nil {
			params = append(params, p.Name+" = "+p.Default.Literal())
		} else {
			params = append(params, p.Name)
		}
	}
	body := "{...}"
	if n.ExprBody != nil {
		body = n.ExprBody.Literal()
	}
	return "|" + strings.Join(params, ", ") + "| " + body
}
func (n *LambdaNode) Span() diag.Span { return n.Token.Span }
func (n *LambdaNode) Statement()      {}
func (n *LambdaNode) Expression()     {}

// ---- match ----

// MatchArm is one arm of a match expression. Scrutinee form sets Pattern;
// the condition-only form sets Cond. Exactly one of ExprBody/BlockBody is
// the arm's body.
type MatchArm struct {
	Pattern   PatternNode
	Cond      ExpressionNode
	ExprBody  ExpressionNode
	BlockBody *BlockStatementNode
}

// MatchNode is a match expression. Scrutinee is nil for the condition-only
// form. Arms are tried in source order; no match yields nil.
type MatchNode struct {
	Token     lexer.Token
	Scrutinee ExpressionNode
	Arms      []*MatchArm
}

func (n *MatchNode) Literal() string {
	head := "match"
	if n.Scrutinee != nil {
		head += " " + n.Scrutinee.Literal()
	}
	return head + " {...}"
}
func (n *MatchNode) Span() diag.Span { return n.Token.Span }
func (n *MatchNode) Statement()      {}
func (n *MatchNode) Expression()     {}

// ---- patterns ----

// LiteralPatternNode matches when the scrutinee equals the literal.
type LiteralPatternNode struct {
	Expr ExpressionNode
}

func (n *LiteralPatternNode) Literal() string { return n.Expr.Literal() }
func (n *LiteralPatternNode) Span() diag.Span { return n.Expr.Span() }
func (n *LiteralPatternNode) Pattern()        {}

// WildcardPatternNode is _, matching anything without binding.
type WildcardPatternNode struct {
	Token lexer.Token
}

func (n *WildcardPatternNode) Literal() string { return "_" }
func (n *WildcardPatternNode) Span() diag.Span { return n.Token.Span }
func (n *WildcardPatternNode) Pattern()        {}

// IdentifierPatternNode matches anything and binds it in the arm's scope.
type IdentifierPatternNode struct {
	Token lexer.Token
	Name  string
}

func (n *IdentifierPatternNode) Literal() string { return n.Name }
func (n *IdentifierPatternNode) Span() diag.Span { return n.Token.Span }
func (n *IdentifierPatternNode) Pattern()        {}

// TuplePatternNode matches a tuple of the same arity element-wise.
type TuplePatternNode struct {
	Token    lexer.Token
	Elements []PatternNode
}

func (n *TuplePatternNode) Literal() string { return "(" + joinLiterals(n.Elements, ", ") + ")" }
func (n *TuplePatternNode) Span() diag.Span { return n.Token.Span }
func (n *TuplePatternNode) Pattern()        {}

// RegexPatternNode matches string scrutinees against the regex.
type RegexPatternNode struct {
	Token lexer.Token
	Regex *values.Regex
}

func (n *RegexPatternNode) Literal() string { return "/" + n.Regex.Pattern + "/" }
func (n *RegexPatternNode) Span() diag.Span { return n.Token.Span }
func (n *RegexPatternNode) Pattern()        {}

// AlternationPatternNode is p1 | p2 | ...; it matches when any alternative
// matches. Alternatives must not introduce bindings.
type AlternationPatternNode struct {
	Token        lexer.Token
	Alternatives []PatternNode
}

func (n *AlternationPatternNode) Literal() string { return joinLiterals(n.Alternatives, " | ") }
func (n *AlternationPatternNode) Span() diag.Span { return n.Token.Span }
func (n *AlternationPatternNode) Pattern()        {}

// ---- pipelines and assignment ----

// PipelineNode is a process pipeline: stage | stage | stage. Every stage is
// syntactically an invocation (call, method call, or backtick command),
// enforced at parse time.
type PipelineNode struct {
	Token  lexer.Token
	Stages []ExpressionNode
}

func (n *PipelineNode) Literal() string { return joinLiterals(n.Stages, " | ") }
func (n *PipelineNode) Span() diag.Span { return n.Token.Span }
func (n *PipelineNode) Statement()      {}
func (n *PipelineNode) Expression()     {}

// AssignmentNode is target = value or a compound form (+=, -=, ...).
type AssignmentNode struct {
	Op     lexer.Token
	Target ExpressionNode
	Value  ExpressionNode
}

func (n *AssignmentNode) Literal() string {
	return n.Target.Literal() + " " + n.Op.Literal + " " + n.Value.Literal()
}
func (n *AssignmentNode) Span() diag.Span { return n.Op.Span }
func (n *AssignmentNode) Statement()      {}
func (n *AssignmentNode) Expression()     {}

// DestructuringNode is a, b = expr — tuple destructuring with _ discards.
type DestructuringNode struct {
	Token   lexer.Token
	Targets []ExpressionNode
	Value   ExpressionNode
}

func (n *DestructuringNode) Literal() string {
	return joinLiterals(n.Targets, ", ") + " = " + n.Value.Literal()
}
func (n *DestructuringNode) Span() diag.Span { return n.Token.Span }
func (n *DestructuringNode) Statement()      {}
func (n *DestructuringNode) Expression()     {}

// ---- statements ----

// BlockStatementNode is { stmt; stmt; ... }. When used as a body whose
// value matters (lambda blocks, match arms), the last expression statement
// is the block's value.
type BlockStatementNode struct {
	Token      lexer.Token
	Statements []StatementNode
}

func (n *BlockStatementNode) Literal() string {
	return "{ " + joinLiterals(n.Statements, "; ") + " }"
}
func (n *BlockStatementNode) Span() diag.Span { return n.Token.Span }
func (n *BlockStatementNode) Statement()      {}

// ExpressionStatementNode wraps an expression used as a statement.
type ExpressionStatementNode struct {
	Expr ExpressionNode
}

func (n *ExpressionStatementNode) Literal() string { return n.Expr.Literal() }
func (n *ExpressionStatementNode) Span() diag.Span { return n.Expr.Span() }
func (n *ExpressionStatementNode) Statement()      {}

// ImportStatementNode is import a:b:c. The binding name is the last
// segment.
type ImportStatementNode struct {
	Token    lexer.Token
	Segments []string
}

func (n *ImportStatementNode) Literal() string { return "import " + strings.Join(n.Segments, ":") }
func (n *ImportStatementNode) Span() diag.Span { return n.Token.Span }
func (n *ImportStatementNode) Statement()      {}

// ExportStatementNode is export { name: expr, shorthand, ... } or the bare
// leaf form export name. Keys and Values are parallel; a shorthand entry
// stores the identifier expression as its value.
type ExportStatementNode struct {
	Token  lexer.Token
	Keys   []string
	Values []ExpressionNode
}

func (n *ExportStatementNode) Literal() string {
	var parts []string
	for i := range n.Keys {
		parts = append(parts, n.Keys[i]+": "+n.Values[i].Literal())
	}
	return "export { " + strings.Join(parts, ", ") + " }"
}
func (n *ExportStatementNode) Span() diag.Span { return n.Token.Span }
func (n *ExportStatementNode) Statement()      {}

// LoopStatementNode covers all loop forms:
//
//	loop { ... }                          infinite
//	loop as L { ... }                     labelled
//	loop through xs with x { ... }        iteration
//	loop through m with k, v { ... }      two-variable iteration
type LoopStatementNode struct {
	Token    lexer.Token
	Label    string
	Iterable ExpressionNode // nil for the infinite form
	Vars     []string
	Body     *BlockStatementNode
}

func (n *LoopStatementNode) Literal() string {
	head := "loop"
	if n.Label != "" {
		head += " as " + n.Label
	}
	if n.Iterable != nil {
		head += " through " + n.Iterable.Literal()
		if len(n.Vars) > 0 {
			head += " with " + strings.Join(n.Vars, ", ")
		}
	}
	return head + " " + n.Body.Literal()
}
func (n *LoopStatementNode) Span() diag.Span { return n.Token.Span }
func (n *LoopStatementNode) Statement()      {}

// BreakStatementNode is break [LABEL].
type BreakStatementNode struct {
	Token lexer.Token
	Label string
}

func (n *BreakStatementNode) Literal() string {
	if n.Label != "" {
		return "break " + n.Label
	}
	return "break"
}
func (n *BreakStatementNode) Span() diag.Span { return n.Token.Span }
func (n *BreakStatementNode) Statement()      {}

// ContinueStatementNode is continue [LABEL].
type ContinueStatementNode struct {
	Token lexer.Token
	Label string
}

func (n *ContinueStatementNode) Literal() string {
	if n.Label != "" {
		return "continue " + n.Label
	}
	return "continue"
}
func (n *ContinueStatementNode) Span() diag.Span { return n.Token.Span }
func (n *ContinueStatementNode) Statement()      {}

// ReturnStatementNode is return [expr {, expr}]. Multiple values surface
// at the call site as a tuple.
type ReturnStatementNode struct {
	Token  lexer.Token
	Values []ExpressionNode
}

func (n *ReturnStatementNode) Literal() string {
	if len(n.Values) == 0 {
		return "return"
	}
	return "return " + joinLiterals(n.Values, ", ")
}
func (n *ReturnStatementNode) Span() diag.Span { return n.Token.Span }
func (n *ReturnStatementNode) Statement()      {}
