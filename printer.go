package lox

// printer.go renders an AST back to a parenthesized s-expression form, e.g.
// "(+ 1 (* 2 3))". It exists for tests only (parse -> print -> re-parse
// idempotence), not as a CLI feature; the style follows the original
// implementation's ast_printer, also the shape used by the Lox clones in
// the wider retrieval pack.

import (
	"fmt"
	"strings"
)

// printExpr renders a single expression.
func printExpr(e Expr) string {
	switch node := e.(type) {
	case *Literal:
		return stringify(node.Value)
	case *Grouping:
		return parenthesize("group", node.Expression)
	case *Unary:
		return parenthesize(node.Op.Lexeme, node.Operand)
	case *Binary:
		return parenthesize(node.Op.Lexeme, node.Left, node.Right)
	case *Logical:
		return parenthesize(node.Op.Lexeme, node.Left, node.Right)
	case *Variable:
		return node.Name.Lexeme
	case *Assign:
		return parenthesize("= "+node.Name.Lexeme, node.Value)
	case *Call:
		args := make([]Expr, len(node.Args)+1)
		args[0] = node.Callee
		copy(args[1:], node.Args)
		return parenthesize("call", args...)
	default:
		return fmt.Sprintf("<?expr %T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(printExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}

// printStmt renders a single statement, one line (no trailing newline).
func printStmt(s Stmt) string {
	switch node := s.(type) {
	case *ExprStmt:
		return printExpr(node.Expression) + ";"
	case *PrintStmt:
		return "(print " + printExpr(node.Expression) + ")"
	case *VarDecl:
		if node.Initializer == nil {
			return "(var " + node.Name.Lexeme + ")"
		}
		return "(var " + node.Name.Lexeme + " " + printExpr(node.Initializer) + ")"
	case *Block:
		var parts []string
		for _, st := range node.Statements {
			parts = append(parts, printStmt(st))
		}
		return "(block " + strings.Join(parts, " ") + ")"
	case *If:
		if node.Else == nil {
			return "(if " + printExpr(node.Cond) + " " + printStmt(node.Then) + ")"
		}
		return "(if " + printExpr(node.Cond) + " " + printStmt(node.Then) + " " + printStmt(node.Else) + ")"
	case *While:
		return "(while " + printExpr(node.Cond) + " " + printStmt(node.Body) + ")"
	case *Function:
		names := make([]string, len(node.Params))
		for i, p := range node.Params {
			names[i] = p.Lexeme
		}
		return "(fun " + node.Name.Lexeme + " (" + strings.Join(names, " ") + "))"
	case *Return:
		if node.Value == nil {
			return "(return)"
		}
		return "(return " + printExpr(node.Value) + ")"
	default:
		return fmt.Sprintf("<?stmt %T>", s)
	}
}

// printProgram renders a full statement list, one s-expression per
// statement, separated by a single space.
func printProgram(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = printStmt(s)
	}
	return strings.Join(parts, " ")
}
