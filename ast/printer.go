/*
File   : langfront/ast/printer.go
Package: ast

Printer renders an AST back into source text, adapting the teacher's
PrintingVisitor (main/print_visitor.go) from a debug tree dump into a
re-parseable printer: the round-trip test in ast_test.go feeds Printer's
output back through parser.Parse and asserts that printing the re-parsed
tree reproduces the same text (spec.md §8's "pretty-printing an AST and
re-parsing yields a structurally equal AST").
*/
package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Printer is a Visitor that serializes the tree it walks to source text.
type Printer struct {
	buf bytes.Buffer
}

// Print renders program as source text.
func Print(program *Program) string {
	p := &Printer{}
	p.VisitProgram(program)
	return p.buf.String()
}

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) VisitProgram(n *Program) {
	for _, stmt := range n.Statements {
		stmt.Accept(p)
		p.write("\n")
	}
}

func (p *Printer) VisitVariableDeclaration(n *VariableDeclaration) {
	p.write(n.TypeName)
	p.write(" ")
	parts := make([]string, len(n.Declarators))
	for i, d := range n.Declarators {
		if d.Value != nil {
			var v Printer
			d.Value.Accept(&v)
			parts[i] = d.Name + " = " + v.buf.String()
		} else {
			parts[i] = d.Name
		}
	}
	p.write(strings.Join(parts, ", "))
	p.write(";")
}

func (p *Printer) VisitFunctionDeclaration(n *FunctionDeclaration) {
	p.write(n.Kind.String())
	p.write(" ")
	if n.Kind == Function {
		p.write(n.ReturnType)
		p.write(" ")
	}
	p.write(n.Name)
	p.write("(")
	parts := make([]string, len(n.Params))
	for i, param := range n.Params {
		parts[i] = param.Type + " " + param.Name
		if param.Default != nil {
			var v Printer
			param.Default.Accept(&v)
			parts[i] += " = " + v.buf.String()
		}
	}
	p.write(strings.Join(parts, ", "))
	p.write(") ")
	n.Body.Accept(p)
}

func (p *Printer) VisitClassDeclaration(n *ClassDeclaration) {
	p.write("class ")
	p.write(n.Name)
	if n.Superclass != "" {
		p.write(" extends ")
		p.write(n.Superclass)
	}
	p.write(" {\n")
	for _, m := range n.Members {
		m.Accept(p)
		p.write("\n")
	}
	p.write("}")
}

func (p *Printer) VisitIfStatement(n *IfStatement) {
	p.write("if (")
	n.Condition.Accept(p)
	p.write(") ")
	n.Consequence.Accept(p)
	if n.Alternative != nil {
		p.write(" else ")
		n.Alternative.Accept(p)
	}
}

func (p *Printer) VisitForStatement(n *ForStatement) {
	p.write("for (")
	if n.Init != nil {
		n.Init.Accept(p)
	} else {
		p.write(";")
	}
	p.write(" ")
	if n.Condition != nil {
		n.Condition.Accept(p)
	}
	p.write("; ")
	if n.Update != nil {
		n.Update.Accept(p)
	}
	p.write(") ")
	n.Body.Accept(p)
}

func (p *Printer) VisitForEachStatement(n *ForEachStatement) {
	p.write("for (")
	p.write(n.Binding.Name)
	p.write(" ")
	p.write(n.Kind.String())
	p.write(" ")
	n.Iterable.Accept(p)
	p.write(") ")
	n.Body.Accept(p)
}

func (p *Printer) VisitWhileStatement(n *WhileStatement) {
	p.write("while (")
	n.Condition.Accept(p)
	p.write(") ")
	n.Body.Accept(p)
}

func (p *Printer) VisitSwitchStatement(n *SwitchStatement) {
	p.write("switch (")
	n.Expression.Accept(p)
	p.write(") {\n")
	for _, c := range n.Cases {
		p.write("case ")
		c.Value.Accept(p)
		p.write(":\n")
		for _, s := range c.Body {
			s.Accept(p)
			p.write("\n")
		}
	}
	if n.Default != nil {
		p.write("default:\n")
		for _, s := range n.Default {
			s.Accept(p)
			p.write("\n")
		}
	}
	p.write("}")
}

func (p *Printer) VisitReturnStatement(n *ReturnStatement) {
	p.write("return")
	if n.Value != nil {
		p.write(" ")
		n.Value.Accept(p)
	}
	p.write(";")
}

func (p *Printer) VisitBreakStatement(n *BreakStatement)       { p.write("break;") }
func (p *Printer) VisitContinueStatement(n *ContinueStatement) { p.write("continue;") }

func (p *Printer) VisitBlockStatement(n *BlockStatement) {
	p.write("{\n")
	for _, s := range n.Statements {
		s.Accept(p)
		p.write("\n")
	}
	p.write("}")
}

func (p *Printer) VisitExpressionStatement(n *ExpressionStatement) {
	n.Expr.Accept(p)
	p.write(";")
}

func (p *Printer) VisitIntLiteral(n *IntLiteral) { p.write(strconv.FormatInt(n.Value, 10)) }
func (p *Printer) VisitFloatLiteral(n *FloatLiteral) {
	p.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
}
func (p *Printer) VisitStringLiteral(n *StringLiteral) {
	p.write(`"`)
	p.write(n.Value)
	p.write(`"`)
}
func (p *Printer) VisitBooleanLiteral(n *BooleanLiteral) {
	p.write(strconv.FormatBool(n.Value))
}
func (p *Printer) VisitNullLiteral(n *NullLiteral)   { p.write("null") }
func (p *Printer) VisitIdentifier(n *Identifier)     { p.write(n.Name) }

func (p *Printer) VisitPrefixExpression(n *PrefixExpression) {
	p.write(n.Op)
	n.Right.Accept(p)
}

func (p *Printer) VisitInfixExpression(n *InfixExpression) {
	p.write("(")
	n.Left.Accept(p)
	p.write(fmt.Sprintf(" %s ", n.Op))
	n.Right.Accept(p)
	p.write(")")
}

func (p *Printer) VisitCallExpression(n *CallExpression) {
	n.Function.Accept(p)
	p.write("(")
	for i, a := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(p)
	}
	p.write(")")
}

func (p *Printer) VisitCastExpression(n *CastExpression) {
	p.write("(")
	p.write(n.TargetType)
	p.write(")")
	n.Expr.Accept(p)
}

func (p *Printer) VisitIndexExpression(n *IndexExpression) {
	n.Left.Accept(p)
	p.write("[")
	n.Index.Accept(p)
	p.write("]")
}

func (p *Printer) VisitMemberExpression(n *MemberExpression) {
	n.Left.Accept(p)
	p.write(".")
	p.write(n.Property)
}

func (p *Printer) VisitAssignmentExpression(n *AssignmentExpression) {
	n.Left.Accept(p)
	p.write(" = ")
	n.Right.Accept(p)
}

func (p *Printer) VisitArrayLiteral(n *ArrayLiteral) {
	p.write("[")
	for i, e := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		e.Accept(p)
	}
	p.write("]")
}

func (p *Printer) VisitObjectLiteral(n *ObjectLiteral) {
	p.write("{")
	for i, pair := range n.Pairs {
		if i > 0 {
			p.write(", ")
		}
		pair.Key.Accept(p)
		p.write(": ")
		pair.Value.Accept(p)
	}
	p.write("}")
}

func (p *Printer) VisitNewExpression(n *NewExpression) {
	p.write("new ")
	p.write(n.Class)
	p.write("(")
	for i, a := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(p)
	}
	p.write(")")
}
