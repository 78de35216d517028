/*
File    : esmix/printer/resolver_printer.go
*/
package printer

import (
	"strconv"

	"github.com/esmix/esmix/parser"
	"github.com/esmix/esmix/scope"
)

// ResolverPrintVisitor renders a program like the base printer and appends
// a "<k>" tag after every printed variable reference, where k numbers the
// resolved Var by first appearance in the output. Operator Vars are never
// tagged.
type ResolverPrintVisitor struct {
	*PrintVisitor
	Resolution map[int]*scope.Var
	tags       map[*scope.Var]int
}

// NewResolverPrintVisitor creates an annotating printer over a resolution
// map (node id to Var).
func NewResolverPrintVisitor(resolution map[int]*scope.Var) *ResolverPrintVisitor {
	rp := &ResolverPrintVisitor{
		PrintVisitor: NewPrintVisitor(),
		Resolution:   resolution,
		tags:         make(map[*scope.Var]int),
	}
	rp.PrintVisitor.Self = rp
	return rp
}

// PrintResolved renders a program with resolved-variable tags.
func PrintResolved(program *parser.ProgramNode, res *scope.Resolver) string {
	v := NewResolverPrintVisitor(res.Resolution)
	program.Accept(v)
	return v.String()
}

// tag appends the resolved-variable tag of a node, if any.
func (rp *ResolverPrintVisitor) tag(nodeId int) {
	v, ok := rp.Resolution[nodeId]
	if !ok || v.IsOperator {
		return
	}
	k, seen := rp.tags[v]
	if !seen {
		k = len(rp.tags)
		rp.tags[v] = k
	}
	rp.Buf.WriteString("<" + strconv.Itoa(k) + ">")
}

// VisitIdentifierExpressionNode renders the name with its tag.
func (rp *ResolverPrintVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	rp.PrintVisitor.VisitIdentifierExpressionNode(node)
	rp.tag(node.NodeId())
}

// VisitVariableDeclarationNode renders the declared name with its tag.
func (rp *ResolverPrintVisitor) VisitVariableDeclarationNode(node parser.VariableDeclarationNode) {
	rp.PrintVisitor.VisitVariableDeclarationNode(node)
	rp.tag(node.NodeId())
}

// VisitParameterNode renders the parameter name with its tag.
func (rp *ResolverPrintVisitor) VisitParameterNode(node parser.ParameterNode) {
	rp.PrintVisitor.VisitParameterNode(node)
	rp.tag(node.NodeId())
}
