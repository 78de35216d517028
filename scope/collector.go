/*
File    : esmix/scope/collector.go
*/
package scope

import (
	"github.com/esmix/esmix/parser"
)

// Resolver holds the result of scope analysis.
//
// Fields:
//   - Vars: arena of all Var descriptors in creation order; a Var's
//     UniqueId is its arena index
//   - DeclaredVars: per-scope name-to-Var maps, keyed by the scope node's id
//   - ScopesContainingEval: function-like scopes whose body calls eval
//   - Resolution: node id of every variable and operator reference to its
//     resolved Var
type Resolver struct {
	Vars                 []*Var
	DeclaredVars         map[int]map[string]*Var
	ScopesContainingEval map[int]bool
	Resolution           map[int]*Var
}

// Resolve runs both analysis passes over a parsed program and returns the
// filled-in Resolver. The program must come from a successful parse.
func Resolve(program *parser.ProgramNode) *Resolver {
	res := &Resolver{
		Vars:                 make([]*Var, 0),
		DeclaredVars:         make(map[int]map[string]*Var),
		ScopesContainingEval: make(map[int]bool),
		Resolution:           make(map[int]*Var),
	}

	coll := &collector{res: res}
	coll.Self = coll
	program.Accept(coll)

	rv := &resolverVisitor{res: res}
	rv.Self = rv
	program.Accept(rv)

	return res
}

// allocVar appends a fresh Var to the arena, assigning the next UniqueId.
func (res *Resolver) allocVar(name string) *Var {
	v := &Var{Name: name, UniqueId: len(res.Vars)}
	res.Vars = append(res.Vars, v)
	return v
}

// scopeMap returns the declared-vars map of a scope node, creating it on
// first use.
func (res *Resolver) scopeMap(scopeId int) map[string]*Var {
	m, ok := res.DeclaredVars[scopeId]
	if !ok {
		m = make(map[string]*Var)
		res.DeclaredVars[scopeId] = m
	}
	return m
}

// collector is the first pass: it walks the tree, maintaining the current
// function-like scope, and records every declaration. With and catch
// scopes get maps of their own but do not change the current scope, so
// var declarations inside them flow to the enclosing function as the
// language requires; the catch map holds only the exception parameter.
type collector struct {
	parser.DefaultVisitor
	res          *Resolver
	programId    int
	currentScope int
}

// declare inserts a name into a scope map unless it is already present, so
// repeated declarations of a name share one Var.
func (c *collector) declare(scopeId int, name string, build func() *Var) {
	m := c.res.scopeMap(scopeId)
	if _, ok := m[name]; !ok {
		m[name] = build()
	}
}

func (c *collector) VisitProgramNode(node parser.ProgramNode) {
	c.programId = node.NodeId()
	c.currentScope = node.NodeId()
	m := c.res.scopeMap(node.NodeId())
	for _, name := range OPERATOR_NAMES {
		v := c.res.allocVar(name)
		v.IsGlobal = true
		v.IsOperator = true
		m[name] = v
	}
	c.DefaultVisitor.VisitProgramNode(node)
}

func (c *collector) VisitVariableDeclarationNode(node parser.VariableDeclarationNode) {
	scopeId := c.currentScope
	c.declare(scopeId, node.Name, func() *Var {
		v := c.res.allocVar(node.Name)
		v.IsGlobal = scopeId == c.programId
		return v
	})
}

func (c *collector) VisitParameterNode(node parser.ParameterNode) {
	c.declare(c.currentScope, node.Name, func() *Var {
		v := c.res.allocVar(node.Name)
		v.IsParam = true
		return v
	})
}

func (c *collector) VisitFunctionLiteralNode(node parser.FunctionLiteralNode) {
	prev := c.currentScope
	c.currentScope = node.NodeId()
	c.declare(node.NodeId(), "this", func() *Var {
		v := c.res.allocVar("this")
		v.IsParam = true
		return v
	})
	c.declare(node.NodeId(), "arguments", func() *Var {
		v := c.res.allocVar("arguments")
		v.IsParam = true
		return v
	})
	c.DefaultVisitor.VisitFunctionLiteralNode(node)
	c.currentScope = prev
}

func (c *collector) VisitNamedFunctionExpressionNode(node parser.NamedFunctionExpressionNode) {
	prev := c.currentScope
	c.currentScope = node.NodeId()
	c.declare(node.NodeId(), "this", func() *Var {
		v := c.res.allocVar("this")
		v.IsParam = true
		return v
	})
	// The name is only visible inside the expression's own scope.
	c.DefaultVisitor.VisitNamedFunctionExpressionNode(node)
	c.currentScope = prev
}

func (c *collector) VisitWithStatementNode(node parser.WithStatementNode) {
	// The with scope starts empty; interceptors are inserted during
	// resolution. The current scope is not reset, so vars declared in the
	// body belong to the enclosing function.
	c.res.scopeMap(node.NodeId())
	c.DefaultVisitor.VisitWithStatementNode(node)
}

func (c *collector) VisitCatchClauseNode(node parser.CatchClauseNode) {
	// Partial scope: only the exception parameter lives in the catch map.
	// The body is walked with the current scope unchanged so nested vars
	// flow to the enclosing function scope.
	c.declare(node.NodeId(), node.Param.Name, func() *Var {
		v := c.res.allocVar(node.Param.Name)
		v.IsParam = true
		return v
	})
	node.Body.Accept(c.Self)
}

func (c *collector) VisitCallExpressionNode(node parser.CallExpressionNode) {
	if target, ok := node.Target.(*parser.IdentifierExpressionNode); ok && target.Name == "eval" {
		c.res.ScopesContainingEval[c.currentScope] = true
	}
	c.DefaultVisitor.VisitCallExpressionNode(node)
}
