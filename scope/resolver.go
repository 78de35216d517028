/*
File    : esmix/scope/resolver.go
*/
package scope

import (
	"github.com/esmix/esmix/parser"
)

// scopeKind classifies the entries of the resolver's scope stack.
type scopeKind int

const (
	programScope scopeKind = iota
	funScope
	namedFunctionScope
	withScope
	catchScope
)

// scopeEntry is one frame of the resolver's scope stack.
type scopeEntry struct {
	nodeId int
	kind   scopeKind
}

// resolverVisitor is the second pass: it walks the tree with a stack of
// scopes and resolves every variable and operator reference against the
// collected declaration maps, from innermost to outermost. Misses through
// a with or eval-contaminated scope synthesize a shared interceptor; a
// miss at the program scope synthesizes an implicit global. The walk
// mirrors the collector's structural order, so descriptor creation is a
// deterministic function of the input.
type resolverVisitor struct {
	parser.DefaultVisitor
	res   *Resolver
	stack []scopeEntry
}

// push enters a scope for the duration of fn.
func (r *resolverVisitor) push(nodeId int, kind scopeKind, fn func()) {
	r.stack = append(r.stack, scopeEntry{nodeId: nodeId, kind: kind})
	fn()
	r.stack = r.stack[:len(r.stack)-1]
}

// resolve maps a name to its Var, searching the scope stack from the entry
// at depth down to the program scope. It is total: every name resolves.
func (r *resolverVisitor) resolve(name string, depth int) *Var {
	entry := r.stack[depth]
	m := r.res.scopeMap(entry.nodeId)
	if v, ok := m[name]; ok {
		return v
	}
	if entry.kind == programScope {
		v := r.res.allocVar(name)
		v.IsGlobal = true
		v.IsImplicit = true
		m[name] = v
		return v
	}
	outer := r.resolve(name, depth-1)
	if entry.kind == withScope || r.res.ScopesContainingEval[entry.nodeId] {
		v := r.res.allocVar(name)
		v.Intercepted = outer
		kind := EvalScope
		if entry.kind == withScope {
			kind = WithScope
		}
		v.Reason = InterceptReason{Kind: kind, ScopeNodeId: entry.nodeId}
		m[name] = v
		return v
	}
	return outer
}

// record resolves a name in the innermost scope and binds the node to the
// result.
func (r *resolverVisitor) record(nodeId int, name string) {
	r.res.Resolution[nodeId] = r.resolve(name, len(r.stack)-1)
}

func (r *resolverVisitor) VisitProgramNode(node parser.ProgramNode) {
	r.push(node.NodeId(), programScope, func() {
		r.DefaultVisitor.VisitProgramNode(node)
	})
}

func (r *resolverVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	r.record(node.NodeId(), node.Name)
}

func (r *resolverVisitor) VisitVariableDeclarationNode(node parser.VariableDeclarationNode) {
	r.record(node.NodeId(), node.Name)
}

func (r *resolverVisitor) VisitParameterNode(node parser.ParameterNode) {
	r.record(node.NodeId(), node.Name)
}

func (r *resolverVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	r.record(node.NodeId(), node.Operator)
	r.DefaultVisitor.VisitBinaryExpressionNode(node)
}

func (r *resolverVisitor) VisitPrefixExpressionNode(node parser.PrefixExpressionNode) {
	r.record(node.NodeId(), node.Operator)
	r.DefaultVisitor.VisitPrefixExpressionNode(node)
}

func (r *resolverVisitor) VisitPostfixExpressionNode(node parser.PostfixExpressionNode) {
	r.record(node.NodeId(), node.Operator)
	r.DefaultVisitor.VisitPostfixExpressionNode(node)
}

func (r *resolverVisitor) VisitFunctionLiteralNode(node parser.FunctionLiteralNode) {
	r.push(node.NodeId(), funScope, func() {
		r.DefaultVisitor.VisitFunctionLiteralNode(node)
	})
}

func (r *resolverVisitor) VisitNamedFunctionExpressionNode(node parser.NamedFunctionExpressionNode) {
	r.push(node.NodeId(), namedFunctionScope, func() {
		r.DefaultVisitor.VisitNamedFunctionExpressionNode(node)
	})
}

func (r *resolverVisitor) VisitWithStatementNode(node parser.WithStatementNode) {
	// The object expression resolves in the enclosing scope; only the body
	// is inside the with scope.
	node.Object.Accept(r.Self)
	r.push(node.NodeId(), withScope, func() {
		node.Body.Accept(r.Self)
	})
}

func (r *resolverVisitor) VisitCatchClauseNode(node parser.CatchClauseNode) {
	r.push(node.NodeId(), catchScope, func() {
		r.DefaultVisitor.VisitCatchClauseNode(node)
	})
}
