/*
File    : esmix/scope/var.go
*/

// Package scope implements the two-pass scope analysis of the front end.
// A collector pass gathers the declarations of every scope (Program,
// function literals, named function expressions, with statements, catch
// clauses) and flags scopes that call eval; a resolver pass then maps every
// variable reference to a Var descriptor, lazily materializing implicit
// globals and with/eval interceptors. Resolution is total: it always
// produces a Var and never fails.
package scope

// InterceptKind tells which scope form produced an interceptor.
type InterceptKind int

const (
	// WithScope marks an interceptor created inside a with statement.
	WithScope InterceptKind = iota
	// EvalScope marks an interceptor created inside a function whose body
	// calls eval.
	EvalScope
)

// InterceptReason records the intercepting scope of an interceptor Var:
// its kind and the node id of the scope node.
type InterceptReason struct {
	Kind        InterceptKind
	ScopeNodeId int
}

// Var describes one variable of the analyzed program. Many AST nodes share
// the same Var; descriptors live in the resolver's arena and UniqueId is
// the arena index, assigned monotonically.
//
// An interceptor is a Var with a non-nil Intercepted: it stands for an
// indirection through a with or eval-contaminated scope while preserving
// the name's ultimate binding. Reason is meaningful only on interceptors.
type Var struct {
	Name       string
	UniqueId   int
	IsGlobal   bool
	IsImplicit bool
	IsParam    bool
	IsOperator bool

	Intercepted *Var
	Reason      InterceptReason
}

// IsInterceptor reports whether the Var is a with/eval interceptor.
func (v *Var) IsInterceptor() bool {
	return v.Intercepted != nil
}

// OPERATOR_NAMES is the fixed set of operator symbols pre-populated into
// the program scope as global, operator-flagged Vars, in this order. The
// set covers every op string the parser can attach to a prefix, binary, or
// postfix node so that operator references always resolve to an operator
// descriptor.
var OPERATOR_NAMES = []string{
	"prefix+", "prefix-", "prefix++", "prefix--",
	"delete", "void", "typeof",
	"||", "&&", "|", "^", "&",
	"==", "!=", "===", "!==",
	"<", ">", "<=", ">=", "instanceof", "in",
	"<<", ">>", ">>>",
	"+", "-", "*", "/", "%",
	"!", "~", "++", "--",
}
