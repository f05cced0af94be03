package internal

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
	functionTypeInitializer
	functionTypeMethod
)

type classType int

const (
	classTypeNone classType = iota
	classTypeClass
	classTypeSubclass
)

// resolver computes, for every local variable reference, how many
// environments away its binding lives. It never evaluates anything.
type resolver struct {
	state *interpreterState

	scopes          []map[string]bool
	locals          map[expr]int
	currentFunction functionType
	currentClass    classType
}

// resolve walks stmts and returns the scope distance of every reference it
// could bind locally. References left out are globals.
func resolve(state *interpreterState, stmts []stmt) map[expr]int {
	r := &resolver{
		state:  state,
		locals: make(map[expr]int),
	}
	r.resolveStmts(stmts)
	return r.locals
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	switch s := s.(type) {
	case *blockStmt:
		r.beginScope()
		r.resolveStmts(s.stmts)
		r.endScope()
	case *classStmt:
		r.resolveClass(s)
	case *exprStmt:
		r.resolveExpr(s.expression)
	case *fnStmt:
		r.declare(s.name)
		r.define(s.name)
		r.resolveFunction(s, functionTypeFunction)
	case *ifStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.thenBranch)
		if s.elseBranch != nil {
			r.resolveStmt(s.elseBranch)
		}
	case *printStmt:
		r.resolveExpr(s.expression)
	case *returnStmt:
		if r.currentFunction == functionTypeNone {
			r.state.tokenError(errTopLevelReturn, s.keyword)
		}
		if s.value != nil {
			if r.currentFunction == functionTypeInitializer {
				r.state.tokenError(errInitializerReturn, s.keyword)
			}
			r.resolveExpr(s.value)
		}
	case *varStmt:
		r.declare(s.name)
		if s.initializer != nil {
			r.resolveExpr(s.initializer)
		}
		r.define(s.name)
	case *whileStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.body)
	}
}

func (r *resolver) resolveClass(s *classStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classTypeClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.state.tokenError(errInheritFromSelf, s.superclass.name)
		}
		r.currentClass = classTypeSubclass
		r.resolveExpr(s.superclass)

		r.beginScope()
		r.peekScope()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range s.methods {
		declaration := functionTypeMethod
		if method.name.lexeme == "init" {
			declaration = functionTypeInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()
}

func (r *resolver) resolveFunction(fn *fnStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *resolver) resolveExpr(e expr) {
	switch e := e.(type) {
	case *assignExpr:
		r.resolveExpr(e.value)
		r.resolveLocal(e, e.name)
	case *binaryExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *callExpr:
		r.resolveExpr(e.callee)
		for _, argument := range e.arguments {
			r.resolveExpr(argument)
		}
	case *getExpr:
		r.resolveExpr(e.object)
	case *groupingExpr:
		r.resolveExpr(e.expression)
	case *literalExpr:
	case *logicalExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *setExpr:
		r.resolveExpr(e.value)
		r.resolveExpr(e.object)
	case *superExpr:
		if r.currentClass == classTypeNone {
			r.state.tokenError(errSuperOutsideClass, e.keyword)
		} else if r.currentClass != classTypeSubclass {
			r.state.tokenError(errSuperWithoutSuperclass, e.keyword)
		}
		r.resolveLocal(e, e.keyword)
	case *thisExpr:
		if r.currentClass == classTypeNone {
			r.state.tokenError(errThisOutsideClass, e.keyword)
			return
		}
		r.resolveLocal(e, e.keyword)
	case *unaryExpr:
		r.resolveExpr(e.right)
	case *variableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.peekScope()[e.name.lexeme]; ok && !defined {
				r.state.tokenError(errReadInInitializer, e.name)
			}
		}
		r.resolveLocal(e, e.name)
	}
}

func (r *resolver) resolveLocal(e expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.locals[e] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peekScope()
	if _, ok := scope[name.lexeme]; ok {
		r.state.tokenError(errAlreadyDeclared, name)
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.lexeme] = true
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}
