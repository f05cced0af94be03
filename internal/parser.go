package internal

import (
	"fmt"
)

// parseError unwinds the parser to the enclosing declaration.
type parseError struct {
	err error
}

// parser stores parser data
type parser struct {
	tokens  []*token
	current int

	state *interpreterState
}

const maxFunctionParams = 255

// parse turns tokens into statements. Each declaration is parsed on its own,
// so a malformed one is reported and skipped without losing the rest.
func parse(state *interpreterState, tokens []*token) []stmt {
	p := &parser{
		tokens: tokens,
		state:  state,
	}
	return p.parse()
}

func (p *parser) parse() []stmt {
	stmts := make([]stmt, 0)
	for !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

func (p *parser) declaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return p.fn("function")
	}
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) class() stmt {
	name := p.consume(tkIdentifier, errExpectClassName)

	var superclass *variableExpr
	if p.match(tkLess) {
		superclass = &variableExpr{
			name: p.consume(tkIdentifier, errExpectSuperclassName),
		}
	}

	p.consume(tkLeftBrace, errExpectClassBody)

	methods := make([]*fnStmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.fn("method"))
	}

	p.consume(tkRightBrace, errExpectClassBodyEnd)

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

func (p *parser) fn(kind string) *fnStmt {
	name := p.consume(tkIdentifier, fmt.Errorf("Expect %s name.", kind))

	p.consume(tkLeftParen, fmt.Errorf("Expect '(' after %s name.", kind))

	params := make([]*token, 0)
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.state.tokenError(errMaxParameters, p.peek())
			}
			params = append(params, p.consume(tkIdentifier, errExpectParamName))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errExpectParamsEnd)

	p.consume(tkLeftBrace, fmt.Errorf("Expect '{' before %s body.", kind))

	return &fnStmt{
		name:   name,
		params: params,
		body:   p.block(),
	}
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(tkIdentifier, errExpectVariableName)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}

	p.consume(tkSemicolon, errExpectSemicolonVar)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop desugars into the equivalent while loop:
//
//	{ init; while (cond) { body; increment; } }
func (p *parser) forLoop() stmt {
	p.consume(tkLeftParen, errExpectParenFor)

	var init stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectSemicolonCondition)

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errExpectParenForEnd)

	body := p.statement()

	if inc != nil {
		body = &blockStmt{
			stmts: []stmt{body, &exprStmt{expression: inc}},
		}
	}

	if cond == nil {
		cond = &literalExpr{value: true}
	}
	body = &whileStmt{
		condition: cond,
		body:      body,
	}

	if init != nil {
		body = &blockStmt{
			stmts: []stmt{init, body},
		}
	}

	return body
}

func (p *parser) ifStmt() stmt {
	p.consume(tkLeftParen, errExpectParenIf)
	cond := p.expression()
	p.consume(tkRightParen, errExpectParenIfEnd)

	st := &ifStmt{
		condition:  cond,
		thenBranch: p.statement(),
	}
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}
	return st
}

func (p *parser) printStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectSemicolonValue)
	return &printStmt{expression: value}
}

func (p *parser) ret() stmt {
	keyword := p.previous()
	var value expr
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectSemicolonReturn)
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() stmt {
	p.consume(tkLeftParen, errExpectParenWhile)
	cond := p.expression()
	p.consume(tkRightParen, errExpectParenCondition)
	return &whileStmt{
		condition: cond,
		body:      p.statement(),
	}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightBrace, errExpectBlockEnd)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectSemicolonExpr)
	return &exprStmt{expression: expr}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.or()
	if p.match(tkEqual) {
		equals := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		} else if get, isGet := expr.(*getExpr); isGet {
			return &setExpr{
				object: get.object,
				name:   get.name,
				value:  value,
			}
		}

		p.state.tokenError(errInvalidAssignment, equals)
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() expr {
	expr := p.factor()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectProp)
			expr = &getExpr{
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee expr) expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.state.tokenError(errMaxArguments, p.peek())
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errExpectArgumentsEnd)
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() expr {
	if p.match(tkFalse) {
		return &literalExpr{value: false}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkSuper) {
		keyword := p.previous()
		p.consume(tkDot, errExpectSuperDot)
		return &superExpr{
			keyword: keyword,
			method:  p.consume(tkIdentifier, errExpectSuperMethod),
		}
	}
	if p.match(tkThis) {
		return &thisExpr{keyword: p.previous()}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.error(p.peek(), errExpectExpression)
	return nil
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}
	p.error(p.peek(), err)
	return nil
}

// error records err and unwinds to the enclosing declaration.
func (p *parser) error(tk *token, err error) {
	p.state.tokenError(err, tk)
	panic(parseError{err: err})
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return p.tokens[p.current]
}

func (p *parser) previous() *token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		default:
		}

		p.advance()
	}
}
