package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = [...]string{
	tkEOF:          "EOF",
	tkLeftParen:    "LEFT_PAREN",
	tkRightParen:   "RIGHT_PAREN",
	tkLeftBrace:    "LEFT_BRACE",
	tkRightBrace:   "RIGHT_BRACE",
	tkComma:        "COMMA",
	tkDot:          "DOT",
	tkMinus:        "MINUS",
	tkPlus:         "PLUS",
	tkSemicolon:    "SEMICOLON",
	tkSlash:        "SLASH",
	tkStar:         "STAR",
	tkBang:         "BANG",
	tkBangEqual:    "BANG_EQUAL",
	tkEqual:        "EQUAL",
	tkEqualEqual:   "EQUAL_EQUAL",
	tkGreater:      "GREATER",
	tkGreaterEqual: "GREATER_EQUAL",
	tkLess:         "LESS",
	tkLessEqual:    "LESS_EQUAL",
	tkIdentifier:   "IDENTIFIER",
	tkString:       "STRING",
	tkNumber:       "NUMBER",
	tkAnd:          "AND",
	tkClass:        "CLASS",
	tkElse:         "ELSE",
	tkFalse:        "FALSE",
	tkFun:          "FUN",
	tkFor:          "FOR",
	tkIf:           "IF",
	tkNil:          "NIL",
	tkOr:           "OR",
	tkPrint:        "PRINT",
	tkReturn:       "RETURN",
	tkSuper:        "SUPER",
	tkThis:         "THIS",
	tkTrue:         "TRUE",
	tkVar:          "VAR",
	tkWhile:        "WHILE",
}

func (t tokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"fun":    tkFun,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	return fmt.Sprintf("%s %s %v", t.token, t.lexeme, t.literal)
}
