package lox

import "fmt"

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	// Single-character tokens.
	LeftParen TokenType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	For
	Fun
	IfTok
	Nil
	Or
	Print
	ReturnTok
	Super
	This
	True
	Var
	WhileTok

	Eof
)

var tokenNames = map[TokenType]string{
	LeftParen: "LeftParen", RightParen: "RightParen",
	LeftBrace: "LeftBrace", RightBrace: "RightBrace",
	Comma: "Comma", Dot: "Dot", Minus: "Minus", Plus: "Plus",
	Semicolon: "Semicolon", Slash: "Slash", Star: "Star",
	Bang: "Bang", BangEqual: "BangEqual",
	Equal: "Equal", EqualEqual: "EqualEqual",
	Greater: "Greater", GreaterEqual: "GreaterEqual",
	Less: "Less", LessEqual: "LessEqual",
	Identifier: "Identifier", String: "String", Number: "Number",
	And: "And", Class: "Class", Else: "Else", False: "False",
	For: "For", Fun: "Fun", IfTok: "If", Nil: "Nil", Or: "Or",
	Print: "Print", ReturnTok: "Return", Super: "Super", This: "This",
	True: "True", Var: "Var", WhileTok: "While", Eof: "Eof",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps reserved words to their token type. Anything not in this
// table that matches an identifier's lexical shape is an Identifier.
var keywords = map[string]TokenType{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     IfTok,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": ReturnTok,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  WhileTok,
}

// Token is a single lexical unit with its exact source text, decoded
// literal (when applicable), and 1-based source line.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // nil, float64, string, or bool depending on Type
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
}
