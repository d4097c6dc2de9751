package lox

// errors.go defines the scanner/parser error types and the formatting that
// turns them into the diagnostic lines the CLI writes to stderr. Unlike the
// teacher's caret-snippet renderer, these formats are fixed wire contracts
// (exact text other tooling or tests may match against), so there is no
// "pretty" rendering layer here — just the two formats the interpreter is
// required to produce: "[line N] Error[ at <where>]: <message>" for
// lexical/syntax errors, and "<message>\n[line N]" for runtime errors
// (RuntimeError itself lives in interpreter.go, next to the code that
// raises it).

import "fmt"

// LexError is a malformed token, an unterminated string, or an unterminated
// block comment. The scanner reports it and resumes at the next character.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return reportLine(e.Line, "", e.Message)
}

// ParseError is a token sequence that doesn't match the grammar. Where is
// the quoted offending lexeme ("end" if the error token was Eof); the parser
// reports it and synchronizes before continuing.
type ParseError struct {
	Line    int
	Where   string
	Message string
}

func (e *ParseError) Error() string {
	return reportLine(e.Line, e.Where, e.Message)
}

func reportLine(line int, where, message string) string {
	if where == "" {
		return fmt.Sprintf("[line %d] Error: %s", line, message)
	}
	return fmt.Sprintf("[line %d] Error at %s: %s", line, where, message)
}
