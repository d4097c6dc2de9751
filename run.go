package lox

// run.go wires the scanner, parser, and interpreter into the two pipelines
// the CLI needs: a whole-source run (file mode) and a single accumulated
// buffer parsed one statement at a time (REPL mode), matching the pipeline
// description: source -> scanner -> parser -> interpreter -> environment.

import (
	"fmt"
	"io"
)

// Run scans, parses, and interprets a complete source string. Lexical and
// syntax errors are reported to stderr and prevent interpretation (a
// program that doesn't parse has nothing well-formed to run); runtime
// errors are reported to stderr without aborting remaining top-level
// statements. Returns true if the source was well-formed enough to run,
// mirroring the teacher's run-command's success/failure convention.
func Run(in *Interpreter, stderr io.Writer, src string) bool {
	lx := NewLexer(src)
	tokens, lexErrs := lx.Scan()
	for _, e := range lexErrs {
		fmt.Fprintln(stderr, e.Error())
	}

	p := NewParser(tokens)
	stmts := p.ParseProgram()
	for _, e := range p.Errors() {
		fmt.Fprintln(stderr, e.Error())
	}

	if len(lexErrs) > 0 || p.HadError() {
		return false
	}

	for _, err := range in.Interpret(stmts) {
		fmt.Fprintln(stderr, err.Error())
	}
	return true
}

// Session holds the state an interactive REPL needs across lines: one
// Interpreter, so top-level bindings persist. The running source buffer of
// a not-yet-complete statement is kept by the caller and passed to EvalLine.
type Session struct {
	in *Interpreter
}

// NewSession creates a REPL session with a fresh global environment.
func NewSession(out io.Writer, log *Logger) *Session {
	return &Session{in: NewInterpreter(out, log)}
}

// EvalLine scans and parses buf (the accumulated, possibly multi-line
// input collected so far) and, if it forms one or more complete
// statements, executes them against the session's persistent environment.
// incomplete is true when the caller should read another line and retry
// rather than report the errors collected so far.
func (s *Session) EvalLine(stderr io.Writer, buf string) (incomplete bool) {
	lx := NewLexer(buf)
	tokens, lexErrs := lx.Scan()
	if isUnterminated(lexErrs) {
		return true
	}

	p := NewParser(tokens)
	stmts := p.ParseProgram()
	if isUnterminatedParse(p.Errors()) {
		return true
	}

	for _, e := range lexErrs {
		fmt.Fprintln(stderr, e.Error())
	}
	for _, e := range p.Errors() {
		fmt.Fprintln(stderr, e.Error())
	}
	if len(lexErrs) > 0 || p.HadError() {
		return false
	}

	for _, err := range s.in.Interpret(stmts) {
		fmt.Fprintln(stderr, err.Error())
	}
	return false
}

// isUnterminated reports whether errs contains only an unterminated
// string/block-comment error at the very end of input — the signal that
// more input, not a report, is what's needed next.
func isUnterminated(errs []error) bool {
	if len(errs) != 1 {
		return false
	}
	le, ok := errs[0].(*LexError)
	return ok && (le.Message == "Unterminated string." || le.Message == "Unterminated block comment.")
}

// isUnterminatedParse reports whether the only parse error is hitting Eof
// where the grammar expected more tokens (an unclosed block, a dangling
// binary operator, etc.) — again, a signal to read another line.
func isUnterminatedParse(errs []error) bool {
	if len(errs) != 1 {
		return false
	}
	pe, ok := errs[0].(*ParseError)
	return ok && pe.Where == "end"
}
