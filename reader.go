package lox

// reader.go echoes input the way the original reader does: a "> " prompt
// before every line, in both REPL and file mode, so a captured transcript
// looks the same regardless of where the input came from. Terminal mode
// prints the prompt before reading; file mode echoes the prompt and the
// line's own text after reading it, with a newline guaranteed even if the
// source file's last line doesn't end in one.

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadFileEchoed reads every line of an io.Reader (typically an open
// file), writing "> " followed by the raw line text to out for each one,
// and returns the concatenated source text.
func ReadFileEchoed(r io.Reader, out io.Writer) (string, error) {
	var src strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Fprintf(out, "> %s\n", line)
		src.WriteString(line)
		src.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return src.String(), nil
}

// PromptLine writes "> " to out, then reads and returns one line from r
// (without its trailing newline). Used as the non-terminal REPL fallback
// when stdin is piped rather than an interactive tty, so piped/test input
// still reproduces the exact echoed transcript a liner-backed terminal
// session would produce.
func PromptLine(r *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "> ")
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}
