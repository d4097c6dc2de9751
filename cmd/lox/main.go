package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/peterh/liner"

	"github.com/riverfall/lox"
)

const (
	appName     = "lox"
	historyFile = ".lox_history"
	prompt      = "> "
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		usage()
		os.Exit(0)
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "%s: expected at most one file argument\n", appName)
		usage()
		os.Exit(2)
	}

	log := lox.NewLogger(os.Stderr)

	if len(args) == 1 {
		os.Exit(runFile(args[0], log))
		return
	}
	os.Exit(runPrompt(log))
}

func usage() {
	fmt.Printf(`%s — a Lox interpreter

Usage:
  %s            Start the interactive REPL.
  %s <script>   Run a Lox source file.
  %s -h|--help  Print this message.
`, appName, appName, appName, appName)
}

func runFile(path string, log *lox.Logger) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	defer f.Close()

	src, err := lox.ReadFileEchoed(f, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: error reading %s: %v\n", appName, path, err)
		return 1
	}

	in := lox.NewInterpreter(os.Stdout, log)
	if ok := lox.Run(in, os.Stderr, src); !ok {
		return 65 // conventional sysexits.h EX_DATAERR for a malformed program
	}
	return 0
}

// runPrompt drives the interactive REPL. It prefers github.com/peterh/liner
// for line editing and a persisted history file; when stdin isn't an
// interactive terminal (piped input, test harnesses), it falls back to a
// plain bufio.Reader so the exact "> "-prefixed transcript is still
// reproducible without a real tty.
func runPrompt(log *lox.Logger) int {
	sess := lox.NewSession(os.Stdout, log)

	if !isTerminal(os.Stdin) {
		return runPromptPiped(sess)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		var buf string
		for {
			p := prompt
			if buf != "" {
				p = "... "
			}
			line, err := ln.Prompt(p)
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return 0
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				buf = ""
				continue
			}
			if err != nil {
				return 0
			}
			if buf != "" {
				buf += "\n"
			}
			buf += line
			if !sess.EvalLine(os.Stderr, buf) {
				break
			}
		}
		ln.AppendHistory(buf)
	}
}

func runPromptPiped(sess *lox.Session) int {
	r := bufio.NewReader(os.Stdin)
	var buf string
	for {
		line, err := lox.PromptLine(r, os.Stdout)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		if buf != "" {
			buf += "\n"
		}
		buf += line
		if !sess.EvalLine(os.Stderr, buf) {
			buf = ""
		}
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
