package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/fatih/color"

	"github.com/ferrith/argline"
	"github.com/ferrith/argline/util"
)

const historyLimit = 100

// repl reads lines, parses each with the configured parser and prints the
// classified arguments. Lines starting with ':' are repl commands.
type repl struct {
	parser  *argline.Parser[string, string]
	history deque.Deque
	out     io.Writer
	prompt  bool
}

func runRepl(flags *appFlags, in io.Reader, out io.Writer) error {
	parser, err := buildParser(flags)
	if err != nil {
		return err
	}

	r := &repl{
		parser: parser,
		out:    out,
		prompt: util.IsInteractive(),
	}
	if !r.prompt {
		slog.Debug("stdin or stdout is not a terminal, reading lines without prompting")
	}
	return r.run(in)
}

func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if r.prompt {
			fmt.Fprint(r.out, "argline> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := r.command(line); quit {
				return nil
			}
			continue
		}
		r.remember(line)
		r.parseAndPrint(line)
	}
	return scanner.Err()
}

func (r *repl) command(line string) (quit bool) {
	switch line {
	case ":quit", ":q", ":exit":
		return true
	case ":history":
		r.printHistory()
	case ":help":
		fmt.Fprintln(r.out, "enter a command line to parse it")
		fmt.Fprintln(r.out, ":history  show previously parsed lines")
		fmt.Fprintln(r.out, ":quit     leave the repl")
	default:
		fmt.Fprintf(r.out, "unknown command %s (try :help)\n", line)
	}
	return false
}

func (r *repl) remember(line string) {
	r.history.PushBack(line)
	for r.history.Len() > historyLimit {
		r.history.PopFront()
	}
}

func (r *repl) printHistory() {
	for i := 0; i < r.history.Len(); i++ {
		if line, ok := r.history.PopFront(); ok {
			fmt.Fprintf(r.out, "%3d  %s\n", i+1, line)
			r.history.PushBack(line)
		}
	}
}

func (r *repl) parseAndPrint(line string) {
	args, err := r.parser.ParseLine(line)
	if err != nil {
		color.New(color.FgRed).Fprintf(r.out, "error: %v\n", err)
		return
	}
	printArgs(r.out, args)
}
