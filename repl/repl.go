// File : repl/repl.go
//
// Package repl implements the interactive Read-Eval-Print Loop.
// It mirrors the teacher's repl/repl.go shape (banner, readline-backed
// prompt, colored output, panic recovery around each line) but drives
// a rant.Engine instead of a one-shot parser/evaluator pair, so
// variables, functions, and the RNG stream defined in one line stay
// live for every line after it (spec §6 "a single Engine ... runs many
// programs against one persistent global scope").
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/textgen/rant"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// Engine is reused across every line typed at the prompt, so
	// globals set with `<$x = ...>` and the RNG stream persist for
	// the life of the session.
	Engine *rant.Engine
}

// NewRepl constructs a Repl around a pre-built Engine. Passing the
// Engine in (rather than constructing one inside Start, as the
// teacher does with eval.NewEvaluator) lets the caller apply
// rant.Option values (seed, require, debug) before the session starts.
func NewRepl(banner, version, author, line, license, prompt string, engine *rant.Engine) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		License: license,
		Prompt:  prompt,
		Engine:  engine,
	}
}

// PrintBannerInfo prints the startup banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to rant!")
	cyanColor.Fprintf(writer, "%s\n", "Type a template fragment and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, compile and run it against
// the shared Engine, print the result or error, repeat. reader is
// accepted for parity with the teacher's signature but, like the
// teacher, line editing goes through readline rather than reader
// directly.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery compiles and runs one line against the session
// Engine, recovering from any panic so a single bad line can't kill
// the REPL (teacher's executeWithRecovery does the same around its
// parse/eval pair).
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	prog, err := r.Engine.Compile(line)
	if err != nil {
		redColor.Fprintf(writer, "[COMPILE ERROR] %s\n", err)
		return
	}

	out, err := r.Engine.Run(prog)
	if err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %s\n", err)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", out)
}
