// File : cmd/rant/main.go
//
// Package main is the command-line entry point. It mirrors the
// teacher's main/main.go dual-mode shape (run a file, or fall into an
// interactive REPL) but parses flags through github.com/teris-io/cli
// instead of inspecting os.Args by hand, and drops the teacher's
// ad hoc TCP "server" mode: it has no counterpart anywhere in this
// program's external-interface surface (spec §6 names a library API
// and a CLI, nothing network-facing).
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/teris-io/cli"

	"github.com/textgen/rant"
	"github.com/textgen/rant/repl"
)

const (
	version = "v0.1.0"
	author  = "textgen/rant"
	license = "MIT"
	prompt  = "rant >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
  ____    _    _   _ _____
 |  _ \  / \  | \ | |_   _|
 | |_) |/ _ \ |  \| | | |
 |  _ </ ___ \| |\  | | |
 |_| \_\_/   \_\_| \_| |_|
`
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

var description = strings.ReplaceAll(`
rant renders randomized text templates: weighted choices, repeaters,
variables, and user- or native-defined functions compiled down to a
small bytecode-free tree-walking VM. Run it with a source file to
render once and exit, or with no arguments to open an interactive
session.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("source", "Template source file to compile and run").AsOptional().WithType(cli.TypeString)).
	WithOption(cli.NewOption("seed", "Seed for the deterministic RNG stream (default: 0)").WithType(cli.TypeString)).
	WithOption(cli.NewOption("debug", "Embed source positions in the compiled program").WithType(cli.TypeBool)).
	WithOption(cli.NewOption("require", "Enable the require native, loading sources relative to the working directory").WithType(cli.TypeBool)).
	WithAction(run)

func main() {
	os.Exit(app.Run(os.Args, os.Stdout))
}

func run(args []string, options map[string]string) int {
	opts := []rant.Option{}

	if raw, ok := options["seed"]; ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] --seed must be an unsigned integer: %s\n", err)
			return -1
		}
		opts = append(opts, rant.WithSeed(seed))
	}
	if _, enabled := options["debug"]; enabled {
		opts = append(opts, rant.WithDebug(true))
	}
	if _, enabled := options["require"]; enabled {
		opts = append(opts, rant.WithRequire(nil))
	}

	if len(args) > 0 {
		opts = append(opts, rant.WithProgramName(args[0]), rant.WithProgramPath(args[0]))
		return runFile(rant.New(opts...), args[0])
	}

	repler := repl.NewRepl(banner, version, author, line, license, prompt, rant.New(opts...))
	repler.Start(os.Stdin, os.Stdout)
	return 0
}

// runFile compiles and runs a single source file, matching the
// teacher's runFile/executeFileWithRecovery split: parse errors and
// runtime errors are both reported and exit non-zero, success prints
// the rendered output once.
func runFile(engine *rant.Engine, path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %s\n", path, err)
		return 1
	}

	prog, err := engine.Compile(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[COMPILE ERROR] %s\n", err)
		return 1
	}

	out, err := engine.Run(prog)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", err)
		return 1
	}

	fmt.Fprint(os.Stdout, out)
	if !strings.HasSuffix(out, "\n") {
		yellowColor.Fprintln(os.Stdout)
	}
	return 0
}
