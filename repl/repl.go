/*
File    : esmix/repl/repl.go

Package repl implements the interactive shell of the esmix front end.
Each input line is lexed, parsed, and pretty-printed back, and also resolved
while variable tags are switched on; the program is never evaluated. The
shell provides:
- immediate feedback on how the front end reads a snippet
- an optional resolver-annotated rendering (toggled with .resolve)
- command history via up/down arrows
- colored diagnostics for lexical and syntax errors

The REPL uses the readline library for line editing and history.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/esmix/esmix/parser"
	"github.com/esmix/esmix/printer"
	"github.com/esmix/esmix/scope"
)

// Color definitions for REPL output:
// - blueColor: separators
// - yellowColor: rendered program text
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive session's configuration.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the front end
	Line    string // Separator line for visual formatting
	Prompt  string // Command prompt shown to the user (e.g. "es> ")

	// resolve selects the resolver-annotated rendering.
	resolve bool
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, line string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "esmix %s — type a statement to see its parse\n", r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Type '.resolve' to toggle variable tags, '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. The loop continues until the user types
// '.exit' or an EOF is read (Ctrl+D).
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
		if line == ".resolve" {
			r.resolve = !r.resolve
			if r.resolve {
				cyanColor.Fprintln(writer, "resolver tags on")
			} else {
				cyanColor.Fprintln(writer, "resolver tags off")
			}
			continue
		}

		rl.SaveHistory(line)
		r.render(writer, line)
	}
}

// render parses one input line and prints the front end's view of it.
// Errors keep the loop alive; the user corrects and retries.
func (r *Repl) render(writer io.Writer, line string) {
	par := parser.NewParser(line)
	program := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	var out string
	if r.resolve {
		res := scope.Resolve(program)
		out = printer.PrintResolved(program, res)
	} else {
		out = printer.Print(program)
	}
	yellowColor.Fprintf(writer, "%s", out)
}
