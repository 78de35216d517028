/*
File    : esmix/main.go
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/esmix/esmix/file"
	"github.com/esmix/esmix/parser"
	"github.com/esmix/esmix/printer"
	"github.com/esmix/esmix/repl"
	"github.com/esmix/esmix/scope"
)

// Version information (set by build flags)
var Version = "0.1.0-dev"

var printResolution bool

var rootCmd = &cobra.Command{
	Use:   "esmix [file]",
	Short: "ECMAScript 5 front end",
	Long: `esmix is an ECMAScript 5 front end: lexer, parser, scope resolver,
and pretty printer.

Given a source file it prints the parsed program back as parenthesized
source text. With --print-resolution every variable occurrence is tagged
<k>, where k numbers its resolved variable descriptor in order of first
appearance in the output. Without a file an
interactive shell is started.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive front-end shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startRepl()
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&printResolution, "print-resolution", false,
		"annotate the output with resolved-variable tags")
	rootCmd.AddCommand(replCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		startRepl()
		return nil
	}

	src, err := file.ReadSource(args[0])
	if err != nil {
		return err
	}

	par := parser.NewParser(src)
	program := par.Parse()
	if par.HasErrors() {
		red := color.New(color.FgRed)
		for _, msg := range par.GetErrors() {
			red.Fprintf(os.Stderr, "%s\n", msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(par.GetErrors()))
	}

	var out string
	if printResolution {
		res := scope.Resolve(program)
		out = printer.PrintResolved(program, res)
	} else {
		out = printer.Print(program)
	}
	return file.WriteOutput(os.Stdout, out)
}

func startRepl() {
	banner := "esmix — ECMAScript 5 front end"
	line := "----------------------------------------"
	r := repl.NewRepl(banner, Version, line, "es> ")
	r.Start(os.Stdin, os.Stdout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
