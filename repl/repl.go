/*
File   : langfront/repl/repl.go
Package: repl

Package repl implements the interactive Read-Lex-Parse-Normalize-Print
loop, adapted from the teacher's repl/repl.go. The teacher's REPL
parses then *evaluates* each line against a live eval.Evaluator; this one
has no evaluator to hand off to (evaluation is out of scope, spec.md §1
Non-goals), so each line is lexed, parsed, and normalized, then the
resulting AST is printed — using the same chzyer/readline + fatih/color
stack, banner shape, history, and panic-recovery discipline the teacher
uses.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/normalizer"
	"github.com/akashmaji946/langfront/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching the teacher's palette:
// - blueColor: decorative separators
// - yellowColor: successful output (the printed, normalized AST)
// - redColor: diagnostics
// - greenColor: banner
// - cyanColor: instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display configuration for an interactive session, the
// same fields as the teacher's Repl struct.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl instance with the given display configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner, following the teacher's
// PrintBannerInfo layout and color scheme exactly.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to langfront!")
	cyanColor.Fprintf(writer, "%s\n", "Type a snippet and press enter to see its normalized AST")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until '.exit', EOF, or a readline error.
func (r *Repl) Start(writer io.Writer) {
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

// executeWithRecovery lexes, parses, and normalizes one line, printing
// either the normalized AST or the accumulated diagnostics. It recovers
// from panics the same way the teacher's executeWithRecovery does, so a
// malformed line never ends the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	program, diags := parser.Parse(line)
	if len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(writer, "%s\n", d.Error())
		}
		return
	}

	normalized := normalizer.Normalize(program)
	yellowColor.Fprintf(writer, "%s\n", ast.Print(normalized))
}
