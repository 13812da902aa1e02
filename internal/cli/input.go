/*
Package cli
File: input.go
Description:
    Terminal input with validation. All re-prompting on bad input lives here;
    the game core only ever sees values that already parsed.
*/

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads validated values from the terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps an input stream and an output stream for prompts.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line asks until a non-empty line is entered.
func (p *Prompter) Line(prompt string) string {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			return ""
		}
		line := strings.TrimSpace(p.in.Text())
		if line != "" {
			return line
		}
	}
}

// Number asks until an integer in [min, max] is entered.
func (p *Prompter) Number(prompt string, min, max int) int {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			return min
		}
		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintln(p.out, "Wrong input - input not numeric! Try again.")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "Value should be between %d and %d. Try again.\n", min, max)
			continue
		}
		return n
	}
}

// Choice asks until the entered line is one of the given options.
func (p *Prompter) Choice(prompt string, options []string) string {
	for {
		line := p.Line(prompt)
		for _, opt := range options {
			if line == opt {
				return line
			}
		}
		fmt.Fprintf(p.out, "%q is not one of %v. Try again.\n", line, options)
	}
}
