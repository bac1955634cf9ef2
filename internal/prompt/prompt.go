// Package prompt collects the interactive inputs of a run: the posting
// date, the starting reference suffix, and the final write confirmation.
// Reader and writer are injected so the command layer wires stdin/stdout
// and tests wire buffers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/disciplemakers/VIS-to-FA/internal/dateutils"
)

// Prompter reads line-oriented answers from in and echoes questions to out.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New builds a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// PostingDate asks for the run's posting date until a valid MM/DD/YYYY
// value is entered.
func (p *Prompter) PostingDate() (string, error) {
	for {
		answer, err := p.ask("Posting date (MM/DD/YYYY): ")
		if err != nil {
			return "", err
		}
		if verr := dateutils.ValidatePostingDate(answer); verr != nil {
			fmt.Fprintf(p.out, "%v\n", verr)
			continue
		}
		return answer, nil
	}
}

// ReferenceStart asks for the first reference-number suffix until a
// positive integer is entered.
func (p *Prompter) ReferenceStart() (int, error) {
	for {
		answer, err := p.ask("Starting reference number: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n < 1 {
			fmt.Fprintf(p.out, "reference start %q must be a positive integer\n", answer)
			continue
		}
		return n, nil
	}
}

// Confirm asks a yes/no question; only "y" or "yes" (case-insensitive)
// counts as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.ask(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
