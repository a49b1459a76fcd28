// Package prompt models the blocking user dialogs as an injected
// capability, so list logic can be tested without a real terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter collects user decisions for destructive or text-entry
// interactions. Implementations block until the user answers.
type Prompter interface {
	// Confirm asks a yes/no question. Only an explicit yes returns true.
	Confirm(message string) bool

	// Input asks for a line of text, showing initial as the current
	// value. ok is false when the user cancels.
	Input(message, initial string) (text string, ok bool)

	// Alert reports a validation failure to the user.
	Alert(message string)
}

// Terminal is a line-oriented Prompter over stdio.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewTerminal creates a Terminal prompter. Questions go to out,
// alerts go to errOut.
func NewTerminal(in io.Reader, out, errOut io.Writer) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// Confirm implements Prompter. Anything but y/yes is a no.
func (t *Terminal) Confirm(message string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", message)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Input implements Prompter. EOF before any input cancels.
func (t *Terminal) Input(message, initial string) (string, bool) {
	if initial != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", message, initial)
	} else {
		fmt.Fprintf(t.out, "%s: ", message)
	}
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true
}

// Alert implements Prompter.
func (t *Terminal) Alert(message string) {
	fmt.Fprintf(t.errOut, "error: %s\n", message)
}

// Auto answers every dialog without asking: confirmations succeed and
// Input returns Text. For surfaces that run their own dialogs.
type Auto struct {
	Text string
}

// Confirm implements Prompter.
func (Auto) Confirm(string) bool { return true }

// Input implements Prompter.
func (a Auto) Input(_, initial string) (string, bool) {
	if a.Text != "" {
		return a.Text, true
	}
	return initial, true
}

// Alert implements Prompter.
func (Auto) Alert(string) {}
