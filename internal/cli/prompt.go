package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Prompter reads interactive answers from the terminal. All prompts
// accept 'q' to cancel and re-ask on invalid input; the pipeline behind
// them only ever sees validated values.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	useColor bool
}

// NewPrompter creates a prompter on stdin/stdout with color when stdout
// is a terminal.
func NewPrompter() *Prompter {
	return &Prompter{
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		useColor: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewPrompterIO creates a prompter on explicit streams (used by tests).
func NewPrompterIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) color(code, s string) string {
	if !p.useColor {
		return s
	}
	return code + s + colorReset
}

// readLine returns the next trimmed input line, ok=false on EOF.
func (p *Prompter) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// Choose shows a numbered 1..N menu and returns the selected option.
// ok=false means the user cancelled (or input ended).
func (p *Prompter) Choose(prompt string, options []string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}

	fmt.Fprintf(p.out, "\n%s\n", p.color(colorCyan, prompt))
	for i, opt := range options {
		fmt.Fprintf(p.out, "[%d] %s\n", i+1, opt)
	}

	for {
		fmt.Fprint(p.out, "Pick an option (or 'q' to cancel): ")
		raw, ok := p.readLine()
		if !ok || strings.EqualFold(raw, "q") {
			return "", false
		}
		if k, err := strconv.Atoi(raw); err == nil && k >= 1 && k <= len(options) {
			return options[k-1], true
		}
		fmt.Fprintln(p.out, p.color(colorYellow, "Invalid option. Try again."))
	}
}

// AskInt prompts for an integer in [lo, hi]. An empty answer returns the
// default when one is given (def >= lo).
func (p *Prompter) AskInt(prompt string, lo, hi int, def *int) (int, bool) {
	for {
		fmt.Fprintf(p.out, "%s ", prompt)
		raw, ok := p.readLine()
		if !ok || strings.EqualFold(raw, "q") {
			return 0, false
		}
		if raw == "" && def != nil {
			return *def, true
		}
		if v, err := strconv.Atoi(raw); err == nil && v >= lo && v <= hi {
			return v, true
		}
		fmt.Fprintf(p.out, "%s\n",
			p.color(colorYellow, fmt.Sprintf("Invalid value. Enter a number between %d and %d.", lo, hi)))
	}
}

// AskYes prompts a y/n question; anything but y/yes/s is false.
func (p *Prompter) AskYes(prompt string) bool {
	fmt.Fprintf(p.out, "%s (y/n): ", prompt)
	raw, ok := p.readLine()
	if !ok {
		return false
	}
	raw = strings.ToLower(raw)
	return raw == "y" || raw == "yes" || raw == "s"
}

// Success prints a green confirmation line.
func (p *Prompter) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.color(colorGreen, fmt.Sprintf(format, args...)))
}

// Say prints a plain line.
func (p *Prompter) Say(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
