package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/orgmap/internal/ui"
)

func shouldPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

func promptForConfirm(message string) bool {
	if !shouldPromptForConfirm() {
		return false
	}
	if message == "" {
		message = "Apply changes?"
	}
	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	return newPrompter(os.Stdin, io.Discard).yes()
}

// prompter reads answers to interactive questions line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(r), out: w}
}

// line asks for a value. An empty answer, or end of input, returns def.
func (p *prompter) line(label, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s %s: ", label, ui.Hint("[default: "+def+"]"))
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	answer := p.read()
	if answer == "" {
		return def
	}
	return answer
}

// confirm asks a yes/no question. Anything but y/yes is no.
func (p *prompter) confirm(question string) bool {
	fmt.Fprintf(p.out, "%s %s ", question, ui.Hint("(y/n):"))
	return p.yes()
}

func (p *prompter) yes() bool {
	answer := strings.ToLower(p.read())
	return answer == "y" || answer == "yes"
}

func (p *prompter) read() string {
	response, _ := p.in.ReadString('\n')
	return strings.TrimSpace(response)
}
