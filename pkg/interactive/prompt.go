package interactive

import (
	"io"

	"github.com/manifoldco/promptui"
)

// Prompter asks the operator for one line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// TerminalPrompter reads answers from a terminal. Nil streams fall back to
// the process stdin and stdout.
type TerminalPrompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (p *TerminalPrompter) Prompt(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}
	return prompt.Run()
}
