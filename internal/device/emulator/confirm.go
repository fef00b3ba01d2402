package emulator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	ConfirmApprove = "approve"
	ConfirmReject  = "reject"
	ConfirmPrompt  = "prompt"
)

// Prompt is what the device shows while asking for confirmation.
type Prompt struct {
	Device     string
	CurrencyID string
	Ticker     string
	Path       string
	Address    string
}

// Confirmer answers the on-device address confirmation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(ctx context.Context, prompt Prompt) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	return f(ctx, prompt)
}

// AutoConfirmer always gives the same answer.
type AutoConfirmer struct {
	Approve bool
}

func (c AutoConfirmer) Confirm(context.Context, Prompt) (bool, error) {
	return c.Approve, nil
}

// TerminalConfirmer asks on the controlling terminal.
type TerminalConfirmer struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalConfirmer returns a TerminalConfirmer on stdin and stdout.
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin, Out: os.Stdout}
}

// Confirm reads a y/n answer. The read is not interruptible; a cancelled
// confirmation is abandoned by the caller and the pending line is consumed
// by the next prompt.
func (c *TerminalConfirmer) Confirm(_ context.Context, prompt Prompt) (bool, error) {
	fd := int(c.In.Fd())
	if !term.IsTerminal(fd) {
		return false, errors.New("confirmation needs a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return false, errors.Wrap(err, "failed to switch terminal to raw mode")
	}
	defer func() { _ = term.Restore(fd, state) }()

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{c.In, c.Out}, "")

	fmt.Fprintf(t, "\r\n[%s] Verify %s address\r\n  path    %s\r\n  address %s\r\n",
		prompt.Device, prompt.Ticker, prompt.Path, prompt.Address)
	t.SetPrompt("Approve? [y/N] ")

	line, err := t.ReadLine()
	if err != nil {
		return false, errors.Wrap(err, "failed to read confirmation")
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}

// ConfirmerFor returns the confirmer named by a profile.
//
//nolint:ireturn // Returning interface is intentional
func ConfirmerFor(name string) (Confirmer, error) {
	switch name {
	case "", ConfirmApprove:
		return AutoConfirmer{Approve: true}, nil
	case ConfirmReject:
		return AutoConfirmer{Approve: false}, nil
	case ConfirmPrompt:
		return NewTerminalConfirmer(), nil
	default:
		return nil, errors.Errorf("unknown confirm mode %q", name)
	}
}
