package ui

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/ssh-connect/internal/config"
	"github.com/rileyhilliard/ssh-connect/internal/setup"
)

// Prompter asks the key setup questions with huh forms. Nil Input and
// Output mean the terminal.
type Prompter struct {
	Input  io.Reader
	Output io.Writer
}

// ConfirmKeySetup asks whether to upload a key to a host that refused one.
// The default answer is yes. Ctrl+C returns huh.ErrUserAborted.
func (p *Prompter) ConfirmKeySetup(ctx context.Context, h config.ResolvedHost, user string) (bool, error) {
	confirm := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s refused key login for %s. Upload a public key?", h.ResolvedName, user)).
				Description(setup.Destination(user, h.ResolvedIP)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirm),
		),
	)

	if err := p.run(ctx, form); err != nil {
		return false, err
	}
	return confirm, nil
}

// PickKey lets the user choose one of keys. Cancelling returns false with
// no error.
func (p *Prompter) PickKey(ctx context.Context, keys []setup.PublicKey) (setup.PublicKey, bool, error) {
	if len(keys) == 0 {
		return setup.PublicKey{}, false, nil
	}

	options := make([]huh.Option[int], len(keys))
	for i, k := range keys {
		options[i] = huh.NewOption(k.Label(), i)
	}

	var picked int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select SSH public key:").
				Options(options...).
				Value(&picked),
		),
	)

	if err := p.run(ctx, form); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return setup.PublicKey{}, false, nil
		}
		return setup.PublicKey{}, false, err
	}
	return keys[picked], true, nil
}

func (p *Prompter) run(ctx context.Context, form *huh.Form) error {
	form = form.WithShowHelp(false)
	if p.Input != nil {
		form = form.WithInput(p.Input)
	}
	if p.Output != nil {
		form = form.WithOutput(p.Output)
	}
	return form.RunWithContext(ctx)
}

// IsAborted reports whether err came from the user cancelling a prompt.
func IsAborted(err error) bool {
	return stderrors.Is(err, huh.ErrUserAborted)
}
