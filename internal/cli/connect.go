package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rileyhilliard/ssh-connect/internal/config"
	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/rileyhilliard/ssh-connect/internal/exec"
	"github.com/rileyhilliard/ssh-connect/internal/host"
	"github.com/rileyhilliard/ssh-connect/internal/logger"
	"github.com/rileyhilliard/ssh-connect/internal/session"
	"github.com/rileyhilliard/ssh-connect/internal/state"
	"github.com/rileyhilliard/ssh-connect/internal/ui"
	"github.com/rileyhilliard/ssh-connect/pkg/sshutil"
)

// hostLauncher starts a session with one host. *session.Launcher in
// production.
type hostLauncher interface {
	Launch(ctx context.Context, h config.ResolvedHost, index int) (session.Result, error)
}

// hostPicker shows the menu and returns the chosen zero-based index.
type hostPicker func(entries []ui.MenuEntry, start int, theme ui.Theme) (int, bool, error)

// runOptions are the per-invocation choices from the command line.
type runOptions struct {
	// index is the 1-based host number given as an argument.
	index    int
	hasIndex bool
	list     bool
	edit     bool
	themes   bool
}

// app wires the loader, menu and launcher together for one invocation.
type app struct {
	settings    config.Settings
	theme       ui.Theme
	out         io.Writer
	resolver    config.Resolver
	runner      exec.Runner
	launcher    hostLauncher
	pick        hostPicker
	position    *state.Position
	interactive bool
	log         logger.Logger
}

// newApp builds the production wiring for settings.
func newApp(settings config.Settings, out io.Writer) *app {
	log := logger.NewEnvLogger("[ssh-connect]")

	theme, ok := ui.LookupTheme(settings.Theme)
	if !ok && settings.Theme != "" {
		log.Debug("unknown theme %q, using %s", settings.Theme, theme.Name)
	}

	sshCfg, err := sshutil.LoadUserConfig(sshutil.DefaultConfigPath())
	if err != nil {
		log.Warn("ignoring %s: %v", sshutil.DefaultConfigPath(), err)
	}

	runner := exec.NewLocalRunner()
	position := state.NewPosition(settings.PositionFile)
	interactive := isInteractive()

	launcher := &session.Launcher{
		Runner:       runner,
		Prompter:     &ui.Prompter{},
		Position:     position,
		SSHConfig:    sshCfg,
		ProbeTimeout: settings.ProbeTimeout,
		Out:          out,
		Log:          log,
	}
	if interactive {
		launcher.Indicator = ui.NewSpinner(out, theme.Cursor)
	}

	return &app{
		settings:    settings,
		theme:       theme,
		out:         out,
		resolver:    host.NewResolver(nil, log),
		runner:      runner,
		launcher:    launcher,
		pick:        ui.PickHost,
		position:    position,
		interactive: interactive,
		log:         log,
	}
}

// run dispatches to the mode selected by opts.
func (a *app) run(ctx context.Context, opts runOptions) error {
	switch {
	case opts.list:
		return a.listHosts(ctx)
	case opts.edit:
		return a.editHostsFile(ctx)
	case opts.themes:
		ui.PrintThemes(a.out, config.EnvPrefix+"_THEME")
		return nil
	default:
		return a.connect(ctx, opts)
	}
}

func (a *app) load(ctx context.Context) ([]config.ResolvedHost, error) {
	hosts, err := config.Load(ctx, a.settings.HostsFile, a.settings.SortMode, a.resolver)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded %d hosts from %s", len(hosts), a.settings.HostsFile)
	return hosts, nil
}

func (a *app) listHosts(ctx context.Context) error {
	hosts, err := a.load(ctx)
	if err != nil {
		return err
	}
	ui.PrintHostList(a.out, menuEntries(hosts))
	return nil
}

// editHostsFile opens the hosts file in the configured editor. The file
// doesn't need to exist or be valid.
func (a *app) editHostsFile(ctx context.Context) error {
	fields := strings.Fields(a.settings.Editor)
	if len(fields) == 0 {
		fields = []string{config.DefaultEditor}
	}
	cmd := exec.Command{Name: fields[0], Args: append(fields[1:], a.settings.HostsFile)}

	code, err := a.runner.Run(ctx, cmd)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("Couldn't start editor '%s'", fields[0]),
			"Set EDITOR to an installed editor, e.g. export EDITOR=vim")
	}
	if code != 0 {
		a.log.Warn("%s exited with status %d", fields[0], code)
	}
	return nil
}

// connect picks a host (by number or from the menu) and launches it.
// A number outside the list falls back to the menu.
func (a *app) connect(ctx context.Context, opts runOptions) error {
	hosts, err := a.load(ctx)
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(a.out)
	styles := ui.NewStyles(a.theme, renderer)

	if opts.hasIndex {
		idx := opts.index - 1
		if idx >= 0 && idx < len(hosts) {
			return a.launch(ctx, hosts, idx, styles)
		}
		a.log.Debug("host %d is out of range (1-%d), showing the menu", opts.index, len(hosts))
	}

	if len(hosts) == 0 {
		fmt.Fprintln(a.out, ui.RenderFailure(renderer,
			fmt.Sprintf("No hosts in %s. Add some with: ssh-connect --edit", a.settings.HostsFile)))
		return nil
	}

	if !a.interactive {
		return errors.New(errors.ErrExec,
			"The host menu needs a terminal",
			"Pass a host number (see ssh-connect --list) or run from an interactive shell.")
	}

	start := state.Clamp(a.position.Load(), len(hosts))
	idx, ok, err := a.pick(menuEntries(hosts), start, a.theme)
	if err != nil {
		return err
	}
	if !ok {
		a.log.Debug("menu cancelled")
		return nil
	}

	return a.launch(ctx, hosts, idx, styles)
}

func (a *app) launch(ctx context.Context, hosts []config.ResolvedHost, idx int, styles ui.Styles) error {
	h := hosts[idx]
	fmt.Fprintln(a.out, ui.RenderConnecting(styles, h.ResolvedName))

	res, err := a.launcher.Launch(ctx, h, idx)
	if err != nil {
		return err
	}
	a.log.Debug("%s: %s (exit %d)", h.ResolvedName, res.Outcome, res.ExitCode)
	return nil
}

func menuEntries(hosts []config.ResolvedHost) []ui.MenuEntry {
	entries := make([]ui.MenuEntry, len(hosts))
	for i, h := range hosts {
		entries[i] = ui.MenuEntry{Name: h.ResolvedName, IP: h.ResolvedIP}
	}
	return entries
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
