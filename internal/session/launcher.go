// Package session turns a selected host into a running ssh process, probing
// the host first and offering to install a public key when it refuses one.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rileyhilliard/ssh-connect/internal/config"
	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/rileyhilliard/ssh-connect/internal/exec"
	"github.com/rileyhilliard/ssh-connect/internal/host"
	"github.com/rileyhilliard/ssh-connect/internal/logger"
	"github.com/rileyhilliard/ssh-connect/internal/setup"
)

// Outcome is how a launch attempt ended.
type Outcome int

const (
	// Launched means the shell ran without any key setup.
	Launched Outcome = iota
	// LaunchedAfterSetup means a key was uploaded and then the shell ran.
	LaunchedAfterSetup
	// Unreachable means the probe couldn't reach the host; no shell ran.
	Unreachable
	// AuthSetupDeclined means the user skipped key setup; the shell still ran.
	AuthSetupDeclined
	// AuthSetupFailed means the key upload failed; the shell still ran.
	AuthSetupFailed
	// AuthSetupAborted means no key was available or picked; no shell ran.
	AuthSetupAborted
)

func (o Outcome) String() string {
	switch o {
	case Launched:
		return "launched"
	case LaunchedAfterSetup:
		return "launched after key setup"
	case Unreachable:
		return "unreachable"
	case AuthSetupDeclined:
		return "key setup declined"
	case AuthSetupFailed:
		return "key setup failed"
	case AuthSetupAborted:
		return "key setup aborted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes a finished launch.
type Result struct {
	Outcome Outcome
	// Launched is true when an ssh shell was started.
	Launched bool
	// ExitCode is the shell's exit status. Reported, not interpreted.
	ExitCode int
	// User is who the session logged in as.
	User string
}

// Prompter asks the user questions during key setup. Returning an error
// (for example on Ctrl+C) stops the launch.
type Prompter interface {
	ConfirmKeySetup(ctx context.Context, h config.ResolvedHost, user string) (bool, error)
	// PickKey returns false when the user made no choice.
	PickKey(ctx context.Context, keys []setup.PublicKey) (setup.PublicKey, bool, error)
}

// PositionRecorder stores the index of the host being launched.
type PositionRecorder interface {
	Save(index int) error
}

// UserLookup reports the ssh_config User for the first matching host.
type UserLookup interface {
	User(hosts ...string) string
}

// Indicator shows that the probe is running.
type Indicator interface {
	Start(label string)
	Stop(ok bool)
}

// Launcher runs the probe, key setup and shell for one host. Runner and
// Prompter are required; the rest have usable zero values.
type Launcher struct {
	Runner    exec.Runner
	Prompter  Prompter
	Position  PositionRecorder
	SSHConfig UserLookup
	Indicator Indicator

	// KeyDir is searched for *.pub files. Defaults to ~/.ssh.
	KeyDir       string
	ProbeTimeout time.Duration

	Out io.Writer
	Log logger.Logger
}

// Launch connects to h, which sits at index in the displayed list.
func (l *Launcher) Launch(ctx context.Context, h config.ResolvedHost, index int) (Result, error) {
	if l.Position != nil {
		if err := l.Position.Save(index); err != nil {
			l.log().Warn("could not remember position %d: %v", index, err)
		}
	}

	user := l.userFor(h)

	if h.HasPassword() {
		return l.launchWithPassword(ctx, h, user)
	}

	status, err := l.probe(ctx, h, user)
	if err != nil {
		return Result{User: user}, err
	}

	switch status {
	case host.ProbeUnreachable:
		fmt.Fprintf(l.out(), "✗ %s (%s) is unreachable\n", h.ResolvedName, h.ResolvedIP)
		return Result{Outcome: Unreachable, User: user}, nil
	case host.ProbeNeedKey:
		if h.SkipKeySetup {
			l.log().Debug("%s refused key auth; key setup skipped for this host", h.ResolvedName)
			break
		}
		return l.setupKeyAndLaunch(ctx, h, user)
	}

	return l.shell(ctx, h, user, Launched)
}

func (l *Launcher) launchWithPassword(ctx context.Context, h config.ResolvedHost, user string) (Result, error) {
	cmd := ShellCommand(user, h.ResolvedIP, h.Port)
	if _, err := l.Runner.LookPath(SSHPassTool); err == nil {
		cmd = PasswordCommand(cmd, h.Password)
	} else {
		l.log().Warn("%s not found; ssh will ask for the password", SSHPassTool)
	}
	return l.run(ctx, cmd, user, Launched)
}

func (l *Launcher) probe(ctx context.Context, h config.ResolvedHost, user string) (host.ProbeStatus, error) {
	cmd := ProbeCommand(user, h.ResolvedIP, h.Port, l.probeTimeout())
	l.log().Debug("probing: %s", cmd)

	if l.Indicator != nil {
		l.Indicator.Start("Checking " + h.ResolvedName)
	}
	stderr, code, err := l.Runner.Capture(ctx, cmd)
	cancelled := ctx.Err()
	// Unreachable gets its own line from Launch; only a failed run keeps
	// the spinner's.
	if l.Indicator != nil {
		l.Indicator.Stop(err == nil || cancelled != nil)
	}
	if cancelled != nil {
		return host.ProbeNoMatch, cancelled
	}
	if err != nil {
		return host.ProbeNoMatch, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Couldn't check whether %s is reachable", h.ResolvedName),
			"Make sure ssh is installed and on your PATH.")
	}

	status := host.ClassifyProbe(stderr)
	l.log().Debug("probe exit=%d status=%s stderr=%q", code, status, strings.TrimSpace(stderr))
	return status, nil
}

func (l *Launcher) setupKeyAndLaunch(ctx context.Context, h config.ResolvedHost, user string) (Result, error) {
	ok, err := l.Prompter.ConfirmKeySetup(ctx, h, user)
	if err != nil {
		return Result{User: user}, err
	}
	if !ok {
		l.log().Info("key setup declined for %s", h.ResolvedName)
		return l.shell(ctx, h, user, AuthSetupDeclined)
	}

	dir := l.KeyDir
	if dir == "" {
		dir = setup.DefaultKeyDir()
	}
	keys, err := setup.ListLocalPubkeys(dir)
	if err != nil {
		l.log().Warn("could not list keys in %s: %v", dir, err)
	}
	if len(keys) == 0 {
		fmt.Fprintf(l.out(), "✗ No public keys found in %s\n  Create one with: ssh-keygen -t ed25519\n", dir)
		return Result{Outcome: AuthSetupAborted, User: user}, nil
	}

	key, picked, err := l.Prompter.PickKey(ctx, keys)
	if err != nil {
		return Result{User: user}, err
	}
	if !picked {
		return Result{Outcome: AuthSetupAborted, User: user}, nil
	}

	if _, err := l.Runner.LookPath(setup.CopyIDTool); err != nil {
		fmt.Fprintf(l.out(), "✗ %s not found\n\n%s\n", setup.CopyIDTool,
			setup.CopyKeyManual(user, h.ResolvedIP, h.Port, key.Path))
		return l.shell(ctx, h, user, AuthSetupFailed)
	}

	if err := ctx.Err(); err != nil {
		return Result{User: user}, err
	}
	code, err := l.Runner.Run(ctx, CopyIDCommand(key.Path, user, h.ResolvedIP, h.Port))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{User: user}, ctxErr
	}
	if err != nil || code != 0 {
		l.log().Warn("key upload to %s failed (exit %d): %v", h.ResolvedName, code, err)
		fmt.Fprintf(l.out(), "✗ Couldn't install %s on %s, continuing without it\n", key.Name(), h.ResolvedName)
		return l.shell(ctx, h, user, AuthSetupFailed)
	}

	fmt.Fprintf(l.out(), "✓ Installed %s on %s\n", key.Name(), h.ResolvedName)
	return l.shell(ctx, h, user, LaunchedAfterSetup)
}

func (l *Launcher) shell(ctx context.Context, h config.ResolvedHost, user string, outcome Outcome) (Result, error) {
	return l.run(ctx, ShellCommand(user, h.ResolvedIP, h.Port), user, outcome)
}

func (l *Launcher) run(ctx context.Context, cmd exec.Command, user string, outcome Outcome) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Outcome: outcome, User: user}, err
	}
	l.log().Debug("launching: %s", cmd)
	code, err := l.Runner.Run(ctx, cmd)
	if err != nil {
		return Result{Outcome: outcome, User: user, ExitCode: code}, err
	}
	return Result{Outcome: outcome, Launched: true, ExitCode: code, User: user}, nil
}

// userFor picks the login user: the entry's own, then ~/.ssh/config for the
// host token or address, then the local account.
func (l *Launcher) userFor(h config.ResolvedHost) string {
	if h.User != "" {
		return h.User
	}
	if l.SSHConfig != nil {
		if u := l.SSHConfig.User(h.Host, h.ResolvedIP); u != "" {
			return u
		}
	}
	return config.LocalUser()
}

func (l *Launcher) probeTimeout() time.Duration {
	if l.ProbeTimeout <= 0 {
		return DefaultProbeTimeout
	}
	return l.ProbeTimeout
}

func (l *Launcher) out() io.Writer {
	if l.Out == nil {
		return io.Discard
	}
	return l.Out
}

func (l *Launcher) log() logger.Logger {
	if l.Log == nil {
		return logger.Noop()
	}
	return l.Log
}
