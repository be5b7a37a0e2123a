package exec

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/rileyhilliard/ssh-connect/internal/util"
)

// Command is a local process to start: a program, its arguments, and extra
// environment entries appended to the parent environment.
type Command struct {
	Name string
	Args []string
	Env  []string
}

// String renders the command for logs. Env values are left out since they
// may carry secrets.
func (c Command) String() string {
	return util.ShellJoin(append([]string{c.Name}, c.Args...)...)
}

// Runner starts local processes.
type Runner interface {
	// Run starts cmd attached to the terminal and waits for it.
	// Returns the exit code; err is only set when the process could not run.
	Run(ctx context.Context, cmd Command) (exitCode int, err error)

	// Capture runs cmd without a terminal and returns its stderr.
	Capture(ctx context.Context, cmd Command) (stderr string, exitCode int, err error)

	// LookPath reports where name is on PATH.
	LookPath(name string) (string, error)
}

// captureWaitDelay is how long Capture waits for output after its child is
// killed.
const captureWaitDelay = 500 * time.Millisecond

// LocalRunner runs commands with os/exec.
type LocalRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLocalRunner returns a runner wired to the process's own stdio.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes cmd with stdio attached. A cancelled ctx stops cmd from
// starting, but once started the child is not killed: an interactive session
// owns the terminal until it exits.
func (r *LocalRunner) Run(ctx context.Context, cmd Command) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	command := exec.Command(cmd.Name, cmd.Args...)
	command.Env = withEnv(cmd.Env)
	command.Stdin = r.Stdin
	command.Stdout = r.Stdout
	command.Stderr = r.Stderr

	return exitCode(command.Run(), cmd)
}

// Capture executes cmd with no stdin and collects stderr. Stdout is discarded.
// Cancelling ctx kills cmd and returns ctx.Err().
func (r *LocalRunner) Capture(ctx context.Context, cmd Command) (string, int, error) {
	var stderr bytes.Buffer

	command := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	command.Env = withEnv(cmd.Env)
	command.Stdout = io.Discard
	command.Stderr = &stderr
	// Bound the wait for grandchildren still holding the stderr pipe.
	command.WaitDelay = captureWaitDelay

	runErr := command.Run()
	if err := ctx.Err(); err != nil {
		return stderr.String(), -1, err
	}
	code, err := exitCode(runErr, cmd)
	return stderr.String(), code, err
}

// LookPath wraps exec.LookPath.
func (r *LocalRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func withEnv(extra []string) []string {
	if len(extra) == 0 {
		return nil
	}
	return append(os.Environ(), extra...)
}

func exitCode(runErr error, cmd Command) (int, error) {
	if runErr == nil {
		return 0, nil
	}
	// Command ran but returned non-zero
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, errors.WrapWithCode(runErr, errors.ErrExec,
		"Couldn't run "+cmd.Name,
		"Make sure "+cmd.Name+" is installed and on your PATH.")
}
