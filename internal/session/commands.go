package session

import (
	"strconv"
	"time"

	"github.com/rileyhilliard/ssh-connect/internal/exec"
	"github.com/rileyhilliard/ssh-connect/internal/setup"
)

// Program names the launcher looks for on PATH.
const (
	SSHTool     = "ssh"
	SSHPassTool = "sshpass"
)

// DefaultProbeTimeout bounds the batch-mode connectivity probe.
const DefaultProbeTimeout = 3 * time.Second

// ShellCommand opens an interactive ssh session.
func ShellCommand(user, ip string, port int) exec.Command {
	return exec.Command{
		Name: SSHTool,
		Args: []string{"-p", strconv.Itoa(port), setup.Destination(user, ip)},
	}
}

// PasswordCommand wraps cmd in sshpass. The password travels in SSHPASS so it
// never shows up in the process table.
func PasswordCommand(cmd exec.Command, password string) exec.Command {
	args := append([]string{"-e", cmd.Name}, cmd.Args...)
	return exec.Command{
		Name: SSHPassTool,
		Args: args,
		Env:  append(append([]string{}, cmd.Env...), "SSHPASS="+password),
	}
}

// ProbeCommand runs `true` on the host in batch mode so that any prompt
// fails fast and explains itself on stderr.
func ProbeCommand(user, ip string, port int, timeout time.Duration) exec.Command {
	secs := int(timeout.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return exec.Command{
		Name: SSHTool,
		Args: []string{
			"-o", "BatchMode=yes",
			"-o", "ConnectTimeout=" + strconv.Itoa(secs),
			"-p", strconv.Itoa(port),
			setup.Destination(user, ip),
			"true",
		},
	}
}

// CopyIDCommand uploads keyPath to the host with ssh-copy-id.
func CopyIDCommand(keyPath, user, ip string, port int) exec.Command {
	return exec.Command{
		Name: setup.CopyIDTool,
		Args: setup.CopyKeyArgs(keyPath, user, ip, port),
	}
}
