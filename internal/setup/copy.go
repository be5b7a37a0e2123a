package setup

import (
	"fmt"
	"strconv"

	"github.com/rileyhilliard/ssh-connect/internal/util"
)

// CopyIDTool is the helper that appends a public key to a remote
// authorized_keys file.
const CopyIDTool = "ssh-copy-id"

// CopyKeyArgs returns the ssh-copy-id arguments that install keyPath for
// user on host:port.
func CopyKeyArgs(keyPath, user, host string, port int) []string {
	return []string{"-i", keyPath, "-p", strconv.Itoa(port), Destination(user, host)}
}

// Destination formats user@host, or just host when user is empty.
func Destination(user, host string) string {
	if user == "" {
		return host
	}
	return user + "@" + host
}

// CopyKeyManual provides instructions for manual key copying when
// ssh-copy-id isn't available.
func CopyKeyManual(user, host string, port int, pubKeyPath string) string {
	dest := Destination(user, host)

	pubKey, err := ReadPublicKey(pubKeyPath)
	if err != nil {
		return fmt.Sprintf(`To copy your SSH key manually:

1. Display your public key:
   cat %s

2. Append it to ~/.ssh/authorized_keys on the remote host:
   ssh -p %d %s "mkdir -p ~/.ssh && chmod 700 ~/.ssh && cat >> ~/.ssh/authorized_keys && chmod 600 ~/.ssh/authorized_keys" < %s
`, util.QuoteIfNeeded(pubKeyPath), port, dest, util.QuoteIfNeeded(pubKeyPath))
	}

	return fmt.Sprintf(`To copy your SSH key manually, run:

ssh -p %d %s "mkdir -p ~/.ssh && chmod 700 ~/.ssh && echo '%s' >> ~/.ssh/authorized_keys && chmod 600 ~/.ssh/authorized_keys"
`, port, dest, pubKey)
}
