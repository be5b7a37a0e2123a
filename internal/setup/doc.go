// Package setup handles the one-shot public key upload offered when a host
// refuses key-based login.
//
// # Key Discovery
//
// ListLocalPubkeys() scans a directory (normally ~/.ssh) for *.pub files.
// Keys whose name ends in ed25519.pub come first; the rest follow in path
// order. Each key is parsed with golang.org/x/crypto/ssh so the picker can
// show its type, SHA256 fingerprint and comment:
//
//	keys, err := setup.ListLocalPubkeys(setup.DefaultKeyDir())
//
// Files that don't parse are still listed.
//
// # Key Deployment
//
// CopyKeyArgs() builds the ssh-copy-id argument list for a key, user, host
// and port. The caller runs it; this package never spawns processes.
//
// If ssh-copy-id is unavailable, CopyKeyManual() returns instructions
// for manual key deployment.
//
// The package never reads or displays private key material.
package setup
