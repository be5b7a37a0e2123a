// Package cli implements the ssh-connect command line.
//
// There is a single root command. Its flags pick a mode, checked in this
// order:
//
//	ssh-connect --list      print the numbered host list
//	ssh-connect --edit      open the hosts file in $EDITOR
//	ssh-connect --themes    list color themes
//	ssh-connect [index]     connect by number, or show the menu
//
// Settings come from flags, then SSH_CONNECT_* environment variables, then
// defaults (see config.NewViper). The app type wires the hosts loader, the
// menu and the session launcher; tests swap each of them for fakes.
//
// # Exit Status
//
// Execute exits 0 when the command succeeds, when the user cancels a prompt,
// and when the context is cancelled by a signal. Any other error is printed
// to stderr with its suggestion and exits 1. The ssh exit status is not
// propagated.
package cli
