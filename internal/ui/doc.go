// Package ui draws ssh-connect's terminal output: the host menu, the key
// setup prompts, the probe spinner and the plain --list/--themes output.
//
// # Host Menu
//
// PickHost runs a Bubble Tea program around a bubbles list with a one-line
// delegate. Each row shows a cursor, the 1-based index, the display name
// padded to 20 columns, and the address:
//
//	❯  2 Nas                  192.168.1.20
//
// up/k and down/j move, enter connects, and q, esc or Ctrl+C cancel.
//
// # Themes
//
// Seven palettes are built in; LookupTheme matches names case-insensitively
// and falls back to material. NewStyles binds a theme to a lipgloss renderer.
// NewRenderer honors NO_COLOR through termenv, and tests pin the profile with
// termenv.Ascii to compare plain strings.
//
// # Prompts
//
// Prompter implements the key setup questions with huh: a yes/no confirm that
// defaults to yes, and a select over the local public keys. Cancelling the
// key select counts as "no key picked"; cancelling the confirm surfaces
// huh.ErrUserAborted, which IsAborted recognizes.
package ui
