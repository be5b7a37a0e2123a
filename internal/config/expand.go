package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// LocalUser returns the login name of the person running ssh-connect.
// LOGNAME is checked first, matching what ssh itself defaults to.
func LocalUser() string {
	for _, env := range []string{"LOGNAME", "USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return ""
}
