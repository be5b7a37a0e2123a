package sshutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinburke/ssh_config"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
)

// UserConfig answers questions about ~/.ssh/config for hosts that ssh-connect
// launches by address rather than by alias.
type UserConfig struct {
	cfg *ssh_config.Config
}

// DefaultConfigPath returns ~/.ssh/config.
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), ".ssh", "config")
}

// LoadUserConfig parses the SSH config at path. A missing file yields an
// empty config.
func LoadUserConfig(path string) (*UserConfig, error) {
	content, err := preprocessSSHConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &UserConfig{}, nil
		}
		return nil, errors.Wrap(err, "Couldn't read "+path)
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "Couldn't parse "+path)
	}
	return &UserConfig{cfg: cfg}, nil
}

// User returns the first User setting that applies to any of hosts, tried in
// order. Returns "" when none does.
func (c *UserConfig) User(hosts ...string) string {
	if c == nil || c.cfg == nil {
		return ""
	}
	for _, h := range hosts {
		if h == "" {
			continue
		}
		if u, err := c.cfg.Get(h, "User"); err == nil && u != "" {
			return u
		}
	}
	return ""
}

// preprocessSSHConfig drops everything from the first Match directive on,
// since the parser doesn't understand Match blocks.
func preprocessSSHConfig(configPath string) ([]byte, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	var result []string
	for _, line := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "match ") {
			break
		}
		result = append(result, line)
	}

	return []byte(strings.Join(result, "\n")), nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}
