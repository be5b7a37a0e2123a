package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every settings key when reading the environment,
// so "hosts_file" is read from SSH_CONNECT_HOSTS_FILE.
const EnvPrefix = "SSH_CONNECT"

// Settings keys.
const (
	KeyHostsFile    = "hosts_file"
	KeySort         = "sort"
	KeyTheme        = "theme"
	KeyPositionFile = "last_position_file"
	KeyProbeTimeout = "probe_timeout"
	KeyEditor       = "editor"
)

// Defaults for settings that aren't provided by flag or environment.
const (
	DefaultHostsFile    = "~/.ssh_hosts.yml"
	DefaultPositionFile = "~/.cache/ssh_last_connection"
	DefaultTheme        = "material"
	DefaultEditor       = "nano"
	DefaultProbeTimeout = 3 * time.Second
)

// Settings is the runtime configuration of the launcher. Everything the core
// packages need from it is passed to them as plain values.
type Settings struct {
	HostsFile    string
	SortMode     SortMode
	Theme        string
	PositionFile string
	ProbeTimeout time.Duration
	Editor       string
}

// NewViper returns a viper instance with defaults and environment bindings
// for every settings key.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyHostsFile, DefaultHostsFile)
	v.SetDefault(KeySort, string(SortByIP))
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyPositionFile, DefaultPositionFile)
	v.SetDefault(KeyProbeTimeout, DefaultProbeTimeout.String())
	v.SetDefault(KeyEditor, DefaultEditor)

	// EDITOR is a shared convention, not ours to prefix.
	_ = v.BindEnv(KeyEditor, "EDITOR")

	return v
}

// BindFlags lets command-line flags override the environment. Flags that
// don't exist on fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, flagName := range keys {
		f := fs.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Couldn't bind --%s", flagName),
				"This is unexpected - please report this bug!")
		}
	}
	return nil
}

// LoadSettings resolves Settings from v (flag > environment > default).
func LoadSettings(v *viper.Viper) (Settings, error) {
	timeoutStr := v.GetString(KeyProbeTimeout)
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return Settings{}, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid probe timeout", timeoutStr),
			"Set SSH_CONNECT_PROBE_TIMEOUT to something like 3s or 500ms.")
	}
	if timeout < time.Second {
		timeout = time.Second
	}

	return Settings{
		HostsFile:    ExpandTilde(v.GetString(KeyHostsFile)),
		SortMode:     ParseSortMode(v.GetString(KeySort)),
		Theme:        v.GetString(KeyTheme),
		PositionFile: ExpandTilde(v.GetString(KeyPositionFile)),
		ProbeTimeout: timeout,
		Editor:       v.GetString(KeyEditor),
	}, nil
}
