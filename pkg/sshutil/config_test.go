package sshutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
)

func writeSSHConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestUserConfig_User(t *testing.T) {
	path := writeSSHConfig(t, `
Host nas
    HostName 192.168.1.20
    User admin

Host 10.0.0.*
    User ops

Host build01.example.com
    User ci
`)

	cfg, err := LoadUserConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.User("nas"))
	assert.Equal(t, "ci", cfg.User("build01.example.com"))
	assert.Equal(t, "ops", cfg.User("10.0.0.7"))
	assert.Equal(t, "", cfg.User("unknown"))
}

func TestUserConfig_UserTriesHostsInOrder(t *testing.T) {
	path := writeSSHConfig(t, `
Host 10.0.0.*
    User ops

Host nas
    User admin
`)

	cfg, err := LoadUserConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.User("nas", "10.0.0.9"))
	assert.Equal(t, "ops", cfg.User("pi", "10.0.0.9"))
	assert.Equal(t, "ops", cfg.User("", "10.0.0.9"))
}

func TestUserConfig_MatchBlockIgnored(t *testing.T) {
	path := writeSSHConfig(t, `
Host nas
    User admin

Match host nas exec "true"
    User somebody-else
`)

	cfg, err := LoadUserConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.User("nas"))
}

func TestLoadUserConfig_Missing(t *testing.T) {
	cfg, err := LoadUserConfig(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.User("anything"))
}

func TestLoadUserConfig_Unreadable(t *testing.T) {
	dir := t.TempDir() // a directory can't be read as a file

	cfg, err := LoadUserConfig(dir)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.IsCode(err, errors.ErrSSH))
}

func TestUserConfig_NilSafe(t *testing.T) {
	var cfg *UserConfig
	assert.Equal(t, "", cfg.User("nas"))
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	assert.Equal(t, "config", filepath.Base(path))
	assert.Equal(t, ".ssh", filepath.Base(filepath.Dir(path)))
}
