package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "bare tilde", input: "~", want: home},
		{name: "tilde path", input: "~/.ssh_hosts.yml", want: filepath.Join(home, ".ssh_hosts.yml")},
		{name: "absolute", input: "/etc/ssh_hosts.yml", want: "/etc/ssh_hosts.yml"},
		{name: "other user untouched", input: "~bob/hosts.yml", want: "~bob/hosts.yml"},
		{name: "tilde in the middle", input: "/tmp/~/x", want: "/tmp/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTilde(tt.input))
		})
	}
}

func TestLocalUser(t *testing.T) {
	t.Run("LOGNAME wins", func(t *testing.T) {
		t.Setenv("LOGNAME", "logname-user")
		t.Setenv("USER", "user-user")
		assert.Equal(t, "logname-user", LocalUser())
	})

	t.Run("USER when LOGNAME is empty", func(t *testing.T) {
		t.Setenv("LOGNAME", "")
		t.Setenv("USER", "user-user")
		assert.Equal(t, "user-user", LocalUser())
	})
}
