package setup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyKeyArgs(t *testing.T) {
	args := CopyKeyArgs("/home/me/.ssh/id_ed25519.pub", "admin", "10.0.0.5", 2222)
	assert.Equal(t, []string{"-i", "/home/me/.ssh/id_ed25519.pub", "-p", "2222", "admin@10.0.0.5"}, args)
}

func TestDestination(t *testing.T) {
	assert.Equal(t, "root@box", Destination("root", "box"))
	assert.Equal(t, "box", Destination("", "box"))
}

func TestCopyKeyManual(t *testing.T) {
	t.Run("with readable key", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "id.pub", "ssh-ed25519 AAAAC3 me@laptop\n")

		out := CopyKeyManual("admin", "10.0.0.5", 2222, path)
		assert.Contains(t, out, "ssh -p 2222 admin@10.0.0.5")
		assert.Contains(t, out, "ssh-ed25519 AAAAC3 me@laptop")
		assert.Contains(t, out, "authorized_keys")
	})

	t.Run("with unreadable key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.pub")

		out := CopyKeyManual("admin", "10.0.0.5", 22, path)
		assert.Contains(t, out, "cat "+path)
		assert.Contains(t, out, "ssh -p 22 admin@10.0.0.5")
	})
}
