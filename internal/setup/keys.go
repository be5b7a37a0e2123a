package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"golang.org/x/crypto/ssh"
)

const (
	// PublicKeyExt is the extension that marks a public key file.
	PublicKeyExt = ".pub"
	// PreferredSuffix marks the key type offered first.
	PreferredSuffix = "ed25519.pub"
)

// PublicKey is a local public key file. Type, Fingerprint and Comment are
// only set when the file parses as an authorized_keys line.
type PublicKey struct {
	Path        string
	Type        string
	Fingerprint string
	Comment     string
}

// Name returns the file name of the key.
func (k PublicKey) Name() string {
	return filepath.Base(k.Path)
}

// Parsed reports whether the file held a readable public key.
func (k PublicKey) Parsed() bool {
	return k.Fingerprint != ""
}

// Label is the one-line description shown in the key picker.
func (k PublicKey) Label() string {
	if !k.Parsed() {
		return k.Name()
	}
	label := fmt.Sprintf("%s  %s %s", k.Name(), k.Type, k.Fingerprint)
	if k.Comment != "" {
		label += "  " + k.Comment
	}
	return label
}

// DefaultKeyDir returns ~/.ssh.
func DefaultKeyDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".ssh")
	}
	return filepath.Join(home, ".ssh")
}

// ListLocalPubkeys returns the public key files in dir: ed25519 keys first,
// then everything else, each group ordered by path. A missing dir is not an
// error.
func ListLocalPubkeys(dir string) ([]PublicKey, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []PublicKey{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrKey,
			fmt.Sprintf("Couldn't read %s", dir),
			"Check permissions on your SSH directory.")
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), PublicKeyExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	sort.SliceStable(paths, func(i, j int) bool {
		pi := strings.HasSuffix(paths[i], PreferredSuffix)
		pj := strings.HasSuffix(paths[j], PreferredSuffix)
		if pi != pj {
			return pi
		}
		return paths[i] < paths[j]
	})

	keys := make([]PublicKey, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, describeKey(p))
	}
	return keys, nil
}

// describeKey fills in what the file says about itself. Unparsable files are
// still returned; ssh-copy-id has the final word on what it accepts.
func describeKey(path string) PublicKey {
	key := PublicKey{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return key
	}
	pub, comment, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return key
	}

	key.Type = pub.Type()
	key.Fingerprint = ssh.FingerprintSHA256(pub)
	key.Comment = comment
	return key
}

// ReadPublicKey reads the contents of a public key file.
func ReadPublicKey(pubPath string) (string, error) {
	data, err := os.ReadFile(pubPath)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrKey,
			fmt.Sprintf("Failed to read public key: %s", pubPath),
			"Check that the file exists and is readable")
	}
	return strings.TrimSpace(string(data)), nil
}
