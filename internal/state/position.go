// Package state remembers which host was picked last, so the menu can open
// with the cursor already on it.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
)

// Position is the last-selected zero-based menu index, stored as plain text
// in a single file.
type Position struct {
	Path string
}

// NewPosition returns a Position backed by path.
func NewPosition(path string) *Position {
	return &Position{Path: path}
}

// Load returns the stored index. A missing, unreadable, corrupt or negative
// value reads as 0.
func (p *Position) Load() int {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Save stores index. The value is written to a temp file next to the target
// and renamed over it, so readers see either the old or the new index.
func (p *Position) Save(index int) error {
	dir := filepath.Dir(p.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrState,
			fmt.Sprintf("Couldn't create %s", dir),
			"Check permissions, or set SSH_CONNECT_LAST_POSITION_FILE elsewhere.")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(p.Path)+".*.tmp")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrState,
			fmt.Sprintf("Couldn't write to %s", dir),
			"Check permissions, or set SSH_CONNECT_LAST_POSITION_FILE elsewhere.")
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.WriteString(strconv.Itoa(index))
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = os.Rename(tmpName, p.Path)
	}
	if writeErr != nil {
		os.Remove(tmpName) //nolint:errcheck // best-effort cleanup
		return errors.WrapWithCode(writeErr, errors.ErrState,
			fmt.Sprintf("Couldn't save last position to %s", p.Path),
			"Check disk space and permissions.")
	}

	return nil
}

// Clamp keeps index inside [0, n). With n == 0 it returns 0.
func Clamp(index, n int) int {
	if index < 0 || n <= 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
