package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrSSH,
		ErrResolve,
		ErrKey,
		ErrState,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Hosts file not found: /home/me/.ssh_hosts.yml",
			suggestion: "Create it or point SSH_CONNECT_HOSTS_FILE at an existing file",
		},
		{
			name:       "resolve error",
			code:       ErrResolve,
			message:    "Can't resolve db.internal",
			suggestion: "Check DNS or use an IP address",
		},
		{
			name:       "key error",
			code:       ErrKey,
			message:    "Couldn't read ~/.ssh",
			suggestion: "Check directory permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid YAML", "Fix the syntax"),
			expectedParts: []string{"✗ Invalid YAML", "Fix the syntax"},
		},
		{
			name:          "with cause",
			err:           WrapWithCode(errors.New("line 3: mapping values are not allowed"), ErrConfig, "Invalid YAML", ""),
			expectedParts: []string{"Invalid YAML", "line 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("no such host"),
		ErrResolve,
		"Can't resolve web01",
		"Check the hostname",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"))
	assert.Contains(t, lines[0], "Can't resolve web01")
}

func TestWrap(t *testing.T) {
	cause := errors.New("exec: \"ssh\": executable file not found in $PATH")
	wrapped := Wrap(cause, "Probe failed")

	assert.Equal(t, ErrSSH, wrapped.Code)
	assert.Equal(t, cause, wrapped.Unwrap())
	assert.True(t, errors.Is(wrapped, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrSSH))
	assert.False(t, IsCode(errors.New("plain"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))

	wrapped := fmt.Errorf("loading: %w", err)
	assert.True(t, IsCode(wrapped, ErrConfig))
}
