package host

import (
	"strings"
)

// ProbeStatus is the classification of a batch-mode connectivity probe.
type ProbeStatus int

const (
	// ProbeNoMatch means stderr matched no known pattern; the probe either
	// succeeded or failed in a way that doesn't change what happens next.
	ProbeNoMatch ProbeStatus = iota
	// ProbeUnreachable means the host could not be reached at all.
	ProbeUnreachable
	// ProbeNeedKey means the host answered but refused key-based login.
	ProbeNeedKey
)

// String returns a human-readable description of the status.
func (s ProbeStatus) String() string {
	switch s {
	case ProbeUnreachable:
		return "host unreachable"
	case ProbeNeedKey:
		return "key authentication refused"
	default:
		return "no match"
	}
}

var unreachablePatterns = []string{
	"timed out",
	"connection refused",
	"no route",
}

var needKeyPatterns = []string{
	"permission denied",
	"publickey",
	"password:",
}

// ClassifyProbe categorizes the stderr of an ssh batch-mode probe by
// case-insensitive substring match. Unreachable wins over need-key when both
// match.
func ClassifyProbe(stderr string) ProbeStatus {
	s := strings.ToLower(stderr)

	if containsAny(s, unreachablePatterns) {
		return ProbeUnreachable
	}
	if containsAny(s, needKeyPatterns) {
		return ProbeNeedKey
	}
	return ProbeNoMatch
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
