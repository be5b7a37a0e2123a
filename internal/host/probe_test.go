package host

import (
	"testing"
)

func TestClassifyProbe_Unreachable(t *testing.T) {
	testCases := []string{
		"ssh: connect to host 10.0.0.9 port 22: Connection timed out",
		"ssh: connect to host 10.0.0.9 port 22: Connection refused",
		"ssh: connect to host 10.0.0.9 port 22: No route to host",
		"CONNECTION TIMED OUT",
	}

	for _, stderr := range testCases {
		if got := ClassifyProbe(stderr); got != ProbeUnreachable {
			t.Errorf("ClassifyProbe(%q) = %v, want ProbeUnreachable", stderr, got)
		}
	}
}

func TestClassifyProbe_NeedKey(t *testing.T) {
	testCases := []string{
		"admin@10.0.0.9: Permission denied (publickey).",
		"admin@10.0.0.9: Permission denied (publickey,password).",
		"no matching publickey",
		"admin@10.0.0.9's password:",
	}

	for _, stderr := range testCases {
		if got := ClassifyProbe(stderr); got != ProbeNeedKey {
			t.Errorf("ClassifyProbe(%q) = %v, want ProbeNeedKey", stderr, got)
		}
	}
}

func TestClassifyProbe_NoMatch(t *testing.T) {
	testCases := []string{
		"",
		"Warning: Permanently added '10.0.0.9' (ED25519) to the list of known hosts.",
		"Host key verification failed.",
	}

	for _, stderr := range testCases {
		if got := ClassifyProbe(stderr); got != ProbeNoMatch {
			t.Errorf("ClassifyProbe(%q) = %v, want ProbeNoMatch", stderr, got)
		}
	}
}

func TestClassifyProbe_UnreachableWins(t *testing.T) {
	stderr := "Permission denied, then Connection refused"
	if got := ClassifyProbe(stderr); got != ProbeUnreachable {
		t.Errorf("ClassifyProbe(%q) = %v, want ProbeUnreachable", stderr, got)
	}
}

func TestProbeStatus_String(t *testing.T) {
	tests := []struct {
		status ProbeStatus
		want   string
	}{
		{ProbeNoMatch, "no match"},
		{ProbeUnreachable, "host unreachable"},
		{ProbeNeedKey, "key authentication refused"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
