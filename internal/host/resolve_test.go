package host

import (
	"context"
	stderrors "errors"
	"net"
	"testing"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/rileyhilliard/ssh-connect/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup answers from fixed tables and counts calls. Anything missing
// from a table fails with a not-found DNS error, or with failErr when set.
type fakeLookup struct {
	forward map[string]string
	reverse map[string]string
	failErr error

	// reverseErr overrides failErr for reverse lookups.
	reverseErr error

	forwardCalls int
	reverseCalls int
}

func (f *fakeLookup) LookupIPv4(_ context.Context, host string) (string, error) {
	f.forwardCalls++
	if ip, ok := f.forward[host]; ok {
		return ip, nil
	}
	if f.failErr != nil {
		return "", f.failErr
	}
	return "", &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

func (f *fakeLookup) LookupName(_ context.Context, ip string) (string, error) {
	f.reverseCalls++
	if name, ok := f.reverse[ip]; ok {
		return name, nil
	}
	if f.reverseErr != nil {
		return "", f.reverseErr
	}
	if f.failErr != nil {
		return "", f.failErr
	}
	return "", &net.DNSError{Err: "no such host", Name: ip, IsNotFound: true}
}

func TestIsIP(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"10.0.0.1", true},
		{"192.168.1.254", true},
		{"999.999.999.999", true},
		{"0.0.0.0", true},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"1234.1.1.1", false},
		{"a.b.c.d", false},
		{"web01", false},
		{"web01.example.com", false},
		{"", false},
		{" 10.0.0.1", false},
		{"10.0.0.1 ", false},
		{"10..0.1", false},
		{"::1", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIP(tt.in))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Web01", Capitalize("web01"))
	assert.Equal(t, "Web01", Capitalize("WEB01"))
	assert.Equal(t, "Éclair", Capitalize("éCLAIR"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "1abc", Capitalize("1ABC"))
}

func TestResolve_ExplicitName(t *testing.T) {
	t.Run("ip literal is used as-is without lookups", func(t *testing.T) {
		lookup := &fakeLookup{}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "10.0.0.5", "Router")
		require.NoError(t, err)
		assert.Equal(t, Resolution{Name: "Router", IP: "10.0.0.5"}, res)
		assert.Zero(t, lookup.forwardCalls)
		assert.Zero(t, lookup.reverseCalls)
	})

	t.Run("hostname is forward-resolved", func(t *testing.T) {
		lookup := &fakeLookup{forward: map[string]string{"nas.lan": "192.168.1.20"}}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "nas.lan", "My NAS")
		require.NoError(t, err)
		assert.Equal(t, "My NAS", res.Name)
		assert.Equal(t, "192.168.1.20", res.IP)
		assert.Zero(t, lookup.reverseCalls)
	})

	t.Run("forward failure is reported but fields stay populated", func(t *testing.T) {
		r := NewResolver(&fakeLookup{}, nil)

		res, err := r.Resolve(context.Background(), "ghost.lan", "Ghost")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrResolve))
		assert.Equal(t, "Ghost", res.Name)
		assert.Equal(t, "ghost.lan", res.IP)
		assert.True(t, res.IPFallback)
	})
}

func TestResolve_IPLiteral(t *testing.T) {
	t.Run("reverse name becomes capitalized first label", func(t *testing.T) {
		lookup := &fakeLookup{reverse: map[string]string{"10.0.0.1": "GATEWAY.home.arpa"}}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "10.0.0.1", "")
		require.NoError(t, err)
		assert.Equal(t, Resolution{Name: "Gateway", IP: "10.0.0.1"}, res)
		assert.Zero(t, lookup.forwardCalls)
	})

	t.Run("reverse failure yields Unknown", func(t *testing.T) {
		r := NewResolver(&fakeLookup{}, nil)

		res, err := r.Resolve(context.Background(), "10.0.0.2", "")
		require.NoError(t, err)
		assert.Equal(t, UnknownName, res.Name)
		assert.Equal(t, "10.0.0.2", res.IP)
		assert.True(t, res.NameFallback)
	})

	t.Run("out-of-range literal still takes the IP path", func(t *testing.T) {
		lookup := &fakeLookup{}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "999.999.999.999", "")
		require.NoError(t, err)
		assert.Equal(t, "999.999.999.999", res.IP)
		assert.Equal(t, UnknownName, res.Name)
		assert.Zero(t, lookup.forwardCalls)
	})
}

func TestResolve_FQDN(t *testing.T) {
	t.Run("forward lookup succeeds", func(t *testing.T) {
		lookup := &fakeLookup{forward: map[string]string{"db01.example.com": "10.1.0.7"}}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "db01.example.com", "")
		require.NoError(t, err)
		assert.Equal(t, Resolution{Name: "Db01", IP: "10.1.0.7"}, res)
		assert.Zero(t, lookup.reverseCalls)
	})

	t.Run("forward failure falls back to the host token", func(t *testing.T) {
		r := NewResolver(&fakeLookup{}, nil)

		res, err := r.Resolve(context.Background(), "db02.example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "Db02", res.Name)
		assert.Equal(t, "db02.example.com", res.IP)
		assert.True(t, res.IPFallback)
	})
}

func TestResolve_ShortName(t *testing.T) {
	t.Run("forward then reverse", func(t *testing.T) {
		lookup := &fakeLookup{
			forward: map[string]string{"pi": "192.168.1.50"},
			reverse: map[string]string{"192.168.1.50": "raspberrypi.local"},
		}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "pi", "")
		require.NoError(t, err)
		assert.Equal(t, Resolution{Name: "Raspberrypi", IP: "192.168.1.50"}, res)
	})

	t.Run("failed forward lookup skips the reverse lookup", func(t *testing.T) {
		lookup := &fakeLookup{reverse: map[string]string{"pi": "should-not-matter"}}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "pi", "")
		require.NoError(t, err)
		assert.Equal(t, "pi", res.IP)
		assert.Equal(t, "Pi", res.Name)
		assert.True(t, res.NameFallback)
		assert.Zero(t, lookup.reverseCalls)
	})

	t.Run("both lookups fail", func(t *testing.T) {
		r := NewResolver(&fakeLookup{}, nil)

		res, err := r.Resolve(context.Background(), "BuildBox", "")
		require.NoError(t, err)
		assert.Equal(t, Resolution{Name: "Buildbox", IP: "BuildBox", NameFallback: true, IPFallback: true}, res)
	})

	t.Run("empty reverse record falls back", func(t *testing.T) {
		lookup := &fakeLookup{
			forward: map[string]string{"box": "10.9.9.9"},
			reverse: map[string]string{"10.9.9.9": "."},
		}
		r := NewResolver(lookup, nil)

		res, err := r.Resolve(context.Background(), "box", "")
		require.NoError(t, err)
		assert.Equal(t, "Box", res.Name)
		assert.True(t, res.NameFallback)
	})
}

func TestResolve_UnresolvableHostsDoNotWarn(t *testing.T) {
	// net reports "unrecognized address" for PTR queries on non-addresses,
	// which is not a not-found error.
	unrecognized := &net.DNSError{Err: "unrecognized address", Name: "x"}

	for _, h := range []string{"nosuchhost-zz9q", "999.1.1.1"} {
		t.Run(h, func(t *testing.T) {
			log := logger.NewBufferLogger()
			lookup := &fakeLookup{reverseErr: unrecognized}

			res, err := NewResolver(lookup, log).Resolve(context.Background(), h, "")
			require.NoError(t, err)
			assert.True(t, res.NameFallback)
			assert.Zero(t, lookup.reverseCalls)
			assert.False(t, log.HasLevel("warn"), "messages: %v", log.Messages)
		})
	}
}

func TestResolve_IsTotal(t *testing.T) {
	hosts := []string{"10.0.0.1", "999.1.1.1", "web.example.com", "web", "x"}
	names := []string{"", "Pretty"}
	lookups := []*fakeLookup{
		{},
		{failErr: stderrors.New("network is unreachable")},
	}

	for _, lookup := range lookups {
		for _, h := range hosts {
			for _, n := range names {
				res, err := NewResolver(lookup, nil).Resolve(context.Background(), h, n)
				assert.NotEmpty(t, res.Name, "name for %q/%q", h, n)
				assert.NotEmpty(t, res.IP, "ip for %q/%q", h, n)
				if err != nil {
					assert.NotEmpty(t, n, "only the explicit-name path may fail")
					assert.False(t, IsIP(h))
				}
			}
		}
	}
}

func TestResolve_LogsNotFoundQuietly(t *testing.T) {
	log := logger.NewBufferLogger()
	r := NewResolver(&fakeLookup{}, log)

	_, err := r.Resolve(context.Background(), "10.0.0.3", "")
	require.NoError(t, err)

	assert.True(t, log.HasLevel("debug"))
	assert.False(t, log.HasLevel("warn"))
}

func TestResolve_LogsOtherFailuresAsWarnings(t *testing.T) {
	log := logger.NewBufferLogger()
	r := NewResolver(&fakeLookup{failErr: stderrors.New("connection refused")}, log)

	_, err := r.Resolve(context.Background(), "web.example.com", "")
	require.NoError(t, err)

	require.True(t, log.HasLevel("warn"))
	assert.Contains(t, log.Messages[0].Message, "connection refused")
}
