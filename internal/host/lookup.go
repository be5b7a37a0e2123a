package host

import (
	"context"
	"net"
	"strings"
)

// Lookup performs forward (name to address) and reverse (address to name)
// resolution.
type Lookup interface {
	// LookupIPv4 returns the first IPv4 address of host.
	LookupIPv4(ctx context.Context, host string) (string, error)
	// LookupName returns the primary name of ip, without a trailing dot.
	LookupName(ctx context.Context, ip string) (string, error)
}

// netLookup resolves through a *net.Resolver (the system resolver by default).
type netLookup struct {
	resolver *net.Resolver
}

// NewNetLookup returns a Lookup backed by net.DefaultResolver.
func NewNetLookup() Lookup {
	return &netLookup{resolver: net.DefaultResolver}
}

func (l *netLookup) LookupIPv4(ctx context.Context, host string) (string, error) {
	ips, err := l.resolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", &net.DNSError{Err: "no IPv4 address", Name: host, IsNotFound: true}
	}
	return ips[0].String(), nil
}

func (l *netLookup) LookupName(ctx context.Context, ip string) (string, error) {
	names, err := l.resolver.LookupAddr(ctx, ip)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", &net.DNSError{Err: "no PTR record", Name: ip, IsNotFound: true}
	}
	return strings.TrimSuffix(names[0], "."), nil
}
