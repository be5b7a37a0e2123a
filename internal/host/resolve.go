package host

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/rileyhilliard/ssh-connect/internal/logger"
)

// UnknownName is the display name used when an IP literal has no reverse record.
const UnknownName = "Unknown"

// ipShape matches four dot-separated groups of 1-3 digits. Octet ranges are
// not checked: it only picks the resolution strategy.
var ipShape = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,3}){3}$`)

// IsIP reports whether s looks like a dotted-quad IPv4 literal.
func IsIP(s string) bool {
	return ipShape.MatchString(s)
}

// Resolution is the display name and connection address for a host token.
// Both fields are always set, whether or not the lookups behind them worked.
type Resolution struct {
	Name string
	IP   string

	// NameFallback and IPFallback mark values that came from a declared
	// fallback instead of a successful lookup.
	NameFallback bool
	IPFallback   bool
}

// Step is the outcome of a single lookup: the looked-up value, or the
// fallback declared for it together with the reason it was needed.
type Step struct {
	Value    string
	Fallback bool
	Err      error
}

// Resolver turns host tokens into Resolutions. Lookups are blocking and
// bounded only by ctx; there is no internal timeout.
type Resolver struct {
	lookup Lookup
	log    logger.Logger
}

// NewResolver creates a Resolver. A nil lookup uses the system resolver and a
// nil log discards messages.
func NewResolver(lookup Lookup, log logger.Logger) *Resolver {
	if lookup == nil {
		lookup = NewNetLookup()
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Resolver{lookup: lookup, log: log}
}

// Resolve produces the display name and address for host.
//
// An explicit name is used verbatim. Otherwise the name comes from the
// reverse record or the host token itself, depending on whether host is an
// IP literal, an FQDN or a short hostname. Every failed lookup degrades to
// its fallback; the single exception is a non-IP host with an explicit name
// whose forward lookup fails, which returns an ErrResolve error alongside a
// Resolution that still carries host as its address.
func (r *Resolver) Resolve(ctx context.Context, host, name string) (Resolution, error) {
	if name != "" {
		res := Resolution{Name: name, IP: host}
		if IsIP(host) {
			return res, nil
		}
		ip, err := r.lookup.LookupIPv4(ctx, host)
		if err != nil {
			res.IPFallback = true
			return res, errors.WrapWithCode(err, errors.ErrResolve,
				fmt.Sprintf("Can't resolve %s (%s)", host, name),
				"Check the hostname, or put its IP address in the hosts file.")
		}
		res.IP = ip
		return res, nil
	}

	if IsIP(host) {
		rev := r.reverse(ctx, host, UnknownName)
		return Resolution{
			Name:         rev.Value,
			IP:           host,
			NameFallback: rev.Fallback,
		}, nil
	}

	fwd := r.forward(ctx, host, host)

	if strings.Contains(host, ".") {
		return Resolution{
			Name:       Capitalize(firstLabel(host)),
			IP:         fwd.Value,
			IPFallback: fwd.Fallback,
		}, nil
	}

	rev := r.reverse(ctx, fwd.Value, Capitalize(host))
	return Resolution{
		Name:         rev.Value,
		IP:           fwd.Value,
		NameFallback: rev.Fallback,
		IPFallback:   fwd.Fallback,
	}, nil
}

// forward resolves host to an IPv4 address, or returns fallback.
func (r *Resolver) forward(ctx context.Context, host, fallback string) Step {
	ip, err := r.lookup.LookupIPv4(ctx, host)
	if err != nil {
		r.logFallback("forward", host, fallback, err)
		return Step{Value: fallback, Fallback: true, Err: err}
	}
	return Step{Value: ip}
}

// reverse resolves ip to the capitalized first label of its name, or
// returns fallback.
func (r *Resolver) reverse(ctx context.Context, ip, fallback string) Step {
	// A failed forward lookup or a literal like 999.1.1.1 leaves nothing a
	// PTR query could answer.
	if net.ParseIP(ip) == nil {
		r.log.Debug("reverse lookup of %q skipped: not an address, using %q", ip, fallback)
		return Step{Value: fallback, Fallback: true}
	}
	name, err := r.lookup.LookupName(ctx, ip)
	if err == nil && firstLabel(name) == "" {
		err = &net.DNSError{Err: "empty reverse record", Name: ip, IsNotFound: true}
	}
	if err != nil {
		r.logFallback("reverse", ip, fallback, err)
		return Step{Value: fallback, Fallback: true, Err: err}
	}
	return Step{Value: Capitalize(firstLabel(name))}
}

// logFallback keeps "no such record" quiet but surfaces every other resolver
// failure, since those usually mean the network or resolver config is broken.
func (r *Resolver) logFallback(kind, target, fallback string, err error) {
	if isNotFound(err) {
		r.log.Debug("%s lookup of %q found nothing, using %q", kind, target, fallback)
		return
	}
	r.log.Warn("%s lookup of %q failed: %v (using %q)", kind, target, err, fallback)
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) {
		return dnsErr.IsNotFound
	}
	return false
}

func firstLabel(name string) string {
	name = strings.TrimSuffix(name, ".")
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Capitalize upper-cases the first character of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
