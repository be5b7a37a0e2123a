package config

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rileyhilliard/ssh-connect/internal/host"
)

// SortMode selects how resolved hosts are ordered.
type SortMode string

const (
	// SortByIP orders by dotted-quad address. The default.
	SortByIP SortMode = "ip"
	// SortByName orders by display name, ignoring case.
	SortByName SortMode = "name"
)

// ParseSortMode maps a user-supplied string to a SortMode. Only "name"
// (any case, surrounding whitespace ignored) selects name ordering; anything
// else falls back to SortByIP.
func ParseSortMode(s string) SortMode {
	if strings.ToLower(strings.TrimSpace(s)) == string(SortByName) {
		return SortByName
	}
	return SortByIP
}

// nonIPKey sorts after every IP-shaped address: octets have at most three
// digits, so no literal can reach 1000.
var nonIPKey = [4]int{1000, 1000, 1000, 1000}

// IPSortKey returns the numeric tuple used to order addresses.
func IPSortKey(ip string) [4]int {
	if !host.IsIP(ip) {
		return nonIPKey
	}
	var key [4]int
	for i, part := range strings.Split(ip, ".") {
		n, _ := strconv.Atoi(part)
		key[i] = n
	}
	return key
}

func lessKey(a, b [4]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// SortHosts orders hosts in place by mode. The sort is stable, so entries
// with equal keys keep their file order.
func SortHosts(hosts []ResolvedHost, mode SortMode) {
	if mode == SortByName {
		sort.SliceStable(hosts, func(i, j int) bool {
			return strings.ToLower(hosts[i].ResolvedName) < strings.ToLower(hosts[j].ResolvedName)
		})
		return
	}

	sort.SliceStable(hosts, func(i, j int) bool {
		return lessKey(IPSortKey(hosts[i].ResolvedIP), IPSortKey(hosts[j].ResolvedIP))
	})
}
