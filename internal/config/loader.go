package config

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/rileyhilliard/ssh-connect/internal/host"
	"gopkg.in/yaml.v3"
)

// Resolver attaches a display name and address to a host token.
// *host.Resolver is the production implementation.
type Resolver interface {
	Resolve(ctx context.Context, hostToken, name string) (host.Resolution, error)
}

// Load reads the hosts file at path, resolves every entry and returns them
// ordered by mode. Any structural problem with the file is an ErrConfig
// error; DNS problems degrade to fallbacks inside the resolver.
func Load(ctx context.Context, path string, mode SortMode, resolver Resolver) ([]ResolvedHost, error) {
	specs, err := ReadHostsFile(path)
	if err != nil {
		return nil, err
	}
	return ResolveAll(ctx, specs, mode, resolver)
}

// ReadHostsFile reads and parses the hosts file at path.
func ReadHostsFile(path string) ([]HostSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("Hosts file not found: %s", path),
				"Create it, or point SSH_CONNECT_HOSTS_FILE (or --hosts-file) at an existing file.")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't read %s", path),
			"Check that the file is readable.")
	}
	return Parse(data, path)
}

// Parse decodes hosts-file YAML. source names the file in error messages.
//
// The document must be a list of mappings, each with a non-empty "host".
// A blank document is an empty list. Unknown keys are ignored.
func Parse(data []byte, source string) ([]HostSpec, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []HostSpec{}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid YAML in %s", source),
			"Fix the syntax error above.")
	}

	// A file with only comments decodes to an empty node.
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return []HostSpec{}, nil
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		doc = doc.Content[0]
	}
	if doc.Kind == yaml.ScalarNode && doc.Tag == "!!null" {
		return []HostSpec{}, nil
	}
	if doc.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("%s must contain a YAML list", source),
			"Write one '- host: ...' entry per machine.")
	}

	specs := make([]HostSpec, 0, len(doc.Content))
	for i, item := range doc.Content {
		spec, err := decodeEntry(item, i, source)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func decodeEntry(node *yaml.Node, index int, source string) (HostSpec, error) {
	pos := fmt.Sprintf("%s: entry %d (line %d)", source, index+1, node.Line)

	if node.Kind != yaml.MappingNode {
		return HostSpec{}, errors.New(errors.ErrConfig,
			pos+" is not a mapping",
			"Each entry needs at least 'host: <address>'.")
	}

	var spec HostSpec
	if err := node.Decode(&spec); err != nil {
		return HostSpec{}, errors.WrapWithCode(err, errors.ErrConfig,
			pos+" has an invalid value",
			"'port' must be a number and 'skip_key_setup' true or false.")
	}

	if spec.Host == "" {
		return HostSpec{}, errors.New(errors.ErrConfig,
			pos+" is missing required field 'host'",
			"Add 'host: <ip or hostname>' to the entry.")
	}

	if spec.Port == 0 {
		spec.Port = DefaultPort
	}
	if spec.Port < 1 || spec.Port > 65535 {
		return HostSpec{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("%s has port %d out of range", pos, spec.Port),
			"Use a port between 1 and 65535, or leave it out for 22.")
	}

	return spec, nil
}

// ResolveAll resolves every spec and sorts the result. A failed forward lookup
// for an entry with an explicit name is fatal, since there is no address to
// fall back to that DNS could not already find.
func ResolveAll(ctx context.Context, specs []HostSpec, mode SortMode, resolver Resolver) ([]ResolvedHost, error) {
	hosts := make([]ResolvedHost, 0, len(specs))

	for _, spec := range specs {
		res, err := resolver.Resolve(ctx, spec.Host, spec.Name)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Can't resolve '%s'", spec.Host),
				"Fix the hostname or use an IP address for this entry.")
		}
		hosts = append(hosts, ResolvedHost{
			HostSpec:     spec,
			ResolvedName: res.Name,
			ResolvedIP:   res.IP,
		})
	}

	SortHosts(hosts, mode)
	return hosts, nil
}
