package config

// DefaultPort is used when a host entry doesn't set one.
const DefaultPort = 22

// HostSpec is one entry of the hosts file.
//
// Example YAML:
//
//   - host: 192.168.1.10
//     name: NAS
//     user: admin
//     port: 2222
//   - host: build01.example.com
//     skip_key_setup: true
//   - host: router
//     password: hunter2
type HostSpec struct {
	// Host is an IPv4 literal, an FQDN or a short hostname. Required.
	Host string `yaml:"host"`
	// Name overrides the display name derived from DNS.
	Name string `yaml:"name,omitempty"`
	User string `yaml:"user,omitempty"`
	Port int    `yaml:"port,omitempty"`
	// Password is read in plain text and handed to sshpass when available.
	Password string `yaml:"password,omitempty"`
	// SkipKeySetup suppresses the "upload a key?" prompt for this host.
	SkipKeySetup bool `yaml:"skip_key_setup,omitempty"`
}

// ResolvedHost is a HostSpec with its display name and connection address
// attached. Both resolved fields are always non-empty after Load.
type ResolvedHost struct {
	HostSpec
	ResolvedName string
	ResolvedIP   string
}

// HasPassword reports whether the entry carries a non-empty password.
func (h ResolvedHost) HasPassword() bool {
	return h.Password != ""
}
