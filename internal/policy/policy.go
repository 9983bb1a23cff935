package policy

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load when the config file does not exist.
// Distinct from parse failures so callers can report a clearer startup error.
var ErrNotFound = errors.New("policy config file not found")

// ResourcePolicy is one role/resource entry of the config document.
type ResourcePolicy struct {
	// Permissions holds the allowed permission names, matched case-sensitively.
	Permissions []string `yaml:"permissions"`
	// Filters maps a downstream filter key (e.g. "owner_id") to the name of
	// the subject attribute whose runtime value scopes the query.
	Filters map[string]string `yaml:"filters"`
}

// HasPermission reports whether name is in the permission list (exact match).
func (rp ResourcePolicy) HasPermission(name string) bool {
	for _, p := range rp.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// Role is one entry of the closed role set. Name is the uppercased form used
// for membership checks and diagnostics; Value is the original config key used
// for policy lookup.
type Role struct {
	Name  string
	Value string
}

// RoleSet is the closed set of valid roles, keyed by uppercased name.
// Fixed at load time; unknown tokens are rejected, never added.
type RoleSet map[string]Role

// Resolve maps a raw role token to its canonical Role, case-insensitively.
func (rs RoleSet) Resolve(token string) (Role, bool) {
	r, ok := rs[strings.ToUpper(token)]
	return r, ok
}

// Names returns the role names in sorted order.
func (rs RoleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for n := range rs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type document struct {
	Roles map[string]map[string]ResourcePolicy `yaml:"roles"`
}

// Store holds the parsed role policy. Immutable after Load/Parse, so it is
// safe for concurrent reads from any number of request goroutines.
type Store struct {
	roles  RoleSet
	policy map[string]map[string]ResourcePolicy
}

// Load reads and parses the policy document at path.
// Returns ErrNotFound (wrapped) when the file is missing.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read policy config %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse policy config %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a Store from a raw policy document.
// An empty or absent "roles" mapping yields an empty role set; every
// subsequent role resolution will then fail, which is the safe default.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	roles := make(RoleSet, len(doc.Roles))
	for value := range doc.Roles {
		name := strings.ToUpper(value)
		if prev, ok := roles[name]; ok {
			return nil, fmt.Errorf("role names %q and %q collide as %q", prev.Value, value, name)
		}
		roles[name] = Role{Name: name, Value: value}
	}
	if len(roles) == 0 {
		slog.Warn("policy loaded with empty role set, all requests will be rejected")
	}

	return &Store{roles: roles, policy: doc.Roles}, nil
}

// Roles returns the closed role set derived from the config keys.
func (s *Store) Roles() RoleSet { return s.roles }

// ResourcePolicies returns the per-resource entries for role.
// The map is a read-only view into the store, never nil. A role with no
// entries gets an empty map, which is distinct from an unknown role.
func (s *Store) ResourcePolicies(role Role) map[string]ResourcePolicy {
	if p, ok := s.policy[role.Value]; ok && p != nil {
		return p
	}
	return map[string]ResourcePolicy{}
}

// Describe renders the loaded policy back as YAML for diagnostics.
func (s *Store) Describe() string {
	out, err := yaml.Marshal(document{Roles: s.policy})
	if err != nil {
		return fmt.Sprintf("policy: %d roles", len(s.roles))
	}
	return string(out)
}
