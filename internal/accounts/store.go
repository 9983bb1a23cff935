// Package accounts provides an in-memory AccountResolver used by the demo
// server and tests. Production deployments supply their own resolver backed
// by real account storage.
package accounts

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/icdc-io/rbac-go/internal/authz"
	"github.com/icdc-io/rbac-go/internal/policy"
)

// Account is one provisioned account. AllowedRoles lists the role names
// (uppercased) the account may assume; empty means any role in the set.
type Account struct {
	id           int64
	uid          string
	name         string
	allowedRoles map[string]bool
}

func (a *Account) ID() int64    { return a.id }
func (a *Account) Name() string { return a.name }

// UID is an opaque identifier for audit trails, stable across renames.
func (a *Account) UID() string { return a.uid }

func (a *Account) SubjectRole(_ context.Context, token string, roles policy.RoleSet) (policy.Role, error) {
	role, ok := roles.Resolve(token)
	if !ok {
		return policy.Role{}, authz.ErrRoleNotFound
	}
	if len(a.allowedRoles) > 0 && !a.allowedRoles[role.Name] {
		return policy.Role{}, authz.ErrRoleNotAllowed
	}
	return role, nil
}

// MemoryStore is a mutexed account registry.
type MemoryStore struct {
	mu     sync.RWMutex
	byName map[string]*Account
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byName: make(map[string]*Account)}
}

// Add registers an account. Re-adding a name replaces the earlier record.
func (s *MemoryStore) Add(name string, allowedRoles ...string) *Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	a := &Account{
		id:   s.nextID,
		uid:  uuid.NewString(),
		name: name,
	}
	if len(allowedRoles) > 0 {
		a.allowedRoles = make(map[string]bool, len(allowedRoles))
		for _, r := range allowedRoles {
			a.allowedRoles[strings.ToUpper(r)] = true
		}
	}
	s.byName[name] = a
	return a
}

func (s *MemoryStore) GetByName(_ context.Context, name string) (authz.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byName[name]
	if !ok {
		return nil, authz.ErrAccountNotFound
	}
	return a, nil
}
