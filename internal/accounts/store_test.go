package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/icdc-io/rbac-go/internal/authz"
	"github.com/icdc-io/rbac-go/internal/policy"
)

func testRoles(t *testing.T) policy.RoleSet {
	t.Helper()
	store, err := policy.Parse([]byte("roles:\n  admin: {}\n  viewer: {}\n"))
	if err != nil {
		t.Fatalf("parse policy: %v", err)
	}
	return store.Roles()
}

func TestMemoryStore_GetByName(t *testing.T) {
	s := NewMemoryStore()
	added := s.Add("alice")

	got, err := s.GetByName(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if got.ID() != added.ID() || got.Name() != "alice" {
		t.Fatalf("got %d/%s", got.ID(), got.Name())
	}
	if added.UID() == "" {
		t.Fatal("account UID is empty")
	}

	if _, err := s.GetByName(context.Background(), "mallory"); !errors.Is(err, authz.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestAccount_SubjectRole(t *testing.T) {
	roles := testRoles(t)
	s := NewMemoryStore()
	unrestricted := s.Add("alice")
	restricted := s.Add("bob", "viewer")

	role, err := unrestricted.SubjectRole(context.Background(), "Admin", roles)
	if err != nil {
		t.Fatalf("SubjectRole error: %v", err)
	}
	if role.Name != "ADMIN" {
		t.Fatalf("role = %+v", role)
	}

	if _, err := unrestricted.SubjectRole(context.Background(), "root", roles); !errors.Is(err, authz.ErrRoleNotFound) {
		t.Fatalf("err = %v, want ErrRoleNotFound", err)
	}

	if _, err := restricted.SubjectRole(context.Background(), "admin", roles); !errors.Is(err, authz.ErrRoleNotAllowed) {
		t.Fatalf("err = %v, want ErrRoleNotAllowed", err)
	}
	if role, err := restricted.SubjectRole(context.Background(), "viewer", roles); err != nil || role.Name != "VIEWER" {
		t.Fatalf("viewer: role=%+v err=%v", role, err)
	}
}

func TestMemoryStore_AddReplaces(t *testing.T) {
	s := NewMemoryStore()
	first := s.Add("alice")
	second := s.Add("alice", "ADMIN")

	got, err := s.GetByName(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if got.ID() == first.ID() || got.ID() != second.ID() {
		t.Fatalf("id = %d, want replacement %d", got.ID(), second.ID())
	}
}
