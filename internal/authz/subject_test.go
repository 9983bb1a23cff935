package authz

import (
	"context"
	"testing"

	"github.com/icdc-io/rbac-go/internal/policy"
)

func testSubject(t *testing.T, doc string, owner string) *Subject {
	t.Helper()
	store, err := policy.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse policy: %v", err)
	}
	role, ok := store.Roles().Resolve("admin")
	if !ok {
		t.Fatal("admin role missing from test policy")
	}
	account := &mockAccount{id: 7, name: "alice"}
	return newSubject(account, role, owner, store.ResourcePolicies(role))
}

func TestSubjectFilters(t *testing.T) {
	s := testSubject(t, `
roles:
  admin:
    users:
      permissions: [read]
      filters:
        owner_id: owner
        actor: account_name
    reports:
      permissions: [read]
`, "carol")

	filters, err := s.Filters("users")
	if err != nil {
		t.Fatalf("Filters error: %v", err)
	}
	if len(filters) != 2 {
		t.Fatalf("filters = %v, want 2 keys", filters)
	}
	if filters["owner_id"] != "carol" {
		t.Fatalf("owner_id = %v, want carol", filters["owner_id"])
	}
	if filters["actor"] != "alice" {
		t.Fatalf("actor = %v, want alice", filters["actor"])
	}

	// a resource with no filter spec yields an empty mapping
	empty, err := s.Filters("reports")
	if err != nil {
		t.Fatalf("Filters error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("reports filters = %v, want none", empty)
	}
}

func TestSubjectFilters_AllAttributes(t *testing.T) {
	s := testSubject(t, `
roles:
  admin:
    audit:
      permissions: [read]
      filters:
        by_id: account_id
        by_name: account_name
        by_role: role
        by_owner: owner
`, "carol")

	filters, err := s.Filters("audit")
	if err != nil {
		t.Fatalf("Filters error: %v", err)
	}
	if filters["by_id"] != int64(7) {
		t.Fatalf("by_id = %v", filters["by_id"])
	}
	if filters["by_name"] != "alice" {
		t.Fatalf("by_name = %v", filters["by_name"])
	}
	if filters["by_role"] != "admin" {
		t.Fatalf("by_role = %v", filters["by_role"])
	}
	if filters["by_owner"] != "carol" {
		t.Fatalf("by_owner = %v", filters["by_owner"])
	}
}

func TestSubjectFilters_CallerDefects(t *testing.T) {
	s := testSubject(t, `
roles:
  admin:
    users:
      permissions: [read]
      filters:
        owner_id: no_such_attribute
`, "")

	if _, err := s.Filters("unknown"); ErrorCode(err) != ErrCodeConfig {
		t.Fatalf("unknown resource: err = %v, want config error", err)
	}
	if _, err := s.Filters("users"); ErrorCode(err) != ErrCodeConfig {
		t.Fatalf("unknown attribute: err = %v, want config error", err)
	}
}

func TestSubjectString(t *testing.T) {
	a := newTestAuthorizer(t, Config{UseOperatorGroups: true})
	subject, err := a.Authorize(context.Background(),
		Credentials{AccountName: "alice", RoleToken: "admin"}, "users.read")
	if err != nil {
		t.Fatalf("Authorize error: %v", err)
	}
	want := "Subject(role=ADMIN, account_id=1, account_name=alice)"
	if got := subject.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
