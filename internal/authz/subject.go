package authz

import (
	"fmt"

	"github.com/icdc-io/rbac-go/internal/policy"
)

// Subject is the authorized identity context for one request. It borrows the
// Account reference for the request's duration and holds a read-only view
// into the policy store; it is never retained past the request.
type Subject struct {
	Account     Account
	AccountID   int64
	AccountName string
	Role        policy.Role
	Owner       string

	policy map[string]policy.ResourcePolicy
}

func newSubject(account Account, role policy.Role, owner string, pol map[string]policy.ResourcePolicy) *Subject {
	return &Subject{
		Account:     account,
		AccountID:   account.ID(),
		AccountName: account.Name(),
		Role:        role,
		Owner:       owner,
		policy:      pol,
	}
}

// Filters derives the downstream scope filters declared for resource: each
// declared filter key is mapped to the live value of the named subject
// attribute. Callers are expected to pass a resource already validated by
// Authorize; an unknown resource or attribute name is a caller defect and
// returns a config error.
func (s *Subject) Filters(resource string) (map[string]any, error) {
	rp, ok := s.policy[resource]
	if !ok {
		return nil, ErrConfigError(fmt.Sprintf("no policy entry for resource %q", resource))
	}
	out := make(map[string]any, len(rp.Filters))
	for key, attr := range rp.Filters {
		v, ok := s.attr(attr)
		if !ok {
			return nil, ErrConfigError(fmt.Sprintf("unknown subject attribute %q in filter %q", attr, key))
		}
		out[key] = v
	}
	return out, nil
}

// attr is the closed accessor table for filter attributes. Names follow the
// config document's snake_case convention.
func (s *Subject) attr(name string) (any, bool) {
	switch name {
	case "account":
		return s.Account, true
	case "account_id":
		return s.AccountID, true
	case "account_name":
		return s.AccountName, true
	case "role":
		return s.Role.Value, true
	case "owner":
		return s.Owner, true
	}
	return nil, false
}

func (s *Subject) String() string {
	return fmt.Sprintf("Subject(role=%s, account_id=%d, account_name=%s)",
		s.Role.Name, s.AccountID, s.AccountName)
}
