package authz

import (
	"context"
	"errors"

	"github.com/icdc-io/rbac-go/internal/policy"
)

// ErrAccountNotFound is returned by AccountResolver.GetByName for unknown names.
var ErrAccountNotFound = errors.New("account not found")

// ErrRoleNotFound is returned by Account.SubjectRole when the token does not
// map to any known role. Maps to an unauthenticated rejection.
var ErrRoleNotFound = errors.New("role not found")

// ErrRoleNotAllowed is returned by Account.SubjectRole when the token maps to
// a known role the account may not assume. Maps to a forbidden rejection.
var ErrRoleNotAllowed = errors.New("role not allowed for account")

// Account is the minimal contract the authorizer needs from the host's
// account record. Implementations are supplied by the host (database row,
// in-memory fixture, remote call).
type Account interface {
	ID() int64
	Name() string

	// SubjectRole maps a raw role token to a member of roles for this
	// account. Implementations return ErrRoleNotFound for unknown tokens and
	// ErrRoleNotAllowed when the account may not assume the resolved role.
	SubjectRole(ctx context.Context, token string, roles policy.RoleSet) (policy.Role, error)
}

// AccountResolver looks up accounts by name. The lookup may block on external
// storage; the request context is passed through for cancellation.
type AccountResolver interface {
	GetByName(ctx context.Context, name string) (Account, error)
}

// Credentials are the identity inputs extracted from request metadata.
// All three fields are optional at the transport level; Authorize decides
// which absences are fatal.
type Credentials struct {
	AccountName string
	RoleToken   string
	Owner       string // acting-on-behalf-of identifier, may be empty
}
