package authz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/icdc-io/rbac-go/internal/policy"
)

// Config contains options for the Authorizer.
type Config struct {
	// UseOperatorGroups delegates role resolution to Account.SubjectRole when
	// true. When false the raw role token is resolved directly against the
	// closed role set.
	UseOperatorGroups bool

	// Logger for structured decision logging. If nil, uses slog.Default().
	Logger *slog.Logger
}

// Authorizer evaluates one authorization attempt per call. It holds no
// mutable state, so a single value is safe for concurrent use by any number
// of request goroutines.
type Authorizer struct {
	store     *policy.Store
	accounts  AccountResolver
	useGroups bool
	logger    *slog.Logger
}

// New creates an Authorizer over the loaded policy and the host's account
// resolver.
func New(store *policy.Store, accounts AccountResolver, cfg Config) *Authorizer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Authorizer{
		store:     store,
		accounts:  accounts,
		useGroups: cfg.UseOperatorGroups,
		logger:    logger,
	}
}

// Authorize runs the ordered identity and permission checks for one request.
// The first failing check determines the outcome; on success the returned
// Subject carries the validated account, role and scope filters. No partial
// Subject is ever returned.
func (a *Authorizer) Authorize(ctx context.Context, creds Credentials, action string) (*Subject, error) {
	subject, err := a.authorize(ctx, creds, action)
	a.logDecision(creds, action, err)
	return subject, err
}

func (a *Authorizer) authorize(ctx context.Context, creds Credentials, action string) (*Subject, error) {
	if creds.AccountName == "" {
		return nil, ErrUnauthenticated("account name required")
	}

	account, err := a.accounts.GetByName(ctx, creds.AccountName)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrUnauthenticated("account not found")
		}
		return nil, fmt.Errorf("account lookup: %w", err)
	}

	if creds.RoleToken == "" {
		return nil, ErrUnauthenticated("role required")
	}

	role, err := a.resolveRole(ctx, account, creds.RoleToken)
	if err != nil {
		return nil, err
	}

	resource, permission, err := splitAction(action)
	if err != nil {
		return nil, err
	}

	pol := a.store.ResourcePolicies(role)
	rp, ok := pol[resource]
	if !ok || !rp.HasPermission(permission) {
		return nil, ErrForbidden(fmt.Sprintf("access to %s forbidden for role %s", action, role.Name))
	}

	return newSubject(account, role, creds.Owner, pol), nil
}

// resolveRole maps the raw token to a member of the closed role set. With
// operator groups enabled the account decides; either way membership in the
// role set is checked here, so accounts cannot mint roles the policy does
// not know.
func (a *Authorizer) resolveRole(ctx context.Context, account Account, token string) (policy.Role, error) {
	roles := a.store.Roles()

	if !a.useGroups {
		role, ok := roles.Resolve(token)
		if !ok {
			return policy.Role{}, ErrUnauthenticated("role not found")
		}
		return role, nil
	}

	role, err := account.SubjectRole(ctx, token, roles)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoleNotFound):
			return policy.Role{}, ErrUnauthenticated("role not found")
		case errors.Is(err, ErrRoleNotAllowed):
			return policy.Role{}, ErrForbidden(err.Error())
		}
		return policy.Role{}, fmt.Errorf("role resolution: %w", err)
	}
	if _, ok := roles[role.Name]; !ok {
		return policy.Role{}, ErrUnauthenticated("role not found")
	}
	return role, nil
}

// splitAction splits "resource.permission" on the last dot. A missing
// separator is a defect in the calling route table, not a bad request.
func splitAction(action string) (resource, permission string, err error) {
	i := strings.LastIndex(action, ".")
	if i <= 0 || i == len(action)-1 {
		return "", "", ErrConfigError(fmt.Sprintf("malformed action %q, want \"resource.permission\"", action))
	}
	return action[:i], action[i+1:], nil
}

func (a *Authorizer) logDecision(creds Credentials, action string, err error) {
	if err == nil {
		a.logger.Debug("authz allow",
			"account", creds.AccountName,
			"action", action,
		)
		return
	}
	a.logger.Info("authz deny",
		"account", creds.AccountName,
		"action", action,
		"code", ErrorCode(err),
		"reason", err.Error(),
	)
}
