// Package authz enforces role-based access control on HTTP requests.
//
// The Authorizer is the single entry point for authorization decisions: it
// resolves the account named in the request metadata, maps the role token to
// a member of the policy's closed role set, checks the requested
// "resource.permission" action, and on success yields a Subject carrying the
// validated identity and its scope filters.
//
// # Outcomes
//
// Rejections are typed:
//   - authz.unauthenticated (401): missing account name or role token,
//     unknown account, or a role token outside the closed role set
//   - authz.forbidden (403): identity resolved but the role lacks the
//     requested permission, or the account may not assume the role
//   - authz.config_error (500): malformed action string or other defects in
//     calling code
//
// # Usage
//
//	store, err := policy.Load("rbac.yaml")
//	a := authz.New(store, accounts, authz.Config{UseOperatorGroups: true})
//
//	r.Route("/users", func(r chi.Router) {
//		r.With(a.Allow("users.read")).Get("/", listUsers)
//	})
//
// Handlers read the subject back with SubjectFromContext and apply its
// Filters to scope data access.
//
// # Thread safety
//
// Authorizer and the underlying policy.Store are immutable after
// construction and safe for concurrent use.
package authz
