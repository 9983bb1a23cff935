package authz

import "context"

type subjectCtxKey struct{}

// ContextWithSubject attaches the authorized subject to ctx.
func ContextWithSubject(ctx context.Context, s *Subject) context.Context {
	return context.WithValue(ctx, subjectCtxKey{}, s)
}

// SubjectFromContext retrieves the subject attached by the middleware.
func SubjectFromContext(ctx context.Context) (*Subject, bool) {
	s, ok := ctx.Value(subjectCtxKey{}).(*Subject)
	return s, ok
}
