package authz

import (
	"errors"
	"net/http"

	"github.com/icdc-io/rbac-go/internal/httpx"
)

// Request headers carrying the identity inputs. Populated by the upstream
// gateway; this layer trusts them and only checks authorization.
const (
	HeaderAccount = "X-Auth-Account"
	HeaderRole    = "X-Auth-Role"
	HeaderOwner   = "X-Auth-User"
)

// CredentialsFromRequest extracts the identity headers.
func CredentialsFromRequest(r *http.Request) Credentials {
	return Credentials{
		AccountName: r.Header.Get(HeaderAccount),
		RoleToken:   r.Header.Get(HeaderRole),
		Owner:       r.Header.Get(HeaderOwner),
	}
}

// Allow guards a route with the given action. On success the handler runs
// with the Subject attached to the request context; on rejection the
// middleware short-circuits with the rejection's status.
func (a *Authorizer) Allow(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := a.Authorize(r.Context(), CredentialsFromRequest(r), action)
			if err != nil {
				writeRejection(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
		})
	}
}

func writeRejection(w http.ResponseWriter, err error) {
	var e *Error
	if errors.As(err, &e) {
		httpx.WriteError(w, e.HTTPStatus(), e.Message)
		return
	}
	// resolver I/O failures and other foreign errors
	httpx.WriteError(w, http.StatusInternalServerError, "internal error")
}
