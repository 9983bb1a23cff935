package server

import (
	"net/http"

	"github.com/icdc-io/rbac-go/internal/authz"
	"github.com/icdc-io/rbac-go/internal/httpx"
)

// The demo handlers echo the authorized subject and its scope filters so the
// guard chain can be exercised end to end with curl.

func listUsers(w http.ResponseWriter, r *http.Request) {
	subject, ok := authz.SubjectFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusInternalServerError, "no subject in context")
		return
	}
	filters, err := subject.Filters("users")
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "filter derivation failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"account": subject.AccountName,
		"role":    subject.Role.Name,
		"filters": filters,
	})
}

func createUser(w http.ResponseWriter, r *http.Request) {
	subject, ok := authz.SubjectFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusInternalServerError, "no subject in context")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"created_by": subject.AccountName,
		"owner":      subject.Owner,
	})
}
