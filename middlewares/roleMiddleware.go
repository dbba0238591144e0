package middleware

import (
	"net/http"
)

// Authorize gates a handler behind a static role allow-list. A request
// with no identity in context gets 401; an identified caller whose role
// is not on the list gets 403.
func Authorize(allowedRoles ...string) func(http.HandlerFunc) http.HandlerFunc {
	allowed := make(map[string]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			role, _ := GetRoleFromContext(r)
			if role == "" {
				http.Error(w, `{"success": false, "message": "Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			if !allowed[role] {
				http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
				return
			}
			next(w, r)
		}
	}
}
