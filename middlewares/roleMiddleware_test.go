package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

func requestWithRole(role string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if role == "" {
		return r
	}
	ctx := context.WithValue(r.Context(), RoleKey, role)
	ctx = context.WithValue(ctx, CafeIDKey, "cafe-1")
	return r.WithContext(ctx)
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"no identity", "", []string{models.RoleAdmin}, http.StatusUnauthorized},
		{"role not allowed", models.RoleKitchen, []string{models.RoleAdmin, models.RoleManager}, http.StatusForbidden},
		{"role allowed", models.RoleManager, []string{models.RoleAdmin, models.RoleManager}, http.StatusOK},
		{"super admin allowed", models.RoleSuperAdmin, []string{models.RoleSuperAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := Authorize(tt.allowed...)(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			handler(rec, requestWithRole(tt.role))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if (tt.wantCode == http.StatusOK) != called {
				t.Errorf("handler called = %v with status %d", called, rec.Code)
			}
		})
	}
}
