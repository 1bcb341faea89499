package userControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Malformed ids and missing fields must be rejected before any store call, so
// these routes run against a nil collection: reaching the store would panic.
func TestUserValidationShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/users", CreateUser(nil))
	r.PATCH("/users/admin/:id", PromoteToAdmin(nil))
	r.DELETE("/users/:id", DeleteUser(nil))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create missing email", http.MethodPost, "/users", `{"displayName":"Ann"}`},
		{"create missing displayName", http.MethodPost, "/users", `{"email":"ann@x.com"}`},
		{"create invalid json", http.MethodPost, "/users", `{`},
		{"promote malformed id", http.MethodPatch, "/users/admin/not-hex", ``},
		{"promote short id", http.MethodPatch, "/users/admin/abc123", ``},
		{"delete malformed id", http.MethodDelete, "/users/not-hex", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
