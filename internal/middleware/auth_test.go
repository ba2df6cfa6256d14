package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/team-dao/internal/service"
)

func TestAuthMiddleware(t *testing.T) {
	auth := service.NewAuthService("test-secret", time.Hour, clockwork.NewFakeClock())
	token, err := auth.Login("alice")
	require.NoError(t, err)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := AuthMiddleware(auth)(next)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUser   string
	}{
		{name: "valid token", header: "Bearer " + token, expectedStatus: http.StatusNoContent, expectedUser: "alice"},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/team/get", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedUser, seen)

			if tt.expectedStatus == http.StatusUnauthorized {
				var body errorBody
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
			}
		})
	}
}
