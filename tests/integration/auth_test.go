package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/middleware"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/tests/helpers"
)

func protectedProbe(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	reached := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return middleware.ClerkAuthMiddleware(inner), &reached
}

func TestClerkAuthMiddleware_MissingHeader(t *testing.T) {
	handler, reached := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *reached)
}

func TestClerkAuthMiddleware_MalformedHeader(t *testing.T) {
	handler, reached := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
	req.Header.Set("Authorization", "Token abc123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *reached)
}

func TestClerkAuthMiddleware_ForgedToken(t *testing.T) {
	handler, reached := protectedProbe(t)

	// Signed with a key Clerk never issued, so verification must fail.
	token, err := helpers.GenerateMockClerkJWT("user_forged")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *reached)
}
