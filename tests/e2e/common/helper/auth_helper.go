//go:build e2e

package helper

import (
	"net/http"
	"testing"

	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestPassword satisfies the registration minimum length.
const TestPassword = "password123"

func RegisterUser(t *testing.T, router *gin.Engine, email, name string) uuid.UUID {
	t.Helper()

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		map[string]any{"email": email, "name": name, "password": TestPassword}, "")
	require.Equal(t, http.StatusCreated, rec.Code, "registration failed: %s", rec.Body.String())

	var resp resdto.RegisterResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &resp)
	return resp.ID
}

func Login(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		map[string]any{"email": email, "password": TestPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var resp resdto.LoginResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func RegisterAndLogin(t *testing.T, router *gin.Engine, email, name string) string {
	t.Helper()

	RegisterUser(t, router, email, name)
	return Login(t, router, email)
}
