//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/internal/pkg/cookie"
	"rifas-api/internal/usecase/queries"
	"rifas-api/tests/common/dbtest"
	"rifas-api/tests/common/httptest"
	"rifas-api/tests/e2e"
	"rifas-api/tests/e2e/common/helper"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("registers a new organizer", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			map[string]any{"email": "maria@example.com", "name": "Maria", "password": helper.TestPassword}, "")

		var resp resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.NotEmpty(resp.ID)
	})

	s.Run("rejects a duplicate email", func() {
		helper.RegisterUser(s.T(), s.Router, "maria@example.com", "Maria")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			map[string]any{"email": "maria@example.com", "name": "Other Maria", "password": helper.TestPassword}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("rejects a short password", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			map[string]any{"email": "maria@example.com", "name": "Maria", "password": "short"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *authSuite) TestLogin() {
	s.Run("returns tokens for valid credentials", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "maria@example.com", "Maria")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "maria@example.com", "password": helper.TestPassword}, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.NotEmpty(resp.AccessToken)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
		s.NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
	})

	s.Run("rejects a wrong password", func() {
		helper.RegisterUser(s.T(), s.Router, "maria@example.com", "Maria")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "maria@example.com", "password": "wrong-password"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("rejects an unknown email", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "nobody@example.com", "password": helper.TestPassword}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("issues a fresh token pair from the refresh cookie", func() {
		helper.RegisterUser(s.T(), s.Router, "maria@example.com", "Maria")

		loginRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "maria@example.com", "password": helper.TestPassword}, "")
		s.Require().Equal(http.StatusOK, loginRec.Code)
		refreshCookie := httptest.ExtractCookie(loginRec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshCookie)

		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL,
			nil, []*http.Cookie{refreshCookie}, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.NotEmpty(resp.AccessToken)
	})

	s.Run("rejects a missing refresh cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestMeAndLogout() {
	s.Run("returns the authenticated user", func() {
		token := helper.RegisterAndLogin(s.T(), s.Router, "maria@example.com", "Maria")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &me)
		s.Equal("maria@example.com", me.Email)
	})

	s.Run("rejects a missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("logout clears the auth cookies", func() {
		token := helper.RegisterAndLogin(s.T(), s.Router, "maria@example.com", "Maria")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		cleared := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(cleared)
		s.Less(cleared.MaxAge, 0)
	})
}
