//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/handler/dto/request"
	"charter-booking/internal/handler/dto/response"
	"charter-booking/internal/pkg/cookie"
	"charter-booking/tests/common/authtest"
	"charter-booking/tests/common/builder"
	"charter-booking/tests/common/dbtest"
	"charter-booking/tests/common/httptest"
	"charter-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestCustomer(s.T(), s.DB, "angler@example.com", customer.RoleCustomer.String())
}

func (s *authSuite) TestRegister() {
	s.Run("register creates an account and signs in", func() {
		t := s.T()
		reqBody := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) {
			a.Email = "New.Angler@Example.com"
		}).BuildRegisterDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")

		var res response.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "new.angler@example.com", res.User.Email)
		require.Equal(t, "customer", res.User.Role)

		authCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, authCookie)

		me := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, []*http.Cookie{authCookie}, "")
		var user response.UserResponse
		httptest.AssertSuccessResponse(t, me, http.StatusOK, &user)
		require.Equal(t, res.User.ID, user.ID)
	})

	s.Run("registering a taken email is a conflict", func() {
		t := s.T()
		reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email is already registered")
	})

	s.Run("guest customer without password can claim the email", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(),
			"INSERT INTO customers (id, email, name) VALUES ($1, 'guest@example.com', 'Guest Booker')", uuid.New())
		require.NoError(t, err)

		reqBody := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) {
			a.Email = "guest@example.com"
		}).BuildRegisterDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		token := authtest.LoginUser(t, s.Router, "guest@example.com", reqBody.Password)
		require.NotEmpty(t, token)
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{"valid credentials", "angler@example.com", "password123", http.StatusOK},
		{"email is case insensitive", "ANGLER@example.com", "password123", http.StatusOK},
		{"wrong password", "angler@example.com", "wrongpass1", http.StatusUnauthorized},
		{"unknown email", "nobody@example.com", "password123", http.StatusUnauthorized},
		{"short password", "angler@example.com", "short", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("bearer token from login", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "angler@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var user response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &user)
		require.Equal(t, "angler@example.com", user.Email)
	})

	s.Run("expired token is rejected", func() {
		t := s.T()
		id := dbtest.CreateTestCustomer(t, s.DB, "late@example.com", customer.RoleCustomer.String())
		token := s.jwt.CreateExpiredToken(t, id, "late@example.com", customer.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("no token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the cookie", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "angler@example.com", "password123")
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}
