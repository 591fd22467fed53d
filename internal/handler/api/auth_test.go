//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/handler/api"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/cookie"
	"charter-booking/internal/pkg/jwt"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"
	"charter-booking/tests/common/builder"
	"charter-booking/tests/common/httptest"
	"charter-booking/tests/common/testutil"
	commandsmock "charter-booking/tests/mock/commands"
	queriesmock "charter-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockCustomerQueries
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.userID = uuid.New()

	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, time.Hour, clock.NewMockClock(handlerNow))
	h := api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, cfg)

	s.router.POST("/auth/register", h.Register)
	s.router.POST("/auth/login", h.Login)
	s.router.POST("/auth/logout", h.Logout)
	s.router.GET("/auth/me", fakeAuth(s.userID, customer.RoleCustomer), h.Me)
	s.router.GET("/auth/me-anonymous", h.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) authResult(email string) *commands.AuthResult {
	return &commands.AuthResult{
		CustomerID:  s.userID,
		Email:       email,
		Name:        "Sam Angler",
		Role:        customer.RoleCustomer,
		AccessToken: "signed-token",
		ExpiresAt:   handlerNow.Add(time.Hour),
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: 200 sets the auth cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(s.authResult(reqBody.Email), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("signed-token", res.AccessToken)
		s.Equal(reqBody.Email, res.User.Email)
		s.Equal("customer", res.User.Role)

		authCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(authCookie)
		s.Equal("signed-token", authCookie.Value)
		s.True(authCookie.HttpOnly)
		s.Equal(int(time.Hour.Seconds()), authCookie.MaxAge)
	})

	s.Run("success: email is normalized before lookup", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "angler@example.com", reqBody.Password).
			Return(s.authResult("angler@example.com"), nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "Angler@Example.com"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password 7 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request data")
			})
		}
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("success: 201 sets the auth cookie", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterRequest{
			Email:    reqBody.Email,
			Name:     reqBody.Name,
			Phone:    reqBody.Phone,
			Password: reqBody.Password,
		}).Return(s.authResult(reqBody.Email), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(s.userID, res.User.ID)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("success: phone is optional", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(s.authResult(reqBody.Email), nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("phone", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailAlreadyTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email is already registered")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseAuth{
			{name: "short phone", mutate: testutil.Field("phone", "12345")},
			{name: "password over 72 chars", mutate: testutil.Field("password", strings.Repeat("p", 73))},
			{name: "missing name", mutate: testutil.Field("name", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
	s.Negative(cleared.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current user", func() {
		view := &queries.CustomerView{ID: s.userID, Email: "sam@example.com", Name: "Sam Angler", Role: "customer", CreatedAt: handlerNow}
		s.mockQueries.EXPECT().GetCurrent(gomock.Any(), s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(s.userID, res.ID)
		s.Equal("Sam Angler", res.Name)
	})

	s.Run("error: 404 when the account vanished", func() {
		s.mockQueries.EXPECT().GetCurrent(gomock.Any(), s.userID).Return(nil, queries.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-anonymous", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
