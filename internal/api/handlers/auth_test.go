package handlers_test

import (
	"net/http"
	"testing"

	"github.com/evandev76/event-organizer-app/internal/api/handlers"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/mocks"
	"github.com/evandev76/event-organizer-app/internal/service"
	"github.com/evandev76/event-organizer-app/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.AuthHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAuthHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	api := suite.httpSuite.Router.Group("/api")
	api.POST("/auth/signup", suite.handler.Signup)
	api.POST("/auth/login", suite.handler.Login)
	api.GET("/auth/me", testutils.AsUser(suite.userID), suite.handler.Me)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSignup tests the Signup handler
func (suite *AuthHandlerTestSuite) TestSignup() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"email":        "marie@example.com",
			"password":     "correct horse",
			"display_name": "Marie",
		}
		expectedResponse := &service.AuthResponse{
			Token: "a.jwt.token",
			User: service.UserResponse{
				ID:          suite.userID,
				Email:       "marie@example.com",
				DisplayName: "Marie",
			},
		}

		suite.mockService.EXPECT().
			Signup(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/signup", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.AuthResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "a.jwt.token", response.Token)
		assert.Equal(t, "Marie", response.User.DisplayName)
	})

	suite.T().Run("Email taken", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"email":    "marie@example.com",
			"password": "correct horse",
		}

		suite.mockService.EXPECT().
			Signup(gomock.Any()).
			Return(nil, apperrors.ErrEmailTaken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/signup", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "email already registered")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/signup", "not json at all")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestLogin tests the Login handler
func (suite *AuthHandlerTestSuite) TestLogin() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"email":    "marie@example.com",
			"password": "correct horse",
		}
		expectedResponse := &service.AuthResponse{
			Token: "a.jwt.token",
			User:  service.UserResponse{ID: suite.userID, Email: "marie@example.com"},
		}

		suite.mockService.EXPECT().
			Login(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Bad credentials", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"email":    "marie@example.com",
			"password": "wrong horse",
		}

		suite.mockService.EXPECT().
			Login(gomock.Any()).
			Return(nil, apperrors.ErrInvalidCredentials).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "invalid email or password")
	})
}

// TestMe tests the Me handler
func (suite *AuthHandlerTestSuite) TestMe() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.UserResponse{
			ID:          suite.userID,
			Email:       "marie@example.com",
			DisplayName: "Marie",
		}

		suite.mockService.EXPECT().
			Me(suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/auth/me", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.UserResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, suite.userID, response.ID)
	})

	suite.T().Run("No identity in context", func(t *testing.T) {
		bare := testutils.SetupHTTPTest()
		bare.Router.GET("/api/auth/me", suite.handler.Me)

		recorder := bare.MakeRequest("GET", "/api/auth/me", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "authentication required")
	})
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
