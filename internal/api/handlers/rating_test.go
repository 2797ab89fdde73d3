package handlers_test

import (
	"fmt"
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

// RatingHandlerTestSuite defines the test suite for RatingHandler
type RatingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRatingServiceInterface
	handler     *handlers.RatingHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	eventID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RatingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRatingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRatingHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()
	suite.eventID = uuid.New()

	group := suite.httpSuite.Router.Group("/api/groups/:code")
	group.Use(testutils.AsUser(suite.userID))
	{
		group.GET("/events/:eventId/rating", suite.handler.GetRating)
		group.POST("/events/:eventId/rating", suite.handler.SetRating)
	}
}

// TearDownTest cleans up after each test
func (suite *RatingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RatingHandlerTestSuite) ratingPath() string {
	return fmt.Sprintf("/api/groups/AB12CD34/events/%s/rating", suite.eventID)
}

// TestGetRating tests the GetRating handler
func (suite *RatingHandlerTestSuite) TestGetRating() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.RatingResponse{
			EventID: suite.eventID,
			Up:      3,
			Down:    1,
			MyVote:  1,
			Ended:   true,
			CanVote: true,
		}

		suite.mockService.EXPECT().
			Get("AB12CD34", suite.eventID, suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", suite.ratingPath(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.RatingResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 3, response.Up)
		assert.True(t, response.CanVote)
	})

	suite.T().Run("Invalid event ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/AB12CD34/events/not-a-uuid/rating", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid event ID")
	})
}

// TestSetRating tests the SetRating handler
func (suite *RatingHandlerTestSuite) TestSetRating() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.RatingResponse{
			EventID: suite.eventID,
			Up:      1,
			MyVote:  1,
			Ended:   true,
			CanVote: true,
		}

		suite.mockService.EXPECT().
			Set("AB12CD34", suite.eventID, suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", suite.ratingPath(), map[string]interface{}{"vote": "up"})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.RatingResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 1, response.MyVote)
	})

	suite.T().Run("Unknown vote value", func(t *testing.T) {
		suite.mockService.EXPECT().
			Set("AB12CD34", suite.eventID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidRatingVote).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", suite.ratingPath(), map[string]interface{}{"vote": "meh"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "vote must be up, down or clear")
	})

	suite.T().Run("Event not ended", func(t *testing.T) {
		suite.mockService.EXPECT().
			Set("AB12CD34", suite.eventID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrEventNotEnded).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", suite.ratingPath(), map[string]interface{}{"vote": "up"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "event has not ended yet")
	})

	suite.T().Run("Not a participant", func(t *testing.T) {
		suite.mockService.EXPECT().
			Set("AB12CD34", suite.eventID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrNotParticipant).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", suite.ratingPath(), map[string]interface{}{"vote": "up"})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "only participants may rate")
	})
}

func TestRatingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerTestSuite))
}
