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

// CommentHandlerTestSuite defines the test suite for CommentHandler
type CommentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCommentServiceInterface
	handler     *handlers.CommentHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	eventID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CommentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCommentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCommentHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()
	suite.eventID = uuid.New()

	group := suite.httpSuite.Router.Group("/api/groups/:code")
	group.Use(testutils.AsUser(suite.userID))
	{
		group.GET("/events/:eventId/comments", suite.handler.ListComments)
		group.POST("/events/:eventId/comments", suite.handler.AddComment)
		group.PUT("/events/:eventId/comments/:commentId", suite.handler.EditComment)
		group.DELETE("/events/:eventId/comments/:commentId", suite.handler.DeleteComment)
		group.POST("/events/:eventId/comments/:commentId/react", suite.handler.ReactToComment)
	}
}

// TearDownTest cleans up after each test
func (suite *CommentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CommentHandlerTestSuite) commentsPath() string {
	return fmt.Sprintf("/api/groups/AB12CD34/events/%s/comments", suite.eventID)
}

func (suite *CommentHandlerTestSuite) commentResponse() *service.CommentResponse {
	return &service.CommentResponse{
		ID:          uuid.New(),
		EventID:     suite.eventID,
		AuthorID:    suite.userID,
		AuthorName:  "Marie",
		Text:        "Super idee",
		CanEdit:     true,
		CanDelete:   true,
		Reactions:   map[string]int{},
		MyReactions: map[string]bool{},
	}
}

// TestListComments tests the ListComments handler
func (suite *CommentHandlerTestSuite) TestListComments() {
	expectedResponse := []service.CommentResponse{*suite.commentResponse()}

	suite.mockService.EXPECT().
		List("AB12CD34", suite.eventID, suite.userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.commentsPath(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.CommentResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Super idee", response[0].Text)
}

// TestAddComment tests the AddComment handler
func (suite *CommentHandlerTestSuite) TestAddComment() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Add("AB12CD34", suite.eventID, suite.userID, gomock.Any()).
			Return(suite.commentResponse(), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", suite.commentsPath(), map[string]interface{}{"text": "Super idee"})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.CommentResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Super idee", response.Text)
	})

	suite.T().Run("Empty text", func(t *testing.T) {
		suite.mockService.EXPECT().
			Add("AB12CD34", suite.eventID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrEmptyMessage).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", suite.commentsPath(), map[string]interface{}{"text": "  "})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "message text is empty")
	})

	suite.T().Run("Invalid event ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/events/not-a-uuid/comments", map[string]interface{}{"text": "Super idee"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid event ID")
	})
}

// TestEditComment tests the EditComment handler
func (suite *CommentHandlerTestSuite) TestEditComment() {
	commentID := uuid.New()
	requestBody := map[string]interface{}{"text": "Tres bonne idee"}

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Edit("AB12CD34", suite.eventID, commentID, suite.userID, gomock.Any()).
			Return(suite.commentResponse(), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("%s/%s", suite.commentsPath(), commentID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid comment ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("%s/not-a-uuid", suite.commentsPath()), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid comment ID")
	})

	suite.T().Run("Not the author", func(t *testing.T) {
		suite.mockService.EXPECT().
			Edit("AB12CD34", suite.eventID, commentID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrNotCommentAuthor).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("%s/%s", suite.commentsPath(), commentID), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "only the author")
	})
}

// TestDeleteComment tests the DeleteComment handler
func (suite *CommentHandlerTestSuite) TestDeleteComment() {
	commentID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete("AB12CD34", suite.eventID, commentID, suite.userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("%s/%s", suite.commentsPath(), commentID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete("AB12CD34", suite.eventID, commentID, suite.userID).
			Return(apperrors.ErrCommentNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("%s/%s", suite.commentsPath(), commentID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "comment not found")
	})
}

// TestReactToComment tests the ReactToComment handler
func (suite *CommentHandlerTestSuite) TestReactToComment() {
	commentID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.ReactionResponse{
			Reactions:   map[string]int{"❤️": 1},
			MyReactions: map[string]bool{"❤️": true},
		}

		suite.mockService.EXPECT().
			React("AB12CD34", suite.eventID, commentID, suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("%s/%s/react", suite.commentsPath(), commentID), map[string]interface{}{"emoji": "❤️"})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ReactionResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 1, response.Reactions["❤️"])
	})

	suite.T().Run("Disallowed emoji", func(t *testing.T) {
		suite.mockService.EXPECT().
			React("AB12CD34", suite.eventID, commentID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidEmoji).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("%s/%s/react", suite.commentsPath(), commentID), map[string]interface{}{"emoji": "🙃"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "emoji is not allowed")
	})
}

func TestCommentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}
