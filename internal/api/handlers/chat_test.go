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

// ChatHandlerTestSuite defines the test suite for ChatHandler
type ChatHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockChatServiceInterface
	handler     *handlers.ChatHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ChatHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockChatServiceInterface(suite.ctrl)
	suite.handler = handlers.NewChatHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	group := suite.httpSuite.Router.Group("/api/groups/:code")
	group.Use(testutils.AsUser(suite.userID))
	{
		group.GET("/chat", suite.handler.ListChat)
		group.POST("/chat", suite.handler.PostMessage)
		group.PUT("/chat/:messageId", suite.handler.EditMessage)
		group.DELETE("/chat/:messageId", suite.handler.DeleteMessage)
		group.POST("/chat/:messageId/pin", suite.handler.TogglePin)
		group.POST("/chat/:messageId/react", suite.handler.ReactToMessage)
	}
}

// TearDownTest cleans up after each test
func (suite *ChatHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ChatHandlerTestSuite) messageResponse() *service.ChatMessageResponse {
	return &service.ChatMessageResponse{
		ID:          uuid.New(),
		Kind:        "text",
		Text:        "On se retrouve ou ?",
		AuthorID:    &suite.userID,
		AuthorName:  "Marie",
		CanEdit:     true,
		CanDelete:   true,
		CanPin:      true,
		Reactions:   map[string]int{},
		MyReactions: map[string]bool{},
	}
}

// TestListChat tests the ListChat handler
func (suite *ChatHandlerTestSuite) TestListChat() {
	expectedResponse := &service.ChatResponse{
		Messages:       []service.ChatMessageResponse{*suite.messageResponse()},
		Pinned:         []service.ChatMessageResponse{},
		PinnedEventIDs: []uuid.UUID{uuid.New()},
	}

	suite.mockService.EXPECT().
		List("AB12CD34", suite.userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/AB12CD34/chat", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ChatResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Messages, 1)
	assert.Len(suite.T(), response.PinnedEventIDs, 1)
}

// TestPostMessage tests the PostMessage handler
func (suite *ChatHandlerTestSuite) TestPostMessage() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{"text": "On se retrouve ou ?"}

		suite.mockService.EXPECT().
			Post("AB12CD34", suite.userID, gomock.Any()).
			Return(suite.messageResponse(), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/chat", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.ChatMessageResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "On se retrouve ou ?", response.Text)
		assert.True(t, response.CanEdit)
	})

	suite.T().Run("Empty text", func(t *testing.T) {
		suite.mockService.EXPECT().
			Post("AB12CD34", suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrEmptyMessage).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/chat", map[string]interface{}{"text": "   "})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "message text is empty")
	})
}

// TestEditMessage tests the EditMessage handler
func (suite *ChatHandlerTestSuite) TestEditMessage() {
	messageID := uuid.New()
	requestBody := map[string]interface{}{"text": "On se retrouve a 19h"}

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Edit("AB12CD34", messageID, suite.userID, gomock.Any()).
			Return(suite.messageResponse(), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/groups/AB12CD34/chat/%s", messageID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid message ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/groups/AB12CD34/chat/not-a-uuid", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid message ID")
	})

	suite.T().Run("Announcement is immutable", func(t *testing.T) {
		suite.mockService.EXPECT().
			Edit("AB12CD34", messageID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrMessageImmutable).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/groups/AB12CD34/chat/%s", messageID), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "cannot be edited")
	})
}

// TestDeleteMessage tests the DeleteMessage handler
func (suite *ChatHandlerTestSuite) TestDeleteMessage() {
	messageID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete("AB12CD34", messageID, suite.userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/groups/AB12CD34/chat/%s", messageID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Protected kind", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete("AB12CD34", messageID, suite.userID).
			Return(apperrors.ErrMessageProtected).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/groups/AB12CD34/chat/%s", messageID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "cannot be deleted")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete("AB12CD34", messageID, suite.userID).
			Return(apperrors.ErrMessageNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/groups/AB12CD34/chat/%s", messageID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "message not found")
	})
}

// TestTogglePin tests the TogglePin handler
func (suite *ChatHandlerTestSuite) TestTogglePin() {
	messageID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		pinned := suite.messageResponse()
		pinned.Pinned = true

		suite.mockService.EXPECT().
			TogglePin("AB12CD34", messageID, suite.userID).
			Return(pinned, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/groups/AB12CD34/chat/%s/pin", messageID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ChatMessageResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Pinned)
	})

	suite.T().Run("Not pinnable", func(t *testing.T) {
		suite.mockService.EXPECT().
			TogglePin("AB12CD34", messageID, suite.userID).
			Return(nil, apperrors.ErrMessageNotPinnable).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/groups/AB12CD34/chat/%s/pin", messageID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "only text messages can be pinned")
	})
}

// TestReactToMessage tests the ReactToMessage handler
func (suite *ChatHandlerTestSuite) TestReactToMessage() {
	messageID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.ReactionResponse{
			Reactions:   map[string]int{"👍": 2},
			MyReactions: map[string]bool{"👍": true},
		}

		suite.mockService.EXPECT().
			React("AB12CD34", messageID, suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/groups/AB12CD34/chat/%s/react", messageID), map[string]interface{}{"emoji": "👍"})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ReactionResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 2, response.Reactions["👍"])
		assert.True(t, response.MyReactions["👍"])
	})

	suite.T().Run("Disallowed emoji", func(t *testing.T) {
		suite.mockService.EXPECT().
			React("AB12CD34", messageID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidEmoji).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/groups/AB12CD34/chat/%s/react", messageID), map[string]interface{}{"emoji": "🍕"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "emoji is not allowed")
	})
}

func TestChatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}
