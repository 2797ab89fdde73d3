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

// GroupHandlerTestSuite defines the test suite for GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *handlers.GroupHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGroupHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	api := suite.httpSuite.Router.Group("/api")
	api.Use(testutils.AsUser(suite.userID))
	{
		api.GET("/groups", suite.handler.ListGroups)
		api.POST("/groups", suite.handler.CreateGroup)
		api.POST("/invites/:token/accept", suite.handler.AcceptInvite)

		group := api.Group("/groups/:code")
		{
			group.GET("", suite.handler.GetGroup)
			group.DELETE("", suite.handler.DeleteGroup)
			group.POST("/join", suite.handler.JoinGroup)
			group.POST("/leave", suite.handler.LeaveGroup)
			group.GET("/members", suite.handler.ListMembers)
			group.GET("/invites", suite.handler.ListInvites)
			group.POST("/invites", suite.handler.CreateInvite)
			group.DELETE("/invites/:token", suite.handler.RevokeInvite)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests the CreateGroup handler
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{"name": "Randonnees"}
		expectedResponse := &service.GroupResponse{
			ID:   uuid.New(),
			Code: "AB12CD34",
			Name: "Randonnees",
			Role: "owner",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.GroupResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "AB12CD34", response.Code)
		assert.Equal(t, "owner", response.Role)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups", "nope")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListGroups tests the ListGroups handler
func (suite *GroupHandlerTestSuite) TestListGroups() {
	expectedResponse := []service.GroupResponse{
		{ID: uuid.New(), Code: "AB12CD34", Name: "Randonnees", Role: "owner"},
		{ID: uuid.New(), Code: "EF56GH78", Name: "Cousinade", Role: "member"},
	}

	suite.mockService.EXPECT().
		ListForUser(suite.userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/groups", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.GroupResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestGetGroup tests the GetGroup handler
func (suite *GroupHandlerTestSuite) TestGetGroup() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.GroupResponse{
			ID:   uuid.New(),
			Code: "AB12CD34",
			Name: "Randonnees",
			Role: "member",
		}

		suite.mockService.EXPECT().
			Resolve("AB12CD34", suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/AB12CD34", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Resolve("ZZZZZZZZ", suite.userID).
			Return(nil, apperrors.ErrGroupNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/ZZZZZZZZ", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "group not found")
	})

	suite.T().Run("Not a member", func(t *testing.T) {
		suite.mockService.EXPECT().
			Resolve("AB12CD34", suite.userID).
			Return(nil, apperrors.ErrNotAMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/AB12CD34", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "not a member")
	})
}

// TestJoinGroup tests the JoinGroup handler
func (suite *GroupHandlerTestSuite) TestJoinGroup() {
	expectedResponse := &service.GroupResponse{
		ID:   uuid.New(),
		Code: "AB12CD34",
		Name: "Randonnees",
		Role: "member",
	}

	suite.mockService.EXPECT().
		Join("AB12CD34", suite.userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/join", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestLeaveGroup tests the LeaveGroup handler
func (suite *GroupHandlerTestSuite) TestLeaveGroup() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Leave("AB12CD34", suite.userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/leave", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("Not a member", func(t *testing.T) {
		suite.mockService.EXPECT().
			Leave("AB12CD34", suite.userID).
			Return(apperrors.ErrNotAMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/leave", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "not a member")
	})
}

// TestDeleteGroup tests the DeleteGroup handler
func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete("AB12CD34", suite.userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/groups/AB12CD34", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not the owner", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete("AB12CD34", suite.userID).
			Return(apperrors.ErrNotGroupOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/groups/AB12CD34", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "only the group owner")
	})
}

// TestListMembers tests the ListMembers handler
func (suite *GroupHandlerTestSuite) TestListMembers() {
	expectedResponse := []service.MemberResponse{
		{UserID: suite.userID, DisplayName: "Marie", Role: "owner"},
		{UserID: uuid.New(), DisplayName: "Jean", Role: "member"},
	}

	suite.mockService.EXPECT().
		Members("AB12CD34", suite.userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/AB12CD34/members", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.MemberResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "Marie", response[0].DisplayName)
}

// TestCreateInvite tests the CreateInvite handler
func (suite *GroupHandlerTestSuite) TestCreateInvite() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.InviteResponse{
			Token:     "invite-token",
			GroupCode: "AB12CD34",
		}

		suite.mockService.EXPECT().
			CreateInvite("AB12CD34", suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/invites", map[string]interface{}{})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.InviteResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "invite-token", response.Token)
	})

	suite.T().Run("Insufficient role", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateInvite("AB12CD34", suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrNotModerator).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/groups/AB12CD34/invites", map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "owner or admin role required")
	})
}

// TestListInvites tests the ListInvites handler
func (suite *GroupHandlerTestSuite) TestListInvites() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := []service.InviteResponse{
			{Token: "tok-new", GroupCode: "AB12CD34", UsedCount: 1},
			{Token: "tok-old", GroupCode: "AB12CD34"},
		}

		suite.mockService.EXPECT().
			ListInvites("AB12CD34", suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/AB12CD34/invites", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.InviteResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "tok-new", response[0].Token)
	})

	suite.T().Run("Insufficient role", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListInvites("AB12CD34", suite.userID).
			Return(nil, apperrors.ErrNotModerator).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/groups/AB12CD34/invites", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "owner or admin role required")
	})
}

// TestRevokeInvite tests the RevokeInvite handler
func (suite *GroupHandlerTestSuite) TestRevokeInvite() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			RevokeInvite("AB12CD34", suite.userID, "invite-token").
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/groups/AB12CD34/invites/invite-token", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			RevokeInvite("AB12CD34", suite.userID, "invite-token").
			Return(apperrors.ErrInviteNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/groups/AB12CD34/invites/invite-token", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "invite not found")
	})
}

// TestAcceptInvite tests the AcceptInvite handler
func (suite *GroupHandlerTestSuite) TestAcceptInvite() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.GroupResponse{
			ID:   uuid.New(),
			Code: "AB12CD34",
			Name: "Randonnees",
			Role: "member",
		}

		suite.mockService.EXPECT().
			AcceptInvite("invite-token", suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/invites/invite-token/accept", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Expired", func(t *testing.T) {
		suite.mockService.EXPECT().
			AcceptInvite("invite-token", suite.userID).
			Return(nil, apperrors.ErrInviteExpired).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/invites/invite-token/accept", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusGone, "invite has expired")
	})

	suite.T().Run("Exhausted", func(t *testing.T) {
		suite.mockService.EXPECT().
			AcceptInvite("invite-token", suite.userID).
			Return(nil, apperrors.ErrInviteExhausted).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/invites/invite-token/accept", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusGone, "no uses left")
	})
}

func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
