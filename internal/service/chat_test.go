package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/mocks"
	"github.com/evandev76/event-organizer-app/internal/repository"
	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ChatServiceTestSuite defines the test suite for ChatService
type ChatServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockGroupRepo       *mocks.MockGroupRepositoryInterface
	mockMembershipRepo  *mocks.MockMembershipRepositoryInterface
	mockMessageRepo     *mocks.MockChatMessageRepositoryInterface
	mockReactionRepo    *mocks.MockMessageReactionRepositoryInterface
	mockPinnedEventRepo *mocks.MockPinnedEventRepositoryInterface
	mockEventRepo       *mocks.MockEventRepositoryInterface
	chatService         *service.ChatService

	group  *models.Group
	userID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ChatServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockMessageRepo = mocks.NewMockChatMessageRepositoryInterface(suite.ctrl)
	suite.mockReactionRepo = mocks.NewMockMessageReactionRepositoryInterface(suite.ctrl)
	suite.mockPinnedEventRepo = mocks.NewMockPinnedEventRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)

	suite.chatService = service.NewChatService(
		suite.mockGroupRepo,
		suite.mockMembershipRepo,
		suite.mockMessageRepo,
		suite.mockReactionRepo,
		suite.mockPinnedEventRepo,
		suite.mockEventRepo,
	)

	suite.group = testGroup("AB12CD34", "Randonnees")
	suite.userID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ChatServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectMember wires the code-then-membership lookup every operation runs
func (suite *ChatServiceTestSuite) expectMember(role string) {
	suite.mockGroupRepo.EXPECT().
		GetByCode(suite.group.Code).
		Return(suite.group, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Get(suite.group.ID, suite.userID).
		Return(testMembership(suite.group.ID, suite.userID, role), nil).
		Times(1)
}

func (suite *ChatServiceTestSuite) textMessage(authorID uuid.UUID) *models.GroupChatMessage {
	message := &models.GroupChatMessage{
		GroupID:      suite.group.ID,
		Kind:         models.MessageKindText,
		Text:         "bonjour tout le monde",
		AuthorUserID: &authorID,
	}
	message.ID = uuid.New()
	return message
}

// TestPostMessage tests posting a trimmed text message
func (suite *ChatServiceTestSuite) TestPostMessage() {
	suite.expectMember(models.RoleMember)

	var createdID uuid.UUID
	suite.mockMessageRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(message *models.GroupChatMessage) error {
			assert.Equal(suite.T(), models.MessageKindText, message.Kind)
			assert.Equal(suite.T(), "bonjour", message.Text)
			assert.Equal(suite.T(), &suite.userID, message.AuthorUserID)
			message.ID = uuid.New()
			createdID = message.ID
			return nil
		}).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.GroupChatMessage, error) {
			assert.Equal(suite.T(), createdID, id)
			message := suite.textMessage(suite.userID)
			message.ID = id
			message.Text = "bonjour"
			return message, nil
		}).
		Times(1)

	response, err := suite.chatService.Post(suite.group.Code, suite.userID, &service.PostMessageRequest{Text: "  bonjour  "})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "bonjour", response.Text)
	assert.True(suite.T(), response.CanEdit)
	assert.True(suite.T(), response.CanDelete)
	assert.True(suite.T(), response.CanPin)
}

// TestPostEmptyMessage tests that whitespace-only text is rejected before
// any lookup happens
func (suite *ChatServiceTestSuite) TestPostEmptyMessage() {
	response, err := suite.chatService.Post(suite.group.Code, suite.userID, &service.PostMessageRequest{Text: "   "})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmptyMessage))
}

// TestEditMessage tests that the author can rewrite their own text message
func (suite *ChatServiceTestSuite) TestEditMessage() {
	suite.expectMember(models.RoleMember)
	message := suite.textMessage(suite.userID)

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		UpdateText(message.ID, "corrige").
		Return(nil).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		DoAndReturn(func(uuid.UUID) (*models.GroupChatMessage, error) {
			updated := *message
			updated.Text = "corrige"
			return &updated, nil
		}).
		Times(1)

	response, err := suite.chatService.Edit(suite.group.Code, message.ID, suite.userID, &service.PostMessageRequest{Text: "corrige"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "corrige", response.Text)
}

// TestEditAnnouncementRejected tests that event announcements are immutable
func (suite *ChatServiceTestSuite) TestEditAnnouncementRejected() {
	suite.expectMember(models.RoleOwner)
	eventID := uuid.New()
	message := &models.GroupChatMessage{
		GroupID: suite.group.ID,
		Kind:    models.MessageKindEvent,
		Text:    "Nouvel evenement: Pizza",
		EventID: &eventID,
	}
	message.ID = uuid.New()

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)

	response, err := suite.chatService.Edit(suite.group.Code, message.ID, suite.userID, &service.PostMessageRequest{Text: "autre"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrMessageImmutable))
}

// TestEditSomeoneElsesMessage tests the author-only rule on edits
func (suite *ChatServiceTestSuite) TestEditSomeoneElsesMessage() {
	suite.expectMember(models.RoleMember)
	message := suite.textMessage(uuid.New())

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)

	response, err := suite.chatService.Edit(suite.group.Code, message.ID, suite.userID, &service.PostMessageRequest{Text: "autre"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrNotMessageAuthor))
}

// TestEditMessageFromAnotherGroup tests that cross-group ids read as missing
func (suite *ChatServiceTestSuite) TestEditMessageFromAnotherGroup() {
	suite.expectMember(models.RoleMember)
	message := suite.textMessage(suite.userID)
	message.GroupID = uuid.New()

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)

	response, err := suite.chatService.Edit(suite.group.Code, message.ID, suite.userID, &service.PostMessageRequest{Text: "autre"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrMessageNotFound))
}

// TestDeleteOwnMessage tests that authors can delete their text messages
func (suite *ChatServiceTestSuite) TestDeleteOwnMessage() {
	suite.expectMember(models.RoleMember)
	message := suite.textMessage(suite.userID)

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		Delete(message.ID).
		Return(nil).
		Times(1)

	err := suite.chatService.Delete(suite.group.Code, message.ID, suite.userID)

	assert.NoError(suite.T(), err)
}

// TestDeleteSystemMessageRequiresModerator tests the system message rule
func (suite *ChatServiceTestSuite) TestDeleteSystemMessageRequiresModerator() {
	suite.expectMember(models.RoleMember)
	message := &models.GroupChatMessage{
		GroupID: suite.group.ID,
		Kind:    models.MessageKindSystem,
		Text:    "Bienvenue",
	}
	message.ID = uuid.New()

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)

	err := suite.chatService.Delete(suite.group.Code, message.ID, suite.userID)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrMessageProtected))
}

// TestDeleteAnnouncementAsEventCreator tests that the announced event's
// creator may remove its announcement
func (suite *ChatServiceTestSuite) TestDeleteAnnouncementAsEventCreator() {
	suite.expectMember(models.RoleMember)
	eventID := uuid.New()
	message := &models.GroupChatMessage{
		GroupID: suite.group.ID,
		Kind:    models.MessageKindEvent,
		Text:    "Nouvel evenement: Pizza",
		EventID: &eventID,
	}
	message.ID = uuid.New()
	event := &models.Event{GroupID: suite.group.ID, CreatedByUserID: &suite.userID}
	event.ID = eventID

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)
	suite.mockEventRepo.EXPECT().
		GetByID(eventID).
		Return(event, nil).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		Delete(message.ID).
		Return(nil).
		Times(1)

	err := suite.chatService.Delete(suite.group.Code, message.ID, suite.userID)

	assert.NoError(suite.T(), err)
}

// TestDeleteOrphanAnnouncementStaysProtected tests that an announcement
// whose event no longer exists is moderator-only
func (suite *ChatServiceTestSuite) TestDeleteOrphanAnnouncementStaysProtected() {
	suite.expectMember(models.RoleMember)
	eventID := uuid.New()
	message := &models.GroupChatMessage{
		GroupID: suite.group.ID,
		Kind:    models.MessageKindEvent,
		Text:    "Nouvel evenement: Pizza",
		EventID: &eventID,
	}
	message.ID = uuid.New()

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)
	suite.mockEventRepo.EXPECT().
		GetByID(eventID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.chatService.Delete(suite.group.Code, message.ID, suite.userID)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrMessageProtected))
}

// TestTogglePinNonText tests that only text messages can be pinned
func (suite *ChatServiceTestSuite) TestTogglePinNonText() {
	suite.expectMember(models.RoleOwner)
	message := &models.GroupChatMessage{
		GroupID: suite.group.ID,
		Kind:    models.MessageKindSystem,
		Text:    "Bienvenue",
	}
	message.ID = uuid.New()

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)

	response, err := suite.chatService.TogglePin(suite.group.Code, message.ID, suite.userID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrMessageNotPinnable))
}

// TestTogglePinSetsAndClears tests both directions of the toggle
func (suite *ChatServiceTestSuite) TestTogglePinSetsAndClears() {
	suite.T().Run("Pin", func(t *testing.T) {
		suite.expectMember(models.RoleMember)
		message := suite.textMessage(suite.userID)

		suite.mockMessageRepo.EXPECT().
			GetByID(message.ID).
			Return(message, nil).
			Times(1)
		suite.mockMessageRepo.EXPECT().
			SetPinned(message.ID, gomock.Not(gomock.Nil()), &suite.userID).
			Return(nil).
			Times(1)
		suite.mockMessageRepo.EXPECT().
			GetByID(message.ID).
			DoAndReturn(func(uuid.UUID) (*models.GroupChatMessage, error) {
				pinned := *message
				now := time.Now()
				pinned.PinnedAt = &now
				pinned.PinnedByUserID = &suite.userID
				return &pinned, nil
			}).
			Times(1)

		response, err := suite.chatService.TogglePin(suite.group.Code, message.ID, suite.userID)

		assert.NoError(t, err)
		assert.True(t, response.Pinned)
	})

	suite.T().Run("Unpin", func(t *testing.T) {
		suite.expectMember(models.RoleMember)
		message := suite.textMessage(suite.userID)
		now := time.Now()
		message.PinnedAt = &now
		message.PinnedByUserID = &suite.userID

		suite.mockMessageRepo.EXPECT().
			GetByID(message.ID).
			Return(message, nil).
			Times(1)
		suite.mockMessageRepo.EXPECT().
			SetPinned(message.ID, nil, nil).
			Return(nil).
			Times(1)
		suite.mockMessageRepo.EXPECT().
			GetByID(message.ID).
			DoAndReturn(func(uuid.UUID) (*models.GroupChatMessage, error) {
				unpinned := *message
				unpinned.PinnedAt = nil
				unpinned.PinnedByUserID = nil
				return &unpinned, nil
			}).
			Times(1)

		response, err := suite.chatService.TogglePin(suite.group.Code, message.ID, suite.userID)

		assert.NoError(t, err)
		assert.False(t, response.Pinned)
	})
}

// TestTogglePinByModerator tests that moderators can pin others' messages
func (suite *ChatServiceTestSuite) TestTogglePinByModerator() {
	suite.expectMember(models.RoleAdmin)
	message := suite.textMessage(uuid.New())

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		SetPinned(message.ID, gomock.Not(gomock.Nil()), &suite.userID).
		Return(nil).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)

	_, err := suite.chatService.TogglePin(suite.group.Code, message.ID, suite.userID)

	assert.NoError(suite.T(), err)
}

// TestReactInvalidEmoji tests that off-list emoji are rejected up front
func (suite *ChatServiceTestSuite) TestReactInvalidEmoji() {
	response, err := suite.chatService.React(suite.group.Code, uuid.New(), suite.userID, &service.ReactRequest{Emoji: "🍕"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidEmoji))
}

// TestReact tests toggling an allowed emoji and reading back the aggregate
func (suite *ChatServiceTestSuite) TestReact() {
	suite.expectMember(models.RoleMember)
	message := suite.textMessage(uuid.New())

	suite.mockMessageRepo.EXPECT().
		GetByID(message.ID).
		Return(message, nil).
		Times(1)
	suite.mockReactionRepo.EXPECT().
		Toggle(message.ID, suite.userID, "👍").
		Return(true, nil).
		Times(1)
	suite.mockReactionRepo.EXPECT().
		Summaries([]uuid.UUID{message.ID}, suite.userID).
		Return(map[uuid.UUID]repository.ReactionSummary{
			message.ID: {
				Counts: map[string]int{"👍": 2},
				Mine:   map[string]bool{"👍": true},
			},
		}, nil).
		Times(1)

	response, err := suite.chatService.React(suite.group.Code, message.ID, suite.userID, &service.ReactRequest{Emoji: "👍"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Reactions["👍"])
	assert.True(suite.T(), response.MyReactions["👍"])
}

// TestList tests the combined chat read model
func (suite *ChatServiceTestSuite) TestList() {
	suite.expectMember(models.RoleMember)
	eventID := uuid.New()
	creatorID := uuid.New()

	text := suite.textMessage(suite.userID)
	announcement := &models.GroupChatMessage{
		GroupID: suite.group.ID,
		Kind:    models.MessageKindEvent,
		Text:    "Nouvel evenement: Pizza",
		EventID: &eventID,
	}
	announcement.ID = uuid.New()
	pinned := suite.textMessage(uuid.New())
	now := time.Now()
	pinned.PinnedAt = &now

	suite.mockMessageRepo.EXPECT().
		ListRecent(suite.group.ID, 200).
		Return([]models.GroupChatMessage{*text, *announcement}, nil).
		Times(1)
	suite.mockMessageRepo.EXPECT().
		ListPinned(suite.group.ID, 15).
		Return([]models.GroupChatMessage{*pinned}, nil).
		Times(1)
	suite.mockPinnedEventRepo.EXPECT().
		ListEventIDs(suite.group.ID, models.MaxPinnedEventsPerGroup).
		Return([]uuid.UUID{eventID}, nil).
		Times(1)
	suite.mockReactionRepo.EXPECT().
		Summaries([]uuid.UUID{text.ID, announcement.ID, pinned.ID}, suite.userID).
		Return(map[uuid.UUID]repository.ReactionSummary{}, nil).
		Times(1)
	suite.mockEventRepo.EXPECT().
		CreatorsByIDs([]uuid.UUID{eventID}).
		Return(map[uuid.UUID]uuid.UUID{eventID: creatorID}, nil).
		Times(1)

	response, err := suite.chatService.List(suite.group.Code, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Messages, 2)
	assert.Len(suite.T(), response.Pinned, 1)
	assert.Equal(suite.T(), []uuid.UUID{eventID}, response.PinnedEventIDs)

	// own text message is editable, the announcement is not
	assert.True(suite.T(), response.Messages[0].CanEdit)
	assert.False(suite.T(), response.Messages[1].CanEdit)
	// a plain member cannot delete someone else's announcement
	assert.False(suite.T(), response.Messages[1].CanDelete)
	assert.NotNil(suite.T(), response.Messages[0].Reactions)
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}
