package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for signup/login/identity operations
type UserServiceInterface interface {
	Signup(req *SignupRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	Me(userID uuid.UUID) (*UserResponse, error)
}

// GroupServiceInterface defines the interface for group operations
type GroupServiceInterface interface {
	Create(req *CreateGroupRequest, founderUserID uuid.UUID) (*GroupResponse, error)
	ListForUser(userID uuid.UUID) ([]GroupResponse, error)
	Resolve(code string, callerID uuid.UUID) (*GroupResponse, error)
	Join(code string, userID uuid.UUID) (*GroupResponse, error)
	Leave(code string, userID uuid.UUID) error
	Delete(code string, callerID uuid.UUID) error
	Members(code string, callerID uuid.UUID) ([]MemberResponse, error)
	CreateInvite(code string, callerID uuid.UUID, req *CreateInviteRequest) (*InviteResponse, error)
	ListInvites(code string, callerID uuid.UUID) ([]InviteResponse, error)
	RevokeInvite(code string, callerID uuid.UUID, token string) error
	AcceptInvite(token string, userID uuid.UUID) (*GroupResponse, error)
}

// EventServiceInterface defines the interface for event operations
type EventServiceInterface interface {
	Create(code string, authorID uuid.UUID, req *EventRequest) (*EventResponse, error)
	Update(code string, eventID, editorID uuid.UUID, req *EventRequest) (*EventResponse, error)
	Delete(code string, eventID, editorID uuid.UUID) error
	List(code string, viewerID uuid.UUID) ([]EventResponse, error)
}

// ChatServiceInterface defines the interface for group chat operations
type ChatServiceInterface interface {
	Post(code string, authorID uuid.UUID, req *PostMessageRequest) (*ChatMessageResponse, error)
	Edit(code string, messageID, editorID uuid.UUID, req *PostMessageRequest) (*ChatMessageResponse, error)
	Delete(code string, messageID, editorID uuid.UUID) error
	TogglePin(code string, messageID, actorID uuid.UUID) (*ChatMessageResponse, error)
	React(code string, messageID, userID uuid.UUID, req *ReactRequest) (*ReactionResponse, error)
	List(code string, viewerID uuid.UUID) (*ChatResponse, error)
}

// CommentServiceInterface defines the interface for event comment operations
type CommentServiceInterface interface {
	Add(code string, eventID, authorID uuid.UUID, req *CommentRequest) (*CommentResponse, error)
	Edit(code string, eventID, commentID, editorID uuid.UUID, req *CommentRequest) (*CommentResponse, error)
	Delete(code string, eventID, commentID, editorID uuid.UUID) error
	React(code string, eventID, commentID, userID uuid.UUID, req *ReactRequest) (*ReactionResponse, error)
	List(code string, eventID, viewerID uuid.UUID) ([]CommentResponse, error)
}

// RatingServiceInterface defines the interface for rating operations
type RatingServiceInterface interface {
	Get(code string, eventID, viewerID uuid.UUID) (*RatingResponse, error)
	Set(code string, eventID, voterID uuid.UUID, req *SetRatingRequest) (*RatingResponse, error)
}

// PollServiceInterface defines the interface for poll operations
type PollServiceInterface interface {
	Get(code string, eventID, viewerID uuid.UUID) (*PollResponse, error)
	Set(code string, eventID, actorID uuid.UUID, req *SetPollRequest) (*PollResponse, error)
	Clear(code string, eventID, actorID uuid.UUID) error
	Vote(code string, eventID, voterID uuid.UUID, req *VoteRequest) (*PollResponse, error)
}

// WeatherServiceInterface defines the interface for weather proxy operations
type WeatherServiceInterface interface {
	Geocode(ctx context.Context, query string) ([]GeocodeResult, error)
	DayIcon(ctx context.Context, lat, lon float64, date string) (*DayIconResponse, error)
	RangeIcons(ctx context.Context, lat, lon float64, start, end string) (*RangeIconsResponse, error)
}
