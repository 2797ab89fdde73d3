package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	groupCodeLength   = 8
	groupCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeAttempts      = 8

	inviteTokenBytes = 24
	inviteTTL        = 30 * 24 * time.Hour
)

// GroupService handles business logic for groups, memberships and invites
type GroupService struct {
	groupAccess
	invites   repository.InviteRepositoryInterface
	validator *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(
	groups repository.GroupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	invites repository.InviteRepositoryInterface,
	validator *validator.Validate,
) *GroupService {
	return &GroupService{
		groupAccess: groupAccess{groups: groups, memberships: memberships},
		invites:     invites,
		validator:   validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=40"`
}

// GroupResponse represents a group together with the caller's role in it
type GroupResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberResponse represents one group member
type MemberResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

// CreateInviteRequest represents the request to create a group invite
type CreateInviteRequest struct {
	MaxUses *int `json:"max_uses,omitempty" validate:"omitempty,min=1,max=1000"`
}

// InviteResponse represents a shareable group invite
type InviteResponse struct {
	Token     string    `json:"token"`
	GroupCode string    `json:"group_code"`
	ExpiresAt time.Time `json:"expires_at"`
	MaxUses   *int      `json:"max_uses,omitempty"`
	UsedCount int       `json:"used_count"`
}

// generateGroupCode draws a code uniformly from the restricted alphabet
func generateGroupCode() (string, error) {
	buf := make([]byte, groupCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = groupCodeAlphabet[int(b)%len(groupCodeAlphabet)]
	}
	return string(buf), nil
}

// Create creates a group and installs the founder as its owner
func (s *GroupService) Create(req *CreateGroupRequest, founderUserID uuid.UUID) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var code string
	for attempt := 0; ; attempt++ {
		if attempt == codeAttempts {
			return nil, apperrors.ErrCodeGenerationExhausted
		}
		candidate, err := generateGroupCode()
		if err != nil {
			return nil, err
		}
		taken, err := s.groups.ExistsByCode(candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !taken {
			code = candidate
			break
		}
	}

	group := &models.Group{Code: code, Name: req.Name}
	if err := s.groups.Create(group, founderUserID); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return &GroupResponse{
		ID:        group.ID,
		Code:      group.Code,
		Name:      group.Name,
		Role:      models.RoleOwner,
		CreatedAt: group.CreatedAt,
	}, nil
}

// ListForUser returns the caller's groups, most recently joined first
func (s *GroupService) ListForUser(userID uuid.UUID) ([]GroupResponse, error) {
	memberships, err := s.memberships.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	groups := make([]GroupResponse, 0, len(memberships))
	for _, m := range memberships {
		if m.Group == nil {
			continue
		}
		groups = append(groups, GroupResponse{
			ID:        m.Group.ID,
			Code:      m.Group.Code,
			Name:      m.Group.Name,
			Role:      m.Role,
			CreatedAt: m.Group.CreatedAt,
		})
	}
	return groups, nil
}

// Resolve returns a group by code for one of its members
func (s *GroupService) Resolve(code string, callerID uuid.UUID) (*GroupResponse, error) {
	group, membership, err := s.resolveMember(code, callerID)
	if err != nil {
		return nil, err
	}
	return &GroupResponse{
		ID:        group.ID,
		Code:      group.Code,
		Name:      group.Name,
		Role:      membership.Role,
		CreatedAt: group.CreatedAt,
	}, nil
}

// Join adds the caller to a group as a member. Joining a group the caller
// already belongs to succeeds without changing their role.
func (s *GroupService) Join(code string, userID uuid.UUID) (*GroupResponse, error) {
	group, err := s.resolveGroup(code)
	if err != nil {
		return nil, err
	}
	if err := s.memberships.Upsert(group.ID, userID, models.RoleMember); err != nil {
		return nil, fmt.Errorf("failed to join group: %w", err)
	}
	membership, err := s.memberships.Get(group.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return &GroupResponse{
		ID:        group.ID,
		Code:      group.Code,
		Name:      group.Name,
		Role:      membership.Role,
		CreatedAt: group.CreatedAt,
	}, nil
}

// Leave removes the caller's membership. The group itself persists.
func (s *GroupService) Leave(code string, userID uuid.UUID) error {
	group, err := s.resolveGroup(code)
	if err != nil {
		return err
	}
	removed, err := s.memberships.Delete(group.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to leave group: %w", err)
	}
	if !removed {
		return apperrors.ErrNotAMember
	}
	return nil
}

// Delete removes a group and everything it scopes. Owner only.
func (s *GroupService) Delete(code string, callerID uuid.UUID) error {
	group, membership, err := s.resolveMember(code, callerID)
	if err != nil {
		return err
	}
	if membership.Role != models.RoleOwner {
		return apperrors.ErrNotGroupOwner
	}
	if err := s.groups.Delete(group.ID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// Members returns a group's members in join order
func (s *GroupService) Members(code string, callerID uuid.UUID) ([]MemberResponse, error) {
	group, _, err := s.resolveMember(code, callerID)
	if err != nil {
		return nil, err
	}
	memberships, err := s.memberships.ListByGroup(group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	members := make([]MemberResponse, 0, len(memberships))
	for _, m := range memberships {
		member := MemberResponse{
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		}
		if m.User != nil {
			member.DisplayName = m.User.DisplayName
		}
		members = append(members, member)
	}
	return members, nil
}

// CreateInvite issues a shareable join token for a group. Owner or admin only.
func (s *GroupService) CreateInvite(code string, callerID uuid.UUID, req *CreateInviteRequest) (*InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	group, membership, err := s.resolveMember(code, callerID)
	if err != nil {
		return nil, err
	}
	if !membership.IsModerator() {
		return nil, apperrors.ErrNotModerator
	}

	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	invite := &models.GroupInvite{
		Token:           base64.RawURLEncoding.EncodeToString(buf),
		GroupID:         group.ID,
		CreatedByUserID: callerID,
		ExpiresAt:       time.Now().Add(inviteTTL),
		MaxUses:         req.MaxUses,
	}
	if err := s.invites.Create(invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return &InviteResponse{
		Token:     invite.Token,
		GroupCode: group.Code,
		ExpiresAt: invite.ExpiresAt,
		MaxUses:   invite.MaxUses,
		UsedCount: invite.UsedCount,
	}, nil
}

// ListInvites returns a group's invites, newest first. Owner or admin only.
func (s *GroupService) ListInvites(code string, callerID uuid.UUID) ([]InviteResponse, error) {
	group, membership, err := s.resolveMember(code, callerID)
	if err != nil {
		return nil, err
	}
	if !membership.IsModerator() {
		return nil, apperrors.ErrNotModerator
	}
	invites, err := s.invites.ListByGroup(group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	responses := make([]InviteResponse, 0, len(invites))
	for _, invite := range invites {
		responses = append(responses, InviteResponse{
			Token:     invite.Token,
			GroupCode: group.Code,
			ExpiresAt: invite.ExpiresAt,
			MaxUses:   invite.MaxUses,
			UsedCount: invite.UsedCount,
		})
	}
	return responses, nil
}

// RevokeInvite deletes an invite so its token can no longer be redeemed.
// Owner or admin only.
func (s *GroupService) RevokeInvite(code string, callerID uuid.UUID, token string) error {
	group, membership, err := s.resolveMember(code, callerID)
	if err != nil {
		return err
	}
	if !membership.IsModerator() {
		return apperrors.ErrNotModerator
	}
	invite, err := s.invites.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInviteNotFound
		}
		return fmt.Errorf("failed to resolve invite: %w", err)
	}
	if invite.GroupID != group.ID {
		return apperrors.ErrInviteNotFound
	}
	if err := s.invites.Delete(invite.ID); err != nil {
		return fmt.Errorf("failed to revoke invite: %w", err)
	}
	return nil
}

// AcceptInvite redeems an invite token and joins its group
func (s *GroupService) AcceptInvite(token string, userID uuid.UUID) (*GroupResponse, error) {
	invite, err := s.invites.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to resolve invite: %w", err)
	}
	if invite.Expired(time.Now()) {
		return nil, apperrors.ErrInviteExpired
	}
	if invite.Exhausted() {
		return nil, apperrors.ErrInviteExhausted
	}
	if invite.Group == nil {
		return nil, apperrors.ErrGroupNotFound
	}

	if err := s.memberships.Upsert(invite.GroupID, userID, models.RoleMember); err != nil {
		return nil, fmt.Errorf("failed to join group: %w", err)
	}
	if err := s.invites.IncrementUses(invite.ID); err != nil {
		return nil, fmt.Errorf("failed to record invite use: %w", err)
	}
	membership, err := s.memberships.Get(invite.GroupID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return &GroupResponse{
		ID:        invite.Group.ID,
		Code:      invite.Group.Code,
		Name:      invite.Group.Name,
		Role:      membership.Role,
		CreatedAt: invite.Group.CreatedAt,
	}, nil
}
