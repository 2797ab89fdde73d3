package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evandev76/event-organizer-app/internal/database/models"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// groupAccess resolves group codes and enforces membership. Every
// membership-gated service embeds one so the resolve-then-authorize step
// stays uniform across the API surface.
type groupAccess struct {
	groups      repository.GroupRepositoryInterface
	memberships repository.MembershipRepositoryInterface
}

// normalizeGroupCode canonicalizes user-supplied codes before lookup:
// trim, uppercase, drop anything outside A-Z0-9.
func normalizeGroupCode(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(code)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveGroup finds a group by its (normalized) code
func (a *groupAccess) resolveGroup(code string) (*models.Group, error) {
	group, err := a.groups.GetByCode(normalizeGroupCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to resolve group: %w", err)
	}
	return group, nil
}

// resolveMember finds a group by code and requires the caller to belong to it
func (a *groupAccess) resolveMember(code string, userID uuid.UUID) (*models.Group, *models.GroupMembership, error) {
	group, err := a.resolveGroup(code)
	if err != nil {
		return nil, nil, err
	}
	membership, err := a.memberships.Get(group.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrNotAMember
		}
		return nil, nil, fmt.Errorf("failed to check membership: %w", err)
	}
	return group, membership, nil
}
