//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/evandev76/event-organizer-app/internal/database/models"
	"github.com/evandev76/event-organizer-app/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	groups        *GroupRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.groups = NewGroupRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MembershipRepositoryTestSuite) seedGroup() (*models.Group, *models.User) {
	founder := suite.factories.User.Create()
	suite.NoError(suite.users.Create(founder))
	group := suite.factories.Group.Create()
	suite.NoError(suite.groups.Create(group, founder.ID))
	return group, founder
}

// TestUpsertIsIdempotent tests that re-joining keeps the original role
func (suite *MembershipRepositoryTestSuite) TestUpsertIsIdempotent() {
	group, founder := suite.seedGroup()

	// Founder is already owner; an upsert as plain member must not demote them.
	suite.NoError(suite.repo.Upsert(group.ID, founder.ID, models.RoleMember))

	membership, err := suite.repo.Get(group.ID, founder.ID)
	suite.NoError(err)
	suite.Equal(models.RoleOwner, membership.Role)
}

// TestUpsertNewMember tests joining a group
func (suite *MembershipRepositoryTestSuite) TestUpsertNewMember() {
	group, _ := suite.seedGroup()
	joiner := suite.factories.User.Create()
	suite.NoError(suite.users.Create(joiner))

	suite.NoError(suite.repo.Upsert(group.ID, joiner.ID, models.RoleMember))

	membership, err := suite.repo.Get(group.ID, joiner.ID)
	suite.NoError(err)
	suite.Equal(models.RoleMember, membership.Role)
}

// TestDelete tests leaving and reports whether a row was removed
func (suite *MembershipRepositoryTestSuite) TestDelete() {
	group, founder := suite.seedGroup()

	removed, err := suite.repo.Delete(group.ID, founder.ID)
	suite.NoError(err)
	suite.True(removed)

	// Leaving twice finds nothing to remove.
	removed, err = suite.repo.Delete(group.ID, founder.ID)
	suite.NoError(err)
	suite.False(removed)
}

// TestListByGroup tests member listing with preloaded users
func (suite *MembershipRepositoryTestSuite) TestListByGroup() {
	group, founder := suite.seedGroup()
	joiner := suite.factories.User.Create()
	suite.NoError(suite.users.Create(joiner))
	suite.NoError(suite.repo.Upsert(group.ID, joiner.ID, models.RoleMember))

	members, err := suite.repo.ListByGroup(group.ID)
	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal(founder.ID, members[0].UserID)
	suite.NotNil(members[0].User)
}

// TestListByUser tests listing a user's groups
func (suite *MembershipRepositoryTestSuite) TestListByUser() {
	group, founder := suite.seedGroup()

	memberships, err := suite.repo.ListByUser(founder.ID)
	suite.NoError(err)
	suite.Len(memberships, 1)
	suite.Equal(group.ID, memberships[0].GroupID)
	suite.NotNil(memberships[0].Group)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
