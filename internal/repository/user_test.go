//go:build integration
// +build integration

package repository

import (
	"testing"

	"business-suite-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository and role assignment
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	roleRepo      *RoleRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.roleRepo = NewRoleRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) createOrg() uuid.UUID {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(org))
	return org.ID
}

// TestCreateAndGetByEmail tests the login lookup path
func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	orgID := suite.createOrg()
	user := suite.factories.User.WithOrganization(orgID)

	err := suite.repo.Create(user)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
	suite.NotEmpty(retrieved.PasswordHash)
}

// TestCreateDuplicateEmail tests the global unique constraint on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	orgID := suite.createOrg()
	first := suite.factories.User.WithOrganization(orgID)
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.User.WithOrganization(orgID)
	second.Email = first.Email

	err := suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByIDForOrgCrossTenant tests that users are invisible across tenants
func (suite *UserRepositoryTestSuite) TestGetByIDForOrgCrossTenant() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	user := suite.factories.User.WithOrganization(orgA)
	suite.Require().NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByIDForOrg(orgB, user.ID)

	suite.Nil(retrieved)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAssignAndUnassignRole tests the user_roles join table round trip
func (suite *UserRepositoryTestSuite) TestAssignAndUnassignRole() {
	orgID := suite.createOrg()
	user := suite.factories.User.WithOrganization(orgID)
	suite.Require().NoError(suite.repo.Create(user))

	role := suite.factories.Role.WithOrganization(orgID)
	suite.Require().NoError(suite.roleRepo.Create(role))

	err := suite.repo.AssignRole(user, role)
	suite.NoError(err)

	withRoles, err := suite.repo.GetByIDWithRoles(user.ID)
	suite.NoError(err)
	suite.Require().Len(withRoles.Roles, 1)
	suite.Equal(role.ID, withRoles.Roles[0].ID)

	perms, err := withRoles.Roles[0].PermissionList()
	suite.NoError(err)
	suite.NotEmpty(perms)

	err = suite.repo.UnassignRole(user, role)
	suite.NoError(err)

	withRoles, err = suite.repo.GetByIDWithRoles(user.ID)
	suite.NoError(err)
	suite.Empty(withRoles.Roles)
}

// TestGetByOrganization tests tenant-scoped user listing
func (suite *UserRepositoryTestSuite) TestGetByOrganization() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	for i := 0; i < 2; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.User.WithOrganization(orgA)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factories.User.WithOrganization(orgB)))

	users, total, err := suite.repo.GetByOrganization(orgA, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(users, 2)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
