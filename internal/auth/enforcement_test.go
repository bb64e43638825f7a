package auth_test

import (
	"net/http"
	"testing"

	"business-suite-backend/internal/auth"
	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/mocks"
	"business-suite-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EnforcerTestSuite tests the per-route access-control middleware
type EnforcerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserRepositoryInterface
	mockRBAC  *mocks.MockRBACServiceInterface
	enforcer  *auth.Enforcer
	httpSuite *testutils.HTTPTestSuite
	seen      *auth.Access
}

// SetupTest sets up the test suite
func (suite *EnforcerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRBAC = mocks.NewMockRBACServiceInterface(suite.ctrl)
	suite.enforcer = auth.NewEnforcer(suite.mockUsers, suite.mockRBAC)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.seen = nil
}

// TearDownTest cleans up after each test
func (suite *EnforcerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// registerGuardedRoute wires a route guarded by RequireAccess that records the
// resolved access scope. The claims middleware simulates RequireAuth.
func (suite *EnforcerTestSuite) registerGuardedRoute(claims *auth.AuthClaims, module, action string) {
	suite.httpSuite.Router.GET("/guarded",
		func(c *gin.Context) {
			if claims != nil {
				c.Set("auth_claims", claims)
			}
			c.Next()
		},
		suite.enforcer.RequireAccess(module, action),
		func(c *gin.Context) {
			access, _ := auth.GetAccess(c)
			suite.seen = access
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		},
	)
}

// registerSuperAdminRoute wires a route guarded by RequireAccess followed by
// RequireSuperAdmin, mirroring the organization create/delete routes.
func (suite *EnforcerTestSuite) registerSuperAdminRoute(claims *auth.AuthClaims, module, action string) {
	suite.httpSuite.Router.POST("/guarded",
		func(c *gin.Context) {
			if claims != nil {
				c.Set("auth_claims", claims)
			}
			c.Next()
		},
		suite.enforcer.RequireAccess(module, action),
		suite.enforcer.RequireSuperAdmin(),
		func(c *gin.Context) {
			access, _ := auth.GetAccess(c)
			suite.seen = access
			c.JSON(http.StatusCreated, gin.H{"status": "created"})
		},
	)
}

func claimsFor(user *models.User) *auth.AuthClaims {
	return &auth.AuthClaims{
		UserID:       user.ID,
		Email:        user.Email,
		IsSuperAdmin: user.IsSuperAdmin,
	}
}

// TestMissingClaims tests that unauthenticated requests get 401
func (suite *EnforcerTestSuite) TestMissingClaims() {
	suite.registerGuardedRoute(nil, models.ModuleCustomer, models.ActionRead)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	assert.Nil(suite.T(), suite.seen)
}

// TestUnknownUser tests that stale tokens for deleted users get 401
func (suite *EnforcerTestSuite) TestUnknownUser() {
	userID := uuid.New()
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.registerGuardedRoute(&auth.AuthClaims{UserID: userID}, models.ModuleCustomer, models.ActionRead)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestInactiveUser tests that deactivated accounts get 403
func (suite *EnforcerTestSuite) TestInactiveUser() {
	orgID := uuid.New()
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: &orgID,
		IsActive:       false,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(user.ID).
		Return(user, nil).
		Times(1)

	suite.registerGuardedRoute(claimsFor(user), models.ModuleCustomer, models.ActionRead)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "inactive")
}

// TestUserWithoutOrganization tests that regular users need a tenant
func (suite *EnforcerTestSuite) TestUserWithoutOrganization() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		IsActive:  true,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(user.ID).
		Return(user, nil).
		Times(1)

	suite.registerGuardedRoute(claimsFor(user), models.ModuleCustomer, models.ActionRead)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no organization")
}

// TestMissingPermission tests that a user without the permission gets 403
func (suite *EnforcerTestSuite) TestMissingPermission() {
	orgID := uuid.New()
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: &orgID,
		IsActive:       true,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(user.ID).
		Return(user, nil).
		Times(1)
	suite.mockRBAC.EXPECT().
		HasPermission(user, models.ModuleVoucher, models.ActionApprove).
		Return(false, nil).
		Times(1)

	suite.registerGuardedRoute(claimsFor(user), models.ModuleVoucher, models.ActionApprove)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Insufficient permission")
}

// TestGrantedPermission tests that a permitted user passes with tenant scope set
func (suite *EnforcerTestSuite) TestGrantedPermission() {
	orgID := uuid.New()
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: &orgID,
		IsActive:       true,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(user.ID).
		Return(user, nil).
		Times(1)
	suite.mockRBAC.EXPECT().
		HasPermission(user, models.ModuleCustomer, models.ActionRead).
		Return(true, nil).
		Times(1)

	suite.registerGuardedRoute(claimsFor(user), models.ModuleCustomer, models.ActionRead)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	suite.Require().NotNil(suite.seen)
	assert.Equal(suite.T(), orgID, suite.seen.OrganizationID)
	assert.Equal(suite.T(), user.ID, suite.seen.User.ID)
}

// TestSuperAdminBypass tests that super-admins skip the permission check
func (suite *EnforcerTestSuite) TestSuperAdminBypass() {
	admin := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		IsActive:     true,
		IsSuperAdmin: true,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(admin.ID).
		Return(admin, nil).
		Times(1)
	// No HasPermission expectation: the check must not run at all

	suite.registerGuardedRoute(claimsFor(admin), models.ModuleOrganization, models.ActionDelete)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	suite.Require().NotNil(suite.seen)
	assert.True(suite.T(), suite.seen.IsSuperAdmin())
}

// TestSuperAdminTenantSelection tests selecting a tenant via query parameter
func (suite *EnforcerTestSuite) TestSuperAdminTenantSelection() {
	admin := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		IsActive:     true,
		IsSuperAdmin: true,
	}
	target := uuid.New()
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(admin.ID).
		Return(admin, nil).
		Times(1)

	suite.registerGuardedRoute(claimsFor(admin), models.ModuleCustomer, models.ActionRead)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded?organization_id="+target.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	suite.Require().NotNil(suite.seen)
	assert.Equal(suite.T(), target, suite.seen.OrganizationID)
}

// TestSuperAdminInvalidTenantSelection tests that a malformed tenant
// selection is rejected instead of silently falling back
func (suite *EnforcerTestSuite) TestSuperAdminInvalidTenantSelection() {
	admin := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		IsActive:     true,
		IsSuperAdmin: true,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(admin.ID).
		Return(admin, nil).
		Times(1)

	suite.registerGuardedRoute(claimsFor(admin), models.ModuleCustomer, models.ActionRead)

	recorder := suite.httpSuite.MakeRequest("GET", "/guarded?organization_id=not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "organization_id")
	assert.Nil(suite.T(), suite.seen)
}

// TestSuperAdminRouteBlocksTenantUser tests that granting the permission
// string alone never opens a super-admin route
func (suite *EnforcerTestSuite) TestSuperAdminRouteBlocksTenantUser() {
	orgID := uuid.New()
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: &orgID,
		IsActive:       true,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(user.ID).
		Return(user, nil).
		Times(1)
	suite.mockRBAC.EXPECT().
		HasPermission(user, models.ModuleOrganization, models.ActionCreate).
		Return(true, nil).
		Times(1)

	suite.registerSuperAdminRoute(claimsFor(user), models.ModuleOrganization, models.ActionCreate)

	recorder := suite.httpSuite.MakeRequest("POST", "/guarded", gin.H{"name": "rogue"})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Super-admin")
	assert.Nil(suite.T(), suite.seen)
}

// TestSuperAdminRouteAllowsSuperAdmin tests that super-admins pass the gate
func (suite *EnforcerTestSuite) TestSuperAdminRouteAllowsSuperAdmin() {
	admin := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		IsActive:     true,
		IsSuperAdmin: true,
	}
	suite.mockUsers.EXPECT().
		GetByIDWithRoles(admin.ID).
		Return(admin, nil).
		Times(1)

	suite.registerSuperAdminRoute(claimsFor(admin), models.ModuleOrganization, models.ActionCreate)

	recorder := suite.httpSuite.MakeRequest("POST", "/guarded", gin.H{"name": "new-org"})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	suite.Require().NotNil(suite.seen)
	assert.True(suite.T(), suite.seen.IsSuperAdmin())
}

// TestEnforcerTestSuite runs the test suite
func TestEnforcerTestSuite(t *testing.T) {
	suite.Run(t, new(EnforcerTestSuite))
}
