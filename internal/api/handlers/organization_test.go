package handlers

import (
	"net/http"
	"testing"

	"business-suite-backend/internal/auth"
	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/mocks"
	"business-suite-backend/internal/service"
	"business-suite-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	handler     *OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// registerRoutes wires the organization routes behind a middleware that
// simulates the enforcement layer having resolved the caller
func (suite *OrganizationHandlerTestSuite) registerRoutes(superAdmin bool) {
	orgID := suite.orgID
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		user := &models.User{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			IsActive:     true,
			IsSuperAdmin: superAdmin,
		}
		if !superAdmin {
			user.OrganizationID = &orgID
		}
		c.Set("access", &auth.Access{User: user, OrganizationID: orgID})
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	organizations := v1.Group("/organizations")
	{
		organizations.GET("", suite.handler.ListOrganizations)
		organizations.GET("/:id", suite.handler.GetOrganization)
		organizations.PUT("/:id", suite.handler.UpdateOrganization)
	}
}

// TestGetOwnOrganization tests that a tenant user can read their organization
func (suite *OrganizationHandlerTestSuite) TestGetOwnOrganization() {
	suite.registerRoutes(false)

	expected := &service.OrganizationResponse{
		ID:     suite.orgID,
		Name:   "demo-co",
		Status: models.OrganizationStatusActive,
	}
	suite.mockService.EXPECT().
		GetByID(suite.orgID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+suite.orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), suite.orgID, response.ID)
}

// TestGetForeignOrganization tests that a foreign organization id reads as
// missing for tenant users, without touching the service
func (suite *OrganizationHandlerTestSuite) TestGetForeignOrganization() {
	suite.registerRoutes(false)
	// No GetByID expectation: the handler must not look the record up

	foreignID := uuid.New()
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+foreignID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestGetForeignOrganizationAsSuperAdmin tests that super-admins read any tenant
func (suite *OrganizationHandlerTestSuite) TestGetForeignOrganizationAsSuperAdmin() {
	suite.registerRoutes(true)

	foreignID := uuid.New()
	suite.mockService.EXPECT().
		GetByID(foreignID).
		Return(&service.OrganizationResponse{ID: foreignID, Name: "other-co"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+foreignID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListAsTenantUser tests that listing yields only the caller's organization
func (suite *OrganizationHandlerTestSuite) TestListAsTenantUser() {
	suite.registerRoutes(false)

	suite.mockService.EXPECT().
		GetByID(suite.orgID).
		Return(&service.OrganizationResponse{ID: suite.orgID, Name: "demo-co"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
	suite.Require().Len(response.Organizations, 1)
	assert.Equal(suite.T(), suite.orgID, response.Organizations[0].ID)
}

// TestListAsSuperAdmin tests that super-admins list all organizations
func (suite *OrganizationHandlerTestSuite) TestListAsSuperAdmin() {
	suite.registerRoutes(true)

	expected := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{
			{ID: uuid.New(), Name: "demo-co"},
			{ID: uuid.New(), Name: "other-co"},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}
	suite.mockService.EXPECT().
		GetAll(1, 20).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestUpdateOwnOrganization tests that a tenant user can update their organization
func (suite *OrganizationHandlerTestSuite) TestUpdateOwnOrganization() {
	suite.registerRoutes(false)

	requestBody := map[string]interface{}{"display_name": "Demo Company"}
	suite.mockService.EXPECT().
		Update(suite.orgID, gomock.Any()).
		Return(&service.OrganizationResponse{ID: suite.orgID, DisplayName: "Demo Company"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+suite.orgID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdateForeignOrganization tests that a tenant user cannot modify a
// foreign organization
func (suite *OrganizationHandlerTestSuite) TestUpdateForeignOrganization() {
	suite.registerRoutes(false)
	// No Update expectation: the handler must reject before the service

	foreignID := uuid.New()
	requestBody := map[string]interface{}{"display_name": "Hijacked"}

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+foreignID.String(), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
