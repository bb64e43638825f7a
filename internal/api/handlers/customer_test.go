package handlers

import (
	"net/http"
	"testing"

	"business-suite-backend/internal/auth"
	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/mocks"
	"business-suite-backend/internal/service"
	"business-suite-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CustomerHandlerTestSuite defines the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockCustomerService *mocks.MockCustomerServiceInterface
	handler             *CustomerHandler
	httpSuite           *testutils.HTTPTestSuite
	orgID               uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CustomerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCustomerService = mocks.NewMockCustomerServiceInterface(suite.ctrl)
	suite.handler = NewCustomerHandler(suite.mockCustomerService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.orgID = uuid.New()

	orgID := suite.orgID
	// Simulate the enforcement middleware having resolved the caller
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("access", &auth.Access{
			User: &models.User{
				BaseModel:      models.BaseModel{ID: uuid.New()},
				OrganizationID: &orgID,
				IsActive:       true,
			},
			OrganizationID: orgID,
		})
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	customers := v1.Group("/customers")
	{
		customers.POST("", suite.handler.CreateCustomer)
		customers.GET("", suite.handler.ListCustomers)
		customers.GET("/:id", suite.handler.GetCustomer)
		customers.PUT("/:id", suite.handler.UpdateCustomer)
		customers.DELETE("/:id", suite.handler.DeleteCustomer)
	}
}

// TearDownTest cleans up after each test
func (suite *CustomerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCustomer tests creating a customer
func (suite *CustomerHandlerTestSuite) TestCreateCustomer() {
	customerID := uuid.New()
	requestBody := map[string]interface{}{
		"name":         "Acme Corp",
		"contact_name": "John Smith",
		"email":        "billing@acme.test",
	}

	expectedResponse := &service.CustomerResponse{
		ID:             customerID,
		OrganizationID: suite.orgID,
		Name:           "Acme Corp",
		ContactName:    "John Smith",
		Email:          "billing@acme.test",
		IsActive:       true,
	}

	suite.mockCustomerService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/customers", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.CustomerResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), suite.orgID, response.OrganizationID)
}

// TestCreateCustomerConflict tests creating a duplicate customer
func (suite *CustomerHandlerTestSuite) TestCreateCustomerConflict() {
	requestBody := map[string]interface{}{"name": "Acme Corp"}

	suite.mockCustomerService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(nil, apperrors.ErrCustomerExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/customers", requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestGetCustomer tests retrieving a customer
func (suite *CustomerHandlerTestSuite) TestGetCustomer() {
	customerID := uuid.New()
	expectedResponse := &service.CustomerResponse{
		ID:             customerID,
		OrganizationID: suite.orgID,
		Name:           "Acme Corp",
	}

	suite.mockCustomerService.EXPECT().
		GetByID(suite.orgID, customerID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/customers/"+customerID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.CustomerResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), customerID, response.ID)
}

// TestGetCustomerNotFound tests that missing and foreign customers both yield 404
func (suite *CustomerHandlerTestSuite) TestGetCustomerNotFound() {
	customerID := uuid.New()

	suite.mockCustomerService.EXPECT().
		GetByID(suite.orgID, customerID).
		Return(nil, apperrors.ErrCustomerNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/customers/"+customerID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "customer not found")
}

// TestGetCustomerInvalidID tests an unparseable ID parameter
func (suite *CustomerHandlerTestSuite) TestGetCustomerInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/customers/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestListCustomers tests listing customers with pagination
func (suite *CustomerHandlerTestSuite) TestListCustomers() {
	expectedResponse := &service.CustomerListResponse{
		Customers: []service.CustomerResponse{
			{ID: uuid.New(), OrganizationID: suite.orgID, Name: "Acme Corp"},
		},
		Total:    1,
		Page:     2,
		PageSize: 10,
	}

	suite.mockCustomerService.EXPECT().
		GetByOrganization(suite.orgID, 2, 10).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/customers?page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.CustomerListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Customers, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestListCustomersWithQuery tests that the q parameter routes to search
func (suite *CustomerHandlerTestSuite) TestListCustomersWithQuery() {
	expectedResponse := &service.CustomerListResponse{
		Customers: []service.CustomerResponse{},
		Page:      1,
		PageSize:  20,
	}

	suite.mockCustomerService.EXPECT().
		Search(suite.orgID, "acme", 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/customers?q=acme", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdateCustomer tests updating a customer
func (suite *CustomerHandlerTestSuite) TestUpdateCustomer() {
	customerID := uuid.New()
	requestBody := map[string]interface{}{"name": "Acme Corporation"}

	expectedResponse := &service.CustomerResponse{
		ID:             customerID,
		OrganizationID: suite.orgID,
		Name:           "Acme Corporation",
	}

	suite.mockCustomerService.EXPECT().
		Update(suite.orgID, customerID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/customers/"+customerID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteCustomer tests deleting a customer
func (suite *CustomerHandlerTestSuite) TestDeleteCustomer() {
	customerID := uuid.New()

	suite.mockCustomerService.EXPECT().
		Delete(suite.orgID, customerID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/customers/"+customerID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestCustomerHandlerTestSuite runs the test suite
func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
