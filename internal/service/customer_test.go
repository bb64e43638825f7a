package service_test

import (
	"testing"

	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/mocks"
	"business-suite-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CustomerServiceTestSuite defines the test suite for CustomerService
type CustomerServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockCustomerRepositoryInterface
	customerService *service.CustomerService
	orgID           uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCustomerRepositoryInterface(suite.ctrl)
	suite.customerService = service.NewCustomerService(suite.mockRepo, validator.New())
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *CustomerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCustomer tests creating a customer
func (suite *CustomerServiceTestSuite) TestCreateCustomer() {
	req := &service.CreateCustomerRequest{
		Name:        "Acme Corp",
		ContactName: "John Smith",
		Email:       "billing@acme.test",
	}

	suite.mockRepo.EXPECT().
		GetByName(suite.orgID, req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(customer *models.Customer) error {
			assert.Equal(suite.T(), suite.orgID, customer.OrganizationID)
			assert.True(suite.T(), customer.IsActive)
			return nil
		}).
		Times(1)

	response, err := suite.customerService.Create(suite.orgID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), suite.orgID, response.OrganizationID)
}

// TestCreateCustomerDuplicateName tests creating a customer with a duplicate name
func (suite *CustomerServiceTestSuite) TestCreateCustomerDuplicateName() {
	req := &service.CreateCustomerRequest{Name: "Acme Corp"}

	suite.mockRepo.EXPECT().
		GetByName(suite.orgID, req.Name).
		Return(&models.Customer{Name: req.Name}, nil).
		Times(1)

	response, err := suite.customerService.Create(suite.orgID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCustomerExists)
}

// TestCreateCustomerValidationError tests creating a customer with invalid data
func (suite *CustomerServiceTestSuite) TestCreateCustomerValidationError() {
	req := &service.CreateCustomerRequest{
		Name:  "",
		Email: "not-an-email",
	}

	response, err := suite.customerService.Create(suite.orgID, req)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
}

// TestGetByIDNotFound tests that a missing or foreign customer surfaces as not found
func (suite *CustomerServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.customerService.GetByID(suite.orgID, id)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGetByOrganizationClampsPagination tests page defaults
func (suite *CustomerServiceTestSuite) TestGetByOrganizationClampsPagination() {
	// page 0 becomes 1, pageSize 500 becomes the default 20
	suite.mockRepo.EXPECT().
		GetByOrganization(suite.orgID, 20, 0).
		Return([]models.Customer{}, int64(0), nil).
		Times(1)

	response, err := suite.customerService.GetByOrganization(suite.orgID, 0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
	assert.Equal(suite.T(), int64(0), response.Total)
}

// TestSearch tests searching customers by query
func (suite *CustomerServiceTestSuite) TestSearch() {
	customers := []models.Customer{
		{
			TenantModel: models.TenantModel{
				BaseModel:      models.BaseModel{ID: uuid.New()},
				OrganizationID: suite.orgID,
			},
			Name:     "Acme Corp",
			IsActive: true,
		},
	}

	suite.mockRepo.EXPECT().
		Search(suite.orgID, "acme", 20, 0).
		Return(customers, int64(1), nil).
		Times(1)

	response, err := suite.customerService.Search(suite.orgID, "acme", 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Customers, 1)
	assert.Equal(suite.T(), "Acme Corp", response.Customers[0].Name)
}

// TestUpdateCustomer tests updating a customer
func (suite *CustomerServiceTestSuite) TestUpdateCustomer() {
	id := uuid.New()
	existing := &models.Customer{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: id},
			OrganizationID: suite.orgID,
		},
		Name:     "Acme Corp",
		IsActive: true,
	}
	inactive := false
	req := &service.UpdateCustomerRequest{
		Name:     "Acme Corporation",
		IsActive: &inactive,
	}

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, id).
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.customerService.Update(suite.orgID, id, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corporation", response.Name)
	assert.False(suite.T(), response.IsActive)
}

// TestDeleteCustomerNotFound tests deleting a missing customer
func (suite *CustomerServiceTestSuite) TestDeleteCustomerNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		Delete(suite.orgID, id).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	err := suite.customerService.Delete(suite.orgID, id)

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestCustomerServiceTestSuite runs the test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
