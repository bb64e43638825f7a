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

// CustomerRepositoryTestSuite tests the CustomerRepository
type CustomerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CustomerRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CustomerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCustomerRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CustomerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CustomerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CustomerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrg persists an organization for customers to hang off
func (suite *CustomerRepositoryTestSuite) createOrg() uuid.UUID {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(org))
	return org.ID
}

// TestCreate tests creating a new customer
func (suite *CustomerRepositoryTestSuite) TestCreate() {
	orgID := suite.createOrg()
	customer := suite.factories.Customer.WithOrganization(orgID)

	err := suite.repo.Create(customer)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, customer.ID)
	suite.NotZero(customer.CreatedAt)
}

// TestGetByIDForOrg tests retrieving a customer within its own organization
func (suite *CustomerRepositoryTestSuite) TestGetByIDForOrg() {
	orgID := suite.createOrg()
	customer := suite.factories.Customer.WithOrganization(orgID)
	suite.Require().NoError(suite.repo.Create(customer))

	retrieved, err := suite.repo.GetByIDForOrg(orgID, customer.ID)

	suite.NoError(err)
	suite.Equal(customer.ID, retrieved.ID)
	suite.Equal(customer.Name, retrieved.Name)
}

// TestGetByIDForOrgCrossTenant tests that another tenant's ID looks missing
func (suite *CustomerRepositoryTestSuite) TestGetByIDForOrgCrossTenant() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	customer := suite.factories.Customer.WithOrganization(orgA)
	suite.Require().NoError(suite.repo.Create(customer))

	retrieved, err := suite.repo.GetByIDForOrg(orgB, customer.ID)

	suite.Nil(retrieved)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByName tests the per-organization name lookup
func (suite *CustomerRepositoryTestSuite) TestGetByName() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	customer := suite.factories.Customer.WithOrganization(orgA)
	customer.Name = "Acme Corp"
	suite.Require().NoError(suite.repo.Create(customer))

	retrieved, err := suite.repo.GetByName(orgA, "Acme Corp")
	suite.NoError(err)
	suite.Equal(customer.ID, retrieved.ID)

	// Same name in another tenant is free
	_, err = suite.repo.GetByName(orgB, "Acme Corp")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByOrganization tests listing with tenant isolation and pagination
func (suite *CustomerRepositoryTestSuite) TestGetByOrganization() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Customer.WithOrganization(orgA)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factories.Customer.WithOrganization(orgB)))

	customers, total, err := suite.repo.GetByOrganization(orgA, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(customers, 2)
	for _, c := range customers {
		suite.Equal(orgA, c.OrganizationID)
	}
}

// TestSearch tests the free-text search over name, contact and email
func (suite *CustomerRepositoryTestSuite) TestSearch() {
	orgID := suite.createOrg()
	match := suite.factories.Customer.WithOrganization(orgID)
	match.Name = "Globex Industries"
	suite.Require().NoError(suite.repo.Create(match))

	other := suite.factories.Customer.WithOrganization(orgID)
	other.Name = "Initech"
	other.ContactName = "Peter Gibbons"
	other.Email = "peter@initech.test"
	suite.Require().NoError(suite.repo.Create(other))

	customers, total, err := suite.repo.Search(orgID, "globex", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(match.ID, customers[0].ID)

	// Contact name matches too
	customers, total, err = suite.repo.Search(orgID, "gibbons", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(other.ID, customers[0].ID)
}

// TestUpdate tests updating a customer
func (suite *CustomerRepositoryTestSuite) TestUpdate() {
	orgID := suite.createOrg()
	customer := suite.factories.Customer.WithOrganization(orgID)
	suite.Require().NoError(suite.repo.Create(customer))

	customer.Name = "Renamed Corp"
	customer.IsActive = false
	err := suite.repo.Update(customer)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByIDForOrg(orgID, customer.ID)
	suite.NoError(err)
	suite.Equal("Renamed Corp", retrieved.Name)
	suite.False(retrieved.IsActive)
}

// TestDelete tests deleting a customer
func (suite *CustomerRepositoryTestSuite) TestDelete() {
	orgID := suite.createOrg()
	customer := suite.factories.Customer.WithOrganization(orgID)
	suite.Require().NoError(suite.repo.Create(customer))

	err := suite.repo.Delete(orgID, customer.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByIDForOrg(orgID, customer.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteCrossTenant tests that another tenant cannot delete the record
func (suite *CustomerRepositoryTestSuite) TestDeleteCrossTenant() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	customer := suite.factories.Customer.WithOrganization(orgA)
	suite.Require().NoError(suite.repo.Create(customer))

	err := suite.repo.Delete(orgB, customer.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Still present in the owning tenant
	retrieved, err := suite.repo.GetByIDForOrg(orgA, customer.ID)
	suite.NoError(err)
	suite.Equal(customer.ID, retrieved.ID)
}

// TestCustomerRepositoryTestSuite runs the test suite
func TestCustomerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryTestSuite))
}
