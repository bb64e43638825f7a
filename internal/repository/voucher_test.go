//go:build integration
// +build integration

package repository

import (
	"testing"

	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// VoucherRepositoryTestSuite tests the VoucherRepository
type VoucherRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VoucherRepository
	orgRepo       *OrganizationRepository
	customerRepo  *CustomerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *VoucherRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewVoucherRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.customerRepo = NewCustomerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *VoucherRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VoucherRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VoucherRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// newVoucher builds a persisted-ready sales voucher with a real customer
func (suite *VoucherRepositoryTestSuite) newVoucher(orgID uuid.UUID) *models.Voucher {
	customer := suite.factories.Customer.WithOrganization(orgID)
	suite.Require().NoError(suite.customerRepo.Create(customer))

	voucher := suite.factories.Voucher.WithOrganization(orgID)
	voucher.CustomerID = &customer.ID
	return voucher
}

func (suite *VoucherRepositoryTestSuite) createOrg() uuid.UUID {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(org))
	return org.ID
}

// TestCreateWithItems tests that line items persist with the voucher
func (suite *VoucherRepositoryTestSuite) TestCreateWithItems() {
	orgID := suite.createOrg()
	voucher := suite.newVoucher(orgID)

	err := suite.repo.Create(voucher)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, voucher.ID)

	retrieved, err := suite.repo.GetByIDForOrg(orgID, voucher.ID)
	suite.NoError(err)
	suite.Len(retrieved.Items, 1)
	suite.Equal(voucher.ID, retrieved.Items[0].VoucherID)
	suite.True(retrieved.Total.Equal(voucher.Total))
}

// TestGetByIDForOrgCrossTenant tests that a foreign voucher ID looks missing
func (suite *VoucherRepositoryTestSuite) TestGetByIDForOrgCrossTenant() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	voucher := suite.newVoucher(orgA)
	suite.Require().NoError(suite.repo.Create(voucher))

	retrieved, err := suite.repo.GetByIDForOrg(orgB, voucher.ID)

	suite.Nil(retrieved)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByOrganizationFilters tests type and status filtering
func (suite *VoucherRepositoryTestSuite) TestGetByOrganizationFilters() {
	orgID := suite.createOrg()

	sales := suite.newVoucher(orgID)
	suite.Require().NoError(suite.repo.Create(sales))

	submitted := suite.newVoucher(orgID)
	submitted.Status = models.VoucherStatusSubmitted
	suite.Require().NoError(suite.repo.Create(submitted))

	vouchers, total, err := suite.repo.GetByOrganization(orgID, VoucherFilter{
		Status: models.VoucherStatusSubmitted,
	}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(submitted.ID, vouchers[0].ID)

	vouchers, total, err = suite.repo.GetByOrganization(orgID, VoucherFilter{
		VoucherType: models.VoucherTypeSales,
	}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(vouchers, 2)
}

// TestGetByOrganizationCustomerFilter tests filtering by party
func (suite *VoucherRepositoryTestSuite) TestGetByOrganizationCustomerFilter() {
	orgID := suite.createOrg()
	voucherA := suite.newVoucher(orgID)
	voucherB := suite.newVoucher(orgID)
	suite.Require().NoError(suite.repo.Create(voucherA))
	suite.Require().NoError(suite.repo.Create(voucherB))

	vouchers, total, err := suite.repo.GetByOrganization(orgID, VoucherFilter{
		CustomerID: voucherA.CustomerID,
	}, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(voucherA.ID, vouchers[0].ID)
}

// TestReplaceItems tests swapping the full item set
func (suite *VoucherRepositoryTestSuite) TestReplaceItems() {
	orgID := suite.createOrg()
	voucher := suite.newVoucher(orgID)
	suite.Require().NoError(suite.repo.Create(voucher))

	newItems := []models.VoucherItem{
		{Description: "Replacement A", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(5), Amount: decimal.NewFromInt(5)},
		{Description: "Replacement B", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(2), Amount: decimal.NewFromInt(6)},
	}
	voucher.Total = decimal.NewFromInt(11)

	err := suite.repo.ReplaceItems(voucher, newItems)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByIDForOrg(orgID, voucher.ID)
	suite.NoError(err)
	suite.Len(retrieved.Items, 2)
	suite.True(retrieved.Total.Equal(decimal.NewFromInt(11)))

	descriptions := []string{retrieved.Items[0].Description, retrieved.Items[1].Description}
	suite.Contains(descriptions, "Replacement A")
	suite.Contains(descriptions, "Replacement B")
}

// TestDeleteCascadesItems tests that deleting a voucher removes its items
func (suite *VoucherRepositoryTestSuite) TestDeleteCascadesItems() {
	orgID := suite.createOrg()
	voucher := suite.newVoucher(orgID)
	suite.Require().NoError(suite.repo.Create(voucher))

	err := suite.repo.Delete(orgID, voucher.ID)
	suite.NoError(err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.VoucherItem{}).
		Where("voucher_id = ?", voucher.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// TestDeleteCrossTenant tests that a foreign tenant cannot delete a voucher
func (suite *VoucherRepositoryTestSuite) TestDeleteCrossTenant() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()
	voucher := suite.newVoucher(orgA)
	suite.Require().NoError(suite.repo.Create(voucher))

	err := suite.repo.Delete(orgB, voucher.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestVoucherRepositoryTestSuite runs the test suite
func TestVoucherRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherRepositoryTestSuite))
}
