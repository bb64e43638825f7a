package service_test

import (
	"testing"
	"time"

	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/mocks"
	"business-suite-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// VoucherServiceTestSuite defines the test suite for VoucherService
type VoucherServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockVoucherRepositoryInterface
	voucherService *service.VoucherService
	orgID          uuid.UUID
	userID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockVoucherRepositoryInterface(suite.ctrl)
	suite.voucherService = service.NewVoucherService(suite.mockRepo, validator.New())
	suite.orgID = uuid.New()
	suite.userID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *VoucherServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VoucherServiceTestSuite) salesRequest() *service.CreateVoucherRequest {
	customerID := uuid.New()
	return &service.CreateVoucherRequest{
		VoucherType: "sales",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Reference:   "INV-001",
		CustomerID:  &customerID,
		Items: []service.VoucherItemRequest{
			{Description: "Widget", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromFloat(9.99)},
			{Description: "Gadget", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromFloat(5.00)},
		},
	}
}

func (suite *VoucherServiceTestSuite) draftVoucher() *models.Voucher {
	customerID := uuid.New()
	return &models.Voucher{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
		},
		VoucherType: models.VoucherTypeSales,
		Status:      models.VoucherStatusDraft,
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CustomerID:  &customerID,
		Total:       decimal.NewFromFloat(24.98),
		CreatedByID: suite.userID,
		Items: []models.VoucherItem{
			{Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromFloat(9.99), Amount: decimal.NewFromFloat(19.98)},
		},
	}
}

// TestCreateVoucher tests creating a draft sales voucher with computed amounts
func (suite *VoucherServiceTestSuite) TestCreateVoucher() {
	req := suite.salesRequest()

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(voucher *models.Voucher) error {
			assert.Equal(suite.T(), suite.orgID, voucher.OrganizationID)
			assert.Equal(suite.T(), models.VoucherStatusDraft, voucher.Status)
			assert.Equal(suite.T(), suite.userID, voucher.CreatedByID)
			assert.Len(suite.T(), voucher.Items, 2)
			// Amounts default to quantity * rate rounded to 2 places
			assert.True(suite.T(), voucher.Items[0].Amount.Equal(decimal.NewFromFloat(19.98)))
			assert.True(suite.T(), voucher.Items[1].Amount.Equal(decimal.NewFromFloat(5.00)))
			assert.True(suite.T(), voucher.Total.Equal(decimal.NewFromFloat(24.98)))
			return nil
		}).
		Times(1)

	response, err := suite.voucherService.Create(suite.orgID, suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "draft", response.Status)
	assert.Equal(suite.T(), "2026-03-15", response.Date)
}

// TestCreateVoucherWithoutItems tests that at least one line item is required
func (suite *VoucherServiceTestSuite) TestCreateVoucherWithoutItems() {
	req := suite.salesRequest()
	req.Items = nil

	response, err := suite.voucherService.Create(suite.orgID, suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVoucherItemsMissing)
}

// TestCreateSalesVoucherWithoutCustomer tests the party rule for sales vouchers
func (suite *VoucherServiceTestSuite) TestCreateSalesVoucherWithoutCustomer() {
	req := suite.salesRequest()
	req.CustomerID = nil

	response, err := suite.voucherService.Create(suite.orgID, suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVoucherPartyMissing)
}

// TestCreatePurchaseVoucherWithoutVendor tests the party rule for purchase vouchers
func (suite *VoucherServiceTestSuite) TestCreatePurchaseVoucherWithoutVendor() {
	req := suite.salesRequest()
	req.VoucherType = "purchase"
	req.VendorID = nil

	response, err := suite.voucherService.Create(suite.orgID, suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVoucherPartyMissing)
}

// TestCreateManufacturingJournal tests that only produced lines count towards the total
func (suite *VoucherServiceTestSuite) TestCreateManufacturingJournal() {
	req := &service.CreateVoucherRequest{
		VoucherType: "manufacturing_journal",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Items: []service.VoucherItemRequest{
			{Description: "Raw steel", Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(3), Direction: "consumed"},
			{Description: "Bracket", Quantity: decimal.NewFromInt(5), Rate: decimal.NewFromInt(8), Direction: "produced"},
		},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(voucher *models.Voucher) error {
			assert.True(suite.T(), voucher.Total.Equal(decimal.NewFromInt(40)),
				"total should sum produced lines only, got %s", voucher.Total)
			return nil
		}).
		Times(1)

	response, err := suite.voucherService.Create(suite.orgID, suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestCreateManufacturingJournalMissingDirection tests the direction requirement
func (suite *VoucherServiceTestSuite) TestCreateManufacturingJournalMissingDirection() {
	req := &service.CreateVoucherRequest{
		VoucherType: "manufacturing_journal",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Items: []service.VoucherItemRequest{
			{Description: "Raw steel", Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(3)},
		},
	}

	response, err := suite.voucherService.Create(suite.orgID, suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrManufacturingDirections)
}

// TestCreateVoucherNegativeRate tests line item validation
func (suite *VoucherServiceTestSuite) TestCreateVoucherNegativeRate() {
	req := suite.salesRequest()
	req.Items[0].Rate = decimal.NewFromFloat(-1.50)

	response, err := suite.voucherService.Create(suite.orgID, suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestSubmitVoucher tests the draft to submitted transition
func (suite *VoucherServiceTestSuite) TestSubmitVoucher() {
	voucher := suite.draftVoucher()

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(v *models.Voucher) error {
			assert.Equal(suite.T(), models.VoucherStatusSubmitted, v.Status)
			return nil
		}).
		Times(1)

	response, err := suite.voucherService.Submit(suite.orgID, voucher.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "submitted", response.Status)
}

// TestSubmitVoucherWithoutItems tests that empty drafts cannot be submitted
func (suite *VoucherServiceTestSuite) TestSubmitVoucherWithoutItems() {
	voucher := suite.draftVoucher()
	voucher.Items = nil

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)

	response, err := suite.voucherService.Submit(suite.orgID, voucher.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVoucherItemsMissing)
}

// TestApproveSubmittedVoucher tests the submitted to approved transition
func (suite *VoucherServiceTestSuite) TestApproveSubmittedVoucher() {
	voucher := suite.draftVoucher()
	voucher.Status = models.VoucherStatusSubmitted

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.voucherService.Approve(suite.orgID, voucher.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "approved", response.Status)
}

// TestApproveDraftVoucher tests that drafts cannot skip the submitted state
func (suite *VoucherServiceTestSuite) TestApproveDraftVoucher() {
	voucher := suite.draftVoucher()

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)

	response, err := suite.voucherService.Approve(suite.orgID, voucher.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
}

// TestCancelApprovedVoucher tests that approved vouchers are final
func (suite *VoucherServiceTestSuite) TestCancelApprovedVoucher() {
	voucher := suite.draftVoucher()
	voucher.Status = models.VoucherStatusApproved

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)

	response, err := suite.voucherService.Cancel(suite.orgID, voucher.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
}

// TestUpdateVoucher tests that an update writes the header and its items
// through a single transactional repository call
func (suite *VoucherServiceTestSuite) TestUpdateVoucher() {
	voucher := suite.draftVoucher()
	customerID := *voucher.CustomerID
	req := &service.UpdateVoucherRequest{
		Date:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Reference:  "INV-001-R1",
		CustomerID: &customerID,
		Items: []service.VoucherItemRequest{
			{Description: "Widget", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromFloat(4.00)},
		},
	}

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(2)
	// No separate Update expectation: header and items must change together
	suite.mockRepo.EXPECT().
		ReplaceItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(updated *models.Voucher, items []models.VoucherItem) error {
			assert.Equal(suite.T(), "INV-001-R1", updated.Reference)
			assert.True(suite.T(), updated.Total.Equal(decimal.NewFromFloat(12.00)))
			assert.Len(suite.T(), items, 1)
			assert.True(suite.T(), items[0].Amount.Equal(decimal.NewFromFloat(12.00)))
			return nil
		}).
		Times(1)

	response, err := suite.voucherService.Update(suite.orgID, voucher.ID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestUpdateVoucherReplaceItemsFails tests that a failed item write surfaces
// as an error instead of a partially updated voucher
func (suite *VoucherServiceTestSuite) TestUpdateVoucherReplaceItemsFails() {
	voucher := suite.draftVoucher()
	customerID := *voucher.CustomerID
	req := &service.UpdateVoucherRequest{
		Date:       voucher.Date,
		CustomerID: &customerID,
		Items: []service.VoucherItemRequest{
			{Description: "Widget", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(7)},
		},
	}

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ReplaceItems(gomock.Any(), gomock.Any()).
		Return(gorm.ErrInvalidTransaction).
		Times(1)

	response, err := suite.voucherService.Update(suite.orgID, voucher.ID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorContains(suite.T(), err, "failed to update voucher")
}

// TestUpdateSubmittedVoucher tests that only drafts are editable
func (suite *VoucherServiceTestSuite) TestUpdateSubmittedVoucher() {
	voucher := suite.draftVoucher()
	voucher.Status = models.VoucherStatusSubmitted
	customerID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)

	response, err := suite.voucherService.Update(suite.orgID, voucher.ID, &service.UpdateVoucherRequest{
		Date:       time.Now(),
		CustomerID: &customerID,
		Items: []service.VoucherItemRequest{
			{Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(1)},
		},
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVoucherNotEditable)
}

// TestDeleteSubmittedVoucher tests that only drafts can be deleted
func (suite *VoucherServiceTestSuite) TestDeleteSubmittedVoucher() {
	voucher := suite.draftVoucher()
	voucher.Status = models.VoucherStatusSubmitted

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, voucher.ID).
		Return(voucher, nil).
		Times(1)

	err := suite.voucherService.Delete(suite.orgID, voucher.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrVoucherNotEditable)
}

// TestGetByIDNotFound tests that foreign vouchers look missing
func (suite *VoucherServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByIDForOrg(suite.orgID, id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.voucherService.GetByID(suite.orgID, id)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestVoucherServiceTestSuite runs the test suite
func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
