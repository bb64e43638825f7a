package handlers

import (
	"net/http"
	"testing"

	"business-suite-backend/internal/auth"
	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/mocks"
	"business-suite-backend/internal/repository"
	"business-suite-backend/internal/service"
	"business-suite-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VoucherHandlerTestSuite defines the test suite for VoucherHandler
type VoucherHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockVoucherService *mocks.MockVoucherServiceInterface
	handler            *VoucherHandler
	httpSuite          *testutils.HTTPTestSuite
	orgID              uuid.UUID
	userID             uuid.UUID
}

// SetupTest sets up the test suite
func (suite *VoucherHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVoucherService = mocks.NewMockVoucherServiceInterface(suite.ctrl)
	suite.handler = NewVoucherHandler(suite.mockVoucherService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.orgID = uuid.New()
	suite.userID = uuid.New()

	orgID := suite.orgID
	userID := suite.userID
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("access", &auth.Access{
			User: &models.User{
				BaseModel:      models.BaseModel{ID: userID},
				OrganizationID: &orgID,
				IsActive:       true,
			},
			OrganizationID: orgID,
		})
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	vouchers := v1.Group("/vouchers")
	{
		vouchers.POST("", suite.handler.CreateVoucher)
		vouchers.GET("", suite.handler.ListVouchers)
		vouchers.GET("/:id", suite.handler.GetVoucher)
		vouchers.PUT("/:id", suite.handler.UpdateVoucher)
		vouchers.POST("/:id/submit", suite.handler.SubmitVoucher)
		vouchers.POST("/:id/approve", suite.handler.ApproveVoucher)
		vouchers.POST("/:id/cancel", suite.handler.CancelVoucher)
		vouchers.DELETE("/:id", suite.handler.DeleteVoucher)
	}
}

// TearDownTest cleans up after each test
func (suite *VoucherHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateVoucher tests creating a voucher with the caller recorded as author
func (suite *VoucherHandlerTestSuite) TestCreateVoucher() {
	customerID := uuid.New()
	requestBody := map[string]interface{}{
		"voucher_type": "sales",
		"date":         "2026-03-15T00:00:00Z",
		"customer_id":  customerID.String(),
		"items": []map[string]interface{}{
			{"description": "Widget", "quantity": "2", "rate": "9.99"},
		},
	}

	expectedResponse := &service.VoucherResponse{
		ID:             uuid.New(),
		OrganizationID: suite.orgID,
		VoucherType:    "sales",
		Status:         "draft",
		Date:           "2026-03-15",
		CustomerID:     &customerID,
		Total:          decimal.NewFromFloat(19.98),
		CreatedByID:    suite.userID,
	}

	suite.mockVoucherService.EXPECT().
		Create(suite.orgID, suite.userID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/vouchers", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.VoucherResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "draft", response.Status)
	assert.Equal(suite.T(), suite.userID, response.CreatedByID)
}

// TestCreateVoucherMissingParty tests that party rule violations become 400
func (suite *VoucherHandlerTestSuite) TestCreateVoucherMissingParty() {
	requestBody := map[string]interface{}{
		"voucher_type": "sales",
		"date":         "2026-03-15T00:00:00Z",
		"items": []map[string]interface{}{
			{"description": "Widget", "quantity": "2", "rate": "9.99"},
		},
	}

	suite.mockVoucherService.EXPECT().
		Create(suite.orgID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrVoucherPartyMissing).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/vouchers", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetVoucherNotFound tests that a foreign voucher yields 404
func (suite *VoucherHandlerTestSuite) TestGetVoucherNotFound() {
	voucherID := uuid.New()

	suite.mockVoucherService.EXPECT().
		GetByID(suite.orgID, voucherID).
		Return(nil, apperrors.ErrVoucherNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/vouchers/"+voucherID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListVouchersWithFilter tests the type and status filters
func (suite *VoucherHandlerTestSuite) TestListVouchersWithFilter() {
	expectedResponse := &service.VoucherListResponse{
		Vouchers: []service.VoucherResponse{},
		Page:     1,
		PageSize: 20,
	}

	suite.mockVoucherService.EXPECT().
		GetByOrganization(suite.orgID, repository.VoucherFilter{
			VoucherType: models.VoucherTypeSales,
			Status:      models.VoucherStatusSubmitted,
		}, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/vouchers?type=sales&status=submitted", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListVouchersInvalidCustomerFilter tests a malformed customer_id filter
func (suite *VoucherHandlerTestSuite) TestListVouchersInvalidCustomerFilter() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/vouchers?customer_id=nope", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestSubmitVoucher tests the submit action
func (suite *VoucherHandlerTestSuite) TestSubmitVoucher() {
	voucherID := uuid.New()
	expectedResponse := &service.VoucherResponse{
		ID:             voucherID,
		OrganizationID: suite.orgID,
		Status:         "submitted",
	}

	suite.mockVoucherService.EXPECT().
		Submit(suite.orgID, voucherID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/vouchers/"+voucherID.String()+"/submit", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.VoucherResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "submitted", response.Status)
}

// TestApproveVoucherInvalidTransition tests that bad transitions become 409
func (suite *VoucherHandlerTestSuite) TestApproveVoucherInvalidTransition() {
	voucherID := uuid.New()

	suite.mockVoucherService.EXPECT().
		Approve(suite.orgID, voucherID).
		Return(nil, apperrors.ErrInvalidStatusTransition).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/vouchers/"+voucherID.String()+"/approve", nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestUpdateLockedVoucher tests that editing a submitted voucher becomes 409
func (suite *VoucherHandlerTestSuite) TestUpdateLockedVoucher() {
	voucherID := uuid.New()
	customerID := uuid.New()
	requestBody := map[string]interface{}{
		"date":        "2026-03-16T00:00:00Z",
		"customer_id": customerID.String(),
		"items": []map[string]interface{}{
			{"quantity": "1", "rate": "1"},
		},
	}

	suite.mockVoucherService.EXPECT().
		Update(suite.orgID, voucherID, gomock.Any()).
		Return(nil, apperrors.ErrVoucherNotEditable).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/vouchers/"+voucherID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestDeleteVoucher tests deleting a draft voucher
func (suite *VoucherHandlerTestSuite) TestDeleteVoucher() {
	voucherID := uuid.New()

	suite.mockVoucherService.EXPECT().
		Delete(suite.orgID, voucherID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/vouchers/"+voucherID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestVoucherHandlerTestSuite runs the test suite
func TestVoucherHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}
