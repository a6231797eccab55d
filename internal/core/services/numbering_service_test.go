package services_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NumberingServiceTestSuite struct {
	suite.Suite
	txManager   *MockTxManager
	mockSeqRepo *MockSequenceRepository
	service     portssvc.NumberingSvc
	now         time.Time
}

func (suite *NumberingServiceTestSuite) SetupTest() {
	suite.txManager = &MockTxManager{}
	suite.mockSeqRepo = new(MockSequenceRepository)
	suite.now = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	suite.service = services.NewNumberingService(suite.txManager, suite.mockSeqRepo,
		services.WithClock(func() time.Time { return suite.now }))
}

func (suite *NumberingServiceTestSuite) TestGetNextNumber_FormatsAndIncrements() {
	ctx := context.Background()
	suite.mockSeqRepo.On("LockNextNumber", mock.Anything, "org-1", domain.DocSalesInvoice).Return(int64(42), nil).Once()
	suite.mockSeqRepo.On("SetNextNumber", mock.Anything, "org-1", domain.DocSalesInvoice, int64(43)).Return(nil).Once()

	number, err := suite.service.GetNextNumber(ctx, "org-1", domain.DocSalesInvoice)

	suite.Require().NoError(err)
	suite.Equal("ИН0000000042", number)
	suite.Equal(1, suite.txManager.Calls)
	suite.mockSeqRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestGetNextNumber_FirstUseAndUnknownType() {
	ctx := context.Background()
	suite.mockSeqRepo.On("LockNextNumber", mock.Anything, "org-1", domain.DocumentType("goods_receipt")).Return(int64(1), nil).Once()
	suite.mockSeqRepo.On("SetNextNumber", mock.Anything, "org-1", domain.DocumentType("goods_receipt"), int64(2)).Return(nil).Once()

	number, err := suite.service.GetNextNumber(ctx, "org-1", "goods_receipt")

	suite.Require().NoError(err)
	suite.Equal("ДК0000000001", number)
}

func (suite *NumberingServiceTestSuite) TestGetNextNumber_LockFailure() {
	ctx := context.Background()
	suite.mockSeqRepo.On("LockNextNumber", mock.Anything, "org-1", domain.DocCreditNote).Return(int64(0), assert.AnError).Once()

	_, err := suite.service.GetNextNumber(ctx, "org-1", domain.DocCreditNote)

	suite.ErrorIs(err, assert.AnError)
	suite.mockSeqRepo.AssertNotCalled(suite.T(), "SetNextNumber", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NumberingServiceTestSuite) TestPeekAndReset() {
	ctx := context.Background()
	suite.mockSeqRepo.On("PeekNextNumber", mock.Anything, "org-1", domain.DocVatProtocol).Return(int64(7), nil).Once()
	suite.mockSeqRepo.On("SetNextNumber", mock.Anything, "org-1", domain.DocVatProtocol, int64(1000)).Return(nil).Once()

	peek, err := suite.service.PeekNextNumber(ctx, "org-1", domain.DocVatProtocol)
	suite.Require().NoError(err)
	suite.Equal("ВП0000000007", peek)

	suite.Require().NoError(suite.service.ResetSequence(ctx, "org-1", domain.DocVatProtocol, 1000))
	suite.ErrorIs(suite.service.ResetSequence(ctx, "org-1", domain.DocVatProtocol, 0), apperrors.ErrValidation)
	suite.ErrorIs(suite.service.ResetSequence(ctx, "org-1", "", 5), apperrors.ErrValidation)
	suite.mockSeqRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestValidateAndExtract() {
	tests := []struct {
		docType domain.DocumentType
		number  string
		valid   bool
		seq     int64
	}{
		{domain.DocSalesInvoice, "ИН0000000042", true, 42},
		{domain.DocPurchaseInvoice, "ФП0000000001", true, 1},
		{domain.DocSalesInvoice, "ФП0000000001", false, 0},
		{domain.DocSalesInvoice, "ИН000000042", false, 0},
		{domain.DocSalesInvoice, "ИН00000000A2", false, 0},
		{domain.DocSalesInvoice, "", false, 0},
	}
	for _, tt := range tests {
		suite.Equal(tt.valid, suite.service.ValidateDocumentNumber(tt.docType, tt.number), tt.number)
		n, err := suite.service.ExtractSequenceNumber(tt.docType, tt.number)
		if tt.valid {
			suite.NoError(err)
			suite.Equal(tt.seq, n)
		} else {
			suite.ErrorIs(err, apperrors.ErrValidation)
		}
	}
}

func (suite *NumberingServiceTestSuite) TestDocumentUID_WithNumber() {
	uid := suite.service.GenerateDocumentUID("sales_invoice", "3f2504e0-4f89-11d3-9a0c-0305e82c3301", "ИН0000000042")
	suite.Equal("sales_invoice-3f2504e0-ИН0000000042-20240305140709", uid)

	parts, err := suite.service.ParseDocumentUID(uid)
	suite.Require().NoError(err)
	suite.Equal("sales_invoice", parts.DocumentType)
	suite.Equal("3f2504e0", parts.OrgPrefix)
	suite.Equal("ИН0000000042", parts.Number)
	suite.Require().NotNil(parts.Timestamp)
	suite.True(parts.Timestamp.Equal(suite.now))
	suite.Empty(parts.Random)
}

func (suite *NumberingServiceTestSuite) TestDocumentUID_WithoutNumber() {
	uid := suite.service.GenerateDocumentUID("quotation", "short", "")
	suite.Regexp(regexp.MustCompile(`^quotation-short-20240305140709-[0-9A-F]{8}$`), uid)

	parts, err := suite.service.ParseDocumentUID(uid)
	suite.Require().NoError(err)
	suite.Empty(parts.Number)
	suite.Len(parts.Random, 8)
	suite.Require().NotNil(parts.Timestamp)

	_, err = suite.service.ParseDocumentUID("garbage")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestNumberingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NumberingServiceTestSuite))
}
