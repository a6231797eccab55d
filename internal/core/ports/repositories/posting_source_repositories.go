package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// PaymentRepository reads payments and links them to their journal entry.
type PaymentRepository interface {
	FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error)
	ListPaymentsInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.Payment, error)
	LinkPaymentEntry(ctx context.Context, organizationID, paymentID, entryID string) error
}

// BankTransactionRepository reads imported bank lines and links them to their journal entry.
type BankTransactionRepository interface {
	FindBankTransactionByID(ctx context.Context, organizationID, bankTransactionID string) (*domain.BankTransaction, error)
	LinkBankTransactionEntry(ctx context.Context, organizationID, bankTransactionID, entryID string) error
}

// AssetRepository reads fixed assets and their movements.
type AssetRepository interface {
	ListAssets(ctx context.Context, organizationID string) ([]domain.FixedAsset, error)
	FindAssetTransactionByID(ctx context.Context, organizationID, assetTransactionID string) (*domain.AssetTransaction, error)
	ListAssetTransactionsInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AssetTransaction, error)
	LinkAssetTransactionEntry(ctx context.Context, organizationID, assetTransactionID, entryID string) error
}

// PostingSourceRepositoryFacade combines the sources the journal engine posts from.
type PostingSourceRepositoryFacade interface {
	PaymentRepository
	BankTransactionRepository
	AssetRepository
}
