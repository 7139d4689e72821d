package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerUseCase exposes ledger-wide checks.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo}
}

// ConsistencyReport describes the ledger's conserved totals. The total
// balance does not change under any sequence of transfers, so two
// reports taken at different times should agree unless accounts were
// created or removed in between.
type ConsistencyReport struct {
	TotalBalance decimal.Decimal
	AccountCount int64
}

// CheckConsistency sums all account balances.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	totalBalance, accountCount, err := uc.ledgerRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	return &ConsistencyReport{
		TotalBalance: totalBalance,
		AccountCount: accountCount,
	}, nil
}
