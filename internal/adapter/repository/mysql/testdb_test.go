package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	interestDomain "github.com/barakhubs/sacco-ledger/internal/domain/interest"
	loanDomain "github.com/barakhubs/sacco-ledger/internal/domain/loan"
	periodDomain "github.com/barakhubs/sacco-ledger/internal/domain/period"
	savingsDomain "github.com/barakhubs/sacco-ledger/internal/domain/savings"
	shareoutDomain "github.com/barakhubs/sacco-ledger/internal/domain/shareout"
)

// openTestDB opens an in-memory sqlite DB and migrates the full schema.
// The domain models carry no MySQL-only column types, so they migrate
// under sqlite as-is. TranslateError stays on so unique-index violations
// surface as gorm.ErrDuplicatedKey, same as production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&periodDomain.Period{},
		&savingsDomain.Target{},
		&savingsDomain.Deposit{},
		&loanDomain.Loan{},
		&loanDomain.Repayment{},
		&interestDomain.Distribution{},
		&interestDomain.YearEndShareout{},
		&interestDomain.IndividualYearShare{},
		&shareoutDomain.Decision{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
