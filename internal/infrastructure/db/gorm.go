package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barakhubs/sacco-ledger/internal/domain/interest"
	"github.com/barakhubs/sacco-ledger/internal/domain/loan"
	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/savings"
	"github.com/barakhubs/sacco-ledger/internal/domain/shareout"
)

func OpenMySQL(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenSQLite is the local/dev fallback; the same schema automigrates.
func OpenSQLite(path string) (*gorm.DB, error) {
	return OpenGormWithDialector(sqlite.Open(path))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// surface unique-index violations as gorm.ErrDuplicatedKey
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	logrus.Info("gorm: connected")
	return db, nil
}

// AutoMigrate creates the ledger schema, unique indexes included.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&period.Period{},
		&savings.Target{},
		&savings.Deposit{},
		&loan.Loan{},
		&loan.Repayment{},
		&interest.Distribution{},
		&interest.YearEndShareout{},
		&interest.IndividualYearShare{},
		&shareout.Decision{},
	)
}
