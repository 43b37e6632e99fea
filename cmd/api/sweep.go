package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/config"
	"github.com/barakhubs/sacco-ledger/internal/infrastructure/db"
	loanUC "github.com/barakhubs/sacco-ledger/internal/usecase/loan"
)

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return db.OpenSQLite(cfg.SQLitePath)
	}
	return db.OpenMySQL(cfg.MySQLDSN())
}

// sweepOverdueLoans logs disbursed loans past their expected repayment
// date so the committee can follow up. Defaulting stays an explicit
// admin action.
func sweepOverdueLoans(uc *loanUC.Usecase, logger *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	overdue, err := uc.ListOverdue(ctx, time.Now().UTC())
	if err != nil {
		logger.WithError(err).Error("overdue sweep failed")
		return
	}
	for _, l := range overdue {
		logger.WithFields(logrus.Fields{
			"loan_number": l.LoanNumber,
			"member_id":   l.MemberID,
			"outstanding": l.OutstandingBalance.String(),
			"expected_by": l.ExpectedRepaymentDate.Format("2006-01-02"),
		}).Warn("loan overdue")
	}
	logger.WithField("count", len(overdue)).Info("overdue sweep done")
}
