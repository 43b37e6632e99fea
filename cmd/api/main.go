package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	httpadp "github.com/barakhubs/sacco-ledger/internal/adapter/http"
	mw "github.com/barakhubs/sacco-ledger/internal/adapter/middleware"
	"github.com/barakhubs/sacco-ledger/internal/adapter/repository/mysql"
	"github.com/barakhubs/sacco-ledger/internal/config"
	"github.com/barakhubs/sacco-ledger/internal/infrastructure/cache"
	"github.com/barakhubs/sacco-ledger/internal/infrastructure/db"
	interestUC "github.com/barakhubs/sacco-ledger/internal/usecase/interest"
	loanUC "github.com/barakhubs/sacco-ledger/internal/usecase/loan"
	periodUC "github.com/barakhubs/sacco-ledger/internal/usecase/period"
	savingsUC "github.com/barakhubs/sacco-ledger/internal/usecase/savings"
	shareoutUC "github.com/barakhubs/sacco-ledger/internal/usecase/shareout"
)

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	database, err := openDatabase(cfg)
	if err != nil {
		logger.Fatalf("db: %v", err)
	}
	if err := db.AutoMigrate(database); err != nil {
		logger.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatalf("redis: %v", err)
	}

	periodRepo := mysql.NewPeriodRepository(database)
	savingsRepo := mysql.NewSavingsRepository(database)
	loanRepo := mysql.NewLoanRepository(database)
	interestRepo := mysql.NewInterestRepository(database)
	shareoutRepo := mysql.NewShareoutRepository(database)
	uow := mysql.NewGormUoW(database)

	periodUc := periodUC.NewUsecase(periodRepo, uow)
	savingsUc := savingsUC.NewUsecase(savingsRepo, periodRepo)
	loanUc := loanUC.NewUsecase(loanRepo, periodRepo, uow)
	interestUc := interestUC.NewUsecase(interestRepo, periodRepo, uow)
	shareoutUc := shareoutUC.NewUsecase(shareoutRepo, periodRepo, uow)

	h := httpadp.NewHandler()
	periodH := httpadp.NewPeriodHandler(periodUc)
	savingsH := httpadp.NewSavingsHandler(savingsUc)
	loanH := httpadp.NewLoanHandler(loanUc)
	interestH := httpadp.NewInterestHandler(interestUc)
	shareoutH := httpadp.NewShareoutHandler(shareoutUc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)

	e.GET("/health", h.Health)

	e.GET("/periods", periodH.ListPeriods)
	e.GET("/periods/current", periodH.CurrentPeriod)
	e.GET("/periods/:period_id", periodH.GetPeriod)
	e.POST("/periods", periodH.CreatePeriod, idemp)
	e.POST("/periods/:period_id/activate", periodH.ActivatePeriod, idemp)
	e.POST("/periods/:period_id/shareout", periodH.ActivateShareout, idemp)

	e.POST("/savings/targets", savingsH.SetTarget, idemp)
	e.POST("/savings/deposits", savingsH.RecordDeposit, idemp)
	e.POST("/savings/deposits/:deposit_id/shareout", savingsH.ShareOutDeposit, idemp)
	e.GET("/members/:member_id/periods/:period_id/savings", savingsH.QuarterTotal)
	e.GET("/members/:member_id/periods/:period_id/summary", savingsH.MemberSummary)
	e.GET("/members/:member_id/balance", savingsH.AvailableBalance)

	e.POST("/loans", loanH.Apply, idemp)
	e.GET("/loans/:loan_number", loanH.GetLoan)
	e.GET("/members/:member_id/loans", loanH.ListMemberLoans)
	e.POST("/loans/:loan_number/approve", loanH.Approve, idemp)
	e.POST("/loans/:loan_number/reject", loanH.Reject, idemp)
	e.POST("/loans/:loan_number/disburse", loanH.Disburse, idemp)
	e.POST("/loans/:loan_number/default", loanH.MarkDefaulted, idemp)
	e.POST("/loans/:loan_number/repayments", loanH.RecordRepayment, idemp)
	e.DELETE("/loans/:loan_number", loanH.DeleteLoan, idemp)

	e.POST("/interest/year-end", interestH.RunYearEnd, idemp)
	e.GET("/interest/year-end/:year", interestH.GetYearEnd)
	e.POST("/interest/shares/:share_id/disburse", interestH.DisburseShare, idemp)
	e.GET("/members/:member_id/periods/:period_id/interest", interestH.PendingForMember)

	e.POST("/shareouts/decisions", shareoutH.Decide, idemp)
	e.POST("/shareouts/complete", shareoutH.Complete, idemp)
	e.GET("/periods/:period_id/shareouts", shareoutH.ListByPeriod)

	startOverdueSweep(cfg, loanUc, logger)

	addr := ":" + cfg.AppPort
	logger.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		logger.Fatal(err)
	}
}

func startOverdueSweep(cfg *config.Config, uc *loanUC.Usecase, logger *logrus.Logger) {
	if cfg.OverdueSweepSpec == "" {
		return
	}
	c := cron.New()
	_, err := c.AddFunc(cfg.OverdueSweepSpec, func() {
		sweepOverdueLoans(uc, logger)
	})
	if err != nil {
		logger.Fatalf("cron: %v", err)
	}
	c.Start()
}
