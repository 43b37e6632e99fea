package period

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("period not found")
	ErrDuplicatePeriod = errors.New("period already exists for year and sequence")
	ErrNoActivePeriod  = errors.New("no active period")
	ErrNotActive       = errors.New("period is not active")
	ErrNotCompleted    = errors.New("period is not completed")
	ErrInvalidInput    = errors.New("invalid period input")
	ErrActivationRace  = errors.New("another period was activated concurrently")
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Period is one accounting quarter. A year has three sequences; at most
// one period is active system-wide at any time.
type Period struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"-"`
	PeriodID          string    `gorm:"size:32;uniqueIndex:ux_periods_period_id" json:"period_id"`
	Year              int       `gorm:"uniqueIndex:ux_periods_year_sequence" json:"year"`
	Sequence          int       `gorm:"uniqueIndex:ux_periods_year_sequence" json:"sequence"`
	StartDate         time.Time `gorm:"type:date" json:"start_date"`
	EndDate           time.Time `gorm:"type:date" json:"end_date"`
	Status            Status    `gorm:"size:16;default:'upcoming';index" json:"status"`
	ShareoutActivated bool      `gorm:"default:false" json:"shareout_activated"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Period) TableName() string { return "periods" }
