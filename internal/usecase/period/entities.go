package period

import "time"

type CreatePeriodInput struct {
	Year      int       `json:"year"`
	Sequence  int       `json:"sequence"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type PeriodDTO struct {
	PeriodID          string    `json:"period_id"`
	Year              int       `json:"year"`
	Sequence          int       `json:"sequence"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Status            string    `json:"status"`
	ShareoutActivated bool      `json:"shareout_activated"`
	CreatedAt         time.Time `json:"created_at"`
}
