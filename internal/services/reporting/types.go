package reporting

import (
	"time"

	"github.com/thkos/tms/internal/models"
)

// Period selects the reporting window
type Period string

const (
	// PeriodDaily covers sessions started today
	PeriodDaily Period = "daily"

	// PeriodWeekly covers sessions started this week
	PeriodWeekly Period = "weekly"

	// PeriodMonthly covers sessions started this month
	PeriodMonthly Period = "monthly"

	// PeriodYearly covers sessions started this year
	PeriodYearly Period = "yearly"

	// PeriodCustom covers an explicit date range
	PeriodCustom Period = "custom"
)

type FetchInput struct {
	Period Period

	// Optional filters; empty means all
	CategoryName string
	InstanceName string

	// Date range, used only when Period is PeriodCustom
	StartDate time.Time
	EndDate   time.Time
}

type FetchOutput struct {
	Records []*models.GameInstance
	Summary *Summary
}

type DeleteRecordInput struct {
	ID int64
}

// CategoryEarnings aggregates the billed sessions of one category
type CategoryEarnings struct {
	CategoryName string
	Sessions     int
	TotalSeconds int64
	Earnings     float64
}

// Summary is the aggregate view the analytics screens render
type Summary struct {
	// Per-category earnings, ordered by category name
	Categories []CategoryEarnings

	// TrafficByHour counts sessions by their start hour of day
	TrafficByHour [24]int

	// Overall totals
	Sessions      int
	TotalEarnings float64
	TotalSeconds  int64
}
