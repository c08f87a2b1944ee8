package models

import (
	"time"
)

// GameStatus represents the current state of a game instance's timer
type GameStatus string

const (
	// GameStatusIdle indicates the instance has no running timer
	GameStatusIdle GameStatus = "idle"

	// GameStatusRunning indicates the instance timer is running and cost is accruing
	GameStatusRunning GameStatus = "running"

	// GameStatusFinished indicates the session has been finalized and billed
	GameStatusFinished GameStatus = "finished"
)

// GameInstance represents one billable usage session of a station
// (a billiards table, ping-pong table, console seat, ...)
type GameInstance struct {
	// ID is the unique identifier for the instance, assigned at creation
	ID int64

	// CategoryName is the station category, e.g. "Billiards"
	CategoryName string

	// InstanceName is the specific station within the category, e.g. "Table 1"
	InstanceName string

	// PricePerHour is the billing rate in currency units per hour
	PricePerHour float64

	// ElapsedTime is the seconds elapsed since the timer started; 0 when idle
	ElapsedTime int64

	// TotalCost is the accrued cost while running, or the final billed
	// amount once finished. Derived from ElapsedTime and PricePerHour,
	// never an independent source of truth while running.
	TotalCost float64

	// StartTime is when the timer started; nil when idle
	StartTime *time.Time

	// EndTime is when the session was finalized; nil until finished
	EndTime *time.Time
}

// Status derives the timer state. Exactly one state holds at any time:
// idle when StartTime is nil, finished when EndTime is set, running otherwise.
func (g *GameInstance) Status() GameStatus {
	switch {
	case g.StartTime == nil:
		return GameStatusIdle
	case g.EndTime != nil:
		return GameStatusFinished
	default:
		return GameStatusRunning
	}
}

// IsRunning reports whether cost is currently accruing for the instance
func (g *GameInstance) IsRunning() bool {
	return g.Status() == GameStatusRunning
}
