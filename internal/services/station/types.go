package station

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/thkos/tms/internal/common/clock"
	"github.com/thkos/tms/internal/models"
	gameRepo "github.com/thkos/tms/internal/repositories/game"
	"github.com/thkos/tms/internal/repositories/localstore"
)

// Config holds configuration for the station store
type Config struct {
	// How often the accrual loop recomputes running timers
	TickInterval time.Duration

	// Repository dependencies
	GameRepo   gameRepo.Repository
	LocalStore localstore.Store

	// Time source; injected so timer math is testable
	Clock clock.Clock

	// Logger for the store
	Logger zerolog.Logger
}

type LoadInput struct {
}

type LoadOutput struct {
	// Loaded is the number of instances now held in memory
	Loaded int

	// Recovered is how many of them came back with a running timer
	Recovered int
}

type StartInput struct {
	ID int64
}

type StartOutput struct {
	// StartTime is the effective timer start; for an already-running
	// instance this is the original start, not the call time
	StartTime time.Time
}

type TickInput struct {
}

type TickOutput struct {
	// Running is the number of instances whose timers were recomputed
	Running int
}

type ResetInput struct {
	ID int64
}

type ResetOutput struct {
}

type FinishInput struct {
	ID int64
}

type FinishOutput struct {
	// FinalCost is the billed amount after the finishing policy
	FinalCost float64

	// ElapsedTime is the billed duration in seconds
	ElapsedTime int64
}

type AddGameInput struct {
	CategoryName string
	InstanceName string
	PricePerHour float64
}

type AddGameOutput struct {
	Record *models.GameInstance
}

type UpdateGameInput struct {
	ID           int64
	PricePerHour float64
}

type UpdateGameOutput struct {
	// Record is the superseding definition as persisted; its ID replaces
	// the instance's previous one
	Record *models.GameInstance
}

type DeleteGameInput struct {
	CategoryName string
	InstanceName string
}

type DeleteGameOutput struct {
	// Removed is the number of in-memory records dropped
	Removed int
}

type InstancesInput struct {
}

type InstancesOutput struct {
	Records []*models.GameInstance
}
