package station

import "context"

// Service defines the interface for the station session store. It owns the
// authoritative in-memory list of game instances for the current run, keeps
// running timers and accrued cost current, and mediates every create, start,
// reset, finish and delete against the backing stores.
type Service interface {
	// Load fetches the station definitions from the game repository and
	// recovers any timers recorded in the local store
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Start begins the timer for an instance; starting a running instance
	// is a no-op
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Tick recomputes elapsed time and accrued cost for every running instance
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// Reset abandons an instance's session without billing it
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Finish finalizes a running session, persists the bill and stops the timer
	Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error)

	// AddGame defines a new station and persists it
	AddGame(ctx context.Context, input *AddGameInput) (*AddGameOutput, error)

	// UpdateGame changes the hourly price of an idle station
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*UpdateGameOutput, error)

	// DeleteGame removes a station definition and its history
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// Instances returns a snapshot of the in-memory instances for rendering
	Instances(ctx context.Context, input *InstancesInput) (*InstancesOutput, error)

	// Run drives the periodic tick until the context is cancelled
	Run(ctx context.Context) error
}
