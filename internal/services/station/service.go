package station

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thkos/tms/internal/billing"
	"github.com/thkos/tms/internal/common/clock"
	"github.com/thkos/tms/internal/models"
	gameRepo "github.com/thkos/tms/internal/repositories/game"
	"github.com/thkos/tms/internal/repositories/localstore"
)

const defaultTickInterval = time.Second

// service implements the Service interface
type service struct {
	tickInterval time.Duration
	gameRepo     gameRepo.Repository
	localStore   localstore.Store
	clock        clock.Clock
	logger       zerolog.Logger

	// mu guards instances; the accrual loop runs on its own goroutine
	mu        sync.Mutex
	instances []*models.GameInstance
}

// New creates a new station store
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.LocalStore == nil {
		return nil, ErrNilLocalStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}

	return &service{
		tickInterval: tickInterval,
		gameRepo:     cfg.GameRepo,
		localStore:   cfg.LocalStore,
		clock:        cfg.Clock,
		logger:       cfg.Logger,
	}, nil
}

// Load fetches the station definitions and recovers running timers from the
// local store. A persisted definition is authoritative for identity and
// price only; whether it is running is decided solely by the presence of a
// recorded start timestamp under its id.
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	output, err := s.gameRepo.GetGameInstances(ctx, &gameRepo.GetGameInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load game instances: %w", err)
	}

	now := s.clock.Now()
	recovered := 0
	instances := make([]*models.GameInstance, 0, len(output.Records))

	for _, record := range output.Records {
		instance := &models.GameInstance{
			ID:           record.ID,
			CategoryName: record.CategoryName,
			InstanceName: record.InstanceName,
			PricePerHour: record.PricePerHour,
		}

		startTime, ok := s.recoverStartTime(ctx, record.ID)
		if ok {
			elapsed := int64(now.Sub(startTime).Seconds())
			if elapsed < 0 {
				elapsed = 0
			}
			instance.StartTime = &startTime
			instance.ElapsedTime = elapsed
			instance.TotalCost = accruedCost(elapsed, instance.PricePerHour)
			recovered++
		}

		instances = append(instances, instance)
	}

	s.mu.Lock()
	s.instances = instances
	s.mu.Unlock()

	s.logger.Info().
		Int("loaded", len(instances)).
		Int("recovered", recovered).
		Msg("loaded game instances")

	return &LoadOutput{
		Loaded:    len(instances),
		Recovered: recovered,
	}, nil
}

// recoverStartTime looks up a persisted timer start for an instance id
func (s *service) recoverStartTime(ctx context.Context, id int64) (time.Time, bool) {
	output, err := s.localStore.Get(ctx, &localstore.GetInput{
		Key: timerKey(id),
	})
	if err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("failed to read timer from local store")
		return time.Time{}, false
	}

	if !output.Found {
		return time.Time{}, false
	}

	startTime, err := time.Parse(time.RFC3339, output.Value)
	if err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Str("value", output.Value).
			Msg("discarding unparseable timer entry")
		return time.Time{}, false
	}

	return startTime, true
}

// Start begins the timer for an instance. Starting an instance that is
// already running returns its original start time and changes nothing.
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, StationError("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	instance := s.findLocked(input.ID)
	if instance == nil {
		return nil, ErrInstanceNotFound
	}

	if instance.StartTime != nil {
		return &StartOutput{StartTime: *instance.StartTime}, nil
	}

	now := s.clock.Now()
	instance.StartTime = &now
	instance.EndTime = nil
	instance.ElapsedTime = 0
	instance.TotalCost = 0

	err := s.localStore.Set(ctx, &localstore.SetInput{
		Key:   timerKey(input.ID),
		Value: now.Format(time.RFC3339),
	})
	if err != nil {
		// The in-memory timer stands either way; only restart recovery
		// degrades when the write is lost.
		return nil, fmt.Errorf("failed to record timer start: %w", err)
	}

	return &StartOutput{StartTime: now}, nil
}

// Tick recomputes elapsed time and accrued cost for every running instance
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	running := 0
	for _, instance := range s.instances {
		if !instance.IsRunning() {
			continue
		}

		elapsed := int64(now.Sub(*instance.StartTime).Seconds())
		if elapsed < 0 {
			elapsed = 0
		}
		instance.ElapsedTime = elapsed
		instance.TotalCost = accruedCost(elapsed, instance.PricePerHour)
		running++
	}

	return &TickOutput{Running: running}, nil
}

// Run drives the periodic tick until the context is cancelled
func (s *service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Tick(ctx, &TickInput{}); err != nil {
				s.logger.Error().Err(err).Msg("tick failed")
			}
		}
	}
}

// Reset abandons an instance's session without billing it. The timer fields
// go back to their idle defaults regardless of prior state.
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, StationError("input cannot be nil")
	}

	s.mu.Lock()
	instance := s.findLocked(input.ID)
	if instance == nil {
		s.mu.Unlock()
		return nil, ErrInstanceNotFound
	}

	instance.StartTime = nil
	instance.EndTime = nil
	instance.ElapsedTime = 0
	instance.TotalCost = 0
	s.mu.Unlock()

	err := s.localStore.Remove(ctx, &localstore.RemoveInput{
		Key: timerKey(input.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear timer entry: %w", err)
	}

	return &ResetOutput{}, nil
}

// Finish finalizes a running session: applies the billing policy, persists
// the billed record, marks the in-memory instance finished and clears the
// recovery entry. The persisted bill is a new record; the definition row
// stays untouched so the station remains defined.
func (s *service) Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error) {
	if input == nil {
		return nil, StationError("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	instance := s.findLocked(input.ID)
	if instance == nil {
		return nil, ErrInstanceNotFound
	}

	if !finishable(instance) {
		return nil, ErrNothingToSave
	}

	now := s.clock.Now()
	finalCost := billing.FinalCost(instance.ElapsedTime, instance.TotalCost, instance.PricePerHour)
	startTime := *instance.StartTime

	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Record: &models.GameInstance{
			ID:           now.UnixMilli(),
			CategoryName: instance.CategoryName,
			InstanceName: instance.InstanceName,
			PricePerHour: instance.PricePerHour,
			ElapsedTime:  instance.ElapsedTime,
			TotalCost:    finalCost,
			StartTime:    &startTime,
			EndTime:      &now,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save finished game: %w", err)
	}

	instance.EndTime = &now
	instance.TotalCost = finalCost

	if err := s.localStore.Remove(ctx, &localstore.RemoveInput{Key: timerKey(input.ID)}); err != nil {
		s.logger.Warn().Err(err).Int64("id", input.ID).Msg("failed to clear timer entry after finish")
	}

	s.logger.Info().
		Int64("id", input.ID).
		Str("category", instance.CategoryName).
		Str("instance", instance.InstanceName).
		Int64("elapsed", instance.ElapsedTime).
		Float64("cost", finalCost).
		Msg("finished game session")

	return &FinishOutput{
		FinalCost:   finalCost,
		ElapsedTime: instance.ElapsedTime,
	}, nil
}

// finishable reports whether an instance has a billable running session
func finishable(instance *models.GameInstance) bool {
	return instance.IsRunning() &&
		instance.CategoryName != "" &&
		instance.InstanceName != "" &&
		instance.PricePerHour > 0 &&
		instance.ElapsedTime >= 0 &&
		instance.TotalCost >= 0 &&
		instance.StartTime != nil
}

// AddGame defines a new station, persists it, and adds it to the in-memory
// list. The persisted definition carries no timestamps; a fresh station has
// never run.
func (s *service) AddGame(ctx context.Context, input *AddGameInput) (*AddGameOutput, error) {
	if input == nil || input.CategoryName == "" || input.InstanceName == "" || input.PricePerHour <= 0 {
		return nil, ErrInvalidGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, instance := range s.instances {
		if instance.CategoryName == input.CategoryName && instance.InstanceName == input.InstanceName {
			return nil, ErrDuplicateInstance
		}
	}

	record := &models.GameInstance{
		ID:           s.clock.Now().UnixMilli(),
		CategoryName: input.CategoryName,
		InstanceName: input.InstanceName,
		PricePerHour: input.PricePerHour,
	}

	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Record: record,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.instances = append(s.instances, record)

	return &AddGameOutput{Record: record}, nil
}

// UpdateGame changes an idle station's hourly price. The old definition row
// stays in place; a fresh row with a new id supersedes it, which is exactly
// what a reload would surface. The in-memory record takes the new id so the
// list never diverges from what Load would produce.
func (s *service) UpdateGame(ctx context.Context, input *UpdateGameInput) (*UpdateGameOutput, error) {
	if input == nil || input.PricePerHour <= 0 {
		return nil, ErrInvalidGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	instance := s.findLocked(input.ID)
	if instance == nil {
		return nil, ErrInstanceNotFound
	}

	// A price change mid-session would make the accrued cost ambiguous;
	// the timer keys the local store by id as well.
	if instance.IsRunning() {
		return nil, ErrInstanceRunning
	}

	record := &models.GameInstance{
		ID:           s.clock.Now().UnixMilli(),
		CategoryName: instance.CategoryName,
		InstanceName: instance.InstanceName,
		PricePerHour: input.PricePerHour,
	}

	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Record: record,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	instance.ID = record.ID
	instance.PricePerHour = record.PricePerHour

	return &UpdateGameOutput{Record: record}, nil
}

// DeleteGame removes a station and its history from the repository, then
// drops every matching in-memory record. On repository failure the
// in-memory list is left untouched.
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.CategoryName == "" || input.InstanceName == "" {
		return nil, ErrInvalidGame
	}

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		CategoryName: input.CategoryName,
		InstanceName: input.InstanceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.instances[:0]
	removed := 0
	var staleKeys []string
	for _, instance := range s.instances {
		if instance.CategoryName == input.CategoryName && instance.InstanceName == input.InstanceName {
			removed++
			if instance.IsRunning() {
				staleKeys = append(staleKeys, timerKey(instance.ID))
			}
			continue
		}
		kept = append(kept, instance)
	}
	s.instances = kept

	// A deleted instance must not leave a timer entry behind; an orphaned
	// key would otherwise sit in the store until teardown.
	for _, key := range staleKeys {
		if err := s.localStore.Remove(ctx, &localstore.RemoveInput{Key: key}); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to clear timer entry for deleted game")
		}
	}

	return &DeleteGameOutput{Removed: removed}, nil
}

// Instances returns a snapshot of the in-memory instances for rendering
func (s *service) Instances(ctx context.Context, input *InstancesInput) (*InstancesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*models.GameInstance, 0, len(s.instances))
	for _, instance := range s.instances {
		record := *instance
		if instance.StartTime != nil {
			startTime := *instance.StartTime
			record.StartTime = &startTime
		}
		if instance.EndTime != nil {
			endTime := *instance.EndTime
			record.EndTime = &endTime
		}
		records = append(records, &record)
	}

	return &InstancesOutput{Records: records}, nil
}

// findLocked returns the instance with the given id; callers must hold mu
func (s *service) findLocked(id int64) *models.GameInstance {
	for _, instance := range s.instances {
		if instance.ID == id {
			return instance
		}
	}
	return nil
}

// accruedCost is the running-cost formula: elapsed/3600 * hourly rate
func accruedCost(elapsedSeconds int64, pricePerHour float64) float64 {
	return float64(elapsedSeconds) / 3600 * pricePerHour
}

// timerKey is the local store key for an instance's timer entry
func timerKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
