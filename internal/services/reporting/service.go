package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/thkos/tms/internal/models"
	gameRepo "github.com/thkos/tms/internal/repositories/game"
)

// Config holds configuration for the reporting service
type Config struct {
	GameRepo gameRepo.Repository
	Logger   zerolog.Logger
}

// service implements the Service interface
type service struct {
	gameRepo gameRepo.Repository
	logger   zerolog.Logger
}

// New creates a new reporting service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameRepo == nil {
		return nil, errors.New("game repository cannot be nil")
	}

	return &service{
		gameRepo: cfg.GameRepo,
		logger:   cfg.Logger,
	}, nil
}

// Fetch retrieves the finished sessions for a period and aggregates them
func (s *service) Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	records, err := s.fetchPeriod(ctx, input)
	if err != nil {
		return nil, err
	}

	return &FetchOutput{
		Records: records,
		Summary: Summarize(records),
	}, nil
}

func (s *service) fetchPeriod(ctx context.Context, input *FetchInput) ([]*models.GameInstance, error) {
	filter := &gameRepo.FetchDataInput{
		CategoryName: input.CategoryName,
		InstanceName: input.InstanceName,
	}

	var (
		output *gameRepo.FetchDataOutput
		err    error
	)

	switch input.Period {
	case PeriodDaily:
		output, err = s.gameRepo.FetchDailyData(ctx, filter)
	case PeriodWeekly:
		output, err = s.gameRepo.FetchWeeklyData(ctx, filter)
	case PeriodMonthly:
		output, err = s.gameRepo.FetchMonthlyData(ctx, filter)
	case PeriodYearly:
		output, err = s.gameRepo.FetchYearlyData(ctx, filter)
	case PeriodCustom:
		if input.StartDate.IsZero() || input.EndDate.IsZero() {
			return nil, errors.New("custom period requires start and end dates")
		}
		output, err = s.gameRepo.FetchCustomData(ctx, &gameRepo.FetchCustomDataInput{
			CategoryName: input.CategoryName,
			InstanceName: input.InstanceName,
			StartDate:    input.StartDate,
			EndDate:      input.EndDate,
		})
	default:
		return nil, fmt.Errorf("unknown reporting period %q", input.Period)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s data: %w", input.Period, err)
	}

	return output.Records, nil
}

// DeleteRecord prunes a single billed session row, e.g. a mis-billed entry
// skewing the earnings history
func (s *service) DeleteRecord(ctx context.Context, input *DeleteRecordInput) error {
	if input == nil || input.ID == 0 {
		return errors.New("input and id cannot be empty")
	}

	err := s.gameRepo.DeleteGameByID(ctx, &gameRepo.DeleteGameByIDInput{ID: input.ID})
	if err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}

	s.logger.Info().Int64("id", input.ID).Msg("deleted session record")

	return nil
}

// Summarize folds finished sessions into the aggregate the analytics
// screens render
func Summarize(records []*models.GameInstance) *Summary {
	summary := &Summary{}
	byCategory := make(map[string]*CategoryEarnings)

	for _, record := range records {
		summary.Sessions++
		summary.TotalEarnings += record.TotalCost
		summary.TotalSeconds += record.ElapsedTime

		earnings, ok := byCategory[record.CategoryName]
		if !ok {
			earnings = &CategoryEarnings{CategoryName: record.CategoryName}
			byCategory[record.CategoryName] = earnings
		}
		earnings.Sessions++
		earnings.TotalSeconds += record.ElapsedTime
		earnings.Earnings += record.TotalCost

		if record.StartTime != nil {
			summary.TrafficByHour[record.StartTime.Hour()]++
		}
	}

	summary.Categories = make([]CategoryEarnings, 0, len(byCategory))
	for _, earnings := range byCategory {
		summary.Categories = append(summary.Categories, *earnings)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].CategoryName < summary.Categories[j].CategoryName
	})

	return summary
}
