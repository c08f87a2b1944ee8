package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/thkos/tms/internal/repositories/game Repository

import (
	"context"
)

// Repository defines the interface for game record persistence
type Repository interface {
	// SaveGame persists a game record, both for new station definitions
	// and for finished sessions with their final billed numbers
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGameInstances retrieves the live station definitions
	GetGameInstances(ctx context.Context, input *GetGameInstancesInput) (*GetGameInstancesOutput, error)

	// GetDistinctCategories retrieves all known category names
	GetDistinctCategories(ctx context.Context, input *GetDistinctCategoriesInput) (*GetDistinctCategoriesOutput, error)

	// GetDistinctInstances retrieves all known instance names
	GetDistinctInstances(ctx context.Context, input *GetDistinctInstancesInput) (*GetDistinctInstancesOutput, error)

	// GetCategoryInstanceCombinations retrieves every (category, instance) pair
	GetCategoryInstanceCombinations(ctx context.Context, input *GetCategoryInstanceCombinationsInput) (*GetCategoryInstanceCombinationsOutput, error)

	// DeleteGame removes every record for a (category, instance) pair
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// DeleteGameByID removes a single record by its ID
	DeleteGameByID(ctx context.Context, input *DeleteGameByIDInput) error

	// FetchDailyData retrieves finished sessions started today
	FetchDailyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error)

	// FetchWeeklyData retrieves finished sessions started this week
	FetchWeeklyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error)

	// FetchMonthlyData retrieves finished sessions started this month
	FetchMonthlyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error)

	// FetchYearlyData retrieves finished sessions started this year
	FetchYearlyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error)

	// FetchCustomData retrieves finished sessions started within a date range
	FetchCustomData(ctx context.Context, input *FetchCustomDataInput) (*FetchDataOutput, error)
}
