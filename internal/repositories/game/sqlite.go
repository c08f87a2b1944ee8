package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/thkos/tms/internal/models"
)

// ErrGameNotFound is returned when a game record is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the sqlite game repository
type Config struct {
	// DB is an open gorm database handle
	DB *gorm.DB
}

// gameRow is the database representation of a game record
type gameRow struct {
	ID           int64      `gorm:"primaryKey;autoIncrement:false"`
	CategoryName string     `gorm:"not null;index"`
	InstanceName string     `gorm:"not null;index"`
	PricePerHour float64    `gorm:"not null"`
	ElapsedTime  int64      `gorm:"not null;default:0"`
	TotalCost    float64    `gorm:"not null;default:0"`
	StartTime    *time.Time `gorm:"index"`
	EndTime      *time.Time
}

// TableName maps gameRow onto the games table
func (gameRow) TableName() string {
	return "games"
}

// sqliteRepository implements the Repository interface using gorm over sqlite
type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLite creates a new sqlite-backed game repository and migrates the schema
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if err := cfg.DB.AutoMigrate(&gameRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate games table: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// SaveGame persists a game record
func (r *sqliteRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	row := toRow(input.Record)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGameInstances retrieves the live station definitions: for each instance
// name, the most recent record that has not been billed yet. Finished
// sessions always carry a positive total cost, so zero-cost rows are the
// definitions.
func (r *sqliteRepository) GetGameInstances(ctx context.Context, input *GetGameInstancesInput) (*GetGameInstancesOutput, error) {
	var rows []gameRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM games g1
		WHERE g1.total_cost = 0
		  AND g1.id = (
			SELECT MAX(g2.id) FROM games g2
			WHERE g2.instance_name = g1.instance_name AND g2.total_cost = 0
		  )
		ORDER BY g1.category_name, g1.instance_name`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get game instances: %w", err)
	}

	return &GetGameInstancesOutput{Records: toRecords(rows)}, nil
}

// GetDistinctCategories retrieves all known category names
func (r *sqliteRepository) GetDistinctCategories(ctx context.Context, input *GetDistinctCategoriesInput) (*GetDistinctCategoriesOutput, error) {
	var categories []string

	err := r.db.WithContext(ctx).
		Model(&gameRow{}).
		Distinct("category_name").
		Order("category_name").
		Pluck("category_name", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct categories: %w", err)
	}

	return &GetDistinctCategoriesOutput{Categories: categories}, nil
}

// GetDistinctInstances retrieves all known instance names
func (r *sqliteRepository) GetDistinctInstances(ctx context.Context, input *GetDistinctInstancesInput) (*GetDistinctInstancesOutput, error) {
	var instances []string

	err := r.db.WithContext(ctx).
		Model(&gameRow{}).
		Distinct("instance_name").
		Order("instance_name").
		Pluck("instance_name", &instances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct instances: %w", err)
	}

	return &GetDistinctInstancesOutput{Instances: instances}, nil
}

// GetCategoryInstanceCombinations retrieves every (category, instance) pair
func (r *sqliteRepository) GetCategoryInstanceCombinations(ctx context.Context, input *GetCategoryInstanceCombinationsInput) (*GetCategoryInstanceCombinationsOutput, error) {
	var combinations []CategoryInstance

	err := r.db.WithContext(ctx).
		Model(&gameRow{}).
		Distinct("category_name", "instance_name").
		Order("category_name, instance_name").
		Find(&combinations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category/instance combinations: %w", err)
	}

	return &GetCategoryInstanceCombinationsOutput{Combinations: combinations}, nil
}

// DeleteGame removes every record for a (category, instance) pair
func (r *sqliteRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.CategoryName == "" || input.InstanceName == "" {
		return errors.New("input, category name and instance name cannot be empty")
	}

	err := r.db.WithContext(ctx).
		Where("category_name = ? AND instance_name = ?", input.CategoryName, input.InstanceName).
		Delete(&gameRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// DeleteGameByID removes a single record by its ID
func (r *sqliteRepository) DeleteGameByID(ctx context.Context, input *DeleteGameByIDInput) error {
	if input == nil || input.ID == 0 {
		return errors.New("input and ID cannot be empty")
	}

	err := r.db.WithContext(ctx).Delete(&gameRow{}, input.ID).Error
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	return nil
}

// FetchDailyData retrieves finished sessions started today
func (r *sqliteRepository) FetchDailyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error) {
	return r.fetchFinished(ctx, input, "date(start_time) = date('now')")
}

// FetchWeeklyData retrieves finished sessions started this week
func (r *sqliteRepository) FetchWeeklyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error) {
	return r.fetchFinished(ctx, input,
		"date(start_time) >= date('now', 'weekday 0', '-7 days') AND date(start_time) <= date('now', 'weekday 0')")
}

// FetchMonthlyData retrieves finished sessions started this month
func (r *sqliteRepository) FetchMonthlyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error) {
	return r.fetchFinished(ctx, input, "strftime('%Y-%m', start_time) = strftime('%Y-%m', 'now')")
}

// FetchYearlyData retrieves finished sessions started this year
func (r *sqliteRepository) FetchYearlyData(ctx context.Context, input *FetchDataInput) (*FetchDataOutput, error) {
	return r.fetchFinished(ctx, input, "strftime('%Y', start_time) = strftime('%Y', 'now')")
}

// FetchCustomData retrieves finished sessions started within a date range
func (r *sqliteRepository) FetchCustomData(ctx context.Context, input *FetchCustomDataInput) (*FetchDataOutput, error) {
	if input == nil || input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, errors.New("input, start date and end date cannot be empty")
	}

	query := r.db.WithContext(ctx).
		Where("total_cost > 0").
		Where("date(start_time) >= date(?) AND date(start_time) <= date(?)",
			input.StartDate.Format("2006-01-02"), input.EndDate.Format("2006-01-02"))

	query = applyFilters(query, input.CategoryName, input.InstanceName)

	var rows []gameRow
	if err := query.Order("category_name, instance_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch custom data: %w", err)
	}

	return &FetchDataOutput{Records: toRecords(rows)}, nil
}

// fetchFinished runs a ranged fetch over billed sessions with optional filters
func (r *sqliteRepository) fetchFinished(ctx context.Context, input *FetchDataInput, rangeCond string) (*FetchDataOutput, error) {
	query := r.db.WithContext(ctx).
		Where("total_cost > 0").
		Where(rangeCond)

	if input != nil {
		query = applyFilters(query, input.CategoryName, input.InstanceName)
	}

	var rows []gameRow
	if err := query.Order("category_name, instance_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}

	return &FetchDataOutput{Records: toRecords(rows)}, nil
}

func applyFilters(query *gorm.DB, categoryName, instanceName string) *gorm.DB {
	if categoryName != "" {
		query = query.Where("category_name = ?", categoryName)
	}
	if instanceName != "" {
		query = query.Where("instance_name = ?", instanceName)
	}
	return query
}

func toRow(record *models.GameInstance) *gameRow {
	return &gameRow{
		ID:           record.ID,
		CategoryName: record.CategoryName,
		InstanceName: record.InstanceName,
		PricePerHour: record.PricePerHour,
		ElapsedTime:  record.ElapsedTime,
		TotalCost:    record.TotalCost,
		StartTime:    record.StartTime,
		EndTime:      record.EndTime,
	}
}

func toRecords(rows []gameRow) []*models.GameInstance {
	records := make([]*models.GameInstance, 0, len(rows))
	for _, row := range rows {
		records = append(records, &models.GameInstance{
			ID:           row.ID,
			CategoryName: row.CategoryName,
			InstanceName: row.InstanceName,
			PricePerHour: row.PricePerHour,
			ElapsedTime:  row.ElapsedTime,
			TotalCost:    row.TotalCost,
			StartTime:    row.StartTime,
			EndTime:      row.EndTime,
		})
	}
	return records
}
