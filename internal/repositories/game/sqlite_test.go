package game

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thkos/tms/internal/models"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    Repository
	testNow time.Time
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	// Fresh in-memory database for each test
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQLite(&Config{
		DB: db,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Now().UTC().Truncate(time.Second)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

// definition builds an unstarted station definition row
func (s *SQLiteRepositoryTestSuite) definition(id int64, category, instance string, price float64) *models.GameInstance {
	return &models.GameInstance{
		ID:           id,
		CategoryName: category,
		InstanceName: instance,
		PricePerHour: price,
	}
}

// finished builds a billed session row started at the given time
func (s *SQLiteRepositoryTestSuite) finished(id int64, category, instance string, start time.Time, cost float64) *models.GameInstance {
	end := start.Add(time.Hour)
	return &models.GameInstance{
		ID:           id,
		CategoryName: category,
		InstanceName: instance,
		PricePerHour: 10,
		ElapsedTime:  3600,
		TotalCost:    cost,
		StartTime:    &start,
		EndTime:      &end,
	}
}

func (s *SQLiteRepositoryTestSuite) save(records ...*models.GameInstance) {
	for _, record := range records {
		err := s.repo.SaveGame(context.Background(), &SaveGameInput{Record: record})
		s.Require().NoError(err)
	}
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndGetGameInstances() {
	s.save(
		s.definition(1, "Billiards", "Table 1", 10),
		s.definition(2, "Ping Pong", "Table A", 6.5),
	)

	output, err := s.repo.GetGameInstances(context.Background(), &GetGameInstancesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 2)

	s.Equal("Billiards", output.Records[0].CategoryName)
	s.Equal("Table 1", output.Records[0].InstanceName)
	s.Equal(10.0, output.Records[0].PricePerHour)
	s.Equal(models.GameStatusIdle, output.Records[0].Status())
	s.Equal("Ping Pong", output.Records[1].CategoryName)
}

func (s *SQLiteRepositoryTestSuite) TestGetGameInstances_SkipsBilledSessions() {
	s.save(
		s.definition(1, "Billiards", "Table 1", 10),
		s.finished(2, "Billiards", "Table 1", s.testNow.Add(-2*time.Hour), 12.5),
	)

	output, err := s.repo.GetGameInstances(context.Background(), &GetGameInstancesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal(int64(1), output.Records[0].ID)
	s.Equal(0.0, output.Records[0].TotalCost)
}

func (s *SQLiteRepositoryTestSuite) TestGetGameInstances_LatestDefinitionWins() {
	// Re-defining an instance (e.g. with a new price) supersedes the old row
	s.save(
		s.definition(1, "Billiards", "Table 1", 10),
		s.definition(2, "Billiards", "Table 1", 12),
	)

	output, err := s.repo.GetGameInstances(context.Background(), &GetGameInstancesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal(int64(2), output.Records[0].ID)
	s.Equal(12.0, output.Records[0].PricePerHour)
}

func (s *SQLiteRepositoryTestSuite) TestGetDistinctCategoriesAndInstances() {
	s.save(
		s.definition(1, "Billiards", "Table 1", 10),
		s.definition(2, "Billiards", "Table 2", 10),
		s.definition(3, "Ping Pong", "Table A", 6.5),
	)

	categories, err := s.repo.GetDistinctCategories(context.Background(), &GetDistinctCategoriesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Billiards", "Ping Pong"}, categories.Categories)

	instances, err := s.repo.GetDistinctInstances(context.Background(), &GetDistinctInstancesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Table 1", "Table 2", "Table A"}, instances.Instances)
}

func (s *SQLiteRepositoryTestSuite) TestGetCategoryInstanceCombinations() {
	s.save(
		s.definition(1, "Billiards", "Table 1", 10),
		s.finished(2, "Billiards", "Table 1", s.testNow.Add(-time.Hour), 10),
		s.definition(3, "Ping Pong", "Table A", 6.5),
	)

	output, err := s.repo.GetCategoryInstanceCombinations(context.Background(), &GetCategoryInstanceCombinationsInput{})
	s.Require().NoError(err)
	s.Equal([]CategoryInstance{
		{CategoryName: "Billiards", InstanceName: "Table 1"},
		{CategoryName: "Ping Pong", InstanceName: "Table A"},
	}, output.Combinations)
}

func (s *SQLiteRepositoryTestSuite) TestDeleteGame() {
	s.save(
		s.definition(1, "Pool", "Table 2", 10),
		s.finished(2, "Pool", "Table 2", s.testNow.Add(-time.Hour), 10),
		s.definition(3, "Pool", "Table 3", 10),
	)

	err := s.repo.DeleteGame(context.Background(), &DeleteGameInput{
		CategoryName: "Pool",
		InstanceName: "Table 2",
	})
	s.Require().NoError(err)

	output, err := s.repo.GetGameInstances(context.Background(), &GetGameInstancesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal("Table 3", output.Records[0].InstanceName)
}

func (s *SQLiteRepositoryTestSuite) TestDeleteGame_RequiresIdentity() {
	err := s.repo.DeleteGame(context.Background(), &DeleteGameInput{CategoryName: "Pool"})
	s.Error(err)
}

func (s *SQLiteRepositoryTestSuite) TestDeleteGameByID() {
	s.save(
		s.definition(1, "Billiards", "Table 1", 10),
		s.definition(2, "Billiards", "Table 2", 10),
	)

	err := s.repo.DeleteGameByID(context.Background(), &DeleteGameByIDInput{ID: 1})
	s.Require().NoError(err)

	output, err := s.repo.GetGameInstances(context.Background(), &GetGameInstancesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal(int64(2), output.Records[0].ID)
}

func (s *SQLiteRepositoryTestSuite) TestFetchDailyData() {
	s.save(
		s.finished(1, "Billiards", "Table 1", s.testNow, 12.5),
		s.finished(2, "Billiards", "Table 2", s.testNow.AddDate(0, 0, -3), 8),
		s.definition(3, "Billiards", "Table 1", 10),
	)

	output, err := s.repo.FetchDailyData(context.Background(), &FetchDataInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal(int64(1), output.Records[0].ID)
	s.Equal(12.5, output.Records[0].TotalCost)
}

func (s *SQLiteRepositoryTestSuite) TestFetchDataFilters() {
	s.save(
		s.finished(1, "Billiards", "Table 1", s.testNow, 12.5),
		s.finished(2, "Ping Pong", "Table A", s.testNow, 6.5),
	)

	output, err := s.repo.FetchDailyData(context.Background(), &FetchDataInput{
		CategoryName: "Ping Pong",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal("Table A", output.Records[0].InstanceName)
}

func (s *SQLiteRepositoryTestSuite) TestFetchCustomData() {
	s.save(
		s.finished(1, "Billiards", "Table 1", s.testNow.AddDate(0, 0, -10), 12.5),
		s.finished(2, "Billiards", "Table 2", s.testNow.AddDate(0, 0, -2), 8),
	)

	output, err := s.repo.FetchCustomData(context.Background(), &FetchCustomDataInput{
		StartDate: s.testNow.AddDate(0, 0, -5),
		EndDate:   s.testNow,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal(int64(2), output.Records[0].ID)
}

func (s *SQLiteRepositoryTestSuite) TestFetchCustomData_RequiresRange() {
	_, err := s.repo.FetchCustomData(context.Background(), &FetchCustomDataInput{})
	s.Error(err)
}
