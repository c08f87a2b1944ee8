package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/thkos/tms/internal/models"
	gameRepo "github.com/thkos/tms/internal/repositories/game"
	gameMocks "github.com/thkos/tms/internal/repositories/game/mocks"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *gameMocks.MockRepository
	service  Service
	ctx      context.Context

	testTime time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 18, 30, 0, 0, time.UTC)

	service, err := New(&Config{
		GameRepo: s.mockRepo,
		Logger:   zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *ReportingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) billed(category string, startHour int, elapsed int64, cost float64) *models.GameInstance {
	start := time.Date(2025, 4, 19, startHour, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(elapsed) * time.Second)
	return &models.GameInstance{
		ID:           start.UnixMilli(),
		CategoryName: category,
		InstanceName: "Table 1",
		PricePerHour: 10,
		ElapsedTime:  elapsed,
		TotalCost:    cost,
		StartTime:    &start,
		EndTime:      &end,
	}
}

func (s *ReportingServiceTestSuite) TestFetchDaily() {
	records := []*models.GameInstance{
		s.billed("Billiards", 14, 3600, 10),
		s.billed("Billiards", 18, 1800, 5),
		s.billed("Ping Pong", 18, 7200, 13),
	}

	s.mockRepo.EXPECT().FetchDailyData(s.ctx, &gameRepo.FetchDataInput{}).
		Return(&gameRepo.FetchDataOutput{Records: records}, nil)

	output, err := s.service.Fetch(s.ctx, &FetchInput{Period: PeriodDaily})
	s.Require().NoError(err)
	s.Len(output.Records, 3)

	summary := output.Summary
	s.Equal(3, summary.Sessions)
	s.Equal(28.0, summary.TotalEarnings)
	s.Equal(int64(12600), summary.TotalSeconds)

	s.Require().Len(summary.Categories, 2)
	s.Equal("Billiards", summary.Categories[0].CategoryName)
	s.Equal(2, summary.Categories[0].Sessions)
	s.Equal(15.0, summary.Categories[0].Earnings)
	s.Equal("Ping Pong", summary.Categories[1].CategoryName)
	s.Equal(13.0, summary.Categories[1].Earnings)

	s.Equal(1, summary.TrafficByHour[14])
	s.Equal(2, summary.TrafficByHour[18])
	s.Zero(summary.TrafficByHour[9])
}

func (s *ReportingServiceTestSuite) TestFetchPassesFilters() {
	s.mockRepo.EXPECT().FetchMonthlyData(s.ctx, &gameRepo.FetchDataInput{
		CategoryName: "Billiards",
		InstanceName: "Table 1",
	}).Return(&gameRepo.FetchDataOutput{}, nil)

	_, err := s.service.Fetch(s.ctx, &FetchInput{
		Period:       PeriodMonthly,
		CategoryName: "Billiards",
		InstanceName: "Table 1",
	})
	s.NoError(err)
}

func (s *ReportingServiceTestSuite) TestFetchCustom() {
	start := s.testTime.AddDate(0, 0, -7)
	s.mockRepo.EXPECT().FetchCustomData(s.ctx, &gameRepo.FetchCustomDataInput{
		StartDate: start,
		EndDate:   s.testTime,
	}).Return(&gameRepo.FetchDataOutput{}, nil)

	_, err := s.service.Fetch(s.ctx, &FetchInput{
		Period:    PeriodCustom,
		StartDate: start,
		EndDate:   s.testTime,
	})
	s.NoError(err)
}

func (s *ReportingServiceTestSuite) TestFetchCustom_RequiresRange() {
	_, err := s.service.Fetch(s.ctx, &FetchInput{Period: PeriodCustom})
	s.Error(err)
}

func (s *ReportingServiceTestSuite) TestFetch_UnknownPeriod() {
	_, err := s.service.Fetch(s.ctx, &FetchInput{Period: Period("hourly")})
	s.Error(err)
}

func (s *ReportingServiceTestSuite) TestDeleteRecord() {
	s.mockRepo.EXPECT().DeleteGameByID(s.ctx, &gameRepo.DeleteGameByIDInput{ID: 1713540000000}).
		Return(nil)

	err := s.service.DeleteRecord(s.ctx, &DeleteRecordInput{ID: 1713540000000})
	s.NoError(err)
}

func (s *ReportingServiceTestSuite) TestDeleteRecord_RequiresID() {
	err := s.service.DeleteRecord(s.ctx, &DeleteRecordInput{})
	s.Error(err)

	err = s.service.DeleteRecord(s.ctx, nil)
	s.Error(err)
}

func (s *ReportingServiceTestSuite) TestSummarize_Empty() {
	summary := Summarize(nil)
	s.Zero(summary.Sessions)
	s.Zero(summary.TotalEarnings)
	s.Empty(summary.Categories)
}
