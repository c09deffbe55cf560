package service

import (
	"context"
	"testing"
	"time"

	"github.com/anvaya/crm/internal/model"
	rpsMocks "github.com/anvaya/crm/internal/repository/mocks"
	"github.com/stretchr/testify/suite"
)

type reportServiceTestSuite struct {
	suite.Suite
	reportSvc   ReportService
	leadRpsMock *rpsMocks.LeadRepository
}

func (s *reportServiceTestSuite) SetupTest() {
	s.leadRpsMock = rpsMocks.NewLeadRepository(s.T())
	s.reportSvc = NewReportService(s.leadRpsMock)
}

func (s *reportServiceTestSuite) TestPipelineSumsBreakdown() {
	ctx := context.Background()

	breakdown := []model.StatusCount{
		{Status: model.StatusNew, Count: 2},
		{Status: model.StatusContacted, Count: 1},
	}

	s.leadRpsMock.On("CountByStatus", ctx).Return(breakdown, nil).Once()

	s.T().Log("total must be the sum of per-status counts")
	{
		report, err := s.reportSvc.Pipeline(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(3, report.TotalLeadsInPipeline, "total must sum counts")
		s.Assert().Equal(breakdown, report.Breakdown, "breakdown must keep aggregation order")
	}
}

func (s *reportServiceTestSuite) TestPipelineEmpty() {
	ctx := context.Background()

	s.leadRpsMock.On("CountByStatus", ctx).Return([]model.StatusCount{}, nil).Once()

	s.T().Log("empty pipeline must report zero total")
	{
		report, err := s.reportSvc.Pipeline(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Zero(report.TotalLeadsInPipeline, "total must be zero")
		s.Assert().Empty(report.Breakdown, "breakdown must be empty")
	}
}

func (s *reportServiceTestSuite) TestClosedLastWeekWindow() {
	ctx := context.Background()
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	s.leadRpsMock.On("FindClosedSince", ctx, now.AddDate(0, 0, -7)).Return([]*model.Lead{}, nil).Once()

	s.T().Log("lower bound must be exactly seven days before now")
	{
		_, err := s.reportSvc.ClosedLastWeek(ctx, now)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *reportServiceTestSuite) TestClosedByAgent() {
	ctx := context.Background()

	closures := []model.AgentClosure{
		{ClosedLeadsCount: 2},
		{ClosedLeadsCount: 1},
	}

	s.leadRpsMock.On("ClosedByAgent", ctx).Return(closures, nil).Once()

	s.T().Log("closures must be passed through in aggregation order")
	{
		found, err := s.reportSvc.ClosedByAgent(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(closures, found, "closures must match")
	}
}

// start report service test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(reportServiceTestSuite))
}
