package service

import (
	"context"
	"time"

	"github.com/anvaya/crm/internal/model"
	"github.com/anvaya/crm/internal/repository"
)

const closedReportWindowDays = 7

// ReportService computes read-only derived views over the leads
// collection; no report mutates state
type ReportService interface {
	ClosedLastWeek(context.Context, time.Time) ([]*model.Lead, error)
	Pipeline(context.Context) (*model.PipelineReport, error)
	ClosedByAgent(context.Context) ([]model.AgentClosure, error)
}

type reportService struct {
	leadRepo repository.LeadRepository
}

// NewReportService builds new ReportService
func NewReportService(leadRepo repository.LeadRepository) ReportService {
	return &reportService{leadRepo: leadRepo}
}

func (s *reportService) ClosedLastWeek(ctx context.Context, now time.Time) ([]*model.Lead, error) {
	since := now.AddDate(0, 0, -closedReportWindowDays)

	leads, err := s.leadRepo.FindClosedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *reportService) Pipeline(ctx context.Context) (*model.PipelineReport, error) {
	breakdown, err := s.leadRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, row := range breakdown {
		total += row.Count
	}

	return &model.PipelineReport{
		TotalLeadsInPipeline: total,
		Breakdown:            breakdown,
	}, nil
}

func (s *reportService) ClosedByAgent(ctx context.Context) ([]model.AgentClosure, error) {
	closures, err := s.leadRepo.ClosedByAgent(ctx)
	if err != nil {
		return nil, err
	}
	return closures, nil
}
