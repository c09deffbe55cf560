package service

import (
	"context"
	"fmt"
	"time"

	errs "github.com/anvaya/crm/internal/errors"
	"github.com/anvaya/crm/internal/model"
	"github.com/anvaya/crm/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadService is validation and integrity layer over the leads
// collection: it enforces the cross-collection references the store
// itself does not
type LeadService interface {
	Create(context.Context, *model.Lead) (*model.Lead, error)
	FindAll(context.Context, model.LeadFilter) ([]*model.Lead, error)
	Update(context.Context, primitive.ObjectID, model.LeadPatch) (*model.Lead, error)
	DeleteByID(context.Context, primitive.ObjectID) error
}

type leadService struct {
	leadRepo    repository.LeadRepository
	agentRepo   repository.AgentRepository
	commentRepo repository.CommentRepository
}

// NewLeadService builds new LeadService
func NewLeadService(
	leadRepo repository.LeadRepository,
	agentRepo repository.AgentRepository,
	commentRepo repository.CommentRepository,
) LeadService {
	return &leadService{leadRepo: leadRepo, agentRepo: agentRepo, commentRepo: commentRepo}
}

func (s *leadService) Create(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	agent, err := s.agentRepo.FindByID(ctx, l.SalesAgentID)
	if err != nil {
		return nil, err
	}

	if agent == nil {
		return nil, errs.NewEntryNotFoundErr(fmt.Sprintf("Sales agent with ID '%s' not found.", l.SalesAgentID.Hex()))
	}

	now := time.Now().UTC()
	l.CreatedAt = now

	if l.Status == "" {
		l.Status = model.StatusNew
	}
	if l.Priority == "" {
		l.Priority = model.PriorityMedium
	}
	if l.Tags == nil {
		l.Tags = make([]string, 0)
	}

	// a lead created already closed must still show up in closed reports
	if l.Status == model.StatusClosed {
		l.ClosedAt = &now
	}

	id, err := s.leadRepo.Create(ctx, l)
	if err != nil {
		return nil, err
	}

	l.ID = id
	l.Agent = agentRef(agent)
	return l, nil
}

func (s *leadService) FindAll(ctx context.Context, filter model.LeadFilter) ([]*model.Lead, error) {
	leads, err := s.leadRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *leadService) Update(ctx context.Context, id primitive.ObjectID, patch model.LeadPatch) (*model.Lead, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if lead == nil {
		return nil, errs.NewEntryNotFoundErr(fmt.Sprintf("Lead with ID '%s' not found.", id.Hex()))
	}

	agentID := lead.SalesAgentID
	if patch.SalesAgent != nil {
		agentID, err = primitive.ObjectIDFromHex(*patch.SalesAgent)
		if err != nil {
			return nil, errs.NewBusinessErr("salesAgent", fmt.Sprintf("Invalid Sales Agent ID format. Received '%s'.", *patch.SalesAgent))
		}

		if agentID != lead.SalesAgentID {
			agent, err := s.agentRepo.FindByID(ctx, agentID)
			if err != nil {
				return nil, err
			}
			if agent == nil {
				return nil, errs.NewEntryNotFoundErr(fmt.Sprintf("Sales agent with ID '%s' not found.", agentID.Hex()))
			}
		}
	}

	merged := lead.MergePatch(patch)
	merged.SalesAgentID = agentID

	switch {
	case merged.Status == model.StatusClosed && lead.Status != model.StatusClosed:
		now := time.Now().UTC()
		merged.ClosedAt = &now
	case merged.Status != model.StatusClosed:
		// reopened lead must leave closed reports
		merged.ClosedAt = nil
	}

	if err := s.leadRepo.Update(ctx, &merged); err != nil {
		return nil, err
	}

	agent, err := s.agentRepo.FindByID(ctx, merged.SalesAgentID)
	if err != nil {
		return nil, err
	}

	merged.Agent = agentRef(agent)
	return &merged, nil
}

func (s *leadService) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.leadRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return errs.NewEntryNotFoundErr(fmt.Sprintf("Lead with ID '%s' not found.", id.Hex()))
	}

	// comments are unreachable without their lead, remove them as well
	if _, err := s.commentRepo.DeleteByLeadID(ctx, id); err != nil {
		return err
	}
	return nil
}

func agentRef(a *model.SalesAgent) *model.AgentRef {
	if a == nil {
		return nil
	}
	return &model.AgentRef{ID: a.ID, Name: a.Name, Email: a.Email}
}
