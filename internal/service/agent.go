package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/anvaya/crm/internal/errors"
	"github.com/anvaya/crm/internal/model"
	"github.com/anvaya/crm/internal/repository"
)

// AgentService manages the append-only sales agent registry; agents
// are never updated or deleted
type AgentService interface {
	Create(context.Context, *model.SalesAgent) (*model.SalesAgent, error)
	FindAll(context.Context) ([]*model.SalesAgent, error)
}

type agentService struct {
	agentRepo repository.AgentRepository
}

// NewAgentService builds new AgentService
func NewAgentService(agentRepo repository.AgentRepository) AgentService {
	return &agentService{agentRepo: agentRepo}
}

func (s *agentService) Create(ctx context.Context, a *model.SalesAgent) (*model.SalesAgent, error) {
	existing, err := s.agentRepo.FindByEmail(ctx, a.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, errs.NewBusinessErr("email", "Sales Agent with this email already exists")
	}

	a.CreatedAt = time.Now().UTC()

	id, err := s.agentRepo.Create(ctx, a)
	if err != nil {
		// unique index backstop for the check-then-insert race
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errs.NewConflictErr("email", fmt.Sprintf("Sales agent with email '%s' already exists.", a.Email))
		}
		return nil, err
	}

	a.ID = id
	return a, nil
}

func (s *agentService) FindAll(ctx context.Context) ([]*model.SalesAgent, error) {
	agents, err := s.agentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return agents, nil
}
