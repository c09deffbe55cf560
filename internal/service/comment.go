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

// CommentService is validation and integrity layer over lead comments
type CommentService interface {
	Add(context.Context, primitive.ObjectID, primitive.ObjectID, string) (*model.Comment, error)
	FindByLeadID(context.Context, primitive.ObjectID) ([]*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	leadRepo    repository.LeadRepository
	agentRepo   repository.AgentRepository
}

// NewCommentService builds new CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	leadRepo repository.LeadRepository,
	agentRepo repository.AgentRepository,
) CommentService {
	return &commentService{commentRepo: commentRepo, leadRepo: leadRepo, agentRepo: agentRepo}
}

func (s *commentService) Add(ctx context.Context, leadID, authorID primitive.ObjectID, text string) (*model.Comment, error) {
	lead, err := s.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if lead == nil {
		return nil, errs.NewEntryNotFoundErr(fmt.Sprintf("Lead with ID '%s' not found.", leadID.Hex()))
	}

	author, err := s.agentRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if author == nil {
		return nil, errs.NewEntryNotFoundErr("Authoring Sales Agent not found")
	}

	c := &model.Comment{
		LeadID:      leadID,
		AuthorID:    authorID,
		CommentText: text,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.commentRepo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	c.ID = id
	c.Author = agentRef(author)
	return c, nil
}

func (s *commentService) FindByLeadID(ctx context.Context, leadID primitive.ObjectID) ([]*model.Comment, error) {
	lead, err := s.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if lead == nil {
		return nil, errs.NewEntryNotFoundErr(fmt.Sprintf("Lead with ID '%s' not found.", leadID.Hex()))
	}

	comments, err := s.commentRepo.FindByLeadID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	return comments, nil
}
