package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anvaya/crm/internal/cache"
	errs "github.com/anvaya/crm/internal/errors"
	"github.com/anvaya/crm/internal/model"
	"github.com/anvaya/crm/internal/repository"
)

// TagService manages the append-only tag vocabulary
type TagService interface {
	Create(context.Context, string) (*model.Tag, error)
	FindAll(context.Context) ([]*model.Tag, error)
}

type tagService struct {
	tagRepo  repository.TagRepository
	tagCache cache.TagCacheRepository
}

// NewTagService builds new TagService
func NewTagService(tagRepo repository.TagRepository, tagCache cache.TagCacheRepository) TagService {
	return &tagService{tagRepo: tagRepo, tagCache: tagCache}
}

func (s *tagService) Create(ctx context.Context, name string) (*model.Tag, error) {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return nil, errs.NewBusinessErr("name", "Tag name is required")
	}

	existing, err := s.tagRepo.FindByName(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, errs.NewConflictErr("name", fmt.Sprintf("Tag '%s' already exists.", normalized))
	}

	t := &model.Tag{
		Name:      normalized,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.tagRepo.Create(ctx, t)
	if err != nil {
		// two concurrent creations of the same name must not both
		// succeed, the unique index reports the loser here
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errs.NewConflictErr("name", fmt.Sprintf("Tag '%s' already exists.", normalized))
		}
		return nil, err
	}

	if err := s.tagCache.Purge(ctx); err != nil {
		return nil, err
	}

	t.ID = id
	return t, nil
}

func (s *tagService) FindAll(ctx context.Context) ([]*model.Tag, error) {
	cached, err := s.tagCache.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if cached != nil {
		return cached, nil
	}

	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.tagCache.Cache(ctx, tags); err != nil {
		return nil, err
	}
	return tags, nil
}
