package targets

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

const (
	LogMsgTargetAdded   = "Target added"
	LogMsgTargetRemoved = "Target removed"
)

// Repository persists the active target list
type Repository interface {
	ActiveTargets(ctx context.Context) ([]domain.ActiveTarget, error)
	UpdateActiveTargets(ctx context.Context, fn func([]domain.ActiveTarget) ([]domain.ActiveTarget, error)) ([]domain.ActiveTarget, error)
}

// Service manages the items pinned to the overlay
type Service interface {
	List(ctx context.Context) ([]domain.ActiveTarget, error)
	Add(ctx context.Context, target domain.ActiveTarget) ([]domain.ActiveTarget, error)
	Remove(ctx context.Context, id string) ([]domain.ActiveTarget, error)
}

type service struct {
	repo Repository
}

// NewService creates a target service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.ActiveTarget, error) {
	list, err := s.repo.ActiveTargets(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.ActiveTarget{}
	}
	return list, nil
}

// Add appends target. Duplicates and a full list are rejected.
func (s *service) Add(ctx context.Context, target domain.ActiveTarget) ([]domain.ActiveTarget, error) {
	if strings.TrimSpace(target.ID) == "" {
		return nil, fmt.Errorf("%w: target id is required", domain.ErrInvalidInput)
	}
	if target.Type != "" && !domain.ItemType(target.Type).Valid() {
		return nil, fmt.Errorf("%w: unknown target type %q", domain.ErrInvalidInput, target.Type)
	}

	list, err := s.repo.UpdateActiveTargets(ctx, func(list []domain.ActiveTarget) ([]domain.ActiveTarget, error) {
		for _, t := range list {
			if t.ID == target.ID {
				return nil, domain.ErrTargetExists
			}
		}
		if len(list) >= domain.MaxActiveTargets {
			return nil, domain.ErrTargetLimit
		}
		return append(list, target), nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgTargetAdded, "id", target.ID, "count", len(list))
	return list, nil
}

// Remove drops the target with id. Removing an absent id is a no-op.
func (s *service) Remove(ctx context.Context, id string) ([]domain.ActiveTarget, error) {
	list, err := s.repo.UpdateActiveTargets(ctx, func(list []domain.ActiveTarget) ([]domain.ActiveTarget, error) {
		kept := make([]domain.ActiveTarget, 0, len(list))
		for _, t := range list {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		return kept, nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgTargetRemoved, "id", id, "count", len(list))
	return list, nil
}
