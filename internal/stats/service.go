package stats

import (
	"context"
	"fmt"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// ProgressReader is the part of the progress repository the service reads
type ProgressReader interface {
	TrophyStates(ctx context.Context) (domain.TrophyStates, error)
	CosmeticStates(ctx context.Context) (domain.CosmeticStates, error)
}

// ItemSource supplies the current item definitions
type ItemSource interface {
	Items() ([]domain.CosmeticItem, []domain.TrophyItem)
}

// Service computes summaries from the current items and stored progress
type Service interface {
	Summary(ctx context.Context) (*Dashboard, error)
	Trophies(ctx context.Context, f TrophyFilter) ([]domain.TrophyItem, TrophyTotals, error)
	Cosmetics(ctx context.Context, f CosmeticFilter) ([]domain.CosmeticItem, CosmeticTotals, error)
}

type service struct {
	progress ProgressReader
	items    ItemSource
}

// NewService creates a new stats service
func NewService(progress ProgressReader, items ItemSource) Service {
	return &service{progress: progress, items: items}
}

func (s *service) Summary(ctx context.Context) (*Dashboard, error) {
	log := logger.FromContext(ctx)

	trophyStates, err := s.progress.TrophyStates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadTrophyStatesFailed, err)
	}
	cosmeticStates, err := s.progress.CosmeticStates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCosmeticStatesFailed, err)
	}

	cosmetics, trophies := s.items.Items()
	d := Summarize(cosmetics, trophies, cosmeticStates, trophyStates)

	log.Debug(LogMsgSummaryComputed,
		"trophy_percent", d.TrophyPercent,
		"cosmetic_percent", d.CosmeticPercent,
		"renown", d.TotalRenown)
	return &d, nil
}

// Trophies returns the filtered trophies and the totals over that subset
func (s *service) Trophies(ctx context.Context, f TrophyFilter) ([]domain.TrophyItem, TrophyTotals, error) {
	states, err := s.progress.TrophyStates(ctx)
	if err != nil {
		return nil, TrophyTotals{}, fmt.Errorf(ErrMsgLoadTrophyStatesFailed, err)
	}
	_, trophies := s.items.Items()
	filtered := FilterTrophies(trophies, states, f)
	return filtered, ComputeTrophyTotals(filtered, states), nil
}

// Cosmetics returns the filtered cosmetics and the totals over that subset
func (s *service) Cosmetics(ctx context.Context, f CosmeticFilter) ([]domain.CosmeticItem, CosmeticTotals, error) {
	states, err := s.progress.CosmeticStates(ctx)
	if err != nil {
		return nil, CosmeticTotals{}, fmt.Errorf(ErrMsgLoadCosmeticStatesFailed, err)
	}
	cosmetics, _ := s.items.Items()
	filtered := FilterCosmetics(cosmetics, f)
	return filtered, ComputeCosmeticTotals(filtered, states), nil
}
