package usecase

import (
	"context"

	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

// StatsUseCase отдаёт агрегированную статистику магазина для админ-панели.
type StatsUseCase struct {
	statsRepo StatsRepository
	logger    logger.Logger
}

func NewStatsUC(statsRepo StatsRepository, logger logger.Logger) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (s *StatsUseCase) Dashboard(ctx context.Context) (*DashboardRes, error) {
	const op = "StatsUseCase.Dashboard"

	res, err := s.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}
