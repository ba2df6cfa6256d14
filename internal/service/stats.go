package service

import (
	"context"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/repository"
)

// StatsService handles statistics queries
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetStats returns overall statistics
func (s *StatsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.statsRepo.GetStats(ctx)
}
