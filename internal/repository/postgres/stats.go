package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/team-dao/internal/domain"
)

// StatsRepository реализует repository.StatsRepository для PostgreSQL
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository создает новый экземпляр StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats возвращает статистику по командам и выплатам
func (r *StatsRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}

	teamQuery := `
		SELECT
			COUNT(*) as total_teams,
			COUNT(*) FILTER (WHERE tournament_phase = 'PENDING') as pending_tournaments,
			COUNT(*) FILTER (WHERE tournament_phase = 'ACTIVE') as active_tournaments,
			COUNT(*) FILTER (WHERE (distribution->>'approved')::boolean) as approved_distributions,
			COUNT(*) FILTER (WHERE can_join_tournament) as ready_teams
		FROM teams
	`

	err := r.db.QueryRow(ctx, teamQuery).Scan(
		&stats.TotalTeams,
		&stats.PendingTournaments,
		&stats.ActiveTournaments,
		&stats.ApprovedDistributions,
		&stats.ReadyTeams,
	)
	if err != nil {
		return nil, err
	}

	claimQuery := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)::BIGINT
		FROM reward_claims
	`

	if err := r.db.QueryRow(ctx, claimQuery).Scan(&stats.TotalClaims, &stats.TotalClaimed); err != nil {
		return nil, err
	}

	return stats, nil
}
