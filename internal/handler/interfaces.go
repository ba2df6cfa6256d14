package handler

//go:generate mockgen -source=interfaces.go -destination=mocks/services.go -package=mocks

import (
	"context"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/service"
)

// TeamService определяет операции управления составом команды
type TeamService interface {
	CreateTeam(ctx context.Context, key domain.TeamKey, creator string) (*domain.Team, error)
	GetTeam(ctx context.Context, key domain.TeamKey) (*domain.Team, error)
	AddMember(ctx context.Context, key domain.TeamKey, caller, member string) (*domain.Team, error)
	RemoveMember(ctx context.Context, key domain.TeamKey, caller, target string) (*domain.Team, error)
	TransferCaptain(ctx context.Context, key domain.TeamKey, caller, newCaptain string) (*domain.Team, error)
	LeaveTeam(ctx context.Context, key domain.TeamKey, caller string) (*domain.Team, error)
}

// TournamentService определяет голосования за участие в турнире
type TournamentService interface {
	InitTournament(ctx context.Context, key domain.TeamKey, caller, tournamentID string, entryFee int64) (*domain.Team, error)
	VoteForTournament(ctx context.Context, key domain.TeamKey, caller string, choice domain.Choice) (*service.VoteResult, error)
	LeaveTournament(ctx context.Context, key domain.TeamKey, caller string, choice domain.Choice) (*service.VoteResult, error)
}

// DistributionService определяет операции с предложением о распределении приза
type DistributionService interface {
	ProposeDistribution(ctx context.Context, key domain.TeamKey, caller string, percentages []int) (*domain.Team, error)
	VoteForDistribution(ctx context.Context, key domain.TeamKey, caller string, choice domain.Choice) (*service.VoteResult, error)
	MarkReadyToJoin(ctx context.Context, key domain.TeamKey, caller string) (*domain.Team, error)
	VotingResult(ctx context.Context, key domain.TeamKey) (bool, error)
}

// TreasuryService определяет операции с казной команды
type TreasuryService interface {
	Fund(ctx context.Context, key domain.TeamKey, caller string, amount int64) (int64, error)
	Claim(ctx context.Context, key domain.TeamKey, caller, beneficiary string, amount int64) (*domain.RewardClaim, error)
	Balance(ctx context.Context, key domain.TeamKey) (int64, error)
	Claims(ctx context.Context, key domain.TeamKey) ([]*domain.RewardClaim, error)
}

// StatsService определяет сводную статистику
type StatsService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}
