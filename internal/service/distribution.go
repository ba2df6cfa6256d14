package service

import (
	"context"
	"time"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/events"
	"github.com/aidar/team-dao/internal/repository"
)

// DistributionService handles prize distribution proposals
type DistributionService struct {
	governance
}

// NewDistributionService creates a new DistributionService
func NewDistributionService(deps Deps) *DistributionService {
	return &DistributionService{governance: newGovernance(deps)}
}

// ProposeDistribution stores a percentage split and opens its vote (captain only).
// Slot 0 belongs to the captain, the rest follow the members in roster order.
func (s *DistributionService) ProposeDistribution(ctx context.Context, key domain.TeamKey, caller string, percentages []int) (*domain.Team, error) {
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, now time.Time) error {
		return team.ProposeDistribution(caller, percentages, now)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeDistributionProposed, key, caller, now, map[string]any{
		"shares": team.Distribution.Shares,
	}))
	return team, nil
}

// VoteForDistribution records a ballot on the current proposal
func (s *DistributionService) VoteForDistribution(ctx context.Context, key domain.TeamKey, caller string, choice domain.Choice) (*VoteResult, error) {
	var outcome domain.Outcome
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, now time.Time) error {
		var err error
		outcome, err = team.VoteForDistribution(caller, choice, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	resolved := outcome == domain.OutcomeResolved
	if resolved {
		s.logger.InfoContext(ctx, "distribution approved", "team", key.String())
		s.publish(ctx, events.New(events.TypeDistributionApproved, key, caller, now, nil))
	}

	return &VoteResult{Team: team, Resolved: resolved}, nil
}

// MarkReadyToJoin sets the readiness flag once the distribution is approved (captain only)
func (s *DistributionService) MarkReadyToJoin(ctx context.Context, key domain.TeamKey, caller string) (*domain.Team, error) {
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, _ time.Time) error {
		return team.MarkReadyToJoin(caller)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeReadyToJoin, key, caller, now, nil))
	return team, nil
}

// VotingResult reports whether the current proposal is approved
func (s *DistributionService) VotingResult(ctx context.Context, key domain.TeamKey) (bool, error) {
	team, err := s.teams.GetByKey(ctx, key)
	if err != nil {
		return false, err
	}
	return team.VotingResult(), nil
}
