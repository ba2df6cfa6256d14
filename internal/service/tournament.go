package service

import (
	"context"
	"time"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/events"
	"github.com/aidar/team-dao/internal/repository"
)

// VoteResult is the team state after a ballot and whether that ballot resolved the session
type VoteResult struct {
	Team     *domain.Team `json:"team"`
	Resolved bool         `json:"resolved"`
}

// TournamentService handles tournament participation votes
type TournamentService struct {
	governance
}

// NewTournamentService creates a new TournamentService
func NewTournamentService(deps Deps) *TournamentService {
	return &TournamentService{governance: newGovernance(deps)}
}

// InitTournament proposes a tournament and opens the participation vote (captain only)
func (s *TournamentService) InitTournament(ctx context.Context, key domain.TeamKey, caller, tournamentID string, entryFee int64) (*domain.Team, error) {
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, now time.Time) error {
		return team.InitTournament(caller, tournamentID, entryFee, now)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeTournamentProposed, key, caller, now, map[string]any{
		"tournament_id": tournamentID,
		"entry_fee":     entryFee,
	}))
	return team, nil
}

// VoteForTournament records a participation ballot
func (s *TournamentService) VoteForTournament(ctx context.Context, key domain.TeamKey, caller string, choice domain.Choice) (*VoteResult, error) {
	var outcome domain.Outcome
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, now time.Time) error {
		var err error
		outcome, err = team.VoteForTournament(caller, choice, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	resolved := outcome == domain.OutcomeResolved
	if resolved {
		s.logger.InfoContext(ctx, "tournament activated", "team", key.String(), "tournament_id", team.Tournament.ID)
		s.publish(ctx, events.New(events.TypeTournamentActivated, key, caller, now, map[string]any{
			"tournament_id": team.Tournament.ID,
		}))
	}

	return &VoteResult{Team: team, Resolved: resolved}, nil
}

// LeaveTournament records a ballot to exit the active tournament
func (s *TournamentService) LeaveTournament(ctx context.Context, key domain.TeamKey, caller string, choice domain.Choice) (*VoteResult, error) {
	var (
		outcome      domain.Outcome
		tournamentID string
	)
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, now time.Time) error {
		tournamentID = team.Tournament.ID

		var err error
		outcome, err = team.VoteToLeaveTournament(caller, choice, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	resolved := outcome == domain.OutcomeResolved
	if resolved {
		s.logger.InfoContext(ctx, "tournament left", "team", key.String(), "tournament_id", tournamentID)
		s.publish(ctx, events.New(events.TypeTournamentLeft, key, caller, now, map[string]any{
			"tournament_id": tournamentID,
		}))
	}

	return &VoteResult{Team: team, Resolved: resolved}, nil
}
