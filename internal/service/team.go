package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/events"
	"github.com/aidar/team-dao/internal/repository"
)

// TeamService handles team directory and membership
type TeamService struct {
	governance
	maxSize int
}

// NewTeamService creates a new TeamService.
// maxSize limits the roster including the captain; zero disables the limit.
func NewTeamService(deps Deps, maxSize int) *TeamService {
	return &TeamService{
		governance: newGovernance(deps),
		maxSize:    maxSize,
	}
}

// CreateTeam registers a team with the creator as captain
func (s *TeamService) CreateTeam(ctx context.Context, key domain.TeamKey, creator string) (*domain.Team, error) {
	if err := domain.ValidateIdentity(creator); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	team := domain.NewTeam(key, creator, now)

	if err := s.teams.Create(ctx, team); err != nil {
		if errors.Is(err, domain.ErrTeamExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create team %s: %w", key, err)
	}

	s.logger.InfoContext(ctx, "team created", "team", key.String(), "captain", creator)
	s.publish(ctx, events.New(events.TypeTeamCreated, key, creator, now, nil))

	return team, nil
}

// GetTeam retrieves a team record
func (s *TeamService) GetTeam(ctx context.Context, key domain.TeamKey) (*domain.Team, error) {
	return s.teams.GetByKey(ctx, key)
}

// AddMember appends a member to the roster (captain only)
func (s *TeamService) AddMember(ctx context.Context, key domain.TeamKey, caller, member string) (*domain.Team, error) {
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, _ time.Time) error {
		return team.AddMember(caller, member, s.maxSize)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeMemberAdded, key, caller, now, map[string]any{"member": member}))
	return team, nil
}

// RemoveMember removes a member by identity (captain only)
func (s *TeamService) RemoveMember(ctx context.Context, key domain.TeamKey, caller, target string) (*domain.Team, error) {
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, _ time.Time) error {
		return team.RemoveMember(caller, target)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeMemberRemoved, key, caller, now, map[string]any{"member": target}))
	return team, nil
}

// TransferCaptain hands the captain role to a member
func (s *TeamService) TransferCaptain(ctx context.Context, key domain.TeamKey, caller, newCaptain string) (*domain.Team, error) {
	team, now, err := s.mutate(ctx, key, func(_ context.Context, team *domain.Team, _ repository.Treasury, _ time.Time) error {
		return team.TransferCaptain(caller, newCaptain)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeCaptainTransferred, key, caller, now, map[string]any{
		"previous_captain": caller,
		"new_captain":      newCaptain,
	}))
	return team, nil
}

// LeaveTeam removes the caller from the roster.
// A captain leaving as the only roster entry disbands the team, which requires an empty treasury.
func (s *TeamService) LeaveTeam(ctx context.Context, key domain.TeamKey, caller string) (*domain.Team, error) {
	team, now, err := s.mutate(ctx, key, func(ctx context.Context, team *domain.Team, treasury repository.Treasury, _ time.Time) error {
		if err := team.Leave(caller); err != nil {
			return err
		}
		if !team.Disbanded {
			return nil
		}

		// The treasury account outlives the team record
		balance, err := treasury.Balance(ctx, key.TreasuryAccount())
		if err != nil {
			return err
		}
		if balance > 0 {
			return domain.ErrTreasuryNotEmpty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if team.Disbanded {
		s.logger.InfoContext(ctx, "team disbanded", "team", key.String())
		s.publish(ctx, events.New(events.TypeTeamDisbanded, key, caller, now, nil))
		return team, nil
	}

	s.publish(ctx, events.New(events.TypeMemberLeft, key, caller, now, nil))
	return team, nil
}
