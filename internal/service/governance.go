package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/events"
	"github.com/aidar/team-dao/internal/repository"
)

// Deps holds the collaborators shared by the governance services
type Deps struct {
	Teams     repository.TeamRepository
	Clock     clockwork.Clock
	Publisher events.Publisher
	Logger    *slog.Logger
}

// governance runs state transitions against the team store and publishes their events
type governance struct {
	teams     repository.TeamRepository
	clock     clockwork.Clock
	publisher events.Publisher
	logger    *slog.Logger
}

func newGovernance(deps Deps) governance {
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NewLogPublisher(logger)
	}

	return governance{
		teams:     deps.Teams,
		clock:     clock,
		publisher: publisher,
		logger:    logger,
	}
}

// transitionFunc applies a domain transition at the given instant
type transitionFunc func(ctx context.Context, team *domain.Team, treasury repository.Treasury, now time.Time) error

// mutate runs fn under the team lock and persists the result.
// Domain errors are returned as is so they map to API codes.
func (g governance) mutate(ctx context.Context, key domain.TeamKey, fn transitionFunc) (*domain.Team, time.Time, error) {
	now := g.clock.Now().UTC()

	team, err := g.teams.Update(ctx, key, func(ctx context.Context, team *domain.Team, treasury repository.Treasury) error {
		if err := fn(ctx, team, treasury, now); err != nil {
			return err
		}
		team.UpdatedAt = now
		return nil
	})
	if err != nil {
		if domain.MapErrorToCode(err) == domain.CodeInternal {
			return nil, now, fmt.Errorf("update team %s: %w", key, err)
		}
		return nil, now, err
	}

	return team, now, nil
}

// publish sends events after commit; delivery failures are only logged
func (g governance) publish(ctx context.Context, evts ...events.Event) {
	for _, event := range evts {
		if err := g.publisher.Publish(ctx, event); err != nil {
			g.logger.ErrorContext(ctx, "failed to publish event",
				"event_type", event.Type,
				"event_id", event.ID.String(),
				"error", err,
			)
		}
	}
}
