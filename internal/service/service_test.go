package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/events"
	"github.com/aidar/team-dao/internal/repository/memory"
)

var testKey = domain.TeamKey{Name: "Test Team 1", UID: 1234567890}

// recordingPublisher collects published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

func (p *recordingPublisher) last() events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.events[len(p.events)-1]
}

type fixture struct {
	store         *memory.Store
	clock         *clockwork.FakeClock
	publisher     *recordingPublisher
	teams         *TeamService
	tournaments   *TournamentService
	distributions *DistributionService
	treasury      *TreasuryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:     memory.NewStore(),
		clock:     clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		publisher: &recordingPublisher{},
	}

	deps := Deps{
		Teams:     f.store,
		Clock:     f.clock,
		Publisher: f.publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	f.teams = NewTeamService(deps, domain.DefaultMaxTeamSize)
	f.tournaments = NewTournamentService(deps)
	f.distributions = NewDistributionService(deps)
	f.treasury = NewTreasuryService(deps, f.store)
	return f
}

// createTeam creates testKey with "captain" and the given members
func (f *fixture) createTeam(t *testing.T, members ...string) {
	t.Helper()

	ctx := context.Background()
	_, err := f.teams.CreateTeam(ctx, testKey, "captain")
	require.NoError(t, err)
	for _, m := range members {
		_, err := f.teams.AddMember(ctx, testKey, "captain", m)
		require.NoError(t, err)
	}
}
