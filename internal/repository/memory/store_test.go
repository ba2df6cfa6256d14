package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/repository"
)

var (
	testKey = domain.TeamKey{Name: "Test Team 1", UID: 1234567890}
	testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

func newStoreWithTeam(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	require.NoError(t, store.Create(context.Background(), domain.NewTeam(testKey, "captain", testNow)))
	return store
}

func TestStore_Create(t *testing.T) {
	store := newStoreWithTeam(t)
	ctx := context.Background()

	err := store.Create(ctx, domain.NewTeam(testKey, "other", testNow))
	assert.ErrorIs(t, err, domain.ErrTeamExists)

	// Тот же name с другим uid это другая команда
	other := domain.TeamKey{Name: testKey.Name, UID: testKey.UID + 1}
	require.NoError(t, store.Create(ctx, domain.NewTeam(other, "other", testNow)))

	team, err := store.GetByKey(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, "other", team.Captain)
}

func TestStore_GetByKeyReturnsCopy(t *testing.T) {
	store := newStoreWithTeam(t)
	ctx := context.Background()

	team, err := store.GetByKey(ctx, testKey)
	require.NoError(t, err)
	team.Members = append(team.Members, "mallory")

	stored, err := store.GetByKey(ctx, testKey)
	require.NoError(t, err)
	assert.Empty(t, stored.Members)

	_, err = store.GetByKey(ctx, domain.TeamKey{Name: "missing", UID: 1})
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestStore_UpdatePersistsOnSuccess(t *testing.T) {
	store := newStoreWithTeam(t)
	ctx := context.Background()

	updated, err := store.Update(ctx, testKey, func(ctx context.Context, team *domain.Team, _ repository.Treasury) error {
		return team.AddMember("captain", "alice", domain.DefaultMaxTeamSize)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, updated.Members)

	stored, err := store.GetByKey(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, stored.Members)
}

func TestStore_FailedUpdatePersistsNothing(t *testing.T) {
	store := newStoreWithTeam(t)
	ctx := context.Background()
	require.NoError(t, store.Credit(ctx, "alice", 100))

	errBoom := errors.New("boom")
	_, err := store.Update(ctx, testKey, func(ctx context.Context, team *domain.Team, treasury repository.Treasury) error {
		require.NoError(t, team.AddMember("captain", "alice", 0))
		require.NoError(t, treasury.Transfer(ctx, "alice", testKey.TreasuryAccount(), 60))
		require.NoError(t, treasury.RecordClaim(ctx, &domain.RewardClaim{ID: "c1", Team: testKey, Amount: 1}))
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	stored, err := store.GetByKey(ctx, testKey)
	require.NoError(t, err)
	assert.Empty(t, stored.Members)

	balance, err := store.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	treasury, err := store.Balance(ctx, testKey.TreasuryAccount())
	require.NoError(t, err)
	assert.Zero(t, treasury)

	claims, err := store.ListClaims(ctx, testKey)
	require.NoError(t, err)
	assert.Empty(t, claims)
}

func TestStore_TreasuryTransfersCommitWithTeam(t *testing.T) {
	store := newStoreWithTeam(t)
	ctx := context.Background()
	require.NoError(t, store.Credit(ctx, "alice", 100))

	_, err := store.Update(ctx, testKey, func(ctx context.Context, team *domain.Team, treasury repository.Treasury) error {
		if err := treasury.Transfer(ctx, "alice", testKey.TreasuryAccount(), 70); err != nil {
			return err
		}

		// Баланс внутри транзакции учитывает незафиксированный перевод
		balance, err := treasury.Balance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(30), balance)

		assert.ErrorIs(t, treasury.Transfer(ctx, "alice", testKey.TreasuryAccount(), 31), domain.ErrInsufficientFunds)
		return treasury.RecordClaim(ctx, &domain.RewardClaim{ID: "c1", Team: testKey, Beneficiary: "alice", Amount: 5})
	})
	require.NoError(t, err)

	balance, err := store.Balance(ctx, testKey.TreasuryAccount())
	require.NoError(t, err)
	assert.Equal(t, int64(70), balance)

	claims, err := store.ListClaims(ctx, testKey)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "c1", claims[0].ID)

	stats, err := store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalTeams)
	assert.Equal(t, 1, stats.TotalClaims)
	assert.Equal(t, int64(5), stats.TotalClaimed)
}

func TestStore_UpdateDeletesDisbandedTeam(t *testing.T) {
	store := newStoreWithTeam(t)
	ctx := context.Background()

	team, err := store.Update(ctx, testKey, func(ctx context.Context, team *domain.Team, _ repository.Treasury) error {
		return team.Leave("captain")
	})
	require.NoError(t, err)
	assert.True(t, team.Disbanded)

	_, err = store.GetByKey(ctx, testKey)
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)

	_, err = store.Update(ctx, testKey, func(context.Context, *domain.Team, repository.Treasury) error { return nil })
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	store := newStoreWithTeam(t)
	ctx := context.Background()

	_, err := store.Update(ctx, testKey, func(ctx context.Context, team *domain.Team, _ repository.Treasury) error {
		for _, m := range []string{"m1", "m2", "m3", "m4"} {
			if err := team.AddMember("captain", m, 0); err != nil {
				return err
			}
		}
		return team.InitTournament("captain", "T-1", 0, testNow)
	})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		resolved int
	)
	for _, voter := range []string{"captain", "m1", "m2", "m3", "m4"} {
		wg.Add(1)
		go func(voter string) {
			defer wg.Done()
			_, err := store.Update(ctx, testKey, func(ctx context.Context, team *domain.Team, _ repository.Treasury) error {
				outcome, err := team.VoteForTournament(voter, domain.ChoiceYes, testNow)
				if err == nil && outcome == domain.OutcomeResolved {
					mu.Lock()
					resolved++
					mu.Unlock()
				}
				return err
			})
			assert.NoError(t, err)
		}(voter)
	}
	wg.Wait()

	team, err := store.GetByKey(ctx, testKey)
	require.NoError(t, err)
	assert.Len(t, team.Tournament.Vote.Ballots, 5)
	assert.Equal(t, domain.TournamentActive, team.Tournament.Phase)
	assert.Equal(t, 1, resolved)
}

func TestStore_TransferAndCredit(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Credit(ctx, "alice", 0), domain.ErrInvalidAmount)
	require.NoError(t, store.Credit(ctx, "alice", 50))

	assert.ErrorIs(t, store.Transfer(ctx, "alice", "bob", 51), domain.ErrInsufficientFunds)
	assert.ErrorIs(t, store.Transfer(ctx, "alice", "bob", -1), domain.ErrInvalidAmount)
	require.NoError(t, store.Transfer(ctx, "alice", "bob", 20))

	alice, err := store.Balance(ctx, "alice")
	require.NoError(t, err)
	bob, err := store.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(30), alice)
	assert.Equal(t, int64(20), bob)
}
