package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeam_TournamentScenario(t *testing.T) {
	// Капитан и четыре участника: для большинства нужно три голоса
	team := newTestTeam(t, "alice", "bob", "dan", "eve")

	require.NoError(t, team.InitTournament("captain", "tournament-T", 100, testNow))
	assert.Equal(t, TournamentPending, team.Tournament.Phase)
	assert.Equal(t, 5, team.Tournament.Vote.EligibleCount)
	assert.Empty(t, team.Tournament.ActiveID())

	for i, voter := range []string{"captain", "alice"} {
		outcome, err := team.VoteForTournament(voter, ChoiceYes, testNow)
		require.NoError(t, err, "vote %d", i)
		assert.Equal(t, OutcomePending, outcome)
	}

	outcome, err := team.VoteForTournament("bob", ChoiceYes, testNow)
	require.NoError(t, err)
	assert.Equal(t, OutcomeResolved, outcome)
	assert.Equal(t, TournamentActive, team.Tournament.Phase)
	assert.Equal(t, "tournament-T", team.Tournament.ActiveID())

	// Четвертый голос после решения принимается без повторного эффекта
	outcome, err = team.VoteForTournament("dan", ChoiceYes, testNow)
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, outcome)
	assert.Equal(t, "tournament-T", team.Tournament.ActiveID())
	assert.Equal(t, 4, team.Tournament.Vote.YesCount)
}

func TestTeam_VoteForTournamentErrors(t *testing.T) {
	team := newTestTeam(t, "alice", "bob")

	_, err := team.VoteForTournament("alice", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrNoActiveTournament)

	require.NoError(t, team.InitTournament("captain", "t-1", 0, testNow))

	_, err = team.VoteForTournament("mallory", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrMemberNotInTeam)

	_, err = team.VoteForTournament("alice", ChoiceNo, testNow)
	require.NoError(t, err)
	_, err = team.VoteForTournament("alice", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
	assert.Zero(t, team.Tournament.Vote.YesCount)
}

func TestTeam_TournamentLock(t *testing.T) {
	team := newTestTeam(t, "alice", "bob")

	require.NoError(t, team.InitTournament("captain", "t-1", 0, testNow))

	// Ожидающий турнир блокирует новый так же, как активный
	assert.ErrorIs(t, team.InitTournament("captain", "t-2", 0, testNow), ErrAlreadyActiveTournament)
	assert.ErrorIs(t, team.InitTournament("captain", "t-1", 0, testNow), ErrAlreadyActiveTournament)

	for _, voter := range []string{"captain", "alice"} {
		_, err := team.VoteForTournament(voter, ChoiceYes, testNow)
		require.NoError(t, err)
	}
	require.Equal(t, TournamentActive, team.Tournament.Phase)
	assert.ErrorIs(t, team.InitTournament("captain", "t-2", 0, testNow), ErrAlreadyActiveTournament)

	// Выход из турнира снимает блокировку
	for _, voter := range []string{"alice", "bob"} {
		_, err := team.VoteToLeaveTournament(voter, ChoiceYes, testNow)
		require.NoError(t, err)
	}
	assert.Equal(t, TournamentNone, team.Tournament.Phase)
	assert.Nil(t, team.Tournament.Vote)
	assert.Nil(t, team.Tournament.ExitVote)

	require.NoError(t, team.InitTournament("captain", "t-2", 0, testNow))
	assert.Equal(t, "t-2", team.Tournament.ID)
	assert.Empty(t, team.Tournament.Vote.Ballots)
}

func TestTeam_VoteToLeaveTournament(t *testing.T) {
	team := newTestTeam(t, "alice", "bob", "carol")

	_, err := team.VoteToLeaveTournament("alice", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrNoActiveTournament)

	require.NoError(t, team.InitTournament("captain", "t-1", 0, testNow))
	_, err = team.VoteToLeaveTournament("alice", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrNoActiveTournament, "pending tournament cannot be left")

	for _, voter := range []string{"captain", "alice", "bob"} {
		_, err := team.VoteForTournament(voter, ChoiceYes, testNow)
		require.NoError(t, err)
	}
	team.CanJoinTournament = true

	_, err = team.VoteToLeaveTournament("mallory", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrMemberNotInTeam)
	assert.Nil(t, team.Tournament.ExitVote)

	outcome, err := team.VoteToLeaveTournament("alice", ChoiceYes, testNow)
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, outcome)

	_, err = team.VoteToLeaveTournament("alice", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	_, err = team.VoteToLeaveTournament("bob", ChoiceNo, testNow)
	require.NoError(t, err)

	// Ничья 2 из 4 не решает
	outcome, err = team.VoteToLeaveTournament("carol", ChoiceYes, testNow)
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, outcome)
	assert.Equal(t, TournamentActive, team.Tournament.Phase)

	outcome, err = team.VoteToLeaveTournament("captain", ChoiceYes, testNow)
	require.NoError(t, err)
	assert.Equal(t, OutcomeResolved, outcome)
	assert.Equal(t, TournamentNone, team.Tournament.Phase)
	assert.Empty(t, team.Tournament.ID)
	assert.False(t, team.CanJoinTournament)
}

func TestTeam_PendingTournamentWithoutMajorityStaysLocked(t *testing.T) {
	team := newTestTeam(t, "alice", "bob")
	require.NoError(t, team.InitTournament("captain", "t-1", 0, testNow))

	for _, voter := range []string{"captain", "alice", "bob"} {
		outcome, err := team.VoteForTournament(voter, ChoiceNo, testNow)
		require.NoError(t, err)
		assert.Equal(t, OutcomePending, outcome)
	}
	assert.Equal(t, TournamentPending, team.Tournament.Phase)

	// Голосование за выход открывается только для активного турнира
	_, err := team.VoteToLeaveTournament("alice", ChoiceYes, testNow)
	assert.ErrorIs(t, err, ErrNoActiveTournament)
	assert.ErrorIs(t, team.InitTournament("captain", "t-2", 0, testNow), ErrAlreadyActiveTournament)
}
