package domain

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approvedTeam возвращает команду с одобренным распределением 40/30/30
func approvedTeam(t *testing.T) *Team {
	t.Helper()

	team := newTestTeam(t, "alice", "bob")
	require.NoError(t, team.ProposeDistribution("captain", []int{40, 30, 30}, testNow))
	for _, voter := range []string{"alice", "bob"} {
		_, err := team.VoteForDistribution(voter, ChoiceYes, testNow)
		require.NoError(t, err)
	}
	require.True(t, team.VotingResult())
	return team
}

func TestTeam_AuthorizeClaim(t *testing.T) {
	team := approvedTeam(t)

	tests := []struct {
		name        string
		caller      string
		beneficiary string
		amount      int64
		expectedErr error
	}{
		{name: "member claims own share", caller: "alice", beneficiary: "alice", amount: 300},
		{name: "captain claims for member", caller: "captain", beneficiary: "bob", amount: 300},
		{name: "member claims for someone else", caller: "alice", beneficiary: "bob", amount: 10, expectedErr: ErrClaimNotAuthorized},
		{name: "outsider claims own", caller: "mallory", beneficiary: "mallory", amount: 10, expectedErr: ErrMemberNotInTeam},
		{name: "zero amount", caller: "alice", beneficiary: "alice", amount: 0, expectedErr: ErrInvalidAmount},
		{name: "above share", caller: "alice", beneficiary: "alice", amount: 301, expectedErr: ErrClaimExceedsShare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := team.AuthorizeClaim(tt.caller, tt.beneficiary, tt.amount, 1000)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTeam_AuthorizeClaim_RequiresApproval(t *testing.T) {
	team := newTestTeam(t, "alice")
	require.NoError(t, team.ProposeDistribution("captain", []int{50, 50}, testNow))

	err := team.AuthorizeClaim("alice", "alice", 10, 1000)
	assert.ErrorIs(t, err, ErrProposalNotApproved)
}

func TestTeam_ClaimsAgainstFixedPool(t *testing.T) {
	team := approvedTeam(t)

	require.NoError(t, team.AuthorizeClaim("captain", "captain", 400, 1000))
	team.RecordClaim("captain", 400, 1000)
	assert.True(t, team.Distribution.PoolFixed)
	assert.Equal(t, int64(1000), team.Distribution.PrizePool)

	// Остаток казны 600, но доля alice считается от зафиксированного пула 1000
	require.NoError(t, team.AuthorizeClaim("alice", "alice", 200, 600))
	team.RecordClaim("alice", 200, 600)

	err := team.AuthorizeClaim("alice", "alice", 101, 400)
	assert.ErrorIs(t, err, ErrClaimExceedsShare)

	require.NoError(t, team.AuthorizeClaim("alice", "alice", 100, 400))
	assert.ErrorIs(t, team.AuthorizeClaim("captain", "captain", 1, 400), ErrClaimExceedsShare)
}

func TestDistribution_MaxClaimableLargePool(t *testing.T) {
	d := &Distribution{
		Shares:  []Share{{MemberID: "captain", Percentage: 30}, {MemberID: "alice", Percentage: 70}},
		Claimed: map[string]int64{},
	}

	for _, pool := range []int64{0, 99, 1001, math.MaxInt64 / 3, math.MaxInt64} {
		for _, share := range d.Shares {
			want := new(big.Int).Mul(big.NewInt(pool), big.NewInt(int64(share.Percentage)))
			want.Div(want, big.NewInt(100))

			got, ok := d.MaxClaimable(share.MemberID, pool)
			require.True(t, ok)
			assert.Equal(t, want.Int64(), got, "pool %d, pct %d", pool, share.Percentage)
		}
	}
}
