package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/events"
	"github.com/aidar/team-dao/internal/repository"
)

// TreasuryService handles team treasury funding and reward claims
type TreasuryService struct {
	governance
	accounts repository.AccountRepository
}

// NewTreasuryService creates a new TreasuryService
func NewTreasuryService(deps Deps, accounts repository.AccountRepository) *TreasuryService {
	return &TreasuryService{
		governance: newGovernance(deps),
		accounts:   accounts,
	}
}

// Fund moves amount from the caller's account to the team treasury and returns the new balance
func (s *TreasuryService) Fund(ctx context.Context, key domain.TeamKey, caller string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	// Only personal wallets may fund; treasuries move money through claims alone
	if err := domain.ValidateIdentity(caller); err != nil {
		return 0, err
	}

	var balance int64
	_, now, err := s.mutate(ctx, key, func(ctx context.Context, _ *domain.Team, treasury repository.Treasury, _ time.Time) error {
		if err := treasury.Transfer(ctx, caller, key.TreasuryAccount(), amount); err != nil {
			return err
		}

		var err error
		balance, err = treasury.Balance(ctx, key.TreasuryAccount())
		return err
	})
	if err != nil {
		return 0, err
	}

	s.publish(ctx, events.New(events.TypeTreasuryFunded, key, caller, now, map[string]any{
		"amount":  amount,
		"balance": balance,
	}))
	return balance, nil
}

// Claim pays amount from the treasury to the beneficiary.
// The caller must be the beneficiary or the captain, and the amount is bounded by the
// beneficiary's approved share of the prize pool.
func (s *TreasuryService) Claim(ctx context.Context, key domain.TeamKey, caller, beneficiary string, amount int64) (*domain.RewardClaim, error) {
	if err := domain.ValidateIdentity(beneficiary); err != nil {
		return nil, err
	}

	var claim *domain.RewardClaim
	_, _, err := s.mutate(ctx, key, func(ctx context.Context, team *domain.Team, treasury repository.Treasury, now time.Time) error {
		balance, err := treasury.Balance(ctx, key.TreasuryAccount())
		if err != nil {
			return err
		}

		if err := team.AuthorizeClaim(caller, beneficiary, amount, balance); err != nil {
			return err
		}
		if err := treasury.Transfer(ctx, key.TreasuryAccount(), beneficiary, amount); err != nil {
			return err
		}
		team.RecordClaim(beneficiary, amount, balance)

		claim = &domain.RewardClaim{
			ID:          uuid.NewString(),
			Team:        key,
			Beneficiary: beneficiary,
			ClaimedBy:   caller,
			Amount:      amount,
			ClaimedAt:   now,
		}
		return treasury.RecordClaim(ctx, claim)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "reward claimed",
		"team", key.String(),
		"beneficiary", beneficiary,
		"amount", amount,
	)
	s.publish(ctx, events.New(events.TypeRewardClaimed, key, caller, claim.ClaimedAt, map[string]any{
		"claim_id":    claim.ID,
		"beneficiary": beneficiary,
		"amount":      amount,
	}))
	return claim, nil
}

// Balance returns the team treasury balance
func (s *TreasuryService) Balance(ctx context.Context, key domain.TeamKey) (int64, error) {
	if _, err := s.teams.GetByKey(ctx, key); err != nil {
		return 0, err
	}

	balance, err := s.accounts.Balance(ctx, key.TreasuryAccount())
	if err != nil {
		return 0, fmt.Errorf("get treasury balance %s: %w", key, err)
	}
	return balance, nil
}

// Claims lists rewards paid from the team treasury
func (s *TreasuryService) Claims(ctx context.Context, key domain.TeamKey) ([]*domain.RewardClaim, error) {
	return s.teams.ListClaims(ctx, key)
}

// Credit tops up an account from outside the system
func (s *TreasuryService) Credit(ctx context.Context, account string, amount int64) (int64, error) {
	if err := s.accounts.Credit(ctx, account, amount); err != nil {
		return 0, err
	}
	return s.accounts.Balance(ctx, account)
}
