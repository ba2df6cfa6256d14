package memory

import (
	"context"

	"github.com/aidar/team-dao/internal/domain"
)

// treasury накапливает переводы и выплаты транзакции до ее фиксации
type treasury struct {
	store  *Store
	deltas map[string]int64
	claims []*domain.RewardClaim
}

func newTreasury(store *Store) *treasury {
	return &treasury{
		store:  store,
		deltas: make(map[string]int64),
	}
}

// Balance возвращает баланс с учетом незафиксированных переводов транзакции
func (t *treasury) Balance(ctx context.Context, account string) (int64, error) {
	base, err := t.store.Balance(ctx, account)
	if err != nil {
		return 0, err
	}
	return base + t.deltas[account], nil
}

// Transfer откладывает перевод до фиксации транзакции
func (t *treasury) Transfer(ctx context.Context, from, to string, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	balance, err := t.Balance(ctx, from)
	if err != nil {
		return err
	}
	if balance < amount {
		return domain.ErrInsufficientFunds
	}

	t.deltas[from] -= amount
	t.deltas[to] += amount
	return nil
}

// RecordClaim откладывает запись выплаты до фиксации транзакции
func (t *treasury) RecordClaim(ctx context.Context, claim *domain.RewardClaim) error {
	c := *claim
	t.claims = append(t.claims, &c)
	return nil
}
