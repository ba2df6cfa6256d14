// Package memory реализует хранилище команд и счетов в памяти процесса.
// Используется для локального запуска (STORAGE_DRIVER=memory) и в unit-тестах сервисов.
package memory

import (
	"context"
	"sync"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/repository"
)

// Store реализует repository.TeamRepository, repository.AccountRepository и repository.StatsRepository
type Store struct {
	mu       sync.RWMutex
	teams    map[domain.TeamKey]*domain.Team
	claims   []*domain.RewardClaim
	accounts map[string]int64

	// Блокировки на команду: операции над одной командой идут строго по очереди
	locksMu sync.Mutex
	locks   map[domain.TeamKey]*sync.Mutex
}

// Compile-time проверка реализации интерфейсов
var (
	_ repository.TeamRepository    = (*Store)(nil)
	_ repository.AccountRepository = (*Store)(nil)
	_ repository.StatsRepository   = (*Store)(nil)
)

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		teams:    make(map[domain.TeamKey]*domain.Team),
		accounts: make(map[string]int64),
		locks:    make(map[domain.TeamKey]*sync.Mutex),
	}
}

func (s *Store) teamLock(key domain.TeamKey) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Create создает новую команду
func (s *Store) Create(ctx context.Context, team *domain.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.teams[team.Key]; exists {
		return domain.ErrTeamExists
	}
	s.teams[team.Key] = team.Clone()
	return nil
}

// GetByKey получает копию команды по ключу
func (s *Store) GetByKey(ctx context.Context, key domain.TeamKey) (*domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[key]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return team.Clone(), nil
}

// Update применяет fn к рабочей копии команды и сохраняет ее только при успехе
func (s *Store) Update(ctx context.Context, key domain.TeamKey, fn repository.UpdateFunc) (*domain.Team, error) {
	lock := s.teamLock(key)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	working, err := s.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	tx := newTreasury(s)
	if err := fn(ctx, working, tx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyLocked(tx); err != nil {
		return nil, err
	}

	if working.Disbanded {
		delete(s.teams, key)
		return working, nil
	}
	s.teams[key] = working.Clone()
	return working, nil
}

// applyLocked переносит изменения балансов и выплаты транзакции в хранилище.
// Балансы перепроверяются: параллельная транзакция другой команды могла списать средства.
func (s *Store) applyLocked(tx *treasury) error {
	for account, delta := range tx.deltas {
		if s.accounts[account]+delta < 0 {
			return domain.ErrInsufficientFunds
		}
	}
	for account, delta := range tx.deltas {
		s.accounts[account] += delta
	}
	s.claims = append(s.claims, tx.claims...)
	return nil
}

// ListClaims возвращает выплаты команды в порядке проведения
func (s *Store) ListClaims(ctx context.Context, key domain.TeamKey) ([]*domain.RewardClaim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claims := []*domain.RewardClaim{}
	for _, c := range s.claims {
		if c.Team == key {
			claim := *c
			claims = append(claims, &claim)
		}
	}
	return claims, nil
}

// Balance возвращает баланс счета
func (s *Store) Balance(ctx context.Context, account string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accounts[account], nil
}

// Transfer переводит средства между счетами вне транзакции команды
func (s *Store) Transfer(ctx context.Context, from, to string, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accounts[from] < amount {
		return domain.ErrInsufficientFunds
	}
	s.accounts[from] -= amount
	s.accounts[to] += amount
	return nil
}

// Credit зачисляет средства на счет
func (s *Store) Credit(ctx context.Context, account string, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account] += amount
	return nil
}

// GetStats возвращает статистику по командам и выплатам
func (s *Store) GetStats(ctx context.Context) (*domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &domain.Stats{TotalTeams: len(s.teams)}
	for _, team := range s.teams {
		switch team.Tournament.Phase {
		case domain.TournamentPending:
			stats.PendingTournaments++
		case domain.TournamentActive:
			stats.ActiveTournaments++
		}
		if team.VotingResult() {
			stats.ApprovedDistributions++
		}
		if team.CanJoinTournament {
			stats.ReadyTeams++
		}
	}
	for _, c := range s.claims {
		stats.TotalClaims++
		stats.TotalClaimed += c.Amount
	}
	return stats, nil
}
