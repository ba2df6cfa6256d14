package repository

import (
	"context"

	"github.com/aidar/team-dao/internal/domain"
)

// Ledger определяет примитив перевода средств между счетами
type Ledger interface {
	// Balance возвращает баланс счета (0 для неизвестного счета)
	Balance(ctx context.Context, account string) (int64, error)

	// Transfer атомарно переводит amount со счета from на счет to.
	// Возвращает domain.ErrInsufficientFunds если средств недостаточно.
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// Treasury объединяет ledger и журнал выплат в пределах одной транзакции команды
type Treasury interface {
	Ledger

	// RecordClaim сохраняет выплату награды для аудита
	RecordClaim(ctx context.Context, claim *domain.RewardClaim) error
}

// UpdateFunc применяет переход состояния к записи команды.
// Если функция вернула ошибку, ни запись, ни переводы, ни выплаты не сохраняются.
type UpdateFunc func(ctx context.Context, team *domain.Team, treasury Treasury) error

// TeamRepository определяет методы для работы с записями команд
type TeamRepository interface {
	// Create создает новую команду
	Create(ctx context.Context, team *domain.Team) error

	// GetByKey получает команду по ключу (name, uid)
	GetByKey(ctx context.Context, key domain.TeamKey) (*domain.Team, error)

	// Update загружает команду под эксклюзивной блокировкой, применяет fn и сохраняет результат.
	// Команда с флагом Disbanded удаляется.
	Update(ctx context.Context, key domain.TeamKey, fn UpdateFunc) (*domain.Team, error)

	// ListClaims возвращает выплаты команды в порядке проведения
	ListClaims(ctx context.Context, key domain.TeamKey) ([]*domain.RewardClaim, error)
}

// AccountRepository определяет операции со счетами вне транзакции команды
type AccountRepository interface {
	Ledger

	// Credit зачисляет средства на счет извне (пополнение кошелька)
	Credit(ctx context.Context, account string, amount int64) error
}

// StatsRepository определяет агрегаты для статистики
type StatsRepository interface {
	// GetStats возвращает статистику по командам и выплатам
	GetStats(ctx context.Context) (*domain.Stats, error)
}
