package domain

import (
	"fmt"
	"strings"
	"time"
)

// TreasuryAccountPrefix открывает адреса счетов казны; идентификаторы пользователей с ним недопустимы
const TreasuryAccountPrefix = "team:"

// DefaultMaxTeamSize ограничивает состав команды вместе с капитаном
const DefaultMaxTeamSize = 5

// TeamKey представляет составной ключ команды (name, uid)
type TeamKey struct {
	Name string `json:"team_name"`
	UID  uint64 `json:"team_uid"`
}

// String возвращает человекочитаемое представление ключа
func (k TeamKey) String() string {
	return fmt.Sprintf("%s#%d", k.Name, k.UID)
}

// TreasuryAccount возвращает адрес счета казны команды, детерминированный ключом
func (k TeamKey) TreasuryAccount() string {
	return fmt.Sprintf("%s%s:%d", TreasuryAccountPrefix, k.Name, k.UID)
}

// ValidateIdentity отклоняет идентификаторы, совпадающие по форме со счетом казны
func ValidateIdentity(userID string) error {
	if strings.HasPrefix(userID, TreasuryAccountPrefix) {
		return ErrReservedIdentity
	}
	return nil
}

// Team представляет запись команды: состав, турнир, предложение о распределении
type Team struct {
	Key               TeamKey       `json:"key"`
	Captain           string        `json:"captain"`
	Members           []string      `json:"members"` // Без капитана, порядок добавления значим
	Tournament        Tournament    `json:"tournament"`
	Distribution      *Distribution `json:"distribution,omitempty"`
	CanJoinTournament bool          `json:"can_join_tournament"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`

	// Disbanded выставляется когда последний участник покидает команду
	Disbanded bool `json:"-"`
}

// NewTeam создает команду, создатель становится капитаном
func NewTeam(key TeamKey, creator string, now time.Time) *Team {
	return &Team{
		Key:        key,
		Captain:    creator,
		Members:    []string{},
		Tournament: Tournament{Phase: TournamentNone},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Roster возвращает полный состав: капитан первым, затем участники в порядке добавления
func (t *Team) Roster() []string {
	roster := make([]string, 0, len(t.Members)+1)
	roster = append(roster, t.Captain)
	return append(roster, t.Members...)
}

// Size возвращает размер состава вместе с капитаном
func (t *Team) Size() int {
	return len(t.Members) + 1
}

// IsCaptain проверяет, является ли пользователь капитаном
func (t *Team) IsCaptain(userID string) bool {
	return t.Captain == userID
}

// IsMember проверяет, входит ли пользователь в состав (капитан тоже участник)
func (t *Team) IsMember(userID string) bool {
	return t.IsCaptain(userID) || t.memberIndex(userID) >= 0
}

func (t *Team) memberIndex(userID string) int {
	for i, m := range t.Members {
		if m == userID {
			return i
		}
	}
	return -1
}

func (t *Team) requireCaptain(caller string) error {
	if !t.IsCaptain(caller) {
		return ErrNotCaptain
	}
	return nil
}

// AddMember добавляет участника в конец списка
func (t *Team) AddMember(caller, member string, maxSize int) error {
	if err := t.requireCaptain(caller); err != nil {
		return err
	}
	if err := ValidateIdentity(member); err != nil {
		return err
	}
	if t.IsMember(member) {
		return ErrAlreadyMember
	}
	if maxSize > 0 && t.Size() >= maxSize {
		return ErrTeamFull
	}

	t.Members = append(t.Members, member)
	return nil
}

// RemoveMember исключает участника по идентификатору, сохраняя порядок остальных
func (t *Team) RemoveMember(caller, target string) error {
	if err := t.requireCaptain(caller); err != nil {
		return err
	}
	if t.IsCaptain(target) {
		return ErrCannotRemoveCaptain
	}

	idx := t.memberIndex(target)
	if idx < 0 {
		return ErrMemberNotInTeam
	}

	t.Members = append(t.Members[:idx:idx], t.Members[idx+1:]...)
	return nil
}

// TransferCaptain передает роль капитана участнику; прежний капитан занимает его место в списке
func (t *Team) TransferCaptain(caller, newCaptain string) error {
	if err := t.requireCaptain(caller); err != nil {
		return err
	}

	idx := t.memberIndex(newCaptain)
	if idx < 0 {
		return ErrMemberNotInTeam
	}

	t.Members[idx] = t.Captain
	t.Captain = newCaptain
	return nil
}

// Leave выводит вызывающего из состава.
// Капитан может уйти только будучи единственным участником, тогда команда распускается.
func (t *Team) Leave(caller string) error {
	if !t.IsMember(caller) {
		return ErrMemberNotInTeam
	}

	if t.IsCaptain(caller) {
		if len(t.Members) > 0 {
			return ErrCaptainCannotLeave
		}
		t.Disbanded = true
		return nil
	}

	idx := t.memberIndex(caller)
	t.Members = append(t.Members[:idx:idx], t.Members[idx+1:]...)
	return nil
}
