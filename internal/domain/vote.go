package domain

import (
	"strings"
	"time"
)

// VoteKind определяет решение, к которому относится сессия голосования
type VoteKind string

// Виды сессий голосования
const (
	VoteKindTournament     VoteKind = "TOURNAMENT"      // Участие в турнире
	VoteKindTournamentExit VoteKind = "TOURNAMENT_EXIT" // Выход из турнира
	VoteKindDistribution   VoteKind = "DISTRIBUTION"    // Одобрение распределения приза
)

// Choice представляет вариант голоса
type Choice string

// Варианты голоса
const (
	ChoiceYes Choice = "yes"
	ChoiceNo  Choice = "no"
)

// ParseChoice разбирает вариант голоса без учета регистра
func ParseChoice(s string) (Choice, error) {
	switch Choice(strings.ToLower(strings.TrimSpace(s))) {
	case ChoiceYes:
		return ChoiceYes, nil
	case ChoiceNo:
		return ChoiceNo, nil
	default:
		return "", ErrInvalidVote
	}
}

// Outcome представляет результат учета голоса
type Outcome int

// Результаты учета голоса
const (
	OutcomePending  Outcome = iota // Порог большинства не достигнут или уже был достигнут ранее
	OutcomeResolved                // Этот голос впервые обеспечил строгое большинство
)

// Ballot представляет поданный голос
type Ballot struct {
	Voter  string    `json:"voter"`
	Choice Choice    `json:"choice"`
	CastAt time.Time `json:"cast_at"`
}

// VoteSession представляет сессию голосования за одно решение команды
type VoteSession struct {
	Kind          VoteKind   `json:"kind"`
	EligibleCount int        `json:"eligible_count"` // Размер состава на момент открытия
	Ballots       []Ballot   `json:"ballots"`
	YesCount      int        `json:"yes_count"`
	Resolved      bool       `json:"resolved"`
	OpenedAt      time.Time  `json:"opened_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// OpenVoteSession открывает новую сессию голосования
func OpenVoteSession(kind VoteKind, eligibleCount int, now time.Time) *VoteSession {
	return &VoteSession{
		Kind:          kind,
		EligibleCount: eligibleCount,
		Ballots:       []Ballot{},
		OpenedAt:      now,
	}
}

// HasVoted проверяет, голосовал ли участник в этой сессии
func (s *VoteSession) HasVoted(voter string) bool {
	for _, b := range s.Ballots {
		if b.Voter == voter {
			return true
		}
	}
	return false
}

// Voters возвращает проголосовавших участников в порядке подачи голосов
func (s *VoteSession) Voters() []string {
	voters := make([]string, len(s.Ballots))
	for i, b := range s.Ballots {
		voters[i] = b.Voter
	}
	return voters
}

// HasMajority проверяет строгое большинство голосов "за": ничья не проходит
func (s *VoteSession) HasMajority() bool {
	return s.YesCount*2 > s.EligibleCount
}

// Cast учитывает голос участника.
// OutcomeResolved возвращается ровно один раз за жизнь сессии; голоса после этого
// принимаются, но побочный эффект повторно не срабатывает.
func (s *VoteSession) Cast(voter string, choice Choice, isEligible func(string) bool, now time.Time) (Outcome, error) {
	if choice != ChoiceYes && choice != ChoiceNo {
		return OutcomePending, ErrInvalidVote
	}
	if s.HasVoted(voter) {
		return OutcomePending, ErrAlreadyVoted
	}
	if !isEligible(voter) {
		return OutcomePending, ErrMemberNotInTeam
	}

	s.Ballots = append(s.Ballots, Ballot{Voter: voter, Choice: choice, CastAt: now})
	if choice == ChoiceYes {
		s.YesCount++
	}

	if !s.Resolved && s.HasMajority() {
		s.Resolved = true
		resolvedAt := now
		s.ResolvedAt = &resolvedAt
		return OutcomeResolved, nil
	}

	return OutcomePending, nil
}
