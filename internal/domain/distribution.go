package domain

import "time"

// Share представляет долю участника в призе
type Share struct {
	MemberID   string `json:"member_id"`
	Percentage int    `json:"percentage"`
}

// Distribution представляет предложение о распределении приза
type Distribution struct {
	Shares     []Share          `json:"shares"` // Первая доля принадлежит предложившему капитану
	Vote       *VoteSession     `json:"vote"`
	Approved   bool             `json:"approved"`
	ProposedBy string           `json:"proposed_by"`
	ProposedAt time.Time        `json:"proposed_at"`
	PrizePool  int64            `json:"prize_pool"` // Баланс казны при первой выплате
	PoolFixed  bool             `json:"pool_fixed"` // Пул зафиксирован первой выплатой
	Claimed    map[string]int64 `json:"claimed"`    // Выплачено по получателям
}

// Percentages возвращает доли в порядке слотов
func (d *Distribution) Percentages() []int {
	out := make([]int, len(d.Shares))
	for i, s := range d.Shares {
		out[i] = s.Percentage
	}
	return out
}

// ShareOf возвращает процент участника и признак наличия доли
func (d *Distribution) ShareOf(memberID string) (int, bool) {
	for _, s := range d.Shares {
		if s.MemberID == memberID {
			return s.Percentage, true
		}
	}
	return 0, false
}

// VotingResult возвращает результат голосования за распределение
func (t *Team) VotingResult() bool {
	return t.Distribution != nil && t.Distribution.Approved
}

func validatePercentages(percentages []int) error {
	sum := 0
	for _, p := range percentages {
		if p < 0 || p > 100 {
			return ErrInvalidPercentages
		}
		sum += p
	}
	if sum != 100 {
		return ErrInvalidPercentages
	}
	return nil
}

// ProposeDistribution сохраняет предложение о распределении и открывает голосование.
// Доли привязываются к участникам состава на момент предложения: слот 0 капитану,
// далее участники в порядке добавления.
func (t *Team) ProposeDistribution(caller string, percentages []int, now time.Time) error {
	if err := t.requireCaptain(caller); err != nil {
		return err
	}
	if len(percentages) != len(t.Members)+1 {
		return ErrLengthMismatch
	}
	if err := validatePercentages(percentages); err != nil {
		return err
	}

	roster := t.Roster()
	shares := make([]Share, len(percentages))
	for i, p := range percentages {
		shares[i] = Share{MemberID: roster[i], Percentage: p}
	}

	t.Distribution = &Distribution{
		Shares:     shares,
		Vote:       OpenVoteSession(VoteKindDistribution, t.Size(), now),
		ProposedBy: caller,
		ProposedAt: now,
		Claimed:    map[string]int64{},
	}
	t.CanJoinTournament = false
	return nil
}

// VoteForDistribution учитывает голос за предложение; при большинстве оно одобряется
func (t *Team) VoteForDistribution(caller string, choice Choice, now time.Time) (Outcome, error) {
	if t.Distribution == nil || t.Distribution.Vote == nil {
		return OutcomePending, ErrNoProposal
	}

	outcome, err := t.Distribution.Vote.Cast(caller, choice, t.IsMember, now)
	if err != nil {
		return OutcomePending, err
	}

	if outcome == OutcomeResolved {
		t.Distribution.Approved = true
	}
	return outcome, nil
}

// MarkReadyToJoin выставляет флаг готовности к турниру после одобрения распределения
func (t *Team) MarkReadyToJoin(caller string) error {
	if err := t.requireCaptain(caller); err != nil {
		return err
	}
	if !t.VotingResult() {
		return ErrProposalNotApproved
	}

	t.CanJoinTournament = true
	return nil
}
