package domain

import "time"

// TournamentPhase представляет состояние участия команды в турнире
type TournamentPhase string

// Состояния участия в турнире
const (
	TournamentNone    TournamentPhase = "NONE"    // Команда свободна
	TournamentPending TournamentPhase = "PENDING" // Турнир предложен, идет голосование
	TournamentActive  TournamentPhase = "ACTIVE"  // Большинство одобрило участие
)

// Tournament представляет участие команды в турнире и связанные голосования
type Tournament struct {
	Phase    TournamentPhase `json:"phase"`
	ID       string          `json:"tournament_id,omitempty"`
	EntryFee int64           `json:"entry_fee,omitempty"`
	Vote     *VoteSession    `json:"vote,omitempty"`      // Голосование за участие
	ExitVote *VoteSession    `json:"exit_vote,omitempty"` // Голосование за выход
}

// IsLocked возвращает true пока турнир ожидает решения или активен
func (t Tournament) IsLocked() bool {
	return t.Phase == TournamentPending || t.Phase == TournamentActive
}

// ActiveID возвращает идентификатор активного турнира или пустую строку
func (t Tournament) ActiveID() string {
	if t.Phase != TournamentActive {
		return ""
	}
	return t.ID
}

// InitTournament предлагает турнир и открывает голосование за участие
func (t *Team) InitTournament(caller, tournamentID string, entryFee int64, now time.Time) error {
	if err := t.requireCaptain(caller); err != nil {
		return err
	}
	if t.Tournament.IsLocked() {
		return ErrAlreadyActiveTournament
	}

	t.Tournament = Tournament{
		Phase:    TournamentPending,
		ID:       tournamentID,
		EntryFee: entryFee,
		Vote:     OpenVoteSession(VoteKindTournament, t.Size(), now),
	}
	return nil
}

// VoteForTournament учитывает голос за участие; при большинстве турнир становится активным
func (t *Team) VoteForTournament(caller string, choice Choice, now time.Time) (Outcome, error) {
	if t.Tournament.Phase == TournamentNone || t.Tournament.Vote == nil {
		return OutcomePending, ErrNoActiveTournament
	}

	outcome, err := t.Tournament.Vote.Cast(caller, choice, t.IsMember, now)
	if err != nil {
		return OutcomePending, err
	}

	if outcome == OutcomeResolved {
		t.Tournament.Phase = TournamentActive
		t.Tournament.ExitVote = nil
	}
	return outcome, nil
}

// VoteToLeaveTournament учитывает голос за выход из активного турнира.
// Сессия выхода открывается первым голосом; при большинстве турнир сбрасывается.
func (t *Team) VoteToLeaveTournament(caller string, choice Choice, now time.Time) (Outcome, error) {
	if t.Tournament.Phase != TournamentActive {
		return OutcomePending, ErrNoActiveTournament
	}

	if t.Tournament.ExitVote == nil {
		if !t.IsMember(caller) {
			return OutcomePending, ErrMemberNotInTeam
		}
		t.Tournament.ExitVote = OpenVoteSession(VoteKindTournamentExit, t.Size(), now)
	}

	outcome, err := t.Tournament.ExitVote.Cast(caller, choice, t.IsMember, now)
	if err != nil {
		return OutcomePending, err
	}

	if outcome == OutcomeResolved {
		t.Tournament = Tournament{Phase: TournamentNone}
		t.CanJoinTournament = false
	}
	return outcome, nil
}
