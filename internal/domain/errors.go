package domain

import "errors"

// Доменные ошибки управления командой и казной
var (
	// ErrTeamExists возвращается при попытке создать команду с занятым ключом (name, uid)
	ErrTeamExists = errors.New("team already exists")

	// ErrTeamNotFound возвращается когда команда не найдена
	ErrTeamNotFound = errors.New("team not found")

	// ErrNotCaptain возвращается когда операцию капитана вызывает не капитан
	ErrNotCaptain = errors.New("only captain can call this function")

	// ErrMemberNotInTeam возвращается когда вызывающий или цель не состоит в команде
	ErrMemberNotInTeam = errors.New("member is not in the team")

	// ErrAlreadyMember возвращается при повторном добавлении участника
	ErrAlreadyMember = errors.New("member is already in the team")

	// ErrTeamFull возвращается когда состав команды достиг максимального размера
	ErrTeamFull = errors.New("team is full")

	// ErrCannotRemoveCaptain возвращается при попытке исключить капитана
	ErrCannotRemoveCaptain = errors.New("captain cannot be removed from the team")

	// ErrCaptainCannotLeave возвращается когда капитан покидает команду не передав роль
	ErrCaptainCannotLeave = errors.New("captain cannot leave the team unless the captain role is transferred")

	// ErrAlreadyVoted возвращается при повторном голосе в открытой сессии
	ErrAlreadyVoted = errors.New("member has already voted")

	// ErrInvalidVote возвращается для неизвестного варианта голоса
	ErrInvalidVote = errors.New("invalid vote")

	// ErrAlreadyActiveTournament возвращается пока турнир ожидает решения или активен
	ErrAlreadyActiveTournament = errors.New("the team has an active tournament, leave the current one first")

	// ErrNoActiveTournament возвращается когда у команды нет турнира для голосования
	ErrNoActiveTournament = errors.New("the team has no active tournament")

	// ErrNoProposal возвращается при голосовании без предложения о распределении
	ErrNoProposal = errors.New("no distribution proposal")

	// ErrProposalNotApproved возвращается пока предложение о распределении не одобрено
	ErrProposalNotApproved = errors.New("distribution proposal is not approved")

	// ErrLengthMismatch возвращается когда число долей не совпадает с размером состава
	ErrLengthMismatch = errors.New("percentages count does not match team size")

	// ErrInvalidPercentages возвращается когда доли вне диапазона или их сумма не равна 100
	ErrInvalidPercentages = errors.New("percentages must be within 0..100 and sum to 100")

	// ErrClaimNotAuthorized возвращается когда награду запрашивает не получатель и не капитан
	ErrClaimNotAuthorized = errors.New("caller is neither the beneficiary nor the captain")

	// ErrInsufficientFunds возвращается когда на счете недостаточно средств
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrClaimExceedsShare возвращается когда запрошенная сумма превышает одобренную долю
	ErrClaimExceedsShare = errors.New("claim exceeds approved share")

	// ErrInvalidAmount возвращается для неположительной суммы
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrReservedIdentity возвращается для идентификатора из пространства счетов казны
	ErrReservedIdentity = errors.New("identity uses the reserved treasury account prefix")

	// ErrTreasuryNotEmpty возвращается при роспуске команды с ненулевой казной
	ErrTreasuryNotEmpty = errors.New("team treasury must be empty before the team is disbanded")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeTeamExists              ErrorCode = "TEAM_EXISTS"
	CodeNotFound                ErrorCode = "NOT_FOUND"
	CodeNotCaptain              ErrorCode = "NOT_CAPTAIN"
	CodeNotMember               ErrorCode = "NOT_MEMBER"
	CodeAlreadyMember           ErrorCode = "ALREADY_MEMBER"
	CodeTeamFull                ErrorCode = "TEAM_FULL"
	CodeCannotRemoveCaptain     ErrorCode = "CANNOT_REMOVE_CAPTAIN"
	CodeCaptainCannotLeave      ErrorCode = "CAPTAIN_CANNOT_LEAVE"
	CodeAlreadyVoted            ErrorCode = "ALREADY_VOTED"
	CodeInvalidVote             ErrorCode = "INVALID_VOTE"
	CodeAlreadyActiveTournament ErrorCode = "ALREADY_ACTIVE_TOURNAMENT"
	CodeNoActiveTournament      ErrorCode = "NO_ACTIVE_TOURNAMENT"
	CodeNoProposal              ErrorCode = "NO_PROPOSAL"
	CodeProposalNotApproved     ErrorCode = "PROPOSAL_NOT_APPROVED"
	CodeLengthMismatch          ErrorCode = "LENGTH_MISMATCH"
	CodeInvalidPercentages      ErrorCode = "INVALID_PERCENTAGES"
	CodeUnauthorized            ErrorCode = "UNAUTHORIZED"
	CodeInsufficientFunds       ErrorCode = "INSUFFICIENT_FUNDS"
	CodeClaimExceedsShare       ErrorCode = "CLAIM_EXCEEDS_SHARE"
	CodeInvalidAmount           ErrorCode = "INVALID_AMOUNT"
	CodeReservedIdentity        ErrorCode = "RESERVED_IDENTITY"
	CodeTreasuryNotEmpty        ErrorCode = "TREASURY_NOT_EMPTY"
	CodeInternal                ErrorCode = "INTERNAL_ERROR"
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrTeamExists):
		return CodeTeamExists
	case errors.Is(err, ErrTeamNotFound):
		return CodeNotFound
	case errors.Is(err, ErrNotCaptain):
		return CodeNotCaptain
	case errors.Is(err, ErrMemberNotInTeam):
		return CodeNotMember
	case errors.Is(err, ErrAlreadyMember):
		return CodeAlreadyMember
	case errors.Is(err, ErrTeamFull):
		return CodeTeamFull
	case errors.Is(err, ErrCannotRemoveCaptain):
		return CodeCannotRemoveCaptain
	case errors.Is(err, ErrCaptainCannotLeave):
		return CodeCaptainCannotLeave
	case errors.Is(err, ErrAlreadyVoted):
		return CodeAlreadyVoted
	case errors.Is(err, ErrInvalidVote):
		return CodeInvalidVote
	case errors.Is(err, ErrAlreadyActiveTournament):
		return CodeAlreadyActiveTournament
	case errors.Is(err, ErrNoActiveTournament):
		return CodeNoActiveTournament
	case errors.Is(err, ErrNoProposal):
		return CodeNoProposal
	case errors.Is(err, ErrProposalNotApproved):
		return CodeProposalNotApproved
	case errors.Is(err, ErrLengthMismatch):
		return CodeLengthMismatch
	case errors.Is(err, ErrInvalidPercentages):
		return CodeInvalidPercentages
	case errors.Is(err, ErrClaimNotAuthorized), errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrClaimExceedsShare):
		return CodeClaimExceedsShare
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrReservedIdentity):
		return CodeReservedIdentity
	case errors.Is(err, ErrTreasuryNotEmpty):
		return CodeTreasuryNotEmpty
	default:
		return CodeInternal
	}
}
