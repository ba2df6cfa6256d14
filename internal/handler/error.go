package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/team-dao/internal/domain"
)

// CodeBadRequest код ошибки валидации запроса
const CodeBadRequest = "BAD_REQUEST"

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// RespondBadRequest отправляет ответ 400 с кодом BAD_REQUEST
func RespondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	RespondWithError(w, r, http.StatusBadRequest, CodeBadRequest, message)
}

// statusByCode задает HTTP статус для кода доменной ошибки
var statusByCode = map[domain.ErrorCode]int{
	domain.CodeTeamExists:              http.StatusBadRequest,
	domain.CodeNotFound:                http.StatusNotFound,
	domain.CodeNotCaptain:              http.StatusForbidden,
	domain.CodeNotMember:               http.StatusForbidden,
	domain.CodeAlreadyMember:           http.StatusConflict,
	domain.CodeTeamFull:                http.StatusConflict,
	domain.CodeCannotRemoveCaptain:     http.StatusConflict,
	domain.CodeCaptainCannotLeave:      http.StatusConflict,
	domain.CodeAlreadyVoted:            http.StatusConflict,
	domain.CodeInvalidVote:             http.StatusBadRequest,
	domain.CodeAlreadyActiveTournament: http.StatusConflict,
	domain.CodeNoActiveTournament:      http.StatusConflict,
	domain.CodeNoProposal:              http.StatusConflict,
	domain.CodeProposalNotApproved:     http.StatusConflict,
	domain.CodeLengthMismatch:          http.StatusBadRequest,
	domain.CodeInvalidPercentages:      http.StatusBadRequest,
	domain.CodeUnauthorized:            http.StatusUnauthorized,
	domain.CodeInsufficientFunds:       http.StatusConflict,
	domain.CodeClaimExceedsShare:       http.StatusConflict,
	domain.CodeInvalidAmount:           http.StatusBadRequest,
	domain.CodeReservedIdentity:        http.StatusBadRequest,
	domain.CodeTreasuryNotEmpty:        http.StatusConflict,
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.MapErrorToCode(err)

	status, ok := statusByCode[code]
	if !ok {
		RespondWithError(w, r, http.StatusInternalServerError, string(domain.CodeInternal), "internal server error")
		return
	}

	// Выплату запросил аутентифицированный пользователь без права на нее
	if errors.Is(err, domain.ErrClaimNotAuthorized) {
		status = http.StatusForbidden
	}

	RespondWithError(w, r, status, string(code), err.Error())
}
