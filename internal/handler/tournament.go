package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/team-dao/internal/domain"
)

// TournamentHandler обрабатывает эндпоинты турнира
type TournamentHandler struct {
	tournamentService TournamentService
}

// NewTournamentHandler создает новый TournamentHandler
func NewTournamentHandler(tournamentService TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

// InitTournamentRequest представляет тело запроса на предложение турнира
type InitTournamentRequest struct {
	TeamRef
	TournamentID string `json:"tournament_id"`
	EntryFee     int64  `json:"entry_fee"`
}

// VoteRequest представляет тело запроса с голосом
type VoteRequest struct {
	TeamRef
	Vote string `json:"vote"`
}

// InitTournament обрабатывает POST /tournament/init
func (h *TournamentHandler) InitTournament(w http.ResponseWriter, r *http.Request) {
	var req InitTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return
	}

	if req.TeamName == "" || req.TournamentID == "" {
		RespondBadRequest(w, r, "team_name and tournament_id are required")
		return
	}

	team, err := h.tournamentService.InitTournament(r.Context(), req.Key(), callerFrom(r), req.TournamentID, req.EntryFee)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, TeamResponse{Team: team})
}

// Vote обрабатывает POST /tournament/vote
func (h *TournamentHandler) Vote(w http.ResponseWriter, r *http.Request) {
	req, choice, ok := decodeVoteRequest(w, r)
	if !ok {
		return
	}

	result, err := h.tournamentService.VoteForTournament(r.Context(), req.Key(), callerFrom(r), choice)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// Leave обрабатывает POST /tournament/leave
func (h *TournamentHandler) Leave(w http.ResponseWriter, r *http.Request) {
	req, choice, ok := decodeVoteRequest(w, r)
	if !ok {
		return
	}

	result, err := h.tournamentService.LeaveTournament(r.Context(), req.Key(), callerFrom(r), choice)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// decodeVoteRequest разбирает тело с голосом; неизвестный вариант голоса дает INVALID_VOTE
func decodeVoteRequest(w http.ResponseWriter, r *http.Request) (VoteRequest, domain.Choice, bool) {
	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return req, "", false
	}
	if req.TeamName == "" {
		RespondBadRequest(w, r, "team_name is required")
		return req, "", false
	}

	choice, err := domain.ParseChoice(req.Vote)
	if err != nil {
		HandleError(w, r, err)
		return req, "", false
	}
	return req, choice, true
}
