package handler

import (
	"encoding/json"
	"net/http"
)

// TeamHandler обрабатывает эндпоинты команд
type TeamHandler struct {
	teamService TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// MemberRequest представляет тело запроса с командой и участником
type MemberRequest struct {
	TeamRef
	UserID string `json:"user_id"`
}

// LeaveTeamResponse представляет ответ на выход из команды
type LeaveTeamResponse struct {
	Team      *TeamRef `json:"team"`
	Disbanded bool     `json:"disbanded"`
}

// CreateTeam обрабатывает POST /team/create
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRef
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return
	}

	// Валидация запроса
	if req.TeamName == "" {
		RespondBadRequest(w, r, "team_name is required")
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Key(), callerFrom(r))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, TeamResponse{Team: team})
}

// GetTeam обрабатывает GET /team/get?team_name=...&team_uid=...
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	key, problem := teamKeyFromQuery(r)
	if problem != "" {
		RespondBadRequest(w, r, problem)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), key)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TeamResponse{Team: team})
}

// AddMember обрабатывает POST /team/addMember
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMemberRequest(w, r)
	if !ok {
		return
	}

	team, err := h.teamService.AddMember(r.Context(), req.Key(), callerFrom(r), req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TeamResponse{Team: team})
}

// RemoveMember обрабатывает POST /team/removeMember
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMemberRequest(w, r)
	if !ok {
		return
	}

	team, err := h.teamService.RemoveMember(r.Context(), req.Key(), callerFrom(r), req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TeamResponse{Team: team})
}

// TransferCaptain обрабатывает POST /team/transferCaptain
func (h *TeamHandler) TransferCaptain(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMemberRequest(w, r)
	if !ok {
		return
	}

	team, err := h.teamService.TransferCaptain(r.Context(), req.Key(), callerFrom(r), req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TeamResponse{Team: team})
}

// LeaveTeam обрабатывает POST /team/leave
func (h *TeamHandler) LeaveTeam(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTeamRef(w, r)
	if !ok {
		return
	}

	team, err := h.teamService.LeaveTeam(r.Context(), req.Key(), callerFrom(r))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, LeaveTeamResponse{Team: &req, Disbanded: team.Disbanded})
}

func decodeTeamRef(w http.ResponseWriter, r *http.Request) (TeamRef, bool) {
	var req TeamRef
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return req, false
	}
	if req.TeamName == "" {
		RespondBadRequest(w, r, "team_name is required")
		return req, false
	}
	return req, true
}

func decodeMemberRequest(w http.ResponseWriter, r *http.Request) (MemberRequest, bool) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return req, false
	}
	if req.TeamName == "" || req.UserID == "" {
		RespondBadRequest(w, r, "team_name and user_id are required")
		return req, false
	}
	return req, true
}
