package handler

import (
	"encoding/json"
	"net/http"
)

// DistributionHandler обрабатывает эндпоинты распределения приза
type DistributionHandler struct {
	distributionService DistributionService
}

// NewDistributionHandler создает новый DistributionHandler
func NewDistributionHandler(distributionService DistributionService) *DistributionHandler {
	return &DistributionHandler{
		distributionService: distributionService,
	}
}

// ProposeRequest представляет тело запроса с долями (слот 0 капитану)
type ProposeRequest struct {
	TeamRef
	Percentages []int `json:"percentages"`
}

// VotingResultResponse представляет результат голосования за распределение
type VotingResultResponse struct {
	Approved bool `json:"approved"`
}

// Propose обрабатывает POST /distribution/propose
func (h *DistributionHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req ProposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return
	}

	if req.TeamName == "" {
		RespondBadRequest(w, r, "team_name is required")
		return
	}

	team, err := h.distributionService.ProposeDistribution(r.Context(), req.Key(), callerFrom(r), req.Percentages)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, TeamResponse{Team: team})
}

// Vote обрабатывает POST /distribution/vote
func (h *DistributionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	req, choice, ok := decodeVoteRequest(w, r)
	if !ok {
		return
	}

	result, err := h.distributionService.VoteForDistribution(r.Context(), req.Key(), callerFrom(r), choice)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// CanJoin обрабатывает POST /distribution/canJoin
func (h *DistributionHandler) CanJoin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTeamRef(w, r)
	if !ok {
		return
	}

	team, err := h.distributionService.MarkReadyToJoin(r.Context(), req.Key(), callerFrom(r))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TeamResponse{Team: team})
}

// Result обрабатывает GET /distribution/result?team_name=...&team_uid=...
func (h *DistributionHandler) Result(w http.ResponseWriter, r *http.Request) {
	key, problem := teamKeyFromQuery(r)
	if problem != "" {
		RespondBadRequest(w, r, problem)
		return
	}

	approved, err := h.distributionService.VotingResult(r.Context(), key)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, VotingResultResponse{Approved: approved})
}
