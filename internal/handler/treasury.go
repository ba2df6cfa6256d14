package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/team-dao/internal/domain"
)

// TreasuryHandler обрабатывает эндпоинты казны
type TreasuryHandler struct {
	treasuryService TreasuryService
}

// NewTreasuryHandler создает новый TreasuryHandler
func NewTreasuryHandler(treasuryService TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{
		treasuryService: treasuryService,
	}
}

// FundRequest представляет тело запроса на пополнение казны
type FundRequest struct {
	TeamRef
	Amount int64 `json:"amount"`
}

// ClaimRequest представляет тело запроса на выплату награды
type ClaimRequest struct {
	TeamRef
	Beneficiary string `json:"beneficiary"`
	Amount      int64  `json:"amount"`
}

// BalanceResponse представляет баланс казны
type BalanceResponse struct {
	TeamRef
	Balance int64 `json:"balance"`
}

// ClaimResponse представляет проведенную выплату
type ClaimResponse struct {
	Claim *domain.RewardClaim `json:"claim"`
}

// ClaimsResponse представляет журнал выплат команды
type ClaimsResponse struct {
	Claims []*domain.RewardClaim `json:"claims"`
}

// Fund обрабатывает POST /treasury/fund
func (h *TreasuryHandler) Fund(w http.ResponseWriter, r *http.Request) {
	var req FundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return
	}

	if req.TeamName == "" {
		RespondBadRequest(w, r, "team_name is required")
		return
	}

	balance, err := h.treasuryService.Fund(r.Context(), req.Key(), callerFrom(r), req.Amount)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, BalanceResponse{TeamRef: req.TeamRef, Balance: balance})
}

// Claim обрабатывает POST /treasury/claim
func (h *TreasuryHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return
	}

	if req.TeamName == "" || req.Beneficiary == "" {
		RespondBadRequest(w, r, "team_name and beneficiary are required")
		return
	}

	claim, err := h.treasuryService.Claim(r.Context(), req.Key(), callerFrom(r), req.Beneficiary, req.Amount)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ClaimResponse{Claim: claim})
}

// Balance обрабатывает GET /treasury/balance?team_name=...&team_uid=...
func (h *TreasuryHandler) Balance(w http.ResponseWriter, r *http.Request) {
	key, problem := teamKeyFromQuery(r)
	if problem != "" {
		RespondBadRequest(w, r, problem)
		return
	}

	balance, err := h.treasuryService.Balance(r.Context(), key)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, BalanceResponse{
		TeamRef: TeamRef{TeamName: key.Name, TeamUID: key.UID},
		Balance: balance,
	})
}

// Claims обрабатывает GET /treasury/claims?team_name=...&team_uid=...
func (h *TreasuryHandler) Claims(w http.ResponseWriter, r *http.Request) {
	key, problem := teamKeyFromQuery(r)
	if problem != "" {
		RespondBadRequest(w, r, problem)
		return
	}

	claims, err := h.treasuryService.Claims(r.Context(), key)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ClaimsResponse{Claims: claims})
}
