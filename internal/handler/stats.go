package handler

import "net/http"

// StatsHandler отдает сводку по командам, турнирам и выплатам
type StatsHandler struct {
	stats StatsService
}

// NewStatsHandler создает новый StatsHandler
func NewStatsHandler(stats StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetStats обрабатывает GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.GetStats(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	// Счетчики меняются с каждой транзакцией
	w.Header().Set("Cache-Control", "no-store")
	RespondWithJSON(w, r, http.StatusOK, summary)
}
