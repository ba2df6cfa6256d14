package domain

// Stats представляет агрегированную статистику сервиса
type Stats struct {
	TotalTeams            int   `json:"total_teams"`
	PendingTournaments    int   `json:"pending_tournaments"`
	ActiveTournaments     int   `json:"active_tournaments"`
	ApprovedDistributions int   `json:"approved_distributions"`
	ReadyTeams            int   `json:"ready_teams"`
	TotalClaims           int   `json:"total_claims"`
	TotalClaimed          int64 `json:"total_claimed"`
}
