package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/middleware"
)

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// TeamRef идентифицирует команду в теле запроса
type TeamRef struct {
	TeamName string `json:"team_name"`
	TeamUID  uint64 `json:"team_uid"`
}

// Key возвращает ключ команды
func (t TeamRef) Key() domain.TeamKey {
	return domain.TeamKey{Name: t.TeamName, UID: t.TeamUID}
}

// TeamResponse представляет ответ с записью команды
type TeamResponse struct {
	Team *domain.Team `json:"team"`
}

// teamKeyFromQuery читает team_name и team_uid из query параметров
func teamKeyFromQuery(r *http.Request) (domain.TeamKey, string) {
	name := r.URL.Query().Get("team_name")
	if name == "" {
		return domain.TeamKey{}, "team_name query parameter is required"
	}

	uid, err := strconv.ParseUint(r.URL.Query().Get("team_uid"), 10, 64)
	if err != nil {
		return domain.TeamKey{}, "team_uid query parameter must be an unsigned integer"
	}

	return domain.TeamKey{Name: name, UID: uid}, ""
}

// callerFrom возвращает идентификатор вызывающего из JWT
func callerFrom(r *http.Request) string {
	return middleware.GetUserIDFromContext(r.Context())
}
