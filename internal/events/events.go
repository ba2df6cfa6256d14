// Package events публикует события об изменениях состояния команд
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aidar/team-dao/internal/domain"
)

// Типы событий
const (
	TypeTeamCreated          = "team.created"
	TypeMemberAdded          = "team.member_added"
	TypeMemberRemoved        = "team.member_removed"
	TypeCaptainTransferred   = "team.captain_transferred"
	TypeMemberLeft           = "team.member_left"
	TypeTeamDisbanded        = "team.disbanded"
	TypeTournamentProposed   = "tournament.proposed"
	TypeTournamentActivated  = "tournament.activated"
	TypeTournamentLeft       = "tournament.left"
	TypeDistributionProposed = "distribution.proposed"
	TypeDistributionApproved = "distribution.approved"
	TypeReadyToJoin          = "team.ready_to_join"
	TypeTreasuryFunded       = "treasury.funded"
	TypeRewardClaimed        = "treasury.reward_claimed"
)

// Event представляет событие команды
type Event struct {
	ID         uuid.UUID      `json:"event_id"`
	Type       string         `json:"event_type"`
	TeamName   string         `json:"team_name"`
	TeamUID    uint64         `json:"team_uid"`
	Actor      string         `json:"actor"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// New создает событие с новым идентификатором
func New(eventType string, key domain.TeamKey, actor string, at time.Time, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		TeamName:   key.Name,
		TeamUID:    key.UID,
		Actor:      actor,
		OccurredAt: at.UTC(),
		Payload:    payload,
	}
}

// Publisher определяет доставку событий наружу
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
