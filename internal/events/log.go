package events

import (
	"context"
	"log/slog"
)

// LogPublisher пишет события в структурированный лог.
// Используется когда NATS не настроен.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher создает новый экземпляр LogPublisher
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish записывает событие в лог
func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, "team event",
		"event_id", event.ID.String(),
		"event_type", event.Type,
		"team_name", event.TeamName,
		"team_uid", event.TeamUID,
		"actor", event.Actor,
		"payload", event.Payload,
	)
	return nil
}

// Close ничего не делает
func (p *LogPublisher) Close() error {
	return nil
}
