package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSConfig содержит параметры подключения к NATS
type NATSConfig struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
}

// NATSPublisher публикует события в NATS на subject <prefix>.team.<type>
type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
}

// NewNATSPublisher подключается к NATS и создает публикатор
func NewNATSPublisher(cfg NATSConfig, logger *slog.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("team-dao"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Error("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			logger.Error("NATS error", "error", err)
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &NATSPublisher{nc: nc, prefix: cfg.SubjectPrefix}, nil
}

// Publish отправляет событие
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := encodeMessage(p.prefix, event)
	if err != nil {
		return err
	}

	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Subject, err)
	}
	return nil
}

// Close дожидается отправки буферизованных сообщений и закрывает соединение
func (p *NATSPublisher) Close() error {
	return p.nc.Drain()
}

// Subject возвращает subject для типа события
func Subject(prefix, eventType string) string {
	return fmt.Sprintf("%s.team.%s", prefix, eventType)
}

func encodeMessage(prefix string, event Event) (*nats.Msg, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}

	return &nats.Msg{
		Subject: Subject(prefix, event.Type),
		Data:    data,
		Header: nats.Header{
			"Event-Type": []string{event.Type},
			"Event-ID":   []string{event.ID.String()},
			"Team-Name":  []string{event.TeamName},
			"Team-UID":   []string{strconv.FormatUint(event.TeamUID, 10)},
		},
	}, nil
}
