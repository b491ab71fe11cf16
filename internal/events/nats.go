package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pribylovaa/chirper/internal/config"
)

// NATSPublisher публикует события через core NATS.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher подключается к NATS с автопереподключением.
func NewNATSPublisher(cfg config.NATSConfig, logger *slog.Logger) (*NATSPublisher, error) {
	const op = "events.nats.NewNATSPublisher"

	if logger == nil {
		logger = slog.Default()
	}

	opts := []nats.Option{
		nats.Name("chirper"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats_disconnected", slog.String("err", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats_reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &NATSPublisher{conn: conn, prefix: cfg.SubjectPrefix}, nil
}

// Subject возвращает полный subject для типа события.
func (p *NATSPublisher) Subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}

	return p.prefix + "." + eventType
}

// Publish сериализует событие и отправляет его.
func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	const op = "events.nats.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.conn.Publish(p.Subject(e.Type), data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close сбрасывает буфер и закрывает соединение.
func (p *NATSPublisher) Close() {
	if p.conn == nil {
		return
	}

	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}

var _ Publisher = (*NATSPublisher)(nil)
