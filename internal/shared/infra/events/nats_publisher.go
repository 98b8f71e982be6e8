package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	sharedBus "github.com/davicafu/adsflow/internal/shared/infra/platform/bus"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"
)

// natsConn es el subconjunto de *nats.Conn que usa el publisher.
type natsConn interface {
	PublishMsg(msg *nats.Msg) error
	FlushWithContext(ctx context.Context) error
}

// NATSPublisher publica en el subject indicado por destination y espera
// a que el servidor confirme el flush antes de devolver.
type NATSPublisher struct {
	conn natsConn
	log  *zap.Logger
}

func NewNATSPublisher(conn natsConn, log *zap.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, log: log}
}

func (p *NATSPublisher) Publish(ctx context.Context, destination string, event interface{}) error {
	data, err := sharedUtils.MarshalPayload(event)
	if err != nil {
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}

	msg := nats.NewMsg(destination)
	msg.Data = data
	if eventType := sharedBus.EventType(event); eventType != "" {
		msg.Header.Set("Event-Type", eventType)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		p.log.Error("Error publishing to NATS", zap.String("subject", destination), zap.Error(err))
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		p.log.Error("NATS flush failed", zap.String("subject", destination), zap.Error(err))
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}

	p.log.Debug("Event published successfully", zap.String("subject", destination))
	return nil
}

var _ sharedBus.EventBus = (*NATSPublisher)(nil)
