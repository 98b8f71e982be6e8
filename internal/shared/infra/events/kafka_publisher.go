package events

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/segmentio/kafka-go"

	sharedBus "github.com/davicafu/adsflow/internal/shared/infra/platform/bus"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"
)

// messageWriter es el subconjunto de *kafka.Writer que usa el publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher publica cada evento en el topic indicado por destination.
// El writer no debe tener Topic fijo.
type KafkaPublisher struct {
	writer messageWriter
	log    *zap.Logger
}

func NewKafkaPublisher(writer messageWriter, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, log: log}
}

// NewKafkaWriter construye un writer sin topic fijo con balanceo por clave.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, destination string, event interface{}) error {
	data, err := sharedUtils.MarshalPayload(event)
	if err != nil {
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}

	msg := kafka.Message{
		Topic: destination,
		Value: data,
	}
	if key := sharedBus.PartitionKey(event); key != "" {
		msg.Key = []byte(key)
	}
	if eventType := sharedBus.EventType(event); eventType != "" {
		msg.Headers = []kafka.Header{{Key: "event-type", Value: []byte(eventType)}}
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Error publishing to Kafka", zap.String("topic", destination), zap.Error(err))
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}

	p.log.Debug("Event published successfully", zap.String("topic", destination), zap.ByteString("key", msg.Key))
	return nil
}

// Verificación estática
var _ sharedBus.EventBus = (*KafkaPublisher)(nil)
