package events

import (
	"context"
	"encoding/json"
	"time"

	"tripplanner/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// Publisher emits entity lifecycle events. Publishing is fire-and-forget:
// a mutation that already committed never fails because the broker is down.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

type NopPublisher struct{}

func NewNopPublisher() *NopPublisher { return &NopPublisher{} }

func (*NopPublisher) Publish(context.Context, Event) {}
func (*NopPublisher) Close() error                   { return nil }

type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // key by entity id for per-entity ordering
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer error", "message", msg, "args", args)
		}),
	}

	log.Info("Kafka event publisher enabled", "topic", topic, "brokers", brokers)
	return &KafkaPublisher{writer: writer, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to encode event", "entity", event.Entity, "action", event.Action, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Entity + ":" + event.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Entity + "." + event.Action)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Failed to publish event",
			"entity", event.Entity,
			"action", event.Action,
			"id", event.ID,
			"error", err,
		)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
