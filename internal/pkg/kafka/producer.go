package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"order-service/internal/entities"
	"order-service/pkg/logger"
)

// OrderStatusChangedMessage - тело сообщения в топике смены статуса заказа.
type OrderStatusChangedMessage struct {
	EventID    int64     `json:"event_id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	CourierID  *string   `json:"courier_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(ctx context.Context, log logger.Logger, brokers []string, topic, version string) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return NewProducerFromSync(kafkaLog, producer, topic), nil
}

// NewProducerFromSync оборачивает готовый SyncProducer, в тестах это sarama/mocks.
func NewProducerFromSync(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет события одним вызовом SendMessages. Ключ сообщения -
// id заказа, поэтому события одного заказа попадают в одну партицию по порядку.
func (p *Producer) Publish(ctx context.Context, events []entities.OrderEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(OrderStatusChangedMessage{
			EventID:    event.ID,
			OrderID:    event.OrderID,
			Status:     event.Status.String(),
			CourierID:  event.CourierID,
			OccurredAt: event.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("marshal event %d: %w", event.ID, err)
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(event.OrderID),
			Value: sarama.ByteEncoder(value),
			Headers: []sarama.RecordHeader{
				{Key: []byte("event_id"), Value: []byte(strconv.FormatInt(event.ID, 10))},
			},
		})
	}

	if err := p.producer.SendMessages(messages); err != nil {
		var producerErrs sarama.ProducerErrors
		if errors.As(err, &producerErrs) {
			p.log.Error("failed to publish order events",
				logger.NewField("failed", len(producerErrs)),
				logger.NewField("total", len(messages)),
			)
		}
		return fmt.Errorf("send messages: %w", err)
	}

	p.log.Debug("order events published",
		logger.NewField("count", len(messages)),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
