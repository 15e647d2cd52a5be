package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ebe-N/shopfront/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderPlacedEvent is published after the backend has accepted an order.
type OrderPlacedEvent struct {
	EventID             string             `json:"event_id"`
	OrderTrackingNumber string             `json:"order_tracking_number"`
	SessionID           string             `json:"session_id"`
	TotalPrice          float64            `json:"total_price"`
	TotalQuantity       int                `json:"total_quantity"`
	Items               []domain.OrderItem `json:"items"`
	PlacedAt            time.Time          `json:"placed_at"`
}

// NewOrderPlacedEvent snapshots the purchase into an event payload.
func NewOrderPlacedEvent(sessionID string, purchase *domain.Purchase, trackingNumber string) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventID:             uuid.New().String(),
		OrderTrackingNumber: trackingNumber,
		SessionID:           sessionID,
		TotalPrice:          purchase.Order.TotalPrice,
		TotalQuantity:       purchase.Order.TotalQuantity,
		Items:               purchase.OrderItems,
		PlacedAt:            time.Now(),
	}
}

// Publisher fans order-placed events out to downstream consumers.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error
	Close() error
}

// KafkaPublisher writes order-placed events to a Kafka topic, keyed by
// tracking number so per-order messages stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order placed event failed: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderTrackingNumber),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write order placed event failed: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
