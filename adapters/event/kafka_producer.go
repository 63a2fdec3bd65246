package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/recruai/platform-api/internal/config"
)

const (
	TopicProfileEvents = "profile.events"
	TopicPostEvents    = "post.events"
)

// ProfileEventPayload describes a mutation of an owner's profile data,
// consumed by the analytics pipeline.
type ProfileEventPayload struct {
	EventType  string    `json:"event_type"`
	OwnerID    string    `json:"owner_id"`
	Resource   string    `json:"resource"`
	ItemID     int64     `json:"item_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PostEventPayload struct {
	EventType  string    `json:"event_type"`
	PostID     int64     `json:"post_id"`
	OrgID      int64     `json:"org_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
	PostEventsWriter    *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	postWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPostEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
		PostEventsWriter:    postWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal profile event: %w", err)
	}
	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OwnerID),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishPostEvent(ctx context.Context, payload PostEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal post event: %w", err)
	}
	return c.PostEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", payload.PostID)),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	if c.PostEventsWriter != nil {
		c.PostEventsWriter.Close()
	}
}
