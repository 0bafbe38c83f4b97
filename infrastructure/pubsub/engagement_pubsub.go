package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"clipstream/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

// EngagementEvent is the payload fanned out for downstream analytics.
type EngagementEvent struct {
	Type    string    `json:"type"` // video.viewed | video.liked | video.unliked
	VideoID string    `json:"video_id"`
	UserID  string    `json:"user_id"`
	At      time.Time `json:"at"`
}

type IEngagementPublisher interface {
	Publish(ctx context.Context, event EngagementEvent) error
}

// EngagementPublisher publishes engagement events to a Pub/Sub topic.
// A nil client disables publishing (best-effort fan-out only).
type EngagementPublisher struct {
	client *pubsub.Client
	topic  string
}

func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID)
}

func NewEngagementPublisher(client *pubsub.Client, topic string) IEngagementPublisher {
	return &EngagementPublisher{client: client, topic: topic}
}

func (p *EngagementPublisher) Publish(ctx context.Context, event EngagementEvent) error {
	if p.client == nil {
		return nil
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	topic := p.client.Topic(p.topic)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		logger.GetLogger().WithField("topic", p.topic).Info("Topic doesn't exist - creating it")
		if _, err := p.client.CreateTopic(ctx, p.topic); err != nil {
			return err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return err
	}
	logger.GetLogger().WithField("server ID", serverID).Debug("Engagement event published")
	return nil
}
