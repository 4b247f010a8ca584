package pubsub

import (
	"context"
	"encoding/json"
	"sync"

	"cloud.google.com/go/pubsub"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/logger"
)

// EventPublisher forwards audit rows to a Pub/Sub topic.
type EventPublisher struct {
	PubSubClient *pubsub.Client
	TopicID      string

	mu    sync.Mutex
	topic *pubsub.Topic
}

// NewEventPublisher returns nil when client is nil, which the event logger
// treats as an absent sink.
func NewEventPublisher(pubSubClient *pubsub.Client, topicID string) repository.IEventSink {
	if pubSubClient == nil {
		return nil
	}
	return &EventPublisher{PubSubClient: pubSubClient, TopicID: topicID}
}

func (p *EventPublisher) Publish(ctx context.Context, event *model.EventLog) error {
	topic, err := p.ensureTopic(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"eventType":   string(event.EventType),
			"eventAction": event.EventAction,
			"status":      string(event.Status),
		},
	}
	serverID, err := topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return err
	}
	logger.WithContext(ctx).WithField("serverId", serverID).Debug("Event published")
	return nil
}

// ensureTopic creates the topic on first use if it doesn't exist.
func (p *EventPublisher) ensureTopic(ctx context.Context) (*pubsub.Topic, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.topic != nil {
		return p.topic, nil
	}
	topic := p.PubSubClient.Topic(p.TopicID)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.GetLogger().WithField("topic", p.TopicID).Info("Topic doesn't exist - creating it")
		if topic, err = p.PubSubClient.CreateTopic(ctx, p.TopicID); err != nil {
			return nil, err
		}
	}
	p.topic = topic
	return topic, nil
}

// Stop flushes pending messages.
func (p *EventPublisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.topic != nil {
		p.topic.Stop()
	}
}
