package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"

	"youtube-companion/infrastructure/logger"
)

// NewPubSub returns (nil, nil) without a project so the sink stays off.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	if projectID == "" {
		logger.GetLogger().Info("Pub/Sub project not configured - event publishing disabled")
		return nil, nil
	}
	return pubsub.NewClient(ctx, projectID)
}
