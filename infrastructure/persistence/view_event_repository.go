package persistence

import (
	"context"
	"time"

	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ViewEventRepository logs playback events to Mongo. The client may be nil
// (Mongo unavailable); operations then degrade to no-ops.
type ViewEventRepository struct {
	client *mongo.Client
}

func NewViewEventRepository(client *mongo.Client) repository.IViewEventLog {
	return &ViewEventRepository{client: client}
}

func (r *ViewEventRepository) Record(ctx context.Context, event model.ViewEvent) error {
	if r.client == nil {
		logger.GetLogger().Debug("Mongo client is nil - skipping view event")
		return nil
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	collection := r.client.Database("clipstream").Collection("view_events")
	if _, err := collection.InsertOne(ctx, event); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting view event")
		return err
	}
	return nil
}

func (r *ViewEventRepository) CountForVideo(ctx context.Context, videoID string) (int64, error) {
	if r.client == nil {
		return 0, nil
	}
	collection := r.client.Database("clipstream").Collection("view_events")
	return collection.CountDocuments(ctx, bson.D{{Key: "video_id", Value: videoID}})
}
