package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
)

// OutboxRepository persists back-reference appends that exhausted their
// in-process retries. Entries stay in the 'link_outbox' collection until the
// reconciler replays them successfully or confirms the target is gone.
type OutboxRepository struct {
	collection *mongo.Collection
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(db *mongo.Database) *OutboxRepository {
	return &OutboxRepository{
		collection: db.Collection("link_outbox"),
	}
}

// Insert stores a failed link job
func (r *OutboxRepository) Insert(ctx context.Context, job *models.LinkJob) error {
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, job); err != nil {
		return apperrors.NewDatabaseError("error inserting link job", err)
	}
	return nil
}

// ListPending returns up to limit outstanding link jobs, oldest first
func (r *OutboxRepository) ListPending(ctx context.Context, limit int64) ([]*models.LinkJob, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.NewDatabaseError("error listing link jobs", err)
	}
	defer cursor.Close(ctx)

	var jobs []*models.LinkJob
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, apperrors.NewDatabaseError("error decoding link jobs", err)
	}
	return jobs, nil
}

// Delete removes a link job once it has been replayed or abandoned
func (r *OutboxRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperrors.NewDatabaseError("error deleting link job", err)
	}
	return nil
}
