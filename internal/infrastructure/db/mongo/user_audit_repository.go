package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

const collectionUserEvents = "user_events"

// UserAuditRepository implements ports.UserAuditLog on an append-only
// MongoDB collection.
type UserAuditRepository struct {
	col *mongo.Collection
}

// NewUserAuditRepository creates a new UserAuditRepository.
func NewUserAuditRepository(db *mongo.Database) *UserAuditRepository {
	return &UserAuditRepository{col: db.Collection(collectionUserEvents)}
}

var _ ports.UserAuditLog = (*UserAuditRepository)(nil)

// Record persists a lifecycle event to the user_events collection.
func (r *UserAuditRepository) Record(ctx context.Context, event domain.UserEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	doc := bson.M{
		"account":        event.Account,
		"action":         string(event.Action),
		"deleted_reason": int(event.DeletedReason),
		"occurred_at":    occurredAt.UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("record user event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup index on the user_events collection.
func (r *UserAuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account", Value: 1}, {Key: "occurred_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("user_events indexes: %w", err)
	}
	return nil
}
