package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crmsuite/user-management-api/internal/core/domain"
	"github.com/crmsuite/user-management-api/internal/core/ports"
)

const collectionAudit = "admin_audit"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

// Insert persists an audit entry to the admin_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"user_id":     entry.UserID,
		"action":      string(entry.Action),
		"actor_id":    entry.ActorID,
		"actor_name":  entry.ActorName,
		"timestamp":   entry.Timestamp.UTC(),
		"recorded_at": entry.RecordedAt.UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// FindByUserID returns the entries recorded for a user, oldest first.
func (r *AuditRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.AuditEntry
	for cur.Next(ctx) {
		var doc struct {
			UserID     string    `bson:"user_id"`
			Action     string    `bson:"action"`
			ActorID    string    `bson:"actor_id"`
			ActorName  string    `bson:"actor_name"`
			Timestamp  time.Time `bson:"timestamp"`
			RecordedAt time.Time `bson:"recorded_at"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditEntry{
			UserID:     doc.UserID,
			Action:     domain.AuditAction(doc.Action),
			ActorID:    doc.ActorID,
			ActorName:  doc.ActorName,
			Timestamp:  doc.Timestamp,
			RecordedAt: doc.RecordedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}

	return entries, nil
}
