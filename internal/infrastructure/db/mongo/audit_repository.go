package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itm-space/backend-resources/internal/core/domain"
)

const auditCollection = "user_audit"

// AuditRepository stores user-creation audit records in MongoDB. Identity
// data itself lives in the provider; only the audit trail is local.
type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{collection: db.Collection(auditCollection)}
}

type auditDocument struct {
	Event     string    `bson:"event"`
	UserID    string    `bson:"user_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	Actor     string    `bson:"actor"`
	CreatedAt time.Time `bson:"created_at"`
}

// RecordUserCreated inserts one audit record for a created user.
func (r *AuditRepository) RecordUserCreated(ctx context.Context, entry domain.AuditEntry) error {
	doc := auditDocument{
		Event:     "user_created",
		UserID:    entry.UserID,
		Username:  entry.Username,
		Email:     entry.Email,
		Actor:     entry.Actor,
		CreatedAt: entry.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}
