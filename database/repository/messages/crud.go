package messagesRepo

import (
	"context"
	"fmt"
	"time"

	"innkeeper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store inserts a single transcript row.
func (r *mongoMessageRepo) Store(ctx context.Context, msg models.ConversationMessage) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctxWithTimeout, msg)
	if err != nil {
		return fmt.Errorf("error storing conversation message: %w", err)
	}
	return nil
}

// History fetches up to limit messages for a user, newest first.
func (r *mongoMessageRepo) History(ctx context.Context, userID string, limit int64) ([]models.ConversationMessage, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctxWithTimeout, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching conversation history: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var msgs []models.ConversationMessage
	if err := cursor.All(ctxWithTimeout, &msgs); err != nil {
		return nil, fmt.Errorf("error decoding conversation history: %w", err)
	}
	return msgs, nil
}
