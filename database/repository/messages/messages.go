package messagesRepo

import (
	"context"

	"innkeeper/database"
	"innkeeper/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository stores the per-user conversation transcript.
type MessageRepository interface {
	Store(ctx context.Context, msg models.ConversationMessage) error
	History(ctx context.Context, userID string, limit int64) ([]models.ConversationMessage, error)
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo returns a new MessageRepository instance using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoMessageRepo{
		coll: db.Collection("conversation_messages"),
	}
}
