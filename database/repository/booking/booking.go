package bookingRepo

import (
	"context"

	"innkeeper/database"
	"innkeeper/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines persistence operations for hotel bookings.
// The agent owns creation; reschedule and cancel mutate by ID.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
