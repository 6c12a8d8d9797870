package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBooking inserts a new booking document.
func (r *MongoSessionRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.bookingColl.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by its ID.
func (r *MongoSessionRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking with id %s not found: %w", bookingID, err)
	}
	return &booking, nil
}

// StartSession moves a booking to in_progress, stamping the auto-completion
// date when one applies, and returns the updated document.
func (r *MongoSessionRepo) StartSession(ctx context.Context, bookingID string, autoCompletionDate *time.Time) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     models.StatusInProgress,
		"updated_at": time.Now(),
	}
	if autoCompletionDate != nil {
		set["auto_completion_date"] = *autoCompletionDate
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.bookingColl.FindOneAndUpdate(ctx, bson.M{"id": bookingID}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		return nil, fmt.Errorf("failed to start session for booking %s: %w", bookingID, err)
	}
	return &booking, nil
}
