package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LatestChatEnabledBooking returns the most recently created in-progress,
// chat-enabled booking for the (user, expert) pair. More than one such
// booking can exist when a user buys a second service before the first
// session closes; the newest one governs chat access.
func (r *MongoSessionRepo) LatestChatEnabledBooking(ctx context.Context, userID, expertID string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"user_id":      userID,
		"expert_id":    expertID,
		"status":       models.StatusInProgress,
		"chat_enabled": true,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, filter, opts).Decode(&booking); err != nil {
		return nil, fmt.Errorf("no chat-enabled booking for user %s and expert %s: %w", userID, expertID, err)
	}
	return &booking, nil
}

// ActiveSessionsByUser lists the user's in-progress sessions joined with
// service details and the expert's name.
func (r *MongoSessionRepo) ActiveSessionsByUser(ctx context.Context, userID string) ([]models.SessionSummary, error) {
	return r.activeSessions(ctx, bson.M{"user_id": userID}, "expert_id")
}

// ActiveSessionsByExpert lists the expert's in-progress sessions joined with
// service details and the user's name.
func (r *MongoSessionRepo) ActiveSessionsByExpert(ctx context.Context, expertID string) ([]models.SessionSummary, error) {
	return r.activeSessions(ctx, bson.M{"expert_id": expertID}, "user_id")
}

// activeSessions runs the shared listing pipeline. counterpartField names the
// booking field holding the other party's profile ID.
func (r *MongoSessionRepo) activeSessions(ctx context.Context, partyFilter bson.M, counterpartField string) ([]models.SessionSummary, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{
		"status":       models.StatusInProgress,
		"chat_enabled": true,
	}
	for k, v := range partyFilter {
		match[k] = v
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "expert_services",
			"localField":   "service_id",
			"foreignField": "id",
			"as":           "service",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$service", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   counterpartField,
			"foreignField": "id",
			"as":           "counterpart",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$counterpart", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$project", Value: bson.M{
			"id":                   1,
			"created_at":           1,
			"chat_enabled":         1,
			"auto_completion_date": 1,
			"status":               1,
			"service_title":        "$service.title",
			"service_type":         "$service.service_type",
			"counterpart_id":       "$counterpart.id",
			"counterpart_name": bson.M{"$trim": bson.M{"input": bson.M{"$concat": bson.A{
				bson.M{"$ifNull": bson.A{"$counterpart.first_name", ""}},
				" ",
				bson.M{"$ifNull": bson.A{"$counterpart.last_name", ""}},
			}}}},
		}}},
	}

	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.SessionSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode active sessions: %w", err)
	}
	return summaries, nil
}

// CompleteSession closes a booking on behalf of its expert. Eligibility is
// enforced here rather than in the service layer: the booking must belong to
// the expert, still be in_progress, and reference a per-session service type
// (fixed-duration sessions close via the expiry sweep instead). The status
// guard in the update filter makes a concurrent double-completion lose.
func (r *MongoSessionRepo) CompleteSession(ctx context.Context, bookingID, expertID, notes string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if booking.ExpertID != expertID || booking.Status != models.StatusInProgress {
		return false, nil
	}

	var service models.ExpertService
	if err := r.serviceColl.FindOne(ctx, bson.M{"id": booking.ServiceID}).Decode(&service); err != nil {
		return false, fmt.Errorf("failed to fetch service %s: %w", booking.ServiceID, err)
	}
	if _, fixed := models.AutoCompletionAfter(service.ServiceType); fixed {
		return false, nil
	}

	set := bson.M{
		"status":       models.StatusCompleted,
		"chat_enabled": false,
		"updated_at":   time.Now(),
	}
	if notes != "" {
		set["notes"] = notes
	}

	filter := bson.M{"id": bookingID, "expert_id": expertID, "status": models.StatusInProgress}
	result, err := r.bookingColl.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to complete booking %s: %w", bookingID, err)
	}
	return result.ModifiedCount == 1, nil
}

// CompleteExpiredSessions closes every in-progress booking whose
// auto-completion date has passed and returns the number of bookings closed.
func (r *MongoSessionRepo) CompleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(ctx, 15*time.Second)
	defer cancel()

	filter := bson.M{
		"status":               models.StatusInProgress,
		"auto_completion_date": bson.M{"$ne": nil, "$lte": cutoff},
	}
	update := bson.M{"$set": bson.M{
		"status":       models.StatusCompleted,
		"chat_enabled": false,
		"updated_at":   time.Now(),
	}}

	result, err := r.bookingColl.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete expired sessions: %w", err)
	}
	return result.ModifiedCount, nil
}
