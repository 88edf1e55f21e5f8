// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"agendoai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func (repo *mongoScheduleRepo) GetProviderSchedule(ctx context.Context, providerID string) (*models.ProviderSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var schedule models.ProviderSchedule
	err := repo.schedules.FindOne(ctx, bson.M{"providerId": providerID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// No schedule configured is not a failure; the service maps
			// this to a "no availability configured" result.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider schedule: %w", err)
	}

	if schedule.Start >= schedule.End {
		return nil, fmt.Errorf("malformed schedule for provider %s: start %d >= end %d",
			providerID, schedule.Start, schedule.End)
	}
	if schedule.SlotInterval <= 0 {
		return nil, fmt.Errorf("malformed schedule for provider %s: slot interval %d",
			providerID, schedule.SlotInterval)
	}

	return &schedule, nil
}

func (repo *mongoScheduleRepo) GetBookings(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := repo.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	return bookings, nil
}
