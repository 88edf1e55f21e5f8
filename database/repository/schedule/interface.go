// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"agendoai/database"
	"agendoai/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository is the read surface the availability service depends on.
// GetProviderSchedule returns (nil, nil) when the provider has no schedule
// configured; callers must treat that differently from a read failure.
type ScheduleRepository interface {
	GetProviderSchedule(ctx context.Context, providerID string) (*models.ProviderSchedule, error)
	GetBookings(ctx context.Context, providerID, date string) ([]models.Booking, error)
}

type mongoScheduleRepo struct {
	schedules *mongo.Collection
	bookings  *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("agendoai")
	return &mongoScheduleRepo{
		schedules: db.Collection("provider_schedules"),
		bookings:  db.Collection("bookings"),
	}
}
