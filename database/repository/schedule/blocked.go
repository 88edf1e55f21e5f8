// File: database/repository/schedule/blocked.go
package scheduleRepo

import (
	"context"
	"fmt"

	"agendoai/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScheduleManager is the provider-facing write surface: schedule setup and
// blocked-interval maintenance. Kept separate from ScheduleRepository so the
// availability computation depends on reads only.
type ScheduleManager interface {
	UpsertProviderSchedule(ctx context.Context, schedule models.ProviderSchedule) error
	AddBlockedInterval(ctx context.Context, providerID string, block models.BlockedInterval) (string, error)
	RemoveBlockedInterval(ctx context.Context, providerID, blockID string) error
}

// NewMongoScheduleManager constructs a MongoDB ScheduleManager over the same
// collections as the read repository.
func NewMongoScheduleManager() ScheduleManager {
	return NewMongoScheduleRepo().(*mongoScheduleRepo)
}

func (repo *mongoScheduleRepo) UpsertProviderSchedule(ctx context.Context, schedule models.ProviderSchedule) error {
	if schedule.Start >= schedule.End {
		return fmt.Errorf("invalid schedule: start must be before end")
	}
	if schedule.SlotInterval <= 0 {
		return fmt.Errorf("invalid schedule: slot interval must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"providerId": schedule.ProviderID}
	update := bson.M{"$set": schedule}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.schedules.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert provider schedule: %w", err)
	}
	return nil
}

func (repo *mongoScheduleRepo) AddBlockedInterval(ctx context.Context, providerID string, block models.BlockedInterval) (string, error) {
	if block.Start >= block.End {
		return "", fmt.Errorf("invalid blocked interval: start must be before end")
	}
	block.ID = uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	update := bson.M{"$push": bson.M{"blockedSlots": block}}

	res, err := repo.schedules.UpdateOne(ctx, filter, update)
	if err != nil {
		return "", fmt.Errorf("failed to add blocked interval: %w", err)
	}
	if res.MatchedCount == 0 {
		return "", fmt.Errorf("no schedule configured for provider %s", providerID)
	}
	return block.ID, nil
}

func (repo *mongoScheduleRepo) RemoveBlockedInterval(ctx context.Context, providerID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	update := bson.M{"$pull": bson.M{"blockedSlots": bson.M{"id": blockID}}}

	res, err := repo.schedules.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove blocked interval: %w", err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("blocked interval %s not found for provider %s", blockID, providerID)
	}
	return nil
}
