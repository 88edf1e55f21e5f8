// File: services/availability/availability.go
package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agendoai/config"
	scheduleRepo "agendoai/database/repository/schedule"
	"agendoai/models"
	"agendoai/utils"

	"go.uber.org/zap"
)

// AvailabilityService computes scored, bookable time slots for a provider on
// a given date. It only advises on availability; reserving a slot is the
// booking path's job.
type AvailabilityService interface {
	ComputeAvailableSlots(ctx context.Context, providerID, date string, svc models.Service) (*models.DayAvailability, error)
}

// DefaultAvailabilityService is the concrete implementation.
type DefaultAvailabilityService struct {
	Repo scheduleRepo.ScheduleRepository
	Cfg  config.AvailabilityConfig
}

// NewAvailabilityService wires the service with its repository and explicit
// option set.
func NewAvailabilityService(repo scheduleRepo.ScheduleRepository, cfg config.AvailabilityConfig) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Repo: repo, Cfg: cfg}
}

// ComputeAvailableSlots returns every candidate slot for the provider's
// working window on date, each tagged available or not with a score and
// reason. Callers filter for display as needed. A provider without a
// configured schedule yields a "no_schedule" result, not an error; a date
// outside the provider's working days yields "not_working_day".
func (s *DefaultAvailabilityService) ComputeAvailableSlots(
	ctx context.Context,
	providerID, date string,
	svc models.Service,
) (*models.DayAvailability, error) {
	logger := utils.GetLogger()

	if svc.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	// Schedule and bookings have no ordering dependency, so fetch both at
	// once; validation waits for both.
	var (
		wg          sync.WaitGroup
		schedule    *models.ProviderSchedule
		scheduleErr error
		bookings    []models.Booking
		bookingsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		schedule, scheduleErr = s.Repo.GetProviderSchedule(ctx, providerID)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = s.Repo.GetBookings(ctx, providerID, date)
	}()
	wg.Wait()

	if scheduleErr != nil {
		logger.Error("failed to fetch provider schedule",
			zap.String("providerID", providerID), zap.Error(scheduleErr))
		return nil, fmt.Errorf("failed to fetch provider schedule: %w", scheduleErr)
	}
	if bookingsErr != nil {
		logger.Error("failed to fetch bookings",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(bookingsErr))
		return nil, fmt.Errorf("failed to fetch bookings: %w", bookingsErr)
	}

	result := &models.DayAvailability{
		ProviderID: providerID,
		Date:       date,
		Status:     models.DayStatusOK,
	}

	if schedule == nil {
		result.Status = models.DayStatusNoSchedule
		return result, nil
	}

	// Evaluated once per request: a non-working day yields zero slots
	// regardless of the grid.
	if !schedule.WorksOn(day.Weekday()) {
		result.Status = models.DayStatusNotWorkingDay
		return result, nil
	}

	buffer := svc.BufferTime
	if buffer <= 0 {
		buffer = s.Cfg.DefaultBufferMins
	}

	slots := generateCandidates(schedule, svc.Duration)
	available := 0
	for i := range slots {
		in := checkInput{
			schedule:    schedule,
			bookings:    bookings,
			date:        date,
			start:       slots[i].Start,
			end:         slots[i].End,
			bufferedEnd: slots[i].End + buffer,
		}
		ok, reason := runChecks(in)
		if !ok {
			slots[i].Available = false
			slots[i].Score = 0
			slots[i].Reason = reason
			continue
		}

		score, nearClosing := scoreSlot(schedule, s.Cfg, slots[i].Start, in.bufferedEnd)
		slots[i].Available = true
		slots[i].Score = score
		slots[i].NearClosing = nearClosing
		if nearClosing {
			slots[i].Reason = "available, near closing time"
		} else {
			slots[i].Reason = "available"
		}
		available++
	}
	result.Slots = slots

	logger.Debug("computed availability",
		zap.String("providerID", providerID),
		zap.String("date", date),
		zap.Int("candidates", len(slots)),
		zap.Int("available", available))

	return result, nil
}
