package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
)

var errReminderNotFound = domain.NewNotFoundError("Reminder tidak ditemukan")

type ReminderService struct {
	reminderRepo ports.ReminderRepository
	motorcycles  *MotorcycleService
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewReminderService(
	reminderRepo ports.ReminderRepository,
	motorcycles *MotorcycleService,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		motorcycles:  motorcycles,
		logger:       logger,
		validate:     validate,
	}
}

// RescheduleKmReminder replaces the motorcycle's open km reminders with a
// single one due one service interval after postedKm. Completed km reminders
// and reminders of other types are left alone.
func (s *ReminderService) RescheduleKmReminder(ctx context.Context, motorcycleID uuid.UUID, postedKm int, usageType domain.UsageType) error {
	next := domain.NewKmReminder(motorcycleID, postedKm, usageType)

	created, err := s.reminderRepo.ReplaceOpenKmReminder(ctx, next)
	if err != nil {
		return domain.NewSchedulingError(err)
	}

	s.logger.Info("Km reminder rescheduled", map[string]interface{}{
		"motorcycle_id": motorcycleID,
		"posted_km":     postedKm,
		"usage_type":    usageType,
		"due_km":        *created.DueKm,
	})

	return nil
}

func (s *ReminderService) CreateReminder(ctx context.Context, reminder *domain.Reminder, userID uuid.UUID) (*domain.Reminder, error) {
	if !reminder.Type.Valid() {
		return nil, domain.NewValidationError("Tipe reminder tidak valid")
	}
	if reminder.Type == domain.KmBased && reminder.DueKm == nil {
		return nil, domain.NewValidationError("Due KM wajib diisi untuk reminder berdasarkan KM")
	}
	if reminder.Type == domain.TimeBased && reminder.DueDate == nil {
		return nil, domain.NewValidationError("Due date wajib diisi untuk reminder berdasarkan waktu")
	}
	// dueKm and dueDate are exclusive to their own reminder types.
	if reminder.Type != domain.KmBased {
		reminder.DueKm = nil
	}
	if reminder.Type != domain.TimeBased {
		reminder.DueDate = nil
	}

	if err := s.validate.Struct(reminder); err != nil {
		s.logger.Error("Reminder validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	if _, err := s.motorcycles.GetOwnedMotorcycle(ctx, reminder.MotorcycleID.String(), userID); err != nil {
		return nil, err
	}

	if reminder.ID == uuid.Nil {
		reminder.ID = uuid.New()
	}

	created, err := s.reminderRepo.CreateReminder(ctx, reminder)
	if err != nil {
		s.logger.Error("Failed to create reminder", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": reminder.MotorcycleID,
		})
		return nil, err
	}

	s.logger.Info("Reminder created successfully", map[string]interface{}{
		"reminder_id":   created.ID,
		"motorcycle_id": created.MotorcycleID,
		"type":          created.Type,
	})

	return created, nil
}

func (s *ReminderService) GetReminders(ctx context.Context, filter domain.ReminderFilter) ([]*domain.Reminder, error) {
	reminders, err := s.reminderRepo.GetReminders(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to get reminders", map[string]interface{}{
			"error":   err.Error(),
			"user_id": filter.UserID,
		})
		return nil, err
	}
	return reminders, nil
}

// getOwnedReminder reports a reminder on someone else's motorcycle as missing.
func (s *ReminderService) getOwnedReminder(ctx context.Context, reminderID string, userID uuid.UUID) (*domain.Reminder, error) {
	reminderUUID, err := uuid.Parse(reminderID)
	if err != nil {
		return nil, errReminderNotFound
	}

	reminder, err := s.reminderRepo.GetReminderByID(ctx, reminderUUID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errReminderNotFound
		}
		s.logger.Error("Failed to get reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": reminderID,
		})
		return nil, err
	}

	if _, err := s.motorcycles.GetOwnedMotorcycle(ctx, reminder.MotorcycleID.String(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errReminderNotFound
		}
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) SetCompleted(ctx context.Context, reminderID string, userID uuid.UUID, completed bool) (*domain.Reminder, error) {
	reminder, err := s.getOwnedReminder(ctx, reminderID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.reminderRepo.SetReminderCompleted(ctx, reminder.ID, completed)
	if err != nil {
		s.logger.Error("Failed to update reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": reminderID,
		})
		return nil, err
	}

	s.logger.Info("Reminder updated successfully", map[string]interface{}{
		"reminder_id":  reminderID,
		"is_completed": completed,
	})

	return updated, nil
}

func (s *ReminderService) DeleteReminder(ctx context.Context, reminderID string, userID uuid.UUID) error {
	reminder, err := s.getOwnedReminder(ctx, reminderID, userID)
	if err != nil {
		return err
	}

	if err := s.reminderRepo.DeleteReminder(ctx, reminder.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errReminderNotFound
		}
		s.logger.Error("Failed to delete reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": reminderID,
		})
		return err
	}

	s.logger.Info("Reminder deleted successfully", map[string]interface{}{
		"reminder_id": reminderID,
	})

	return nil
}
