package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	GetReminderByID(ctx context.Context, reminderID uuid.UUID) (*domain.Reminder, error)
	GetReminders(ctx context.Context, filter domain.ReminderFilter) ([]*domain.Reminder, error)
	GetOpenRemindersByMotorcycleID(ctx context.Context, motorcycleID uuid.UUID) ([]*domain.Reminder, error)
	SetReminderCompleted(ctx context.Context, reminderID uuid.UUID, completed bool) (*domain.Reminder, error)
	DeleteReminder(ctx context.Context, reminderID uuid.UUID) error
	// ReplaceOpenKmReminder deletes every open km_based reminder of
	// reminder.MotorcycleID and inserts reminder, as one unit serialized per
	// motorcycle.
	ReplaceOpenKmReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
}
