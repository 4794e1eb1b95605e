package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReminderType string

const (
	KmBased        ReminderType = "km_based"
	TimeBased      ReminderType = "time_based"
	ConditionBased ReminderType = "condition_based"
)

func (t ReminderType) Valid() bool {
	switch t {
	case KmBased, TimeBased, ConditionBased:
		return true
	}
	return false
}

type Reminder struct {
	ID           uuid.UUID          `json:"id"`
	MotorcycleID uuid.UUID          `json:"motorcycle_id" validate:"required"`
	Type         ReminderType       `json:"type" validate:"required,oneof=km_based time_based condition_based"`
	DueKm        *int               `json:"due_km,omitempty" validate:"omitempty,min=0,max=10000000"`
	DueDate      *time.Time         `json:"due_date,omitempty"`
	IsCompleted  bool               `json:"is_completed"`
	Description  string             `json:"description" validate:"required,max=255"`
	Motorcycle   *MotorcycleSummary `json:"motorcycle,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// IsOpenKm reports whether the reminder is a target of km rescheduling.
func (r *Reminder) IsOpenKm() bool {
	return r.Type == KmBased && !r.IsCompleted
}

// ReminderFilter narrows reminder listings for one user.
type ReminderFilter struct {
	UserID       uuid.UUID
	MotorcycleID *uuid.UUID
	ActiveOnly   bool
}
