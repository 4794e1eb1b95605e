package domain

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRecord struct {
	ID           uuid.UUID          `json:"id"`
	MotorcycleID uuid.UUID          `json:"motorcycle_id" validate:"required"`
	UserID       uuid.UUID          `json:"user_id" validate:"required"`
	Date         time.Time          `json:"date" validate:"required"`
	Km           int                `json:"km" validate:"required,min=1,max=10000000"`
	Actions      []string           `json:"actions" validate:"required,min=1,dive,required"`
	Spareparts   []string           `json:"spareparts" validate:"dive,required"`
	Notes        *string            `json:"notes,omitempty"`
	Cost         *int64             `json:"cost,omitempty" validate:"omitempty,min=0"`
	Motorcycle   *MotorcycleSummary `json:"motorcycle,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}
