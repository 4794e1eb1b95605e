package domain

import (
	"time"

	"github.com/google/uuid"
)

type UsageType string

const (
	UsageHarian   UsageType = "harian"
	UsageKomuter  UsageType = "komuter"
	UsageTouring  UsageType = "touring"
	UsageOlahraga UsageType = "olahraga"
	UsageJarang   UsageType = "jarang"
)

type Motorcycle struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Brand       string    `json:"brand" validate:"required,max=100"`
	Model       string    `json:"model" validate:"required,max=100"`
	Variant     *string   `json:"variant,omitempty" validate:"omitempty,max=100"`
	PlateNumber string    `json:"plate_number" validate:"required,max=20"`
	Year        int       `json:"year" validate:"required,min=1900,max=2100"`
	StnkExpiry  time.Time `json:"stnk_expiry" validate:"required"`
	UsageType   UsageType `json:"usage_type" validate:"required,max=50"`
	InitialKm   int       `json:"initial_km" validate:"min=0,max=10000000"`
	CurrentKm   int       `json:"current_km" validate:"gtefield=InitialKm,max=10000000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MotorcycleSummary is the slice of a motorcycle embedded in list responses
// of its children.
type MotorcycleSummary struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	PlateNumber string `json:"plate_number"`
	CurrentKm   int    `json:"current_km"`
}

func (m *Motorcycle) Summary() *MotorcycleSummary {
	return &MotorcycleSummary{
		Brand:       m.Brand,
		Model:       m.Model,
		PlateNumber: m.PlateNumber,
		CurrentKm:   m.CurrentKm,
	}
}

func (m *Motorcycle) OwnedBy(userID uuid.UUID) bool {
	return m.UserID == userID
}

// MotorcycleDetail is a motorcycle with its latest service records and open
// reminders.
type MotorcycleDetail struct {
	Motorcycle
	ServiceRecords []*ServiceRecord `json:"service_records"`
	Reminders      []*Reminder      `json:"reminders"`
}
