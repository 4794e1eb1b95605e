package domain

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityHigh   Priority = "tinggi"
	PriorityMedium Priority = "sedang"
	PriorityLow    Priority = "rendah"
)

type Recommendation struct {
	Action        string   `json:"action"`
	Priority      Priority `json:"priority"`
	EstimatedCost string   `json:"estimated_cost"`
}

// Analysis is the canned diagnostic answer for a complaint description.
type Analysis struct {
	Symptoms        []string          `json:"symptoms"`
	Diagnosis       string            `json:"diagnosis"`
	Recommendations []*Recommendation `json:"recommendations"`
}

type Complaint struct {
	ID           uuid.UUID          `json:"id"`
	MotorcycleID uuid.UUID          `json:"motorcycle_id" validate:"required"`
	UserID       uuid.UUID          `json:"user_id" validate:"required"`
	Description  string             `json:"description" validate:"required,max=2000"`
	Analysis                        // symptoms, diagnosis, recommendations
	Motorcycle   *MotorcycleSummary `json:"motorcycle,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}
