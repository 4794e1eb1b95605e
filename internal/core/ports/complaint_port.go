package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type ComplaintRepository interface {
	CreateComplaint(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error)
	GetComplaintsByUserID(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.Complaint, error)
}
