package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type ServiceRecordRepository interface {
	// CreateServiceRecord stores the record and raises the motorcycle's
	// current_km to record.Km if it is higher, atomically.
	CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	GetServiceRecordsByUserID(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.ServiceRecord, error)
	GetRecentServiceRecords(ctx context.Context, motorcycleID uuid.UUID, limit int) ([]*domain.ServiceRecord, error)
}
