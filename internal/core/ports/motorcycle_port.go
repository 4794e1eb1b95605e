package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type MotorcycleRepository interface {
	CreateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error)
	GetMotorcycleByID(ctx context.Context, motorcycleID uuid.UUID) (*domain.Motorcycle, error)
	GetMotorcycleByPlate(ctx context.Context, plateNumber string) (*domain.Motorcycle, error)
	GetMotorcyclesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Motorcycle, error)
	UpdateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error)
	DeleteMotorcycle(ctx context.Context, motorcycleID uuid.UUID) error
}
