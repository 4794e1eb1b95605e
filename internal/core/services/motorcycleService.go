package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
)

const (
	motorcycleCacheTTL  = 15 * time.Minute
	recentServicesLimit = 5
)

var (
	errMotorcycleNotOwned = domain.NewNotFoundError("Motor tidak ditemukan atau bukan milik Anda")
	errKmDecreased        = domain.NewValidationError("KM saat ini tidak boleh lebih kecil dari KM tercatat")
)

type MotorcycleService struct {
	motorcycleRepo    ports.MotorcycleRepository
	serviceRecordRepo ports.ServiceRecordRepository
	reminderRepo      ports.ReminderRepository
	logger            ports.LoggerPort
	validate          *validator.Validate
	cache             ports.CachePort
}

func NewMotorcycleService(
	motorcycleRepo ports.MotorcycleRepository,
	serviceRecordRepo ports.ServiceRecordRepository,
	reminderRepo ports.ReminderRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *MotorcycleService {
	return &MotorcycleService{
		motorcycleRepo:    motorcycleRepo,
		serviceRecordRepo: serviceRecordRepo,
		reminderRepo:      reminderRepo,
		logger:            logger,
		validate:          validate,
		cache:             cache,
	}
}

func motorcycleCacheKey(motorcycleID uuid.UUID) string {
	return fmt.Sprintf("motorcycle:%s", motorcycleID)
}

func (s *MotorcycleService) CreateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error) {
	if err := s.validate.Struct(motorcycle); err != nil {
		s.logger.Error("Motorcycle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	if err := s.ensurePlateFree(ctx, motorcycle.PlateNumber, uuid.Nil); err != nil {
		return nil, err
	}

	if motorcycle.ID == uuid.Nil {
		motorcycle.ID = uuid.New()
	}

	created, err := s.motorcycleRepo.CreateMotorcycle(ctx, motorcycle)
	if err != nil {
		s.logger.Error("Failed to create motorcycle", map[string]interface{}{
			"error":   err.Error(),
			"user_id": motorcycle.UserID,
		})
		return nil, err
	}

	s.logger.Info("Motorcycle created successfully", map[string]interface{}{
		"motorcycle_id": created.ID,
		"user_id":       created.UserID,
	})

	return created, nil
}

func (s *MotorcycleService) ensurePlateFree(ctx context.Context, plateNumber string, self uuid.UUID) error {
	existing, err := s.motorcycleRepo.GetMotorcycleByPlate(ctx, plateNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		s.logger.Warn("Plate number already registered", map[string]interface{}{
			"plate_number": plateNumber,
		})
		return domain.NewConflictError("Nomor plat sudah terdaftar")
	}
	return nil
}

func (s *MotorcycleService) GetMotorcycleByID(ctx context.Context, motorcycleID string) (*domain.Motorcycle, error) {
	motorcycleUUID, err := uuid.Parse(motorcycleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"motorcycle_id": motorcycleID,
			"error":         err.Error(),
		})
		return nil, domain.NewNotFoundError("Motor tidak ditemukan")
	}

	cacheKey := motorcycleCacheKey(motorcycleUUID)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cached domain.Motorcycle
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			s.logger.Debug("Motorcycle found in cache", map[string]interface{}{
				"motorcycle_id": motorcycleID,
			})
			return &cached, nil
		}
	}

	motorcycle, err := s.motorcycleRepo.GetMotorcycleByID(ctx, motorcycleUUID)
	if err != nil {
		s.logger.Error("Failed to get motorcycle", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycleID,
		})
		return nil, err
	}

	data, err := json.Marshal(motorcycle)
	if err != nil {
		s.logger.Warn("Failed to marshal motorcycle for cache", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycleID,
		})
	} else if err := s.cache.Set(cacheKey, data, motorcycleCacheTTL); err != nil {
		s.logger.Warn("Failed to cache motorcycle", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycleID,
		})
	}

	return motorcycle, nil
}

// GetOwnedMotorcycle treats a motorcycle owned by someone else the same as a
// missing one.
func (s *MotorcycleService) GetOwnedMotorcycle(ctx context.Context, motorcycleID string, userID uuid.UUID) (*domain.Motorcycle, error) {
	motorcycle, err := s.GetMotorcycleByID(ctx, motorcycleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errMotorcycleNotOwned
		}
		return nil, err
	}
	if !motorcycle.OwnedBy(userID) {
		s.logger.Warn("Access denied to motorcycle", map[string]interface{}{
			"requester_id":     userID.String(),
			"motorcycle_owner": motorcycle.UserID.String(),
			"motorcycle_id":    motorcycleID,
		})
		return nil, errMotorcycleNotOwned
	}
	return motorcycle, nil
}

func (s *MotorcycleService) GetMotorcyclesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Motorcycle, error) {
	motorcycles, err := s.motorcycleRepo.GetMotorcyclesByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get motorcycles", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved motorcycles for user", map[string]interface{}{
		"user_id":           userID,
		"motorcycles_count": len(motorcycles),
	})

	return motorcycles, nil
}

func (s *MotorcycleService) GetMotorcycleDetail(ctx context.Context, motorcycleID string, userID uuid.UUID) (*domain.MotorcycleDetail, error) {
	motorcycle, err := s.GetOwnedMotorcycle(ctx, motorcycleID, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.serviceRecordRepo.GetRecentServiceRecords(ctx, motorcycle.ID, recentServicesLimit)
	if err != nil {
		s.logger.Error("Failed to get recent service records", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycleID,
		})
		return nil, err
	}

	reminders, err := s.reminderRepo.GetOpenRemindersByMotorcycleID(ctx, motorcycle.ID)
	if err != nil {
		s.logger.Error("Failed to get open reminders", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycleID,
		})
		return nil, err
	}

	return &domain.MotorcycleDetail{
		Motorcycle:     *motorcycle,
		ServiceRecords: records,
		Reminders:      reminders,
	}, nil
}

func (s *MotorcycleService) UpdateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle, userID uuid.UUID) (*domain.Motorcycle, error) {
	existing, err := s.GetOwnedMotorcycle(ctx, motorcycle.ID.String(), userID)
	if err != nil {
		return nil, err
	}
	motorcycle.UserID = existing.UserID

	if err := s.validate.Struct(motorcycle); err != nil {
		s.logger.Error("Motorcycle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	// current_km only moves up through service postings.
	if motorcycle.CurrentKm < existing.CurrentKm {
		s.logger.Warn("Rejected odometer decrease", map[string]interface{}{
			"motorcycle_id": motorcycle.ID,
			"current_km":    existing.CurrentKm,
			"requested_km":  motorcycle.CurrentKm,
		})
		return nil, errKmDecreased
	}

	if motorcycle.PlateNumber != existing.PlateNumber {
		if err := s.ensurePlateFree(ctx, motorcycle.PlateNumber, motorcycle.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.motorcycleRepo.UpdateMotorcycle(ctx, motorcycle)
	if err != nil {
		s.logger.Error("Failed to update motorcycle", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycle.ID,
		})
		return nil, err
	}

	s.InvalidateCache(motorcycle.ID)

	s.logger.Info("Motorcycle updated successfully", map[string]interface{}{
		"motorcycle_id": motorcycle.ID,
	})

	return updated, nil
}

func (s *MotorcycleService) DeleteMotorcycle(ctx context.Context, motorcycleID string, userID uuid.UUID) error {
	motorcycle, err := s.GetOwnedMotorcycle(ctx, motorcycleID, userID)
	if err != nil {
		return err
	}

	if err := s.motorcycleRepo.DeleteMotorcycle(ctx, motorcycle.ID); err != nil {
		s.logger.Error("Failed to delete motorcycle", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycleID,
		})
		return err
	}

	s.InvalidateCache(motorcycle.ID)

	s.logger.Info("Motorcycle deleted successfully", map[string]interface{}{
		"motorcycle_id": motorcycleID,
	})

	return nil
}

func (s *MotorcycleService) InvalidateCache(motorcycleID uuid.UUID) {
	if err := s.cache.Delete(motorcycleCacheKey(motorcycleID)); err != nil {
		s.logger.Warn("Failed to invalidate motorcycle cache", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycleID.String(),
		})
	}
}
