package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
)

type ServiceRecordService struct {
	recordRepo  ports.ServiceRecordRepository
	motorcycles *MotorcycleService
	reminders   *ReminderService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
	validate    *validator.Validate
}

func NewServiceRecordService(
	recordRepo ports.ServiceRecordRepository,
	motorcycles *MotorcycleService,
	reminders *ReminderService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	validate *validator.Validate,
) *ServiceRecordService {
	return &ServiceRecordService{
		recordRepo:  recordRepo,
		motorcycles: motorcycles,
		reminders:   reminders,
		logger:      logger,
		metrics:     metrics,
		validate:    validate,
	}
}

// CreateServiceRecord posts a service, raises the motorcycle odometer when the
// posted km is higher, and reschedules the km reminder. A failed reschedule
// is logged and counted; it never fails the posting.
func (s *ServiceRecordService) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	if record.Date.IsZero() || record.Km == 0 || len(record.Actions) == 0 ||
		record.MotorcycleID == uuid.Nil || record.UserID == uuid.Nil {
		return nil, domain.NewValidationError("Field tanggal, KM, tindakan, motor ID, dan user ID wajib diisi")
	}
	if err := s.validate.Struct(record); err != nil {
		s.logger.Error("Service record validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	motorcycle, err := s.motorcycles.GetOwnedMotorcycle(ctx, record.MotorcycleID.String(), record.UserID)
	if err != nil {
		return nil, err
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	created, err := s.recordRepo.CreateServiceRecord(ctx, record)
	if err != nil {
		s.logger.Error("Failed to create service record", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": record.MotorcycleID,
		})
		return nil, err
	}

	if created.Km > motorcycle.CurrentKm {
		s.motorcycles.InvalidateCache(motorcycle.ID)
	}

	if err := s.reminders.RescheduleKmReminder(ctx, motorcycle.ID, created.Km, motorcycle.UsageType); err != nil {
		s.logger.Warn("Failed to reschedule km reminder", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": motorcycle.ID,
			"km":            created.Km,
		})
		s.metrics.RecordSchedulingFailure(string(motorcycle.UsageType))
	}

	s.logger.Info("Service record created successfully", map[string]interface{}{
		"service_record_id": created.ID,
		"motorcycle_id":     created.MotorcycleID,
		"km":                created.Km,
	})

	return created, nil
}

func (s *ServiceRecordService) GetServiceRecords(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.ServiceRecord, error) {
	records, err := s.recordRepo.GetServiceRecordsByUserID(ctx, userID, motorcycleID)
	if err != nil {
		s.logger.Error("Failed to get service records", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return records, nil
}
