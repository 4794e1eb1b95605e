package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
)

type ComplaintService struct {
	complaintRepo ports.ComplaintRepository
	motorcycles   *MotorcycleService
	logger        ports.LoggerPort
	validate      *validator.Validate
}

func NewComplaintService(
	complaintRepo ports.ComplaintRepository,
	motorcycles *MotorcycleService,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		motorcycles:   motorcycles,
		logger:        logger,
		validate:      validate,
	}
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	complaint.Description = strings.TrimSpace(complaint.Description)
	if complaint.Description == "" {
		return nil, domain.NewValidationError("Deskripsi keluhan harus diisi")
	}
	if err := s.validate.Struct(complaint); err != nil {
		s.logger.Error("Complaint validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	if _, err := s.motorcycles.GetOwnedMotorcycle(ctx, complaint.MotorcycleID.String(), complaint.UserID); err != nil {
		return nil, err
	}

	complaint.Analysis = AnalyzeComplaint(complaint.Description)
	if complaint.ID == uuid.Nil {
		complaint.ID = uuid.New()
	}

	created, err := s.complaintRepo.CreateComplaint(ctx, complaint)
	if err != nil {
		s.logger.Error("Failed to create complaint", map[string]interface{}{
			"error":         err.Error(),
			"motorcycle_id": complaint.MotorcycleID,
		})
		return nil, err
	}

	s.logger.Info("Complaint analyzed", map[string]interface{}{
		"complaint_id":    created.ID,
		"motorcycle_id":   created.MotorcycleID,
		"symptoms_count":  len(created.Symptoms),
		"recommendations": len(created.Recommendations),
	})

	return created, nil
}

func (s *ComplaintService) GetComplaints(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.Complaint, error) {
	complaints, err := s.complaintRepo.GetComplaintsByUserID(ctx, userID, motorcycleID)
	if err != nil {
		s.logger.Error("Failed to get complaints", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return complaints, nil
}
