package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

func (s *Store) CreateComplaint(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.motorcycles[complaint.MotorcycleID]; !ok {
		return nil, domain.NewNotFoundError("Motor tidak ditemukan")
	}
	if complaint.ID == uuid.Nil {
		complaint.ID = uuid.New()
	}
	complaint.CreatedAt = s.stamp(complaint.ID)
	complaint.Motorcycle = s.summary(complaint.MotorcycleID)

	stored := *complaint
	s.complaints[complaint.ID] = &stored
	return complaint, nil
}

func (s *Store) GetComplaintsByUserID(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	complaints := []*domain.Complaint{}
	for _, c := range s.complaints {
		if c.UserID != userID {
			continue
		}
		if motorcycleID != nil && c.MotorcycleID != *motorcycleID {
			continue
		}
		found := *c
		found.Motorcycle = s.summary(c.MotorcycleID)
		complaints = append(complaints, &found)
	}
	sort.Slice(complaints, func(i, j int) bool {
		return s.created[complaints[i].ID] > s.created[complaints[j].ID]
	})
	return complaints, nil
}
