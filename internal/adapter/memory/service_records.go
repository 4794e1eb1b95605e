package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

func (s *Store) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	motorcycle, ok := s.motorcycles[record.MotorcycleID]
	if !ok {
		return nil, domain.NewNotFoundError("Motor tidak ditemukan")
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = s.stamp(record.ID)

	if record.Km > motorcycle.CurrentKm {
		motorcycle.CurrentKm = record.Km
		motorcycle.UpdatedAt = s.now()
	}
	record.Motorcycle = motorcycle.Summary()

	stored := *record
	s.serviceRecords[record.ID] = &stored
	return record, nil
}

func (s *Store) GetServiceRecordsByUserID(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []*domain.ServiceRecord{}
	for _, r := range s.serviceRecords {
		if r.UserID != userID {
			continue
		}
		if motorcycleID != nil && r.MotorcycleID != *motorcycleID {
			continue
		}
		found := *r
		found.Motorcycle = s.summary(r.MotorcycleID)
		records = append(records, &found)
	}
	s.sortByDateDesc(records)
	return records, nil
}

func (s *Store) GetRecentServiceRecords(ctx context.Context, motorcycleID uuid.UUID, limit int) ([]*domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []*domain.ServiceRecord{}
	for _, r := range s.serviceRecords {
		if r.MotorcycleID == motorcycleID {
			found := *r
			records = append(records, &found)
		}
	}
	s.sortByDateDesc(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *Store) sortByDateDesc(records []*domain.ServiceRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return s.created[records[i].ID] > s.created[records[j].ID]
	})
}
