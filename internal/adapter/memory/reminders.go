package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

func (s *Store) CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.motorcycles[reminder.MotorcycleID]; !ok {
		return nil, domain.NewNotFoundError("Motor tidak ditemukan")
	}
	return s.insertReminder(reminder), nil
}

// insertReminder must be called with s.mu held.
func (s *Store) insertReminder(reminder *domain.Reminder) *domain.Reminder {
	if reminder.ID == uuid.Nil {
		reminder.ID = uuid.New()
	}
	reminder.CreatedAt = s.stamp(reminder.ID)
	reminder.UpdatedAt = reminder.CreatedAt
	reminder.Motorcycle = s.summary(reminder.MotorcycleID)

	stored := *reminder
	s.reminders[reminder.ID] = &stored
	return reminder
}

func (s *Store) GetReminderByID(ctx context.Context, reminderID uuid.UUID) (*domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reminders[reminderID]
	if !ok {
		return nil, domain.NewNotFoundError("Reminder tidak ditemukan")
	}
	found := *r
	found.Motorcycle = s.summary(r.MotorcycleID)
	return &found, nil
}

func (s *Store) GetReminders(ctx context.Context, filter domain.ReminderFilter) ([]*domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := []*domain.Reminder{}
	for _, r := range s.reminders {
		m, ok := s.motorcycles[r.MotorcycleID]
		if !ok || m.UserID != filter.UserID {
			continue
		}
		if filter.MotorcycleID != nil && r.MotorcycleID != *filter.MotorcycleID {
			continue
		}
		if filter.ActiveOnly && r.IsCompleted {
			continue
		}
		found := *r
		found.Motorcycle = m.Summary()
		reminders = append(reminders, &found)
	}
	s.sortByCreatedAsc(reminders)
	return reminders, nil
}

func (s *Store) GetOpenRemindersByMotorcycleID(ctx context.Context, motorcycleID uuid.UUID) ([]*domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := []*domain.Reminder{}
	for _, r := range s.reminders {
		if r.MotorcycleID == motorcycleID && !r.IsCompleted {
			found := *r
			reminders = append(reminders, &found)
		}
	}
	s.sortByCreatedAsc(reminders)
	return reminders, nil
}

func (s *Store) sortByCreatedAsc(reminders []*domain.Reminder) {
	sort.Slice(reminders, func(i, j int) bool {
		return s.created[reminders[i].ID] < s.created[reminders[j].ID]
	})
}

func (s *Store) SetReminderCompleted(ctx context.Context, reminderID uuid.UUID, completed bool) (*domain.Reminder, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[reminderID]
	if !ok {
		return nil, domain.NewNotFoundError("Reminder tidak ditemukan")
	}
	r.IsCompleted = completed
	r.UpdatedAt = s.now()

	found := *r
	found.Motorcycle = s.summary(r.MotorcycleID)
	return &found, nil
}

func (s *Store) DeleteReminder(ctx context.Context, reminderID uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reminders[reminderID]; !ok {
		return domain.NewNotFoundError("Reminder tidak ditemukan")
	}
	delete(s.reminders, reminderID)
	return nil
}

func (s *Store) ReplaceOpenKmReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.motorcycles[reminder.MotorcycleID]; !ok {
		return nil, domain.NewNotFoundError("Motor tidak ditemukan")
	}
	for id, r := range s.reminders {
		if r.MotorcycleID == reminder.MotorcycleID && r.IsOpenKm() {
			delete(s.reminders, id)
		}
	}
	return s.insertReminder(reminder), nil
}
