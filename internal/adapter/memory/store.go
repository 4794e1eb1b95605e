// Package memory is an in-process storage backend implementing every
// repository port. It backs STORAGE_DRIVER=memory and the tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type Store struct {
	mu             sync.RWMutex
	users          map[uuid.UUID]*domain.User
	motorcycles    map[uuid.UUID]*domain.Motorcycle
	serviceRecords map[uuid.UUID]*domain.ServiceRecord
	complaints     map[uuid.UUID]*domain.Complaint
	reminders      map[uuid.UUID]*domain.Reminder

	// seq orders rows created within the same clock tick.
	seq     int64
	created map[uuid.UUID]int64
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:          make(map[uuid.UUID]*domain.User),
		motorcycles:    make(map[uuid.UUID]*domain.Motorcycle),
		serviceRecords: make(map[uuid.UUID]*domain.ServiceRecord),
		complaints:     make(map[uuid.UUID]*domain.Complaint),
		reminders:      make(map[uuid.UUID]*domain.Reminder),
		created:        make(map[uuid.UUID]int64),
		now:            time.Now,
	}
}

func (s *Store) stamp(id uuid.UUID) time.Time {
	s.seq++
	s.created[id] = s.seq
	return s.now()
}

func (s *Store) summary(motorcycleID uuid.UUID) *domain.MotorcycleSummary {
	if m, ok := s.motorcycles[motorcycleID]; ok {
		return m.Summary()
	}
	return nil
}

func ctxErr(ctx context.Context) error {
	return ctx.Err()
}

// Users

func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, domain.NewConflictError("Email sudah terdaftar")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = s.stamp(user.ID)
	user.UpdatedAt = user.CreatedAt

	stored := *user
	s.users[user.ID] = &stored
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			found := *u
			return &found, nil
		}
	}
	return nil, domain.NewNotFoundError("user not found")
}

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.NewNotFoundError("user not found")
	}
	found := *u
	return &found, nil
}

// Motorcycles

func (s *Store) CreateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plateTaken(motorcycle.PlateNumber, uuid.Nil) {
		return nil, domain.NewConflictError("Nomor plat sudah terdaftar")
	}
	if motorcycle.ID == uuid.Nil {
		motorcycle.ID = uuid.New()
	}
	motorcycle.CreatedAt = s.stamp(motorcycle.ID)
	motorcycle.UpdatedAt = motorcycle.CreatedAt

	stored := *motorcycle
	s.motorcycles[motorcycle.ID] = &stored
	return motorcycle, nil
}

func (s *Store) plateTaken(plate string, except uuid.UUID) bool {
	for id, m := range s.motorcycles {
		if id != except && m.PlateNumber == plate {
			return true
		}
	}
	return false
}

func (s *Store) GetMotorcycleByID(ctx context.Context, motorcycleID uuid.UUID) (*domain.Motorcycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.motorcycles[motorcycleID]
	if !ok {
		return nil, domain.NewNotFoundError("Motor tidak ditemukan")
	}
	found := *m
	return &found, nil
}

func (s *Store) GetMotorcycleByPlate(ctx context.Context, plateNumber string) (*domain.Motorcycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.motorcycles {
		if m.PlateNumber == plateNumber {
			found := *m
			return &found, nil
		}
	}
	return nil, domain.NewNotFoundError("Motor tidak ditemukan")
}

func (s *Store) GetMotorcyclesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Motorcycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	motorcycles := []*domain.Motorcycle{}
	for _, m := range s.motorcycles {
		if m.UserID == userID {
			found := *m
			motorcycles = append(motorcycles, &found)
		}
	}
	sort.Slice(motorcycles, func(i, j int) bool {
		return s.created[motorcycles[i].ID] > s.created[motorcycles[j].ID]
	})
	return motorcycles, nil
}

func (s *Store) UpdateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.motorcycles[motorcycle.ID]
	if !ok {
		return nil, domain.NewNotFoundError("Motor tidak ditemukan")
	}
	if s.plateTaken(motorcycle.PlateNumber, motorcycle.ID) {
		return nil, domain.NewConflictError("Nomor plat sudah terdaftar")
	}
	motorcycle.UserID = existing.UserID
	motorcycle.CreatedAt = existing.CreatedAt
	motorcycle.UpdatedAt = s.now()
	if existing.CurrentKm > motorcycle.CurrentKm {
		motorcycle.CurrentKm = existing.CurrentKm
	}

	stored := *motorcycle
	s.motorcycles[motorcycle.ID] = &stored
	return motorcycle, nil
}

func (s *Store) DeleteMotorcycle(ctx context.Context, motorcycleID uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.motorcycles[motorcycleID]; !ok {
		return domain.NewNotFoundError("Motor tidak ditemukan")
	}
	delete(s.motorcycles, motorcycleID)
	for id, r := range s.serviceRecords {
		if r.MotorcycleID == motorcycleID {
			delete(s.serviceRecords, id)
		}
	}
	for id, c := range s.complaints {
		if c.MotorcycleID == motorcycleID {
			delete(s.complaints, id)
		}
	}
	for id, r := range s.reminders {
		if r.MotorcycleID == motorcycleID {
			delete(s.reminders, id)
		}
	}
	return nil
}
