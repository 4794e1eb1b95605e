package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/adapter/logger"
	"github.com/sm8ta/motorcare_service/internal/adapter/memory"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/stretchr/testify/require"
)

type fakeMetrics struct {
	mu                 sync.Mutex
	schedulingFailures map[string]int
}

func (m *fakeMetrics) RecordMetrics(c *gin.Context, start time.Time) {}

func (m *fakeMetrics) RecordSchedulingFailure(usageType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedulingFailures[usageType]++
}

func (m *fakeMetrics) failures(usageType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedulingFailures[usageType]
}

// flakyReminderRepo fails the next ReplaceOpenKmReminder call once armed.
type flakyReminderRepo struct {
	*memory.Store
	mu         sync.Mutex
	replaceErr error
}

func (r *flakyReminderRepo) failNextReplace(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceErr = err
}

func (r *flakyReminderRepo) ReplaceOpenKmReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	r.mu.Lock()
	err := r.replaceErr
	r.replaceErr = nil
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.Store.ReplaceOpenKmReminder(ctx, reminder)
}

type testEnv struct {
	store       *memory.Store
	remindersDB *flakyReminderRepo
	metrics     *fakeMetrics
	motorcycles *MotorcycleService
	reminders   *ReminderService
	records     *ServiceRecordService
	complaints  *ComplaintService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	log := logger.NewNopLogger()
	validate := NewValidator()
	metrics := &fakeMetrics{schedulingFailures: make(map[string]int)}

	remindersDB := &flakyReminderRepo{Store: store}

	motorcycles := NewMotorcycleService(store, store, remindersDB, log, validate, memory.NewCache())
	reminders := NewReminderService(remindersDB, motorcycles, log, validate)

	return &testEnv{
		store:       store,
		remindersDB: remindersDB,
		metrics:     metrics,
		motorcycles: motorcycles,
		reminders:   reminders,
		records:     NewServiceRecordService(store, motorcycles, reminders, log, metrics, validate),
		complaints:  NewComplaintService(store, motorcycles, log, validate),
	}
}

func (e *testEnv) createMotorcycle(t *testing.T, userID uuid.UUID, plate string, usage domain.UsageType, km int) *domain.Motorcycle {
	t.Helper()

	m, err := e.motorcycles.CreateMotorcycle(context.Background(), &domain.Motorcycle{
		UserID:      userID,
		Brand:       "Honda",
		Model:       "Vario 160",
		PlateNumber: plate,
		Year:        2023,
		StnkExpiry:  time.Date(2028, 3, 1, 0, 0, 0, 0, time.UTC),
		UsageType:   usage,
		InitialKm:   km,
		CurrentKm:   km,
	})
	require.NoError(t, err)
	return m
}

func (e *testEnv) postService(t *testing.T, m *domain.Motorcycle, km int) *domain.ServiceRecord {
	t.Helper()

	record, err := e.records.CreateServiceRecord(context.Background(), &domain.ServiceRecord{
		MotorcycleID: m.ID,
		UserID:       m.UserID,
		Date:         time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Km:           km,
		Actions:      []string{"Ganti oli"},
	})
	require.NoError(t, err)
	return record
}

func (e *testEnv) openKmReminders(t *testing.T, motorcycleID uuid.UUID) []*domain.Reminder {
	t.Helper()

	open, err := e.store.GetOpenRemindersByMotorcycleID(context.Background(), motorcycleID)
	require.NoError(t, err)

	var km []*domain.Reminder
	for _, r := range open {
		if r.Type == domain.KmBased {
			km = append(km, r)
		}
	}
	return km
}
