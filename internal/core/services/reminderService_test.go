package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRescheduleKmReminder_Idempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	m := env.createMotorcycle(t, uuid.New(), "B 9 IDM", domain.UsageTouring, 0)

	require.NoError(t, env.reminders.RescheduleKmReminder(ctx, m.ID, 10000, m.UsageType))
	first := env.openKmReminders(t, m.ID)
	require.Len(t, first, 1)

	require.NoError(t, env.reminders.RescheduleKmReminder(ctx, m.ID, 10000, m.UsageType))
	second := env.openKmReminders(t, m.ID)
	require.Len(t, second, 1)

	assert.NotEqual(t, first[0].ID, second[0].ID, "the open reminder is replaced, not kept")
	assert.Equal(t, 16000, *second[0].DueKm)
	assert.Equal(t, "Servis berkala 16.000 KM", second[0].Description)
}

func TestRescheduleKmReminder_KeepsCompletedAndOtherTypes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	m := env.createMotorcycle(t, uuid.New(), "B 8 KEP", domain.UsageHarian, 0)

	done, err := env.reminders.CreateReminder(ctx, &domain.Reminder{
		MotorcycleID: m.ID,
		Type:         domain.KmBased,
		DueKm:        intPtr(3000),
		Description:  "Servis berkala 3.000 KM",
	}, m.UserID)
	require.NoError(t, err)
	_, err = env.reminders.SetCompleted(ctx, done.ID.String(), m.UserID, true)
	require.NoError(t, err)

	due := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	stnk, err := env.reminders.CreateReminder(ctx, &domain.Reminder{
		MotorcycleID: m.ID,
		Type:         domain.TimeBased,
		DueDate:      &due,
		Description:  "Perpanjang STNK",
	}, m.UserID)
	require.NoError(t, err)

	tyre, err := env.reminders.CreateReminder(ctx, &domain.Reminder{
		MotorcycleID: m.ID,
		Type:         domain.ConditionBased,
		Description:  "Cek ban saat musim hujan",
	}, m.UserID)
	require.NoError(t, err)

	require.NoError(t, env.reminders.RescheduleKmReminder(ctx, m.ID, 15000, m.UsageType))

	all, err := env.reminders.GetReminders(ctx, domain.ReminderFilter{UserID: m.UserID})
	require.NoError(t, err)
	require.Len(t, all, 4)

	ids := map[uuid.UUID]bool{}
	for _, r := range all {
		ids[r.ID] = true
	}
	assert.True(t, ids[done.ID])
	assert.True(t, ids[stnk.ID])
	assert.True(t, ids[tyre.ID])

	open := env.openKmReminders(t, m.ID)
	require.Len(t, open, 1)
	assert.Equal(t, 18000, *open[0].DueKm)
}

func TestRescheduleKmReminder_ReplacesManualOpenKmReminders(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	m := env.createMotorcycle(t, uuid.New(), "B 7 MAN", domain.UsageJarang, 0)

	for _, km := range []int{1000, 2000} {
		_, err := env.reminders.CreateReminder(ctx, &domain.Reminder{
			MotorcycleID: m.ID,
			Type:         domain.KmBased,
			DueKm:        intPtr(km),
			Description:  "Manual",
		}, m.UserID)
		require.NoError(t, err)
	}
	require.Len(t, env.openKmReminders(t, m.ID), 2)

	require.NoError(t, env.reminders.RescheduleKmReminder(ctx, m.ID, 0, m.UsageType))

	open := env.openKmReminders(t, m.ID)
	require.Len(t, open, 1)
	assert.Equal(t, 8000, *open[0].DueKm)
}

func TestRescheduleKmReminder_ReturnsSchedulingError(t *testing.T) {
	err := newTestEnv(t).reminders.RescheduleKmReminder(context.Background(), uuid.New(), 1000, domain.UsageHarian)
	assert.ErrorIs(t, err, domain.ErrScheduling)
}

func TestCreateReminder_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	m := env.createMotorcycle(t, uuid.New(), "B 6 VAL", domain.UsageHarian, 0)

	tests := []struct {
		name     string
		reminder *domain.Reminder
		message  string
	}{
		{
			name:     "unknown type",
			reminder: &domain.Reminder{MotorcycleID: m.ID, Type: "weekly", Description: "x"},
			message:  "Tipe reminder tidak valid",
		},
		{
			name:     "km based without due km",
			reminder: &domain.Reminder{MotorcycleID: m.ID, Type: domain.KmBased, Description: "x"},
			message:  "Due KM wajib diisi untuk reminder berdasarkan KM",
		},
		{
			name:     "time based without due date",
			reminder: &domain.Reminder{MotorcycleID: m.ID, Type: domain.TimeBased, Description: "x"},
			message:  "Due date wajib diisi untuk reminder berdasarkan waktu",
		},
		{
			name:     "due km above cap",
			reminder: &domain.Reminder{MotorcycleID: m.ID, Type: domain.KmBased, DueKm: intPtr(domain.MaxKm + 1), Description: "x"},
			message:  "Field due_km tidak valid (max)",
		},
		{
			name:     "missing description",
			reminder: &domain.Reminder{MotorcycleID: m.ID, Type: domain.ConditionBased},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.reminders.CreateReminder(ctx, tt.reminder, m.UserID)
			require.ErrorIs(t, err, domain.ErrValidation)
			if tt.message != "" {
				assert.Equal(t, tt.message, domain.PublicMessage(err))
			}
		})
	}
}

func TestCreateReminder_DropsFieldsOfOtherTypes(t *testing.T) {
	env := newTestEnv(t)
	m := env.createMotorcycle(t, uuid.New(), "B 5 DRP", domain.UsageHarian, 0)
	due := time.Now().AddDate(0, 1, 0)

	r, err := env.reminders.CreateReminder(context.Background(), &domain.Reminder{
		MotorcycleID: m.ID,
		Type:         domain.KmBased,
		DueKm:        intPtr(5000),
		DueDate:      &due,
		Description:  "Ganti oli",
	}, m.UserID)
	require.NoError(t, err)
	assert.Nil(t, r.DueDate)
	assert.Equal(t, 5000, *r.DueKm)
}

func TestReminderCompletionAndDeletion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	owner := uuid.New()
	m := env.createMotorcycle(t, owner, "B 4 CMP", domain.UsageHarian, 0)

	r, err := env.reminders.CreateReminder(ctx, &domain.Reminder{
		MotorcycleID: m.ID,
		Type:         domain.ConditionBased,
		Description:  "Cek rantai",
	}, owner)
	require.NoError(t, err)

	// Completion is idempotent.
	for i := 0; i < 2; i++ {
		updated, err := env.reminders.SetCompleted(ctx, r.ID.String(), owner, true)
		require.NoError(t, err)
		assert.True(t, updated.IsCompleted)
	}

	active, err := env.reminders.GetReminders(ctx, domain.ReminderFilter{UserID: owner, ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = env.reminders.SetCompleted(ctx, r.ID.String(), uuid.New(), false)
	assert.ErrorIs(t, err, domain.ErrNotFound, "another user sees the reminder as missing")

	require.ErrorIs(t, env.reminders.DeleteReminder(ctx, r.ID.String(), uuid.New()), domain.ErrNotFound)
	require.NoError(t, env.reminders.DeleteReminder(ctx, r.ID.String(), owner))

	err = env.reminders.DeleteReminder(ctx, r.ID.String(), owner)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Reminder tidak ditemukan", domain.PublicMessage(err))

	_, err = env.reminders.SetCompleted(ctx, "not-a-uuid", owner, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetReminders_FiltersAndSummary(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	owner := uuid.New()
	first := env.createMotorcycle(t, owner, "B 31 AA", domain.UsageHarian, 0)
	second := env.createMotorcycle(t, owner, "B 32 BB", domain.UsageKomuter, 0)

	env.postService(t, first, 1000)
	env.postService(t, second, 2000)

	all, err := env.reminders.GetReminders(ctx, domain.ReminderFilter{UserID: owner})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].MotorcycleID, "oldest first")
	require.NotNil(t, all[0].Motorcycle)
	assert.Equal(t, 1000, all[0].Motorcycle.CurrentKm)

	only, err := env.reminders.GetReminders(ctx, domain.ReminderFilter{UserID: owner, MotorcycleID: &second.ID})
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, 6000, *only[0].DueKm)
}
