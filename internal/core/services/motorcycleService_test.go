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

func TestCreateMotorcycle_DuplicatePlate(t *testing.T) {
	env := newTestEnv(t)
	env.createMotorcycle(t, uuid.New(), "B 1000 DUP", domain.UsageHarian, 0)

	_, err := env.motorcycles.CreateMotorcycle(context.Background(), &domain.Motorcycle{
		UserID:      uuid.New(),
		Brand:       "Yamaha",
		Model:       "NMAX",
		PlateNumber: "B 1000 DUP",
		Year:        2022,
		StnkExpiry:  time.Now().AddDate(1, 0, 0),
		UsageType:   domain.UsageKomuter,
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Nomor plat sudah terdaftar", domain.PublicMessage(err))
}

func TestCreateMotorcycle_Validation(t *testing.T) {
	env := newTestEnv(t)
	valid := func() *domain.Motorcycle {
		return &domain.Motorcycle{
			UserID:      uuid.New(),
			Brand:       "Suzuki",
			Model:       "Satria",
			PlateNumber: "D 55 VAL",
			Year:        2021,
			StnkExpiry:  time.Now().AddDate(1, 0, 0),
			UsageType:   domain.UsageOlahraga,
			InitialKm:   5000,
			CurrentKm:   5000,
		}
	}

	tests := []struct {
		name   string
		mutate func(m *domain.Motorcycle)
	}{
		{"missing brand", func(m *domain.Motorcycle) { m.Brand = "" }},
		{"missing plate", func(m *domain.Motorcycle) { m.PlateNumber = "" }},
		{"year out of range", func(m *domain.Motorcycle) { m.Year = 1800 }},
		{"current below initial", func(m *domain.Motorcycle) { m.CurrentKm = 4000 }},
		{"negative initial km", func(m *domain.Motorcycle) { m.InitialKm = -1; m.CurrentKm = 0 }},
		{"missing stnk expiry", func(m *domain.Motorcycle) { m.StnkExpiry = time.Time{} }},
		{"initial km above cap", func(m *domain.Motorcycle) { m.InitialKm = domain.MaxKm + 1; m.CurrentKm = domain.MaxKm + 1 }},
		{"current km above cap", func(m *domain.Motorcycle) { m.CurrentKm = 1 << 40 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			_, err := env.motorcycles.CreateMotorcycle(context.Background(), m)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestGetMotorcycleDetail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	m := env.createMotorcycle(t, uuid.New(), "F 88 DTL", domain.UsageHarian, 0)

	for km := 1000; km <= 7000; km += 1000 {
		env.postService(t, m, km)
	}

	detail, err := env.motorcycles.GetMotorcycleDetail(ctx, m.ID.String(), m.UserID)
	require.NoError(t, err)
	assert.Equal(t, 7000, detail.CurrentKm)
	assert.Len(t, detail.ServiceRecords, 5)
	require.Len(t, detail.Reminders, 1)
	assert.Equal(t, 10000, *detail.Reminders[0].DueKm)

	_, err = env.motorcycles.GetMotorcycleDetail(ctx, m.ID.String(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.motorcycles.GetMotorcycleDetail(ctx, "garbage", m.UserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMotorcycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	owner := uuid.New()
	m := env.createMotorcycle(t, owner, "B 11 UPD", domain.UsageHarian, 100)
	env.createMotorcycle(t, owner, "B 12 TKN", domain.UsageHarian, 100)

	// Warm the cache; the update must evict it.
	_, err := env.motorcycles.GetMotorcycleByID(ctx, m.ID.String())
	require.NoError(t, err)

	change := *m
	change.UsageType = domain.UsageTouring
	change.Model = "PCX 160"
	updated, err := env.motorcycles.UpdateMotorcycle(ctx, &change, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.UsageTouring, updated.UsageType)

	got, err := env.motorcycles.GetMotorcycleByID(ctx, m.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "PCX 160", got.Model)

	taken := *got
	taken.PlateNumber = "B 12 TKN"
	_, err = env.motorcycles.UpdateMotorcycle(ctx, &taken, owner)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stranger := *got
	_, err = env.motorcycles.UpdateMotorcycle(ctx, &stranger, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMotorcycle_KeepsPostedKm(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	owner := uuid.New()
	m := env.createMotorcycle(t, owner, "B 14 ODO", domain.UsageHarian, 0)
	env.postService(t, m, 15000)

	current, err := env.motorcycles.GetMotorcycleByID(ctx, m.ID.String())
	require.NoError(t, err)
	require.Equal(t, 15000, current.CurrentKm)

	lowered := *current
	lowered.CurrentKm = 100
	_, err = env.motorcycles.UpdateMotorcycle(ctx, &lowered, owner)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "KM saat ini tidak boleh lebih kecil dari KM tercatat", domain.PublicMessage(err))

	got, err := env.motorcycles.GetMotorcycleByID(ctx, m.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 15000, got.CurrentKm)

	raised := *got
	raised.CurrentKm = 16000
	updated, err := env.motorcycles.UpdateMotorcycle(ctx, &raised, owner)
	require.NoError(t, err)
	assert.Equal(t, 16000, updated.CurrentKm)
}

func TestDeleteMotorcycle_Cascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	m := env.createMotorcycle(t, uuid.New(), "B 13 DEL", domain.UsageHarian, 0)
	env.postService(t, m, 1000)

	require.ErrorIs(t, env.motorcycles.DeleteMotorcycle(ctx, m.ID.String(), uuid.New()), domain.ErrNotFound)
	require.NoError(t, env.motorcycles.DeleteMotorcycle(ctx, m.ID.String(), m.UserID))

	_, err := env.motorcycles.GetMotorcycleByID(ctx, m.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	records, err := env.records.GetServiceRecords(ctx, m.UserID, nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	reminders, err := env.reminders.GetReminders(ctx, domain.ReminderFilter{UserID: m.UserID})
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestGetMotorcyclesByUserID_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	owner := uuid.New()
	older := env.createMotorcycle(t, owner, "B 21 OLD", domain.UsageHarian, 0)
	newer := env.createMotorcycle(t, owner, "B 22 NEW", domain.UsageHarian, 0)
	env.createMotorcycle(t, uuid.New(), "B 23 OTH", domain.UsageHarian, 0)

	list, err := env.motorcycles.GetMotorcyclesByUserID(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}
