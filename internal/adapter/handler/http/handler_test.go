package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Token tidak ditemukan"},
		{"wrong scheme", "Basic abc", "Format token tidak valid"},
		{"garbage token", "Bearer not-a-jwt", "Token tidak valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := s.doRaw(t, http.MethodGet, "/motorcycles", tt.header)
			assert.Equal(t, http.StatusUnauthorized, code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "Budi@Example.com",
		"password": "rahasia123",
		"name":     "Budi",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Registrasi berhasil", resp.Message)

	user := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "budi@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")

	code, resp = s.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "budi@example.com",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email sudah terdaftar", resp.Message)

	code, resp = s.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "budi@example.com",
		"password": "salah12345",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Email atau password salah", resp.Message)

	code, resp = s.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "budi@example.com",
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Login berhasil", resp.Message)

	login := decode[LoginResponse](t, resp.Data)
	code, _ = s.do(t, http.MethodGet, "/motorcycles", login.Token, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": "budi@example.com"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email dan password harus diisi", resp.Message)

	code, resp = s.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "budi@example.com",
		"password": "pendek",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Password minimal 8 karakter", resp.Message)
}

func TestCreateMotorcycle(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "budi@example.com")

	code, resp := s.do(t, http.MethodPost, "/motorcycles", token, motorcycleBody("b 1234 abc", "harian", 12000))
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Motor berhasil ditambahkan", resp.Message)

	m := decode[domain.Motorcycle](t, resp.Data)
	assert.Equal(t, "B 1234 ABC", m.PlateNumber)
	assert.Equal(t, 12000, m.CurrentKm)

	code, resp = s.do(t, http.MethodPost, "/motorcycles", token, motorcycleBody("B 1234 ABC", "harian", 0))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Nomor plat sudah terdaftar", resp.Message)

	missing := motorcycleBody("B 9999 XYZ", "harian", 0)
	delete(missing, "stnk_expiry")
	code, resp = s.do(t, http.MethodPost, "/motorcycles", token, missing)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Semua field wajib diisi kecuali variant", resp.Message)
}

func TestServicePostingSchedulesKmReminder(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "budi@example.com")
	motorcycleID := s.createMotorcycle(t, token, "B 1234 ABC", "harian", 12000)

	code, resp := s.do(t, http.MethodPost, "/service-records", token, gin.H{
		"date":          "2026-05-10",
		"km":            15000,
		"actions":       []string{"Ganti oli"},
		"motorcycle_id": motorcycleID,
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	assert.Equal(t, "Riwayat servis berhasil ditambahkan", resp.Message)

	code, resp = s.do(t, http.MethodGet, "/reminders?active_only=true&motorcycle_id="+motorcycleID, token, nil)
	require.Equal(t, http.StatusOK, code)

	reminders := decode[[]domain.Reminder](t, resp.Data)
	require.Len(t, reminders, 1)
	assert.Equal(t, domain.KmBased, reminders[0].Type)
	require.NotNil(t, reminders[0].DueKm)
	assert.Equal(t, 18000, *reminders[0].DueKm)
	assert.Equal(t, "Servis berkala 18.000 KM", reminders[0].Description)

	code, resp = s.do(t, http.MethodGet, "/motorcycles/"+motorcycleID, token, nil)
	require.Equal(t, http.StatusOK, code)
	detail := decode[domain.MotorcycleDetail](t, resp.Data)
	assert.Equal(t, 15000, detail.CurrentKm)
	assert.Len(t, detail.ServiceRecords, 1)
	assert.Len(t, detail.Reminders, 1)
}

func TestServicePostingSurvivesSchedulingFailure(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "budi@example.com")
	motorcycleID := s.createMotorcycle(t, token, "B 1234 ABC", "touring", 1000)

	s.reminders.failNextReplace(errors.New("connection reset"))

	code, resp := s.do(t, http.MethodPost, "/service-records", token, gin.H{
		"date":          "2026-05-10",
		"km":            2000,
		"actions":       []string{"Ganti oli"},
		"motorcycle_id": motorcycleID,
	})
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Riwayat servis berhasil ditambahkan", resp.Message)
	assert.Equal(t, 1.0, s.counter(t, "motorcare_scheduling_failures_total", "usage_type", "touring"))

	code, resp = s.do(t, http.MethodGet, "/reminders", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]domain.Reminder](t, resp.Data))
}

func TestServiceRecordErrors(t *testing.T) {
	s := newTestServer(t)
	owner := s.signUp(t, "budi@example.com")
	other := s.signUp(t, "sari@example.com")
	motorcycleID := s.createMotorcycle(t, owner, "B 1234 ABC", "harian", 0)

	tests := []struct {
		name    string
		token   string
		body    gin.H
		status  int
		message string
	}{
		{
			name:    "missing actions",
			token:   owner,
			body:    gin.H{"date": "2026-05-10", "km": 1000, "motorcycle_id": motorcycleID},
			status:  http.StatusBadRequest,
			message: "Field tanggal, KM, tindakan, motor ID, dan user ID wajib diisi",
		},
		{
			name:    "not owned",
			token:   other,
			body:    gin.H{"date": "2026-05-10", "km": 1000, "actions": []string{"Ganti oli"}, "motorcycle_id": motorcycleID},
			status:  http.StatusNotFound,
			message: "Motor tidak ditemukan atau bukan milik Anda",
		},
		{
			name:    "unknown motorcycle",
			token:   owner,
			body:    gin.H{"date": "2026-05-10", "km": 1000, "actions": []string{"Ganti oli"}, "motorcycle_id": uuid.NewString()},
			status:  http.StatusNotFound,
			message: "Motor tidak ditemukan atau bukan milik Anda",
		},
		{
			name:    "malformed motorcycle id",
			token:   owner,
			body:    gin.H{"date": "2026-05-10", "km": 1000, "actions": []string{"Ganti oli"}, "motorcycle_id": "abc"},
			status:  http.StatusNotFound,
			message: "Motor tidak ditemukan atau bukan milik Anda",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := s.do(t, http.MethodPost, "/service-records", tt.token, tt.body)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.message, resp.Message)
		})
	}

	code, resp := s.do(t, http.MethodGet, "/service-records?motorcycle_id=abc", owner, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "motorcycle_id tidak valid", resp.Message)
}

func TestReminderLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "budi@example.com")
	motorcycleID := s.createMotorcycle(t, token, "B 1234 ABC", "harian", 0)

	code, resp := s.do(t, http.MethodPost, "/reminders", token, gin.H{
		"type":          "time_based",
		"description":   "Perpanjang STNK",
		"motorcycle_id": motorcycleID,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Due date wajib diisi untuk reminder berdasarkan waktu", resp.Message)

	code, resp = s.do(t, http.MethodPost, "/reminders", token, gin.H{
		"type":          "time_based",
		"due_date":      "2027-01-01",
		"description":   "Perpanjang STNK",
		"motorcycle_id": motorcycleID,
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	assert.Equal(t, "Reminder berhasil ditambahkan", resp.Message)
	reminderID := decode[domain.Reminder](t, resp.Data).ID.String()

	code, resp = s.do(t, http.MethodPut, "/reminders/"+reminderID, token, gin.H{"is_completed": true})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Reminder berhasil diperbarui", resp.Message)
	assert.True(t, decode[domain.Reminder](t, resp.Data).IsCompleted)

	code, resp = s.do(t, http.MethodGet, "/reminders?active_only=true", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]domain.Reminder](t, resp.Data))

	other := s.signUp(t, "sari@example.com")
	code, resp = s.do(t, http.MethodDelete, "/reminders/"+reminderID, other, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Reminder tidak ditemukan", resp.Message)

	code, resp = s.do(t, http.MethodDelete, "/reminders/"+reminderID, token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Reminder berhasil dihapus", resp.Message)

	code, resp = s.do(t, http.MethodDelete, "/reminders/"+reminderID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Reminder tidak ditemukan", resp.Message)

	code, _ = s.do(t, http.MethodPut, "/reminders/"+reminderID, token, gin.H{"is_completed": true})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateComplaint(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "budi@example.com")
	motorcycleID := s.createMotorcycle(t, token, "B 1234 ABC", "harian", 0)

	code, resp := s.do(t, http.MethodPost, "/complaints", token, gin.H{
		"motorcycle_id": motorcycleID,
		"description":   "Motor susah distarter kalau pagi",
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	assert.Equal(t, "Keluhan berhasil dianalisis", resp.Message)

	created := decode[ComplaintResponse](t, resp.Data)
	assert.Contains(t, created.Analysis.Symptoms, "Motor sulit distarter")
	assert.NotEmpty(t, created.Analysis.Recommendations)

	code, resp = s.do(t, http.MethodPost, "/complaints", token, gin.H{
		"motorcycle_id": motorcycleID,
		"description":   "   ",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Deskripsi keluhan harus diisi", resp.Message)

	code, resp = s.do(t, http.MethodGet, "/complaints?motorcycle_id="+motorcycleID, token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]domain.Complaint](t, resp.Data), 1)
}

func TestDeleteMotorcycle(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "budi@example.com")
	motorcycleID := s.createMotorcycle(t, token, "B 1234 ABC", "harian", 0)

	code, resp := s.do(t, http.MethodDelete, "/motorcycles/"+motorcycleID, token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Motor berhasil dihapus", resp.Message)

	code, resp = s.do(t, http.MethodGet, "/motorcycles/"+motorcycleID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
}
