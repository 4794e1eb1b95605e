package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	"github.com/sm8ta/motorcare_service/internal/core/services"
)

type ReminderHandler struct {
	reminderService *services.ReminderService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type ReminderRequest struct {
	Type         string       `json:"type" example:"time_based"`
	DueKm        *int         `json:"due_km,omitempty" example:"18000"`
	DueDate      *strfmt.Date `json:"due_date,omitempty" swaggertype:"string" format:"date" example:"2027-01-01"`
	Description  string       `json:"description" example:"Perpanjang STNK"`
	MotorcycleID string       `json:"motorcycle_id" example:"123e4567-e89b-12d3-a456-426614174000"`
}

type UpdateReminder struct {
	IsCompleted bool `json:"is_completed" example:"true"`
}

func NewReminderHandler(
	reminderService *services.ReminderService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary Tambah reminder
// @Description Membuat reminder berdasarkan KM, waktu, atau kondisi
// @Tags reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ReminderRequest true "Data reminder"
// @Success 201 {object} successResponse "Reminder berhasil ditambahkan"
// @Failure 400 {object} errorResponse "Data tidak valid"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Motor tidak ditemukan atau bukan milik Anda"
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateReminder", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create reminder", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
		return
	}

	if req.Type == "" || strings.TrimSpace(req.Description) == "" || req.MotorcycleID == "" {
		newErrorResponse(c, http.StatusBadRequest, "Type, deskripsi, motor ID, dan user ID wajib diisi")
		return
	}
	motorcycleID, err := motorcycleIDFromBody(req.MotorcycleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	reminder := &domain.Reminder{
		MotorcycleID: motorcycleID,
		Type:         domain.ReminderType(req.Type),
		DueKm:        req.DueKm,
		Description:  strings.TrimSpace(req.Description),
	}
	if req.DueDate != nil {
		dueDate := time.Time(*req.DueDate)
		reminder.DueDate = &dueDate
	}

	created, err := h.reminderService.CreateReminder(c.Request.Context(), reminder, payload.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Reminder berhasil ditambahkan", created)
}

// @Summary Daftar reminder
// @Description Reminder pengguna, urut waktu pembuatan
// @Tags reminders
// @Security BearerAuth
// @Produce json
// @Param motorcycle_id query string false "Filter ID motor"
// @Param active_only query bool false "Hanya reminder yang belum selesai"
// @Success 200 {object} successResponse "Daftar reminder"
// @Failure 400 {object} errorResponse "motorcycle_id tidak valid"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Router /reminders [get]
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetReminders", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	motorcycleID, err := parseOptionalUUID(c.Query("motorcycle_id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "motorcycle_id tidak valid")
		return
	}

	reminders, err := h.reminderService.GetReminders(c.Request.Context(), domain.ReminderFilter{
		UserID:       payload.UserID,
		MotorcycleID: motorcycleID,
		ActiveOnly:   c.Query("active_only") == "true",
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Daftar reminder", reminders)
}

// @Summary Perbarui reminder
// @Description Menandai reminder selesai atau belum
// @Tags reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID reminder"
// @Param request body UpdateReminder true "Status reminder"
// @Success 200 {object} successResponse "Reminder berhasil diperbarui"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Reminder tidak ditemukan"
// @Router /reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	reminderID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to UpdateReminder", map[string]interface{}{
			"reminder_id": reminderID,
			"ip":          c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	var req UpdateReminder
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error("Failed JSON parse in update reminder", map[string]interface{}{
				"error": err.Error(),
			})
			newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
			return
		}
	}

	updated, err := h.reminderService.SetCompleted(c.Request.Context(), reminderID, payload.UserID, req.IsCompleted)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Reminder berhasil diperbarui", updated)
}

// @Summary Hapus reminder
// @Description Menghapus reminder
// @Tags reminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID reminder"
// @Success 200 {object} successResponse "Reminder berhasil dihapus"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Reminder tidak ditemukan"
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	reminderID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to DeleteReminder", map[string]interface{}{
			"reminder_id": reminderID,
			"ip":          c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	if err := h.reminderService.DeleteReminder(c.Request.Context(), reminderID, payload.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Reminder berhasil dihapus", nil)
}
