package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	"github.com/sm8ta/motorcare_service/internal/core/services"
)

type MotorcycleHandler struct {
	motorcycleService *services.MotorcycleService
	logger            ports.LoggerPort
	metrics           ports.MetricsPort
}

type MotorcycleRequest struct {
	Brand       string       `json:"brand" example:"Honda"`
	Model       string       `json:"model" example:"Vario 160"`
	Variant     *string      `json:"variant,omitempty" example:"CBS"`
	PlateNumber string       `json:"plate_number" example:"B 1234 ABC"`
	Year        int          `json:"year" example:"2023"`
	StnkExpiry  *strfmt.Date `json:"stnk_expiry" swaggertype:"string" format:"date" example:"2028-03-01"`
	UsageType   string       `json:"usage_type" example:"harian"`
	InitialKm   *int         `json:"initial_km" example:"12000"`
	CurrentKm   *int         `json:"current_km,omitempty" example:"12000"`
}

func (r *MotorcycleRequest) complete() bool {
	return strings.TrimSpace(r.Brand) != "" &&
		strings.TrimSpace(r.Model) != "" &&
		strings.TrimSpace(r.PlateNumber) != "" &&
		r.Year != 0 &&
		r.StnkExpiry != nil &&
		r.UsageType != "" &&
		r.InitialKm != nil
}

// toDomain fills current_km from fallbackKm when the request leaves it out.
func (r *MotorcycleRequest) toDomain(fallbackKm int) *domain.Motorcycle {
	currentKm := fallbackKm
	if r.CurrentKm != nil {
		currentKm = *r.CurrentKm
	}
	return &domain.Motorcycle{
		Brand:       strings.TrimSpace(r.Brand),
		Model:       strings.TrimSpace(r.Model),
		Variant:     r.Variant,
		PlateNumber: strings.ToUpper(strings.TrimSpace(r.PlateNumber)),
		Year:        r.Year,
		StnkExpiry:  time.Time(*r.StnkExpiry),
		UsageType:   domain.UsageType(r.UsageType),
		InitialKm:   *r.InitialKm,
		CurrentKm:   currentKm,
	}
}

func NewMotorcycleHandler(
	motorcycleService *services.MotorcycleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *MotorcycleHandler {
	return &MotorcycleHandler{
		motorcycleService: motorcycleService,
		logger:            logger,
		metrics:           metrics,
	}
}

// @Summary Tambah motor
// @Description Mendaftarkan motor baru milik pengguna
// @Tags motorcycles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body MotorcycleRequest true "Data motor"
// @Success 201 {object} successResponse "Motor berhasil ditambahkan"
// @Failure 400 {object} errorResponse "Data tidak valid"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 409 {object} errorResponse "Nomor plat sudah terdaftar"
// @Router /motorcycles [post]
func (h *MotorcycleHandler) CreateMotorcycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateMotorcycle", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create motorcycle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
		return
	}
	if !req.complete() {
		newErrorResponse(c, http.StatusBadRequest, "Semua field wajib diisi kecuali variant")
		return
	}

	motorcycle := req.toDomain(*req.InitialKm)
	motorcycle.UserID = payload.UserID

	created, err := h.motorcycleService.CreateMotorcycle(c.Request.Context(), motorcycle)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Motor berhasil ditambahkan", created)
}

// @Summary Daftar motor
// @Description Motor milik pengguna, terbaru lebih dulu
// @Tags motorcycles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} successResponse "Daftar motor"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Router /motorcycles [get]
func (h *MotorcycleHandler) GetMyMotorcycles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyMotorcycles", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	motorcycles, err := h.motorcycleService.GetMotorcyclesByUserID(c.Request.Context(), payload.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Daftar motor", motorcycles)
}

// @Summary Detail motor
// @Description Motor beserta 5 riwayat servis terakhir dan reminder aktif
// @Tags motorcycles
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID motor"
// @Success 200 {object} successResponse "Detail motor"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Motor tidak ditemukan"
// @Router /motorcycles/{id} [get]
func (h *MotorcycleHandler) GetMotorcycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	motorcycleID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMotorcycle", map[string]interface{}{
			"motorcycle_id": motorcycleID,
			"ip":            c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	detail, err := h.motorcycleService.GetMotorcycleDetail(c.Request.Context(), motorcycleID, payload.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Detail motor", detail)
}

// @Summary Perbarui motor
// @Description Memperbarui seluruh data motor
// @Tags motorcycles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID motor"
// @Param request body MotorcycleRequest true "Data motor"
// @Success 200 {object} successResponse "Data motor berhasil diperbarui"
// @Failure 400 {object} errorResponse "Data tidak valid"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Motor tidak ditemukan"
// @Failure 409 {object} errorResponse "Nomor plat sudah terdaftar"
// @Router /motorcycles/{id} [put]
func (h *MotorcycleHandler) UpdateMotorcycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	motorcycleID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to UpdateMotorcycle", map[string]interface{}{
			"motorcycle_id": motorcycleID,
			"ip":            c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	existing, err := h.motorcycleService.GetOwnedMotorcycle(c.Request.Context(), motorcycleID, payload.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update motorcycle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
		return
	}
	if !req.complete() {
		newErrorResponse(c, http.StatusBadRequest, "Semua field wajib diisi kecuali variant")
		return
	}

	motorcycle := req.toDomain(existing.CurrentKm)
	motorcycle.ID = existing.ID

	updated, err := h.motorcycleService.UpdateMotorcycle(c.Request.Context(), motorcycle, payload.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Data motor berhasil diperbarui", updated)
}

// @Summary Hapus motor
// @Description Menghapus motor beserta riwayat servis, keluhan, dan reminder
// @Tags motorcycles
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID motor"
// @Success 200 {object} successResponse "Motor berhasil dihapus"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Motor tidak ditemukan"
// @Router /motorcycles/{id} [delete]
func (h *MotorcycleHandler) DeleteMotorcycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	motorcycleID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to DeleteMotorcycle", map[string]interface{}{
			"motorcycle_id": motorcycleID,
			"ip":            c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	if err := h.motorcycleService.DeleteMotorcycle(c.Request.Context(), motorcycleID, payload.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Motor berhasil dihapus", nil)
}

// motorcycleIDFromBody reports an unparsable id as a missing motorcycle.
func motorcycleIDFromBody(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domain.NewNotFoundError("Motor tidak ditemukan atau bukan milik Anda")
	}
	return id, nil
}
