package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	"github.com/sm8ta/motorcare_service/internal/core/services"
)

type ServiceRecordHandler struct {
	serviceRecordService *services.ServiceRecordService
	logger               ports.LoggerPort
	metrics              ports.MetricsPort
}

type ServiceRecordRequest struct {
	Date         *strfmt.Date `json:"date" swaggertype:"string" format:"date" example:"2026-05-10"`
	Km           int          `json:"km" example:"15000"`
	Actions      []string     `json:"actions" example:"Ganti oli,Servis CVT"`
	Spareparts   []string     `json:"spareparts,omitempty" example:"Oli mesin"`
	Notes        *string      `json:"notes,omitempty" example:"Rem depan mulai tipis"`
	Cost         *int64       `json:"cost,omitempty" example:"150000"`
	MotorcycleID string       `json:"motorcycle_id" example:"123e4567-e89b-12d3-a456-426614174000"`
}

func NewServiceRecordHandler(
	serviceRecordService *services.ServiceRecordService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ServiceRecordHandler {
	return &ServiceRecordHandler{
		serviceRecordService: serviceRecordService,
		logger:               logger,
		metrics:              metrics,
	}
}

// @Summary Catat servis
// @Description Menyimpan riwayat servis, menaikkan KM motor, dan menjadwalkan ulang reminder servis berkala
// @Tags service-records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ServiceRecordRequest true "Data servis"
// @Success 201 {object} successResponse "Riwayat servis berhasil ditambahkan"
// @Failure 400 {object} errorResponse "Field wajib diisi"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Motor tidak ditemukan atau bukan milik Anda"
// @Router /service-records [post]
func (h *ServiceRecordHandler) CreateServiceRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateServiceRecord", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	var req ServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create service record", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
		return
	}

	motorcycleID, err := motorcycleIDFromBody(req.MotorcycleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	record := &domain.ServiceRecord{
		MotorcycleID: motorcycleID,
		UserID:       payload.UserID,
		Km:           req.Km,
		Actions:      req.Actions,
		Spareparts:   req.Spareparts,
		Notes:        req.Notes,
		Cost:         req.Cost,
	}
	if req.Date != nil {
		record.Date = time.Time(*req.Date)
	}

	created, err := h.serviceRecordService.CreateServiceRecord(c.Request.Context(), record)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Riwayat servis berhasil ditambahkan", created)
}

// @Summary Riwayat servis
// @Description Riwayat servis pengguna, tanggal terbaru lebih dulu
// @Tags service-records
// @Security BearerAuth
// @Produce json
// @Param motorcycle_id query string false "Filter ID motor"
// @Success 200 {object} successResponse "Riwayat servis"
// @Failure 400 {object} errorResponse "motorcycle_id tidak valid"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Router /service-records [get]
func (h *ServiceRecordHandler) GetServiceRecords(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetServiceRecords", map[string]interface{}{
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

	records, err := h.serviceRecordService.GetServiceRecords(c.Request.Context(), payload.UserID, motorcycleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Riwayat servis", records)
}
