package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	"github.com/sm8ta/motorcare_service/internal/core/services"
)

type ComplaintHandler struct {
	complaintService *services.ComplaintService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type ComplaintRequest struct {
	MotorcycleID string `json:"motorcycle_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Description  string `json:"description" example:"Motor susah distarter kalau pagi"`
}

type ComplaintResponse struct {
	Complaint *domain.Complaint `json:"complaint"`
	Analysis  domain.Analysis   `json:"analysis"`
}

func NewComplaintHandler(
	complaintService *services.ComplaintService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary Kirim keluhan
// @Description Menganalisis keluhan dan menyimpan diagnosis serta rekomendasi
// @Tags complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ComplaintRequest true "Keluhan"
// @Success 201 {object} successResponse "Keluhan berhasil dianalisis"
// @Failure 400 {object} errorResponse "Deskripsi keluhan harus diisi"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Failure 404 {object} errorResponse "Motor tidak ditemukan atau bukan milik Anda"
// @Router /complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateComplaint", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Tidak terautentikasi")
		return
	}

	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create complaint", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
		return
	}

	if req.MotorcycleID == "" {
		newErrorResponse(c, http.StatusBadRequest, "Motor ID dan deskripsi keluhan wajib diisi")
		return
	}
	motorcycleID, err := motorcycleIDFromBody(req.MotorcycleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	complaint, err := h.complaintService.CreateComplaint(c.Request.Context(), &domain.Complaint{
		MotorcycleID: motorcycleID,
		UserID:       payload.UserID,
		Description:  req.Description,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Keluhan berhasil dianalisis", ComplaintResponse{
		Complaint: complaint,
		Analysis:  complaint.Analysis,
	})
}

// @Summary Daftar keluhan
// @Description Keluhan pengguna, terbaru lebih dulu
// @Tags complaints
// @Security BearerAuth
// @Produce json
// @Param motorcycle_id query string false "Filter ID motor"
// @Success 200 {object} successResponse "Daftar keluhan"
// @Failure 400 {object} errorResponse "motorcycle_id tidak valid"
// @Failure 401 {object} errorResponse "Tidak terautentikasi"
// @Router /complaints [get]
func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetComplaints", map[string]interface{}{
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

	complaints, err := h.complaintService.GetComplaints(c.Request.Context(), payload.UserID, motorcycleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Daftar keluhan", complaints)
}
