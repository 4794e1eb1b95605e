package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	"github.com/sm8ta/motorcare_service/internal/core/services"
)

type AuthHandler struct {
	userService *services.UserService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type RegisterRequest struct {
	Email    string  `json:"email" example:"budi@example.com"`
	Password string  `json:"password" example:"rahasia123"`
	Name     *string `json:"name,omitempty" example:"Budi"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"budi@example.com"`
	Password string `json:"password" example:"rahasia123"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func NewAuthHandler(
	userService *services.UserService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Registrasi
// @Description Mendaftarkan pengguna baru
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Data pengguna"
// @Success 201 {object} successResponse "Registrasi berhasil"
// @Failure 400 {object} errorResponse "Data tidak valid"
// @Failure 409 {object} errorResponse "Email sudah terdaftar"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in register", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Registrasi berhasil", user)
}

// @Summary Login
// @Description Menukar email dan password dengan token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Kredensial"
// @Success 200 {object} successResponse "Login berhasil"
// @Failure 400 {object} errorResponse "Email dan password harus diisi"
// @Failure 401 {object} errorResponse "Email atau password salah"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Format JSON tidak valid")
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})

	newSuccessResponse(c, http.StatusOK, "Login berhasil", LoginResponse{
		Token: token,
		User:  user,
	})
}
