package ports

import "github.com/sm8ta/motorcare_service/internal/core/domain"

type TokenService interface {
	CreateToken(userID string, role domain.UserRole) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}
