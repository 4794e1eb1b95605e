package http

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
)

const defaultTokenDuration = 24 * time.Hour

var errInvalidToken = domain.NewUnauthorizedError("Token tidak valid")

type JWTTokenService struct {
	secretKey []byte
	duration  time.Duration
	logger    ports.LoggerPort
	now       func() time.Time
}

// NewJWTTokenService falls back to a 24h lifetime when duration is empty or
// not a valid time.Duration string.
func NewJWTTokenService(secretKey string, duration string, logger ports.LoggerPort) *JWTTokenService {
	ttl, err := time.ParseDuration(duration)
	if err != nil || ttl <= 0 {
		ttl = defaultTokenDuration
	}
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		duration:  ttl,
		logger:    logger,
		now:       time.Now,
	}
}

func (j *JWTTokenService) CreateToken(userID string, role domain.UserRole) (string, error) {
	claims := jwt.MapClaims{
		"id":      uuid.New().String(),
		"user_id": userID,
		"role":    string(role),
		"exp":     j.now().Add(j.duration).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateToken",
		})
		return "", err
	}
	return token, nil
}

func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		j.logger.Warn("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, errInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		j.logger.Error("Failed claims from token", map[string]interface{}{
			"method": "VerifyToken",
		})
		return nil, errInvalidToken
	}

	id, err := uuidClaim(claims, "id")
	if err != nil {
		return nil, errInvalidToken
	}

	userID, err := uuidClaim(claims, "user_id")
	if err != nil {
		return nil, errInvalidToken
	}

	roleClaimed, ok := claims["role"].(string)
	if !ok {
		return nil, errInvalidToken
	}

	role := domain.UserRole(roleClaimed)
	if role != domain.Admin && role != domain.AppUser {
		j.logger.Warn("Invalid role in token", map[string]interface{}{
			"role":   roleClaimed,
			"method": "VerifyToken",
		})
		return nil, errInvalidToken
	}

	return &domain.TokenPayload{
		ID:     id,
		UserID: userID,
		Role:   role,
	}, nil
}

func uuidClaim(claims jwt.MapClaims, name string) (uuid.UUID, error) {
	raw, ok := claims[name].(string)
	if !ok {
		return uuid.Nil, errors.New("missing " + name + " claim")
	}
	return uuid.Parse(raw)
}
