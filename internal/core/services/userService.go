package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var errBadCredentials = domain.NewUnauthorizedError("Email atau password salah")

type UserService struct {
	userRepo ports.UserRepository
	tokens   ports.TokenService
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewUserService(
	userRepo ports.UserRepository,
	tokens ports.TokenService,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
		validate: validate,
	}
}

func (s *UserService) Register(ctx context.Context, email, password string, name *string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.NewValidationError("Email dan password harus diisi")
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("Password minimal 8 karakter")
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		name = nil
	}

	user := &domain.User{
		ID:    uuid.New(),
		Email: email,
		Name:  name,
		Role:  domain.AppUser,
	}
	if err := s.validate.Struct(user); err != nil {
		s.logger.Error("User validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.NewConflictError("Email sudah terdaftar")
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("Failed to look up user", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]interface{}{
		"user_id": created.ID,
	})

	return created, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("Email dan password harus diisi")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, errBadCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Failed login attempt", map[string]interface{}{
			"user_id": user.ID,
		})
		return "", nil, errBadCredentials
	}

	token, err := s.tokens.CreateToken(user.ID.String(), user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return "", nil, err
	}

	return token, user, nil
}
