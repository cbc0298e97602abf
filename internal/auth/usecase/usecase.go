package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/salamtec/inventory-service/internal/auth"
	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/pkg/logger"
)

type authUseCase struct {
	repo      auth.Repository
	logger    logger.ZapLogger
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthUseCase(repo auth.Repository, log logger.ZapLogger, jwtSecret string, tokenTTL time.Duration) auth.UseCase {
	return &authUseCase{
		repo:      repo,
		logger:    log,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (uc *authUseCase) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return model.ErrInvalidInput
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return uc.repo.Create(ctx, model.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: string(hashed),
		Role:     model.RoleUser,
	})
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", auth.ErrInvalidCredentials
	}
	return auth.NewToken(uc.jwtSecret, uc.tokenTTL, user)
}
