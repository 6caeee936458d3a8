package service

import (
	"context"
	"fmt"
	"petads/internal/config"
	"petads/internal/models"
	"petads/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, mobileNumber, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
	}

	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

// Login возвращает идентификатор аккаунта; токены сессии не выдаются,
// клиент сам хранит userId для последующих запросов.
func (s *authService) Login(ctx context.Context, mobileNumber, password string) (*models.User, error) {
	user, err := s.userRepo.VerifyPassword(ctx, mobileNumber, password)
	if err != nil {
		return nil, fmt.Errorf("ошибка аутентификации: %w", err)
	}

	return user, nil
}
