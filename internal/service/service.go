package service

import (
	"petads/internal/config"
	"petads/internal/repository"
	"petads/internal/storage"
)

type Service struct {
	Auth  AuthService
	Ad    AdService
	Stats StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:  NewAuthService(rep.User, cfg),
		Ad:    NewAdService(rep.Ad, storage, cfg),
		Stats: NewStatsService(rep.Stats),
	}
}
