package handlers

import (
	"github.com/go-playground/validator/v10"
	"petads/internal/config"
	"petads/internal/database"
	"petads/internal/service"
)

type Handlers struct {
	AuthService  service.AuthService
	AdService    service.AdService
	StatsService service.StatsService
	DB           *database.DB
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(service *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:  service.Auth,
		AdService:    service.Ad,
		StatsService: service.Stats,
		DB:           db,
		Cfg:          config,
		Validate:     validator.New(),
	}
}
