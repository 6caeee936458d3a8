package repository

import (
	"context"
	"petads/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobileNumber string) (*models.User, error)
	VerifyPassword(ctx context.Context, mobileNumber, password string) (*models.User, error)
}

type AdRepository interface {
	Create(ctx context.Context, ad *models.Ad) error
	GetByID(ctx context.Context, adID int64) (*models.Ad, error)
	GetAll(ctx context.Context, petType string) ([]models.Ad, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Ad, error)
	Delete(ctx context.Context, adID int64) error
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountAds(ctx context.Context) (int, error)
}

type Repository struct {
	User  UserRepository
	Ad    AdRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Ad:    NewAdRepository(db),
		Stats: NewStatsRepository(db),
	}
}
