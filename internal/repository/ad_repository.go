package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"petads/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

type AdRepositoryImpl struct {
	db *sqlx.DB
}

type CreateAdRequest struct {
	PetName        string `json:"pet_name"`
	PetType        string `json:"pet_type"`
	Location       string `json:"location"`
	ContactDetails string `json:"contact_details"`
	UserID         int64  `json:"user_id"`
}

func NewAdRepository(db *sqlx.DB) *AdRepositoryImpl {
	return &AdRepositoryImpl{db: db}
}

func (r *AdRepositoryImpl) Create(ctx context.Context, ad *models.Ad) error {
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO ads
        (pet_name, pet_type, location, contact_details, image_key, user_id, created_at)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `

	err := r.db.QueryRowxContext(ctx, query,
		ad.PetName,
		ad.PetType,
		ad.Location,
		ad.ContactDetails,
		ad.ImageKey,
		ad.UserID,
		ad.CreatedAt,
	).Scan(&ad.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании объявления: %w", err)
	}

	return nil
}

func (r *AdRepositoryImpl) GetByID(ctx context.Context, adID int64) (*models.Ad, error) {
	query := `
        SELECT * FROM ads
        WHERE id = $1
    `

	var ad models.Ad
	err := r.db.GetContext(ctx, &ad, query, adID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("объявление с ID %d не найдено", adID)
		}
		return nil, fmt.Errorf("ошибка при получении объявления: %w", err)
	}

	return &ad, nil
}

func (r *AdRepositoryImpl) GetAll(ctx context.Context, petType string) ([]models.Ad, error) {
	var ads []models.Ad
	var err error

	if petType != "" {
		query := `SELECT * FROM ads WHERE pet_type = $1`
		err = r.db.SelectContext(ctx, &ads, query, petType)
	} else {
		query := `SELECT * FROM ads`
		err = r.db.SelectContext(ctx, &ads, query)
	}

	if err != nil {
		return nil, fmt.Errorf("ошибка при получении объявлений: %w", err)
	}

	return ads, nil
}

func (r *AdRepositoryImpl) GetByUserID(ctx context.Context, userID int64) ([]models.Ad, error) {
	query := `
        SELECT * FROM ads
        WHERE user_id = $1
    `

	var ads []models.Ad
	err := r.db.SelectContext(ctx, &ads, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении объявлений пользователя: %w", err)
	}

	return ads, nil
}

func (r *AdRepositoryImpl) Delete(ctx context.Context, adID int64) error {
	query := `DELETE FROM ads WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, adID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении объявления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("объявление не найдено")
	}

	return nil
}
