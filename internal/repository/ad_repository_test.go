package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"petads/internal/models"
)

func adColumns() []string {
	return []string{
		"id", "pet_name", "pet_type", "location", "contact_details",
		"image_key", "user_id", "created_at",
	}
}

func TestAdRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAdRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Успешное создание объявления", func(t *testing.T) {
		ad := &models.Ad{
			PetName:        "Rex",
			PetType:        "dog",
			Location:       "X",
			ContactDetails: "y",
			ImageKey:       "ads/2026/08/abc.jpg",
			UserID:         1,
		}

		mock.ExpectQuery(`
        INSERT INTO ads
        (pet_name, pet_type, location, contact_details, image_key, user_id, created_at)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `).
			WithArgs("Rex", "dog", "X", "y", "ads/2026/08/abc.jpg", int64(1), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, ad)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), ad.ID)
		assert.False(t, ad.CreatedAt.IsZero())
	})

	t.Run("Ошибка БД при создании объявления", func(t *testing.T) {
		ad := &models.Ad{PetName: "Rex", PetType: "dog", UserID: 1}

		mock.ExpectQuery(`
        INSERT INTO ads
        (pet_name, pet_type, location, contact_details, image_key, user_id, created_at)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `).
			WithArgs("Rex", "dog", "", "", "", int64(1), sqlmock.AnyArg()).
			WillReturnError(errors.New("connection refused"))

		err := repo.Create(ctx, ad)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании объявления")
	})
}

func TestAdRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAdRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Фильтр по pet_type возвращает только совпадения", func(t *testing.T) {
		rows := sqlmock.NewRows(adColumns()).
			AddRow(1, "Rex", "dog", "X", "y", "ads/k1.jpg", 1, time.Now()).
			AddRow(2, "Bobik", "dog", "Z", "w", "ads/k2.jpg", 2, time.Now())

		mock.ExpectQuery(`SELECT * FROM ads WHERE pet_type = $1`).
			WithArgs("dog").
			WillReturnRows(rows)

		ads, err := repo.GetAll(ctx, "dog")

		require.NoError(t, err)
		require.Len(t, ads, 2)
		for _, ad := range ads {
			assert.Equal(t, "dog", ad.PetType)
		}
	})

	t.Run("Без фильтра возвращаются все объявления", func(t *testing.T) {
		rows := sqlmock.NewRows(adColumns()).
			AddRow(1, "Rex", "dog", "X", "y", "ads/k1.jpg", 1, time.Now()).
			AddRow(3, "Murka", "cat", "X", "y", "ads/k3.jpg", 1, time.Now())

		mock.ExpectQuery(`SELECT * FROM ads`).
			WillReturnRows(rows)

		ads, err := repo.GetAll(ctx, "")

		require.NoError(t, err)
		assert.Len(t, ads, 2)
	})
}

func TestAdRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAdRepository(sqlxDB)

	ctx := context.Background()

	rows := sqlmock.NewRows(adColumns()).
		AddRow(1, "Rex", "dog", "X", "y", "ads/k1.jpg", 5, time.Now())

	mock.ExpectQuery(`
        SELECT * FROM ads
        WHERE user_id = $1
    `).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	ads, err := repo.GetByUserID(ctx, 5)

	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, int64(5), ads[0].UserID)
}

func TestAdRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAdRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Объявление не найдено", func(t *testing.T) {
		mock.ExpectQuery(`
        SELECT * FROM ads
        WHERE id = $1
    `).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		ad, err := repo.GetByID(ctx, 42)

		assert.Nil(t, ad)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "не найдено")
	})
}

func TestAdRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAdRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Успешное удаление объявления", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM ads WHERE id = $1`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 1)

		assert.NoError(t, err)
	})

	t.Run("Удаление несуществующего объявления", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM ads WHERE id = $1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 42)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "объявление не найдено")
	})
}
