package repository

import (
	"context"
	"fmt"
	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте пользователей: %w", err)
	}

	return count, nil
}

func (r *statsRepository) CountAds(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM ads`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте объявлений: %w", err)
	}

	return count, nil
}
