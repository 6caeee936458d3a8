package service

import (
	"context"
	"petads/internal/repository"
)

type Stats struct {
	Users int `json:"users"`
	Ads   int `json:"ads"`
}

type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (t *statsService) GetStats(ctx context.Context) (*Stats, error) {
	users, err := t.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	ads, err := t.statsRepo.CountAds(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{Users: users, Ads: ads}, nil
}
