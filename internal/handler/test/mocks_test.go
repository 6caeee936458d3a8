package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"petads/internal/models"
	"petads/internal/repository"
	"petads/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, mobileNumber, password string) (*models.User, error) {
	args := m.Called(ctx, mobileNumber, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockAdService struct {
	mock.Mock
}

func (m *MockAdService) CreateAd(ctx context.Context, req repository.CreateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error) {
	args := m.Called(ctx, req, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdService) ListAds(ctx context.Context, petType string) ([]models.Ad, error) {
	args := m.Called(ctx, petType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdService) GetAdImage(ctx context.Context, adID int64) (io.ReadCloser, string, int64, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, "", 0, args.Error(3)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Get(2).(int64), args.Error(3)
}

func (m *MockAdService) ListAdsByOwner(ctx context.Context, userID int64) ([]models.Ad, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdService) DeleteAd(ctx context.Context, adID int64) error {
	args := m.Called(ctx, adID)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}
