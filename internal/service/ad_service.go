package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"petads/internal/config"
	"petads/internal/models"
	"petads/internal/repository"
	"petads/internal/storage"
)

type AdService interface {
	CreateAd(ctx context.Context, req repository.CreateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error)
	ListAds(ctx context.Context, petType string) ([]models.Ad, error)
	GetAdImage(ctx context.Context, adID int64) (io.ReadCloser, string, int64, error)
	ListAdsByOwner(ctx context.Context, userID int64) ([]models.Ad, error)
	DeleteAd(ctx context.Context, adID int64) error
}

type adService struct {
	adRepo  repository.AdRepository
	storage storage.Storage
	cfg     *config.Config
}

func NewAdService(adRepo repository.AdRepository, storage storage.Storage, cfg *config.Config) AdService {
	return &adService{
		adRepo:  adRepo,
		storage: storage,
		cfg:     cfg,
	}
}

func (s *adService) CreateAd(ctx context.Context, req repository.CreateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error) {
	objectName, err := s.storage.UploadImage(ctx, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	ad := &models.Ad{
		PetName:        req.PetName,
		PetType:        req.PetType,
		Location:       req.Location,
		ContactDetails: req.ContactDetails,
		ImageKey:       objectName,
		UserID:         req.UserID,
	}

	err = s.adRepo.Create(ctx, ad)
	if err != nil {
		// объявление не сохранилось, убираем загруженный объект
		s.storage.DeleteImage(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения объявления в БД: %w", err)
	}

	ad.ImageURL = imageURL(ad.ID)

	return ad, nil
}

func (s *adService) ListAds(ctx context.Context, petType string) ([]models.Ad, error) {
	ads, err := s.adRepo.GetAll(ctx, petType)
	if err != nil {
		return nil, err
	}

	for i := range ads {
		ads[i].ImageURL = imageURL(ads[i].ID)
	}

	return ads, nil
}

func (s *adService) GetAdImage(ctx context.Context, adID int64) (io.ReadCloser, string, int64, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, "", 0, err
	}

	object, contentType, size, err := s.storage.GetImage(ctx, ad.ImageKey)
	if err != nil {
		return nil, "", 0, fmt.Errorf("ошибка получения изображения объявления: %w", err)
	}

	return object, contentType, size, nil
}

func (s *adService) ListAdsByOwner(ctx context.Context, userID int64) ([]models.Ad, error) {
	ads, err := s.adRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range ads {
		ads[i].ImageURL = imageURL(ads[i].ID)
	}

	return ads, nil
}

func (s *adService) DeleteAd(ctx context.Context, adID int64) error {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return err
	}

	err = s.adRepo.Delete(ctx, adID)
	if err != nil {
		return err
	}

	// удаление объекта best-effort: строка уже удалена, ошибку не поднимаем
	if err := s.storage.DeleteImage(ctx, ad.ImageKey); err != nil {
		log.Printf("Предупреждение: не удалось удалить изображение %s из MinIO: %v", ad.ImageKey, err)
	}

	return nil
}

func imageURL(adID int64) string {
	return fmt.Sprintf("/ads/%d/image", adID)
}
