package usecase

import (
	"context"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mediaUsecase struct {
	mediaRepo domain.MediaRepository
	timeout   time.Duration
}

func NewMediaUsecase(mediaRepo domain.MediaRepository, timeout time.Duration) domain.MediaUsecase {
	return &mediaUsecase{
		mediaRepo: mediaRepo,
		timeout:   timeout,
	}
}

func (uc *mediaUsecase) List(ctx context.Context, filter domain.MediaFilter, opts domain.ListOptions) ([]domain.MediaItem, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.mediaRepo.List(ctx, filter, opts)
}

func (uc *mediaUsecase) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	media, err := uc.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, domain.ErrMediaNotFound
	}
	return media, nil
}
