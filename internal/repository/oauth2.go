package repository

import (
	"context"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

type OAuth2Repository interface {
	Create(ctx context.Context, record *entity.OAuth2) error
	GetByServiceUserID(ctx context.Context, service, serviceUserID string) (*entity.OAuth2, error)
	GetAllByUserID(ctx context.Context, userID string) ([]entity.OAuth2, error)
}

type oauth2Repository struct{}

func NewOAuth2Repository() OAuth2Repository {
	return &oauth2Repository{}
}

func (r *oauth2Repository) Create(ctx context.Context, record *entity.OAuth2) error {
	return xcontext.DB(ctx).Create(record).Error
}

func (r *oauth2Repository) GetByServiceUserID(
	ctx context.Context, service, serviceUserID string,
) (*entity.OAuth2, error) {
	var result entity.OAuth2
	err := xcontext.DB(ctx).
		Where("service=? AND service_user_id=?", service, serviceUserID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *oauth2Repository) GetAllByUserID(ctx context.Context, userID string) ([]entity.OAuth2, error) {
	var result []entity.OAuth2
	if err := xcontext.DB(ctx).Find(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return result, nil
}
