package repository

import (
	"context"
	"fmt"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	Get(ctx context.Context, family string) (*entity.RefreshToken, error)
	Rotate(ctx context.Context, family string) error
	Delete(ctx context.Context, family string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type refreshTokenRepository struct{}

func NewRefreshTokenRepository() RefreshTokenRepository {
	return &refreshTokenRepository{}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return xcontext.DB(ctx).Create(token).Error
}

func (r *refreshTokenRepository) Get(ctx context.Context, family string) (*entity.RefreshToken, error) {
	var result entity.RefreshToken
	if err := xcontext.DB(ctx).Where("family=?", family).Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *refreshTokenRepository) Rotate(ctx context.Context, family string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.RefreshToken{}).
		Where("family=?", family).
		Update("counter", gorm.Expr("counter+?", 1))
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("row affected is empty")
	}

	return nil
}

func (r *refreshTokenRepository) Delete(ctx context.Context, family string) error {
	return xcontext.DB(ctx).Delete(&entity.RefreshToken{}, "family=?", family).Error
}

func (r *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).Delete(&entity.RefreshToken{}, "user_id=?", userID).Error
}
