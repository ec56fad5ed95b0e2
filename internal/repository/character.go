package repository

import (
	"context"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

type CharacterRepository interface {
	Create(ctx context.Context, character *entity.Character) error
	GetByID(ctx context.Context, id string) (*entity.Character, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.Character, error)
	UpdateByID(ctx context.Context, id string, data *entity.Character) error
	DeleteByID(ctx context.Context, id string) error
}

type characterRepository struct{}

func NewCharacterRepository() CharacterRepository {
	return &characterRepository{}
}

func (r *characterRepository) Create(ctx context.Context, character *entity.Character) error {
	return xcontext.DB(ctx).Create(character).Error
}

func (r *characterRepository) GetByID(ctx context.Context, id string) (*entity.Character, error) {
	var result entity.Character
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *characterRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.Character, error) {
	var result []entity.Character
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("name ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *characterRepository) UpdateByID(ctx context.Context, id string, data *entity.Character) error {
	return xcontext.DB(ctx).
		Model(&entity.Character{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *characterRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Character{}, "id=?", id).Error
}
