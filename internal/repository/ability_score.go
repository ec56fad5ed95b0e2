package repository

import (
	"context"
	"fmt"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

type AbilityScoreRepository interface {
	Create(ctx context.Context, score *entity.AbilityScore) error
	GetByCharacterAndKind(ctx context.Context, characterID string, kind entity.AbilityKind) (*entity.AbilityScore, error)
	GetListByCharacterID(ctx context.Context, characterID string) ([]entity.AbilityScore, error)
	UpdateValue(ctx context.Context, id string, value int) error
	UpdateProficient(ctx context.Context, id string, proficient bool) error
}

type abilityScoreRepository struct{}

func NewAbilityScoreRepository() AbilityScoreRepository {
	return &abilityScoreRepository{}
}

func (r *abilityScoreRepository) Create(ctx context.Context, score *entity.AbilityScore) error {
	return xcontext.DB(ctx).Create(score).Error
}

func (r *abilityScoreRepository) GetByCharacterAndKind(
	ctx context.Context, characterID string, kind entity.AbilityKind,
) (*entity.AbilityScore, error) {
	var result entity.AbilityScore
	err := xcontext.DB(ctx).
		Where("character_id=? AND kind=?", characterID, kind).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *abilityScoreRepository) GetListByCharacterID(
	ctx context.Context, characterID string,
) ([]entity.AbilityScore, error) {
	var result []entity.AbilityScore
	if err := xcontext.DB(ctx).Find(&result, "character_id=?", characterID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateValue touches only the value column so a stale struct cannot
// overwrite proficiency.
func (r *abilityScoreRepository) UpdateValue(ctx context.Context, id string, value int) error {
	tx := xcontext.DB(ctx).
		Model(&entity.AbilityScore{}).
		Where("id=?", id).
		Update("value", value)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("row affected is empty")
	}

	return nil
}

func (r *abilityScoreRepository) UpdateProficient(ctx context.Context, id string, proficient bool) error {
	return xcontext.DB(ctx).
		Model(&entity.AbilityScore{}).
		Where("id=?", id).
		Update("proficient", proficient).Error
}
