package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"github.com/wyrmsheet/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type SpellRepository interface {
	Create(ctx context.Context, spell *entity.SpellListing, classes []entity.CasterClass) error
	GetByName(ctx context.Context, name string) (*entity.SpellListing, error)
	GetList(ctx context.Context) ([]entity.SpellListing, error)
	GetListByClass(ctx context.Context, class entity.CasterClass) ([]entity.SpellListing, error)
	GetClasses(ctx context.Context, spellName string) ([]entity.CasterClass, error)
}

type spellRepository struct {
	redisClient xredis.Client
}

func NewSpellRepository(redisClient xredis.Client) SpellRepository {
	return &spellRepository{redisClient: redisClient}
}

func (r *spellRepository) cacheKey(name string) string {
	return fmt.Sprintf("cache:spell:%s", name)
}

func (r *spellRepository) cache(ctx context.Context, spell *entity.SpellListing) {
	b, err := json.Marshal(spell)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot marshal spell object: %v", err)
		return
	}

	if err := r.redisClient.Set(ctx, r.cacheKey(spell.Name), string(b)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot set spell redis key: %v", err)
	}
}

func (r *spellRepository) fromCache(ctx context.Context, name string) *entity.SpellListing {
	value, err := r.redisClient.Get(ctx, r.cacheKey(name))
	if err != nil {
		if err != redis.Nil {
			xcontext.Logger(ctx).Warnf("Cannot get spell from redis: %v", err)
		}
		return nil
	}

	var result entity.SpellListing
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot unmarshal spell object: %v", err)
		return nil
	}

	return &result
}

func (r *spellRepository) Create(
	ctx context.Context, spell *entity.SpellListing, classes []entity.CasterClass,
) error {
	if err := xcontext.DB(ctx).Create(spell).Error; err != nil {
		return err
	}

	for _, class := range classes {
		record := &entity.SpellClass{SpellName: spell.Name, Class: class}
		if err := xcontext.DB(ctx).Create(record).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *spellRepository) GetByName(ctx context.Context, name string) (*entity.SpellListing, error) {
	if cached := r.fromCache(ctx, name); cached != nil {
		return cached, nil
	}

	var result entity.SpellListing
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&result).Error; err != nil {
		return nil, err
	}

	r.cache(ctx, &result)
	return &result, nil
}

func (r *spellRepository) GetList(ctx context.Context) ([]entity.SpellListing, error) {
	var result []entity.SpellListing
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *spellRepository) GetListByClass(
	ctx context.Context, class entity.CasterClass,
) ([]entity.SpellListing, error) {
	var result []entity.SpellListing
	err := xcontext.DB(ctx).
		Model(&entity.SpellListing{}).
		Joins("JOIN spell_classes ON spell_classes.spell_name=spell_listings.name").
		Where("spell_classes.class=?", class).
		Order("spell_listings.name ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *spellRepository) GetClasses(ctx context.Context, spellName string) ([]entity.CasterClass, error) {
	var records []entity.SpellClass
	err := xcontext.DB(ctx).
		Where("spell_name=?", spellName).
		Order("class ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	classes := make([]entity.CasterClass, 0, len(records))
	for _, record := range records {
		classes = append(classes, record.Class)
	}

	return classes, nil
}
