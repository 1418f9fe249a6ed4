package repository

import (
	"context"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlatformRepository defines data access for sales channels.
type PlatformRepository interface {
	Create(ctx context.Context, p *model.Platform) error
	FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Platform, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Platform, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	// SeedDefaults inserts the default channel set, skipping names the
	// account already has — a concurrent seed just loses the conflict.
	SeedDefaults(ctx context.Context, platforms []model.Platform) error
}

type platformRepo struct{ db *gorm.DB }

func NewPlatformRepository(db *gorm.DB) PlatformRepository { return &platformRepo{db: db} }

func (r *platformRepo) Create(ctx context.Context, p *model.Platform) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *platformRepo) FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Platform, error) {
	var p model.Platform
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *platformRepo) List(ctx context.Context, accountID uuid.UUID) ([]model.Platform, error) {
	var platforms []model.Platform
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&platforms).Error
	return platforms, err
}

func (r *platformRepo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Platform{}).
		Where("account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

func (r *platformRepo) SeedDefaults(ctx context.Context, platforms []model.Platform) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&platforms).Error
}
