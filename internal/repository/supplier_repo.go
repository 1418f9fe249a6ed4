package repository

import (
	"context"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierRepository defines data access for suppliers and their catalogs.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Supplier, error)
	// Update saves the supplier fields and replaces its catalog wholesale.
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).
		Preload("Catalog", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("account_id = ?", accountID).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *supplierRepo) List(ctx context.Context, accountID uuid.UUID) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).
		Preload("Catalog", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supplier_id = ?", s.ID).
			Delete(&model.SupplierCatalogItem{}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ?", s.AccountID).Save(s).Error
	})
}

func (r *supplierRepo) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supplier_id = ?", id).
			Delete(&model.SupplierCatalogItem{}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ? AND id = ?", accountID, id).
			Delete(&model.Supplier{}).Error
	})
}
