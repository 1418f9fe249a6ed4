package repository

import (
	"context"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines data access for products and their variations.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs. Every query is scoped to the owner
// account.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, accountID, id uuid.UUID) error
	UpdateImageURL(ctx context.Context, accountID, id uuid.UUID, url *string) error

	// Variations
	CreateVariationTx(tx *gorm.DB, v *model.ProductVariation) error
	FindVariationByID(ctx context.Context, accountID, id uuid.UUID) (*model.ProductVariation, error)
	ListVariations(ctx context.Context, accountID, productID uuid.UUID) ([]model.ProductVariation, error)
	DeleteVariationTx(tx *gorm.DB, accountID, id uuid.UUID) error

	// Stock mutations used inside the sale transaction — callers pass the tx.
	// Decrements clamp at zero in SQL (GREATEST) so the floor holds even when
	// two transactions race on the same row.
	FindByIDTx(tx *gorm.DB, accountID, id uuid.UUID) (*model.Product, error)
	FindVariationByIDTx(tx *gorm.DB, accountID, id uuid.UUID) (*model.ProductVariation, error)
	AdjustStockTx(tx *gorm.DB, accountID, id uuid.UUID, delta int) error
	AdjustVariationStockTx(tx *gorm.DB, accountID, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Variations").
		Where("account_id = ?", accountID).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, accountID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Variations").
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).
		Where("account_id = ?", p.AccountID).
		Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&model.Product{}).Error
}

func (r *productRepo) UpdateImageURL(ctx context.Context, accountID, id uuid.UUID, url *string) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("account_id = ? AND id = ?", accountID, id).
		Update("image_url", url).Error
}

func (r *productRepo) CreateVariationTx(tx *gorm.DB, v *model.ProductVariation) error {
	return tx.Create(v).Error
}

func (r *productRepo) FindVariationByID(ctx context.Context, accountID, id uuid.UUID) (*model.ProductVariation, error) {
	var v model.ProductVariation
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *productRepo) ListVariations(ctx context.Context, accountID, productID uuid.UUID) ([]model.ProductVariation, error) {
	var variations []model.ProductVariation
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND product_id = ?", accountID, productID).
		Order("color ASC, size ASC").
		Find(&variations).Error
	return variations, err
}

func (r *productRepo) DeleteVariationTx(tx *gorm.DB, accountID, id uuid.UUID) error {
	return tx.Where("account_id = ? AND id = ?", accountID, id).
		Delete(&model.ProductVariation{}).Error
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, accountID, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := tx.Where("account_id = ?", accountID).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) FindVariationByIDTx(tx *gorm.DB, accountID, id uuid.UUID) (*model.ProductVariation, error) {
	var v model.ProductVariation
	err := tx.Where("account_id = ?", accountID).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *productRepo) AdjustStockTx(tx *gorm.DB, accountID, id uuid.UUID, delta int) error {
	return tx.Model(&model.Product{}).
		Where("account_id = ? AND id = ?", accountID, id).
		Update("stock_quantity", gorm.Expr("GREATEST(stock_quantity + ?, 0)", delta)).Error
}

func (r *productRepo) AdjustVariationStockTx(tx *gorm.DB, accountID, id uuid.UUID, delta int) error {
	return tx.Model(&model.ProductVariation{}).
		Where("account_id = ? AND id = ?", accountID, id).
		Update("stock_quantity", gorm.Expr("GREATEST(stock_quantity + ?, 0)", delta)).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
