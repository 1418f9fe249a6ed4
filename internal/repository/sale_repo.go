package repository

import (
	"context"
	"time"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository defines data access for sales. Create and Delete take a tx
// because they are always part of the stock-reconciliation transaction.
type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	DeleteTx(tx *gorm.DB, accountID, id uuid.UUID) error
	FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) ([]model.Sale, error)
	UpdateStatus(ctx context.Context, accountID, id uuid.UUID, status string) error
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) DeleteTx(tx *gorm.DB, accountID, id uuid.UUID) error {
	return tx.Where("account_id = ? AND id = ?", accountID, id).
		Delete(&model.Sale{}).Error
}

func (r *saleRepo) FindByID(ctx context.Context, accountID, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) ([]model.Sale, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)

	if filter.PlatformID != "" {
		q = q.Where("platform_id = ?", filter.PlatformID)
	}
	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		if from, err := time.Parse("2006-01-02", filter.From); err == nil {
			q = q.Where("date_sale >= ?", from)
		}
	}
	if filter.To != "" {
		if to, err := time.Parse("2006-01-02", filter.To); err == nil {
			q = q.Where("date_sale < ?", to.AddDate(0, 0, 1))
		}
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var sales []model.Sale
	err := q.Order("date_sale DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) UpdateStatus(ctx context.Context, accountID, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("account_id = ? AND id = ?", accountID, id).
		Update("status", status).Error
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
