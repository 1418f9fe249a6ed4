package infra

import (
	"fmt"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables. The schema is new and owned by
// this service, so AutoMigrate is authoritative — there are no legacy
// migrations to reconcile.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Account{},
		&model.Supplier{},
		&model.SupplierCatalogItem{},
		&model.Product{},
		&model.ProductVariation{},
		&model.Platform{},
		&model.Sale{},
		&model.StockMovement{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
