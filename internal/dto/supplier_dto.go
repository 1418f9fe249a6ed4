package dto

import "github.com/shopspring/decimal"

// CatalogItemRequest is one {model, price} line of the supplier price list.
type CatalogItemRequest struct {
	Model string          `json:"model" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"min=0"`
}

// SupplierRequest creates or fully updates a supplier. The catalog replaces
// the stored list wholesale, preserving the submitted order.
type SupplierRequest struct {
	Name        string               `json:"name" validate:"required"`
	ContactName *string              `json:"contact_name"`
	Phone       *string              `json:"phone"`
	Email       *string              `json:"email" validate:"omitempty,email"`
	Address     *string              `json:"address"`
	Catalog     []CatalogItemRequest `json:"catalog" validate:"dive"`
}

// SupplierResponse mirrors a supplier with its ordered catalog.
type SupplierResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	ContactName *string              `json:"contact_name,omitempty"`
	Phone       *string              `json:"phone,omitempty"`
	Email       *string              `json:"email,omitempty"`
	Address     *string              `json:"address,omitempty"`
	Catalog     []CatalogItemRequest `json:"catalog"`
}

// CostHintResponse is the catalog price suggested for a product name.
type CostHintResponse struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Model        string          `json:"model"`
	Price        decimal.Decimal `json:"price"`
}
