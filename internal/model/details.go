package model

import "github.com/google/uuid"

// details.go — typed decoration of base entities with resolved names for
// display. Decoration takes plain lookup maps instead of reshaping join
// results, so it is independent of how the rows were fetched.

// Sentinel labels shown when a foreign reference is missing or was deleted.
const (
	UnknownSupplierLabel = "Fornecedor N/A"
	UnknownLabel         = "Desconhecido"
	UnknownColor         = "#ccc"
)

// ProductWithDetails is a Product plus its resolved supplier name.
type ProductWithDetails struct {
	Product
	SupplierName string
}

// SaleWithDetails is a Sale plus resolved product and platform labels.
type SaleWithDetails struct {
	Sale
	ProductName   string
	PlatformName  string
	PlatformColor string
}

// DecorateProduct resolves the supplier name from the given map.
func DecorateProduct(p Product, supplierNames map[uuid.UUID]string) ProductWithDetails {
	name := UnknownSupplierLabel
	if p.SupplierID != nil {
		if n, ok := supplierNames[*p.SupplierID]; ok {
			name = n
		}
	}
	return ProductWithDetails{Product: p, SupplierName: name}
}

// DecorateSale resolves product and platform labels from the given maps.
func DecorateSale(s Sale, productNames map[uuid.UUID]string, platforms map[uuid.UUID]Platform) SaleWithDetails {
	d := SaleWithDetails{
		Sale:          s,
		ProductName:   UnknownLabel,
		PlatformName:  UnknownLabel,
		PlatformColor: UnknownColor,
	}
	if n, ok := productNames[s.ProductID]; ok {
		d.ProductName = n
	}
	if pl, ok := platforms[s.PlatformID]; ok {
		d.PlatformName = pl.Name
		d.PlatformColor = pl.Color
	}
	return d
}
