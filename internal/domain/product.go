package domain

import (
	"context"
	"math"
)

type Product struct {
	ProductID       int       `gorm:"primaryKey" json:"productId"`
	ProductName     string    `gorm:"size:40;not null;index" json:"productName"`
	SupplierID      *int      `gorm:"index" json:"supplierId"`
	CategoryID      *int      `gorm:"index" json:"categoryId"`
	QuantityPerUnit string    `gorm:"size:20" json:"quantityPerUnit"`
	UnitPrice       float64   `gorm:"type:decimal(18,2);not null;index" json:"unitPrice"`
	UnitsInStock    int       `json:"unitsInStock"`
	UnitsOnOrder    int       `json:"unitsOnOrder"`
	ReorderLevel    int       `json:"reorderLevel"`
	Discontinued    bool      `gorm:"not null" json:"discontinued"`
	Category        *Category `json:"category,omitempty"`
	Supplier        *Supplier `json:"supplier,omitempty"`
}

// ProductFilter describes one page of the product listing. Nil filter fields are ignored.
type ProductFilter struct {
	Page       int
	PageSize   int
	CategoryID *int
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize clamps paging values into their accepted ranges.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	// keeps Offset from overflowing
	if maxPage := math.MaxInt / f.PageSize; f.Page > maxPage {
		f.Page = maxPage
	}
	return f
}

func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	// CreateBatch persists all products atomically.
	CreateBatch(ctx context.Context, products []Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	// GetWithDetails loads the product together with its category and supplier.
	GetWithDetails(ctx context.Context, id int) (*Product, error)
	Update(ctx context.Context, product *Product) error
	List(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
}
