package client

import (
	"net/url"
	"strconv"
	"time"
)

type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

type Product struct {
	ProductID       int     `json:"productId"`
	ProductName     string  `json:"productName"`
	SupplierID      *int    `json:"supplierId"`
	CategoryID      *int    `json:"categoryId"`
	QuantityPerUnit string  `json:"quantityPerUnit"`
	UnitPrice       float64 `json:"unitPrice"`
	UnitsInStock    int     `json:"unitsInStock"`
	UnitsOnOrder    int     `json:"unitsOnOrder"`
	ReorderLevel    int     `json:"reorderLevel"`
	Discontinued    bool    `json:"discontinued"`
	CategoryName    string  `json:"categoryName,omitempty"`
	SupplierName    string  `json:"supplierName,omitempty"`
}

type ProductDetail struct {
	Product
	Category *struct {
		CategoryID   int    `json:"categoryId"`
		CategoryName string `json:"categoryName"`
		Description  string `json:"description"`
	} `json:"category,omitempty"`
	Supplier *struct {
		SupplierID  int    `json:"supplierId"`
		CompanyName string `json:"companyName"`
		ContactName string `json:"contactName"`
		City        string `json:"city"`
		Country     string `json:"country"`
		Phone       string `json:"phone"`
	} `json:"supplier,omitempty"`
}

type ProductInput struct {
	ProductName     string  `json:"productName"`
	SupplierID      *int    `json:"supplierId,omitempty"`
	CategoryID      *int    `json:"categoryId,omitempty"`
	QuantityPerUnit string  `json:"quantityPerUnit,omitempty"`
	UnitPrice       float64 `json:"unitPrice"`
	UnitsInStock    int     `json:"unitsInStock"`
	UnitsOnOrder    int     `json:"unitsOnOrder"`
	ReorderLevel    int     `json:"reorderLevel"`
	Discontinued    bool    `json:"discontinued"`
}

// ProductQuery holds the optional list filters. Zero values are omitted.
type ProductQuery struct {
	Page       int
	PageSize   int
	CategoryID *int
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.CategoryID != nil {
		v.Set("categoryId", strconv.Itoa(*q.CategoryID))
	}
	if q.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

type BulkResult struct {
	ProductsCreated     int    `json:"productsCreated"`
	ElapsedMilliseconds int64  `json:"elapsedMilliseconds"`
	Message             string `json:"message"`
}

type Category struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Picture      string `json:"picture"`
	ProductCount int64  `json:"productCount"`
}

type CategoryInput struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description,omitempty"`
	Picture      string `json:"picture,omitempty"`
}

type Supplier struct {
	SupplierID   int    `json:"supplierId"`
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	ProductCount int64  `json:"productCount"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type User struct {
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}
