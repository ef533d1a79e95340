package usecase

import (
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
)

type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResult computes the page count as ceil(total / pageSize).
func NewPagedResult[T any](items []T, total int64, page, pageSize int) *PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &PagedResult[T]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type ProductDTO struct {
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

type ProductCategoryDTO struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

type ProductSupplierDTO struct {
	SupplierID  int    `json:"supplierId"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
}

type ProductDetailDTO struct {
	ProductDTO
	Category *ProductCategoryDTO `json:"category,omitempty"`
	Supplier *ProductSupplierDTO `json:"supplier,omitempty"`
}

// ProductInput is the editable part of a product, used for create and update.
type ProductInput struct {
	ProductName     string  `json:"productName"     binding:"required"`
	SupplierID      *int    `json:"supplierId"`
	CategoryID      *int    `json:"categoryId"`
	QuantityPerUnit string  `json:"quantityPerUnit"`
	UnitPrice       float64 `json:"unitPrice"`
	UnitsInStock    int     `json:"unitsInStock"`
	UnitsOnOrder    int     `json:"unitsOnOrder"`
	ReorderLevel    int     `json:"reorderLevel"`
	Discontinued    bool    `json:"discontinued"`
}

type BulkRequest struct {
	Count int `json:"count"`
}

type BulkResult struct {
	ProductsCreated     int    `json:"productsCreated"`
	ElapsedMilliseconds int64  `json:"elapsedMilliseconds"`
	Message             string `json:"message"`
}

type CategoryDTO struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Picture      string `json:"picture"`
	ProductCount int64  `json:"productCount"`
}

type CategoryInput struct {
	CategoryName string `json:"categoryName" binding:"required"`
	Description  string `json:"description"`
	Picture      string `json:"picture"`
}

type SupplierDTO struct {
	SupplierID   int    `json:"supplierId"`
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	ProductCount int64  `json:"productCount"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email"    binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Role     string `json:"role"     binding:"omitempty,catalogrole"`
}

type UserDTO struct {
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}

type OrderDetailDTO struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Discount    float64 `json:"discount"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderDTO struct {
	OrderID      int              `json:"orderId"`
	CustomerID   *string          `json:"customerId"`
	CustomerName string           `json:"customerName,omitempty"`
	EmployeeID   *int             `json:"employeeId"`
	EmployeeName string           `json:"employeeName,omitempty"`
	ShipperName  string           `json:"shipperName,omitempty"`
	OrderDate    *time.Time       `json:"orderDate"`
	RequiredDate *time.Time       `json:"requiredDate"`
	ShippedDate  *time.Time       `json:"shippedDate"`
	Freight      float64          `json:"freight"`
	ShipName     string           `json:"shipName"`
	ShipCountry  string           `json:"shipCountry"`
	Details      []OrderDetailDTO `json:"details"`
	Total        float64          `json:"total"`
}

type OrderInput struct {
	CustomerID   *string            `json:"customerId"`
	EmployeeID   *int               `json:"employeeId"`
	RequiredDate *time.Time         `json:"requiredDate"`
	ShipVia      *int               `json:"shipVia"`
	Freight      float64            `json:"freight"`
	ShipName     string             `json:"shipName"`
	ShipAddress  string             `json:"shipAddress"`
	ShipCity     string             `json:"shipCity"`
	ShipCountry  string             `json:"shipCountry"`
	Details      []OrderDetailInput `json:"details" binding:"required"`
}

type OrderDetailInput struct {
	ProductID int      `json:"productId" binding:"required"`
	UnitPrice *float64 `json:"unitPrice"`
	Quantity  int      `json:"quantity"  binding:"required"`
	Discount  float64  `json:"discount"`
}

func toProductDTO(p *domain.Product) ProductDTO {
	dto := ProductDTO{
		ProductID:       p.ProductID,
		ProductName:     p.ProductName,
		SupplierID:      p.SupplierID,
		CategoryID:      p.CategoryID,
		QuantityPerUnit: p.QuantityPerUnit,
		UnitPrice:       p.UnitPrice,
		UnitsInStock:    p.UnitsInStock,
		UnitsOnOrder:    p.UnitsOnOrder,
		ReorderLevel:    p.ReorderLevel,
		Discontinued:    p.Discontinued,
	}
	if p.Category != nil {
		dto.CategoryName = p.Category.CategoryName
	}
	if p.Supplier != nil {
		dto.SupplierName = p.Supplier.CompanyName
	}
	return dto
}

func toProductDetailDTO(p *domain.Product) *ProductDetailDTO {
	dto := &ProductDetailDTO{ProductDTO: toProductDTO(p)}
	if p.Category != nil {
		dto.Category = &ProductCategoryDTO{
			CategoryID:   p.Category.CategoryID,
			CategoryName: p.Category.CategoryName,
			Description:  p.Category.Description,
		}
	}
	if p.Supplier != nil {
		dto.Supplier = &ProductSupplierDTO{
			SupplierID:  p.Supplier.SupplierID,
			CompanyName: p.Supplier.CompanyName,
			ContactName: p.Supplier.ContactName,
			City:        p.Supplier.City,
			Country:     p.Supplier.Country,
			Phone:       p.Supplier.Phone,
		}
	}
	return dto
}

func toCategoryDTO(c *domain.Category) CategoryDTO {
	return CategoryDTO{
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		Description:  c.Description,
		Picture:      c.Picture,
		ProductCount: c.ProductCount,
	}
}

func toSupplierDTO(s *domain.Supplier) SupplierDTO {
	return SupplierDTO{
		SupplierID:   s.SupplierID,
		CompanyName:  s.CompanyName,
		ContactName:  s.ContactName,
		ContactTitle: s.ContactTitle,
		City:         s.City,
		Country:      s.Country,
		Phone:        s.Phone,
		ProductCount: s.ProductCount,
	}
}

func toUserDTO(u *domain.User) *UserDTO {
	return &UserDTO{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}

func toOrderDTO(o *domain.Order) OrderDTO {
	dto := OrderDTO{
		OrderID:      o.OrderID,
		CustomerID:   o.CustomerID,
		EmployeeID:   o.EmployeeID,
		OrderDate:    o.OrderDate,
		RequiredDate: o.RequiredDate,
		ShippedDate:  o.ShippedDate,
		Freight:      o.Freight,
		ShipName:     o.ShipName,
		ShipCountry:  o.ShipCountry,
		Details:      make([]OrderDetailDTO, 0, len(o.Details)),
		Total:        o.Total(),
	}
	if o.Customer != nil {
		dto.CustomerName = o.Customer.CompanyName
	}
	if o.Employee != nil {
		dto.EmployeeName = o.Employee.FullName()
	}
	if o.Shipper != nil {
		dto.ShipperName = o.Shipper.CompanyName
	}
	for _, d := range o.Details {
		line := OrderDetailDTO{
			ProductID: d.ProductID,
			UnitPrice: d.UnitPrice,
			Quantity:  d.Quantity,
			Discount:  d.Discount,
			Subtotal:  d.Subtotal(),
		}
		if d.Product != nil {
			line.ProductName = d.Product.ProductName
		}
		dto.Details = append(dto.Details, line)
	}
	return dto
}
