package domain

import (
	"context"
	"time"
)

type Customer struct {
	CustomerID   string `gorm:"primaryKey;type:char(5)" json:"customerId"`
	CompanyName  string `gorm:"size:40;not null" json:"companyName"`
	ContactName  string `gorm:"size:30" json:"contactName"`
	ContactTitle string `gorm:"size:30" json:"contactTitle"`
	Address      string `gorm:"size:60" json:"address"`
	City         string `gorm:"size:15" json:"city"`
	Region       string `gorm:"size:15" json:"region"`
	PostalCode   string `gorm:"size:10" json:"postalCode"`
	Country      string `gorm:"size:15" json:"country"`
	Phone        string `gorm:"size:24" json:"phone"`
	Fax          string `gorm:"size:24" json:"fax"`
}

type Employee struct {
	EmployeeID int        `gorm:"primaryKey" json:"employeeId"`
	LastName   string     `gorm:"size:20;not null" json:"lastName"`
	FirstName  string     `gorm:"size:10;not null" json:"firstName"`
	Title      string     `gorm:"size:30" json:"title"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	HireDate   *time.Time `json:"hireDate,omitempty"`
	Address    string     `gorm:"size:60" json:"address"`
	City       string     `gorm:"size:15" json:"city"`
	Country    string     `gorm:"size:15" json:"country"`
	ReportsTo  *int       `json:"reportsTo,omitempty"`
	Manager    *Employee  `gorm:"foreignKey:ReportsTo;references:EmployeeID" json:"-"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Shipper struct {
	ShipperID   int    `gorm:"primaryKey" json:"shipperId"`
	CompanyName string `gorm:"size:40;not null" json:"companyName"`
	Phone       string `gorm:"size:24" json:"phone"`
}

type Order struct {
	OrderID      int     `gorm:"primaryKey"`
	CustomerID   *string `gorm:"type:char(5);index"`
	EmployeeID   *int    `gorm:"index"`
	OrderDate    *time.Time
	RequiredDate *time.Time
	ShippedDate  *time.Time
	ShipVia      *int
	Freight      float64       `gorm:"type:decimal(18,2)"`
	ShipName     string        `gorm:"size:40"`
	ShipAddress  string        `gorm:"size:60"`
	ShipCity     string        `gorm:"size:15"`
	ShipCountry  string        `gorm:"size:15"`
	Customer     *Customer
	Employee     *Employee
	Shipper      *Shipper      `gorm:"foreignKey:ShipVia;references:ShipperID"`
	Details      []OrderDetail `gorm:"foreignKey:OrderID;references:OrderID"`
}

type OrderDetail struct {
	OrderID   int     `gorm:"primaryKey;autoIncrement:false"`
	ProductID int     `gorm:"primaryKey;autoIncrement:false"`
	UnitPrice float64 `gorm:"type:decimal(18,2);not null"`
	Quantity  int     `gorm:"not null"`
	Discount  float64 `gorm:"type:real;not null"`
	Product   *Product
}

// Subtotal is the line amount after discount.
func (d OrderDetail) Subtotal() float64 {
	return d.UnitPrice * float64(d.Quantity) * (1 - d.Discount)
}

// Total sums every line subtotal plus freight.
func (o Order) Total() float64 {
	total := o.Freight
	for _, d := range o.Details {
		total += d.Subtotal()
	}
	return total
}

type OrderRepository interface {
	// Create inserts the order and its details in one transaction.
	Create(ctx context.Context, order *Order) error
	GetWithDetails(ctx context.Context, id int) (*Order, error)
	List(ctx context.Context, limit, offset int) ([]Order, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
}

type ShipperRepository interface {
	GetByID(ctx context.Context, id int) (*Shipper, error)
	List(ctx context.Context) ([]Shipper, error)
}
