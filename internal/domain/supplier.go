package domain

import "context"

type Supplier struct {
	SupplierID   int    `gorm:"primaryKey" json:"supplierId"`
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
	HomePage     string `gorm:"type:text" json:"homePage"`
	ProductCount int64  `gorm:"->;-:migration" json:"productCount"`
}

type SupplierRepository interface {
	GetByID(ctx context.Context, id int) (*Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
}
