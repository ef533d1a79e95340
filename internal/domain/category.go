package domain

import "context"

type Category struct {
	CategoryID   int    `gorm:"primaryKey" json:"categoryId"`
	CategoryName string `gorm:"size:15;not null" json:"categoryName"`
	Description  string `gorm:"type:text" json:"description"`
	Picture      string `gorm:"type:text" json:"picture"`
	ProductCount int64  `gorm:"->;-:migration" json:"productCount"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id int) (*Category, error)
	List(ctx context.Context) ([]Category, error)
}
