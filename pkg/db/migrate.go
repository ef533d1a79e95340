package db

import (
	"fmt"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"gorm.io/gorm"
)

// Migrate creates or updates every table of the catalog schema.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&domain.Category{},
		&domain.Supplier{},
		&domain.Product{},
		&domain.Customer{},
		&domain.Employee{},
		&domain.Shipper{},
		&domain.Order{},
		&domain.OrderDetail{},
		&domain.User{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}
