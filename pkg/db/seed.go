package db

import (
	"fmt"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"gorm.io/gorm"
)

// HashFunc turns a plaintext password into a stored hash.
type HashFunc func(password string) (string, error)

type seedUser struct {
	username, password, email, first, last, role string
}

var seedUsers = []seedUser{
	{"admin", "Admin123!", "admin@productcatalog.com", "Admin", "System", domain.RoleAdmin},
	{"user", "User123!", "user@productcatalog.com", "Regular", "User", domain.RoleUser},
}

var seedCategories = []domain.Category{
	{CategoryID: 1, CategoryName: "Beverages", Description: "Soft drinks, coffees, teas, beers, and ales"},
	{CategoryID: 2, CategoryName: "Condiments", Description: "Sweet and savory sauces, relishes, spreads, and seasonings"},
	{CategoryID: 3, CategoryName: "Confections", Description: "Desserts, candies, and sweet breads"},
	{CategoryID: 4, CategoryName: "Dairy Products", Description: "Cheeses"},
	{CategoryID: 5, CategoryName: "Grains/Cereals", Description: "Breads, crackers, pasta, and cereal"},
	{CategoryID: 6, CategoryName: "Meat/Poultry", Description: "Prepared meats"},
	{CategoryID: 7, CategoryName: "Produce", Description: "Dried fruit and bean curd"},
	{CategoryID: 8, CategoryName: "Seafood", Description: "Seaweed and fish"},
}

var seedSuppliers = []domain.Supplier{
	{SupplierID: 1, CompanyName: "Exotic Liquids", ContactName: "Charlotte Cooper", ContactTitle: "Purchasing Manager",
		Address: "49 Gilbert St.", City: "London", PostalCode: "EC1 4SD", Country: "UK", Phone: "(171) 555-2222"},
	{SupplierID: 2, CompanyName: "New Orleans Cajun Delights", ContactName: "Shelley Burke", ContactTitle: "Order Administrator",
		Address: "P.O. Box 78934", City: "New Orleans", Region: "LA", PostalCode: "70117", Country: "USA", Phone: "(100) 555-4822"},
	{SupplierID: 3, CompanyName: "Grandma Kelly's Homestead", ContactName: "Regina Murphy", ContactTitle: "Sales Representative",
		Address: "707 Oxford Rd.", City: "Ann Arbor", Region: "MI", PostalCode: "48104", Country: "USA", Phone: "(313) 555-5735"},
	{SupplierID: 4, CompanyName: "Tokyo Traders", ContactName: "Yoshi Nagase", ContactTitle: "Marketing Manager",
		Address: "9-8 Sekimai Musashino-shi", City: "Tokyo", PostalCode: "100", Country: "Japan", Phone: "(03) 3555-5011"},
	{SupplierID: 5, CompanyName: "Cooperativa de Quesos 'Las Cabras'", ContactName: "Antonio del Valle Saavedra", ContactTitle: "Export Administrator",
		Address: "Calle del Rosal 4", City: "Oviedo", Region: "Asturias", PostalCode: "33007", Country: "Spain", Phone: "(98) 598 76 54"},
}

func ref(id int) *int { return &id }

var seedProducts = []domain.Product{
	{ProductID: 1, ProductName: "Chai", SupplierID: ref(1), CategoryID: ref(1), QuantityPerUnit: "10 boxes x 20 bags", UnitPrice: 18, UnitsInStock: 39, ReorderLevel: 10},
	{ProductID: 2, ProductName: "Chang", SupplierID: ref(1), CategoryID: ref(1), QuantityPerUnit: "24 - 12 oz bottles", UnitPrice: 19, UnitsInStock: 17, UnitsOnOrder: 40, ReorderLevel: 25},
	{ProductID: 3, ProductName: "Aniseed Syrup", SupplierID: ref(1), CategoryID: ref(2), QuantityPerUnit: "12 - 550 ml bottles", UnitPrice: 10, UnitsInStock: 13, UnitsOnOrder: 70, ReorderLevel: 25},
	{ProductID: 4, ProductName: "Chef Anton's Cajun Seasoning", SupplierID: ref(2), CategoryID: ref(2), QuantityPerUnit: "48 - 6 oz jars", UnitPrice: 22, UnitsInStock: 53},
	{ProductID: 5, ProductName: "Chef Anton's Gumbo Mix", SupplierID: ref(2), CategoryID: ref(2), QuantityPerUnit: "36 boxes", UnitPrice: 21.35, Discontinued: true},
	{ProductID: 6, ProductName: "Grandma's Boysenberry Spread", SupplierID: ref(3), CategoryID: ref(2), QuantityPerUnit: "12 - 8 oz jars", UnitPrice: 25, UnitsInStock: 120, ReorderLevel: 25},
	{ProductID: 7, ProductName: "Uncle Bob's Organic Dried Pears", SupplierID: ref(3), CategoryID: ref(7), QuantityPerUnit: "12 - 1 lb pkgs.", UnitPrice: 30, UnitsInStock: 15, ReorderLevel: 10},
	{ProductID: 8, ProductName: "Northwoods Cranberry Sauce", SupplierID: ref(3), CategoryID: ref(2), QuantityPerUnit: "12 - 12 oz jars", UnitPrice: 40, UnitsInStock: 6},
	{ProductID: 9, ProductName: "Mishi Kobe Niku", SupplierID: ref(4), CategoryID: ref(6), QuantityPerUnit: "18 - 500 g pkgs.", UnitPrice: 97, UnitsInStock: 29, Discontinued: true},
	{ProductID: 10, ProductName: "Ikura", SupplierID: ref(4), CategoryID: ref(8), QuantityPerUnit: "12 - 200 ml jars", UnitPrice: 31, UnitsInStock: 31},
	{ProductID: 11, ProductName: "Queso Cabrales", SupplierID: ref(5), CategoryID: ref(4), QuantityPerUnit: "1 kg pkg.", UnitPrice: 21, UnitsInStock: 22, UnitsOnOrder: 30, ReorderLevel: 30},
	{ProductID: 12, ProductName: "Queso Manchego La Pastora", SupplierID: ref(5), CategoryID: ref(4), QuantityPerUnit: "10 - 500 g pkgs.", UnitPrice: 38, UnitsInStock: 86},
}

var seedShippers = []domain.Shipper{
	{ShipperID: 1, CompanyName: "Speedy Express", Phone: "(503) 555-9831"},
	{ShipperID: 2, CompanyName: "United Package", Phone: "(503) 555-3199"},
	{ShipperID: 3, CompanyName: "Federal Shipping", Phone: "(503) 555-9931"},
}

// Seed inserts the initial users and reference data. It does nothing once
// any user exists, so it is safe to call on every start.
func Seed(gdb *gorm.DB, hash HashFunc) (bool, error) {
	var users int64
	if err := gdb.Model(&domain.User{}).Count(&users).Error; err != nil {
		return false, fmt.Errorf("could not count users: %w", err)
	}
	if users > 0 {
		return false, nil
	}

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	err := gdb.Transaction(func(tx *gorm.DB) error {
		for _, su := range seedUsers {
			h, err := hash(su.password)
			if err != nil {
				return fmt.Errorf("could not hash password for %s: %w", su.username, err)
			}
			u := domain.User{
				Username:     su.username,
				Email:        su.email,
				PasswordHash: h,
				FirstName:    su.first,
				LastName:     su.last,
				Role:         su.role,
				IsActive:     true,
				CreatedAt:    created,
			}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("could not seed user %s: %w", su.username, err)
			}
		}

		var categories int64
		if err := tx.Model(&domain.Category{}).Count(&categories).Error; err != nil {
			return err
		}
		if categories > 0 {
			return nil
		}

		for _, batch := range []interface{}{
			cloneSlice(seedCategories),
			cloneSlice(seedSuppliers),
			cloneSlice(seedShippers),
			cloneSlice(seedProducts),
		} {
			if err := tx.Create(batch).Error; err != nil {
				return fmt.Errorf("could not seed reference data: %w", err)
			}
		}
		return resetSequences(tx)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func cloneSlice[T any](in []T) *[]T {
	out := make([]T, len(in))
	copy(out, in)
	return &out
}

// resetSequences moves postgres identity sequences past the explicitly seeded ids.
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for table, column := range map[string]string{
		"categories": "category_id",
		"suppliers":  "supplier_id",
		"shippers":   "shipper_id",
		"products":   "product_id",
	} {
		stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), (SELECT MAX(%s) FROM %s))", table, column, column, table)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("could not reset sequence for %s: %w", table, err)
		}
	}
	return nil
}
