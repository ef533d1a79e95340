package repository

import (
	"context"
	"io"
	"testing"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/pkg/db"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// seedCatalog inserts two categories, one supplier and the given products.
func seedCatalog(t *testing.T, gdb *gorm.DB, products ...domain.Product) {
	t.Helper()
	require.NoError(t, gdb.Create(&[]domain.Category{
		{CategoryID: 1, CategoryName: "Beverages"},
		{CategoryID: 2, CategoryName: "Condiments"},
	}).Error)
	require.NoError(t, gdb.Create(&domain.Supplier{SupplierID: 1, CompanyName: "Exotic Liquids"}).Error)
	for i := range products {
		require.NoError(t, gdb.Omit("Category", "Supplier").Create(&products[i]).Error)
	}
}

var ctx = context.Background()
