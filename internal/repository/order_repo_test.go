package repository

import (
	"testing"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrderReferences(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	seedCatalog(t, gdb, sampleProducts()...)
	require.NoError(t, gdb.Create(&domain.Customer{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste"}).Error)
	require.NoError(t, gdb.Create(&domain.Employee{EmployeeID: 1, FirstName: "Nancy", LastName: "Davolio"}).Error)
	require.NoError(t, gdb.Create(&domain.Shipper{ShipperID: 1, CompanyName: "Speedy Express"}).Error)
}

func TestOrderRepositoryCreateAndLoad(t *testing.T) {
	gdb := newTestDB(t)
	seedOrderReferences(t, gdb)
	repo := NewGormOrderRepository(gdb, quietLogger())

	customer := "ALFKI"
	now := time.Now().UTC()
	order := &domain.Order{
		CustomerID: &customer,
		EmployeeID: intPtr(1),
		ShipVia:    intPtr(1),
		OrderDate:  &now,
		Freight:    12.5,
		Details: []domain.OrderDetail{
			{ProductID: 2, UnitPrice: 19, Quantity: 2},
			{ProductID: 1, UnitPrice: 18, Quantity: 10, Discount: 0.1},
		},
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NotZero(t, order.OrderID)

	loaded, err := repo.GetWithDetails(ctx, order.OrderID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Customer)
	assert.Equal(t, "Alfreds Futterkiste", loaded.Customer.CompanyName)
	require.NotNil(t, loaded.Employee)
	assert.Equal(t, "Nancy Davolio", loaded.Employee.FullName())
	require.NotNil(t, loaded.Shipper)
	require.Len(t, loaded.Details, 2)
	assert.Equal(t, 1, loaded.Details[0].ProductID)
	require.NotNil(t, loaded.Details[0].Product)
	assert.Equal(t, "Chai", loaded.Details[0].Product.ProductName)
	assert.InDelta(t, 162.0, loaded.Details[0].Subtotal(), 1e-9)
	assert.InDelta(t, 12.5+38+162, loaded.Total(), 1e-9)

	orders, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderRepositoryCreateRollsBackOnBadDetail(t *testing.T) {
	gdb := newTestDB(t)
	seedOrderReferences(t, gdb)
	repo := NewGormOrderRepository(gdb, quietLogger())

	order := &domain.Order{
		Details: []domain.OrderDetail{
			{ProductID: 1, UnitPrice: 18, Quantity: 1},
			{ProductID: 404, UnitPrice: 1, Quantity: 1},
		},
	}
	require.Error(t, repo.Create(ctx, order))

	var orders int64
	require.NoError(t, gdb.Model(&domain.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestReferenceRepositories(t *testing.T) {
	gdb := newTestDB(t)
	seedOrderReferences(t, gdb)
	log := quietLogger()

	customer, err := NewGormCustomerRepository(gdb, log).GetByID(ctx, "ALFKI")
	require.NoError(t, err)
	assert.Equal(t, "Alfreds Futterkiste", customer.CompanyName)

	_, err = NewGormEmployeeRepository(gdb, log).GetByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	shippers, err := NewGormShipperRepository(gdb, log).List(ctx)
	require.NoError(t, err)
	assert.Len(t, shippers, 1)
}
