package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/events"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *capturingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func TestListProductsFilters(t *testing.T) {
	uc := newProductUseCase(newSeededDB(t))

	tests := []struct {
		name      string
		filter    domain.ProductFilter
		wantNames []string
		wantTotal int64
	}{
		{
			name:      "category and price range",
			filter:    domain.ProductFilter{CategoryID: intPtr(2), MinPrice: floatPtr(10), MaxPrice: floatPtr(30)},
			wantNames: []string{"Aniseed Syrup", "Chef Anton's Cajun Seasoning", "Chef Anton's Gumbo Mix", "Grandma's Boysenberry Spread"},
			wantTotal: 4,
		},
		{
			name:      "case insensitive search",
			filter:    domain.ProductFilter{Search: "CHEF"},
			wantNames: []string{"Chef Anton's Cajun Seasoning", "Chef Anton's Gumbo Mix"},
			wantTotal: 2,
		},
		{
			name:      "second page",
			filter:    domain.ProductFilter{Page: 2, PageSize: 10},
			wantNames: []string{"Queso Manchego La Pastora", "Uncle Bob's Organic Dried Pears"},
			wantTotal: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := uc.ListProducts(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, page.TotalCount)

			names := make([]string, 0, len(page.Items))
			for _, p := range page.Items {
				names = append(names, p.ProductName)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestListProductsPaging(t *testing.T) {
	uc := newProductUseCase(newSeededDB(t))

	page, err := uc.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, domain.DefaultPageSize, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 12)
	assert.Equal(t, "Beverages", page.Items[0].CategoryName)

	page, err = uc.ListProducts(ctx, domain.ProductFilter{Page: 10, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)

	page, err = uc.ListProducts(ctx, domain.ProductFilter{Page: -3, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, domain.MaxPageSize, page.PageSize)
}

func TestListProductsRejectsInvertedPriceRange(t *testing.T) {
	uc := newProductUseCase(newSeededDB(t))
	_, err := uc.ListProducts(ctx, domain.ProductFilter{MinPrice: floatPtr(50), MaxPrice: floatPtr(10)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewPagedResultTotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100000, 100, 1000},
		{100001, 100, 1001},
	}
	for _, tt := range tests {
		got := NewPagedResult([]int{}, tt.total, 1, tt.pageSize)
		assert.Equal(t, tt.want, got.TotalPages, "total=%d size=%d", tt.total, tt.pageSize)
	}
}

func TestGetProductIncludesDetails(t *testing.T) {
	uc := newProductUseCase(newSeededDB(t))

	p, err := uc.GetProduct(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Ikura", p.ProductName)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Seafood", p.Category.CategoryName)
	require.NotNil(t, p.Supplier)
	assert.Equal(t, "Tokyo Traders", p.Supplier.CompanyName)

	_, err = uc.GetProduct(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetProduct(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateProduct(t *testing.T) {
	pub := &capturingPublisher{}
	uc := newProductUseCase(newSeededDB(t), WithPublisher(pub))

	created, err := uc.CreateProduct(ctx, ProductInput{
		ProductName:     "  Tofu  ",
		CategoryID:      intPtr(7),
		SupplierID:      intPtr(4),
		QuantityPerUnit: "40 - 100 g pkgs.",
		UnitPrice:       23.25,
		UnitsInStock:    35,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ProductID)
	assert.Equal(t, "Tofu", created.ProductName)
	assert.Equal(t, "Produce", created.CategoryName)
	assert.Equal(t, []string{events.ProductCreated}, pub.types())
}

func TestCreateProductValidation(t *testing.T) {
	uc := newProductUseCase(newSeededDB(t))

	tests := []struct {
		name  string
		input ProductInput
		msg   string
	}{
		{"empty name", ProductInput{ProductName: "   "}, "product name cannot be empty"},
		{"long name", ProductInput{ProductName: strings.Repeat("x", 41)}, "cannot exceed 40"},
		{"negative price", ProductInput{ProductName: "A", UnitPrice: -1}, "unit price cannot be negative"},
		{"negative stock", ProductInput{ProductName: "A", UnitsInStock: -1}, "stock quantities cannot be negative"},
		{"unknown category", ProductInput{ProductName: "A", CategoryID: intPtr(99)}, "category with id 99 does not exist"},
		{"unknown supplier", ProductInput{ProductName: "A", SupplierID: intPtr(99)}, "supplier with id 99 does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(ctx, tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	pub := &capturingPublisher{}
	uc := newProductUseCase(newSeededDB(t), WithPublisher(pub))

	updated, err := uc.UpdateProduct(ctx, 1, ProductInput{
		ProductName: "Chai Latte",
		CategoryID:  intPtr(1),
		SupplierID:  intPtr(1),
		UnitPrice:   19.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Chai Latte", updated.ProductName)
	assert.Equal(t, 19.5, updated.UnitPrice)
	assert.Equal(t, []string{events.ProductUpdated}, pub.types())

	_, err = uc.UpdateProduct(ctx, 4242, ProductInput{ProductName: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProductIsSoftAndIdempotent(t *testing.T) {
	pub := &capturingPublisher{}
	uc := newProductUseCase(newSeededDB(t), WithPublisher(pub))

	require.NoError(t, uc.DeleteProduct(ctx, 1))
	p, err := uc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.True(t, p.Discontinued)

	require.NoError(t, uc.DeleteProduct(ctx, 1))
	assert.Equal(t, []string{events.ProductDiscontinued}, pub.types())

	assert.ErrorIs(t, uc.DeleteProduct(ctx, 777), domain.ErrNotFound)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	pub := &capturingPublisher{err: errors.New("broker down")}
	uc := newProductUseCase(newSeededDB(t), WithPublisher(pub))

	require.NoError(t, uc.DeleteProduct(ctx, 2))
	assert.Len(t, pub.types(), 1)
}

func TestBulkGenerate(t *testing.T) {
	gdb := newSeededDB(t)
	pub := &capturingPublisher{}
	uc := newProductUseCase(gdb, WithPublisher(pub), WithRandSource(seededRand))

	res, err := uc.BulkGenerate(ctx, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, res.ProductsCreated)
	assert.GreaterOrEqual(t, res.ElapsedMilliseconds, int64(0))
	assert.True(t, strings.HasPrefix(res.Message, "Successfully created 250 products in "), res.Message)

	var total int64
	require.NoError(t, gdb.Model(&domain.Product{}).Count(&total).Error)
	assert.Equal(t, int64(262), total)
	assert.Equal(t, []string{events.ProductsBulkCreated}, pub.types())
}

func TestBulkGenerateValidation(t *testing.T) {
	uc := newProductUseCase(newSeededDB(t))
	for _, count := range []int{0, 100001} {
		_, err := uc.BulkGenerate(ctx, count)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "count must be between 1 and 100000")
	}
}

func TestBulkGenerateWithoutReferenceData(t *testing.T) {
	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })
	uc := newProductUseCase(gdb)

	_, err = uc.BulkGenerate(ctx, 10)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	var total int64
	require.NoError(t, gdb.Model(&domain.Product{}).Count(&total).Error)
	assert.Zero(t, total)
}
