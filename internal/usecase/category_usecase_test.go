package usecase

import (
	"testing"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryUseCase(t *testing.T) {
	gdb := newSeededDB(t)
	uc := NewCategoryUseCase(repository.NewGormCategoryRepository(gdb, quietLogger()), quietLogger())

	list, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)

	condiments, err := uc.GetCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Condiments", condiments.CategoryName)
	assert.Equal(t, int64(5), condiments.ProductCount)

	created, err := uc.CreateCategory(ctx, CategoryInput{CategoryName: " Snacks ", Description: "Chips"})
	require.NoError(t, err)
	assert.Equal(t, "Snacks", created.CategoryName)
	assert.NotZero(t, created.CategoryID)

	_, err = uc.GetCategory(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCaseValidation(t *testing.T) {
	uc := NewCategoryUseCase(repository.NewGormCategoryRepository(newSeededDB(t), quietLogger()), quietLogger())

	for name, input := range map[string]CategoryInput{
		"empty":    {CategoryName: "  "},
		"too long": {CategoryName: "Sixteen chars!!!"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.CreateCategory(ctx, input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := uc.GetCategory(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSupplierUseCase(t *testing.T) {
	uc := NewSupplierUseCase(repository.NewGormSupplierRepository(newSeededDB(t), quietLogger()), quietLogger())

	list, err := uc.ListSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "Cooperativa de Quesos 'Las Cabras'", list[0].CompanyName)

	s, err := uc.GetSupplier(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Grandma Kelly's Homestead", s.CompanyName)
	assert.Equal(t, int64(3), s.ProductCount)

	_, err = uc.GetSupplier(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
