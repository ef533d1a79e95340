package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	BulkBatchSize = 10000
	MinBulkCount  = 1
	MaxBulkCount  = 100000
)

var (
	namePrefixes    = []string{"Super", "Mega", "Ultra", "Pro", "Max", "Plus", "Turbo", "Elite"}
	nameAdjectives  = []string{"Premium", "Standard", "Professional", "Advanced", "Basic", "Deluxe", "Ultimate", "Express"}
	quantityPerUnit = []string{"1 box", "10 units", "12 items", "24 pack", "6 bottles", "1 kg", "500 g", "1 L", "100 pieces"}
)

// NewRand returns a generator seeded from the global source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// BulkGenerator synthesizes products from existing categories and suppliers
// and stores them batch by batch.
type BulkGenerator struct {
	repo      domain.ProductRepository
	batchSize int
	log       *logrus.Logger
}

func NewBulkGenerator(repo domain.ProductRepository, logger *logrus.Logger) *BulkGenerator {
	return &BulkGenerator{
		repo:      repo,
		batchSize: BulkBatchSize,
		log:       logger,
	}
}

// Generate inserts exactly count products. Each batch is persisted before the
// next one is built; the number of rows stored so far is returned with any error.
func (g *BulkGenerator) Generate(ctx context.Context, rng *rand.Rand, count int, categories []domain.Category, suppliers []domain.Supplier) (int, error) {
	if len(categories) == 0 || len(suppliers) == 0 {
		return 0, fmt.Errorf("%w: at least one category and one supplier are required to generate products", domain.ErrPrecondition)
	}
	if count < MinBulkCount || count > MaxBulkCount {
		return 0, fmt.Errorf("%w: count must be between %d and %d", domain.ErrValidation, MinBulkCount, MaxBulkCount)
	}

	created := 0
	for created < count {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		size := min(g.batchSize, count-created)
		batch := make([]domain.Product, size)
		for i := range batch {
			batch[i] = synthesizeProduct(rng, categories, suppliers)
		}
		if err := g.repo.CreateBatch(ctx, batch); err != nil {
			g.log.Errorf("Use Case: Bulk batch of %d failed after %d products: %v", size, created, err)
			return created, err
		}
		created += size
		g.log.Infof("Use Case: Bulk generation progress %d/%d", created, count)
	}
	return created, nil
}

func synthesizeProduct(rng *rand.Rand, categories []domain.Category, suppliers []domain.Supplier) domain.Product {
	category := categories[rng.IntN(len(categories))]
	supplier := suppliers[rng.IntN(len(suppliers))]

	prefix := ""
	if rng.IntN(2) == 0 {
		prefix = namePrefixes[rng.IntN(len(namePrefixes))] + " "
	}
	adjective := nameAdjectives[rng.IntN(len(nameAdjectives))]
	name := fmt.Sprintf("%s%s %s %d", prefix, adjective, category.CategoryName, 1000+rng.IntN(8999))

	categoryID := category.CategoryID
	supplierID := supplier.SupplierID
	return domain.Product{
		ProductName:     name,
		CategoryID:      &categoryID,
		SupplierID:      &supplierID,
		QuantityPerUnit: quantityPerUnit[rng.IntN(len(quantityPerUnit))],
		UnitPrice:       math.Round((rng.Float64()*990+10)*100) / 100,
		UnitsInStock:    rng.IntN(500),
		UnitsOnOrder:    rng.IntN(100),
		ReorderLevel:    5 + rng.IntN(45),
		Discontinued:    rng.IntN(100) < 10,
	}
}
