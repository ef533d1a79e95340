package usecase

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/repository"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/pkg/db"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ctx = context.Background()

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// newSeededDB opens an in-memory database with the default seed data.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	seeded, err := db.Seed(gdb, func(pw string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		return string(h), err
	})
	require.NoError(t, err)
	require.True(t, seeded)
	return gdb
}

func newProductUseCase(gdb *gorm.DB, opts ...ProductUseCaseOption) ProductUseCase {
	log := quietLogger()
	return NewProductUseCase(
		repository.NewGormProductRepository(gdb, log),
		repository.NewGormCategoryRepository(gdb, log),
		repository.NewGormSupplierRepository(gdb, log),
		log,
		opts...,
	)
}

// recordingProductRepo captures CreateBatch calls.
type recordingProductRepo struct {
	domain.ProductRepository
	batches []int
	total   int
	failOn  int
	err     error
}

func (r *recordingProductRepo) CreateBatch(_ context.Context, products []domain.Product) error {
	if r.err != nil && len(r.batches) == r.failOn {
		return r.err
	}
	r.batches = append(r.batches, len(products))
	r.total += len(products)
	return nil
}
