package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/events"
	"github.com/sirupsen/logrus"
)

const (
	maxProductNameLength     = 40
	maxQuantityPerUnitLength = 20
)

type ProductUseCase interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) (*PagedResult[ProductDTO], error)
	GetProduct(ctx context.Context, id int) (*ProductDetailDTO, error)
	CreateProduct(ctx context.Context, input ProductInput) (*ProductDetailDTO, error)
	UpdateProduct(ctx context.Context, id int, input ProductInput) (*ProductDetailDTO, error)
	// DeleteProduct marks the product discontinued; the row is kept.
	DeleteProduct(ctx context.Context, id int) error
	BulkGenerate(ctx context.Context, count int) (*BulkResult, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	supplierRepo domain.SupplierRepository
	generator    *BulkGenerator
	publisher    events.Publisher
	newRand      func() *rand.Rand
	log          *logrus.Logger
}

type ProductUseCaseOption func(*productUseCase)

// WithRandSource replaces the per-call random generator factory.
func WithRandSource(newRand func() *rand.Rand) ProductUseCaseOption {
	return func(uc *productUseCase) { uc.newRand = newRand }
}

func WithPublisher(p events.Publisher) ProductUseCaseOption {
	return func(uc *productUseCase) { uc.publisher = p }
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, sRepo domain.SupplierRepository,
	logger *logrus.Logger, opts ...ProductUseCaseOption) ProductUseCase {
	uc := &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		supplierRepo: sRepo,
		generator:    NewBulkGenerator(pRepo, logger),
		publisher:    events.NewNoopPublisher(),
		newRand:      NewRand,
		log:          logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *productUseCase) ListProducts(ctx context.Context, filter domain.ProductFilter) (*PagedResult[ProductDTO], error) {
	filter = filter.Normalize()
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		uc.log.Warnf("Use Case: Invalid price range %.2f-%.2f", *filter.MinPrice, *filter.MaxPrice)
		return nil, fmt.Errorf("%w: minPrice cannot be greater than maxPrice", domain.ErrValidation)
	}

	uc.log.Infof("Use Case: Listing products (page: %d, pageSize: %d)", filter.Page, filter.PageSize)
	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}

	items := make([]ProductDTO, 0, len(products))
	for i := range products {
		items = append(items, toProductDTO(&products[i]))
	}
	uc.log.Infof("Use Case: Retrieved %d of %d products", len(items), total)
	return NewPagedResult(items, total, filter.Page, filter.PageSize), nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int) (*ProductDetailDTO, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrValidation)
	}
	product, err := uc.productRepo.GetWithDetails(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return toProductDetailDTO(product), nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input ProductInput) (*ProductDetailDTO, error) {
	input = normalizeProductInput(input)
	if err := uc.validateProductInput(ctx, input); err != nil {
		uc.log.Warnf("Use Case: Rejected product '%s': %v", input.ProductName, err)
		return nil, err
	}

	product := &domain.Product{}
	applyProductInput(product, input)
	uc.log.Infof("Use Case: Attempting to create product '%s'", product.ProductName)
	if err := uc.productRepo.Create(ctx, product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.ProductName, err)
		return nil, err
	}

	uc.publish(ctx, events.ProductCreated, map[string]interface{}{"productId": product.ProductID, "productName": product.ProductName})
	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", product.ProductName, product.ProductID)
	return uc.GetProduct(ctx, product.ProductID)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int, input ProductInput) (*ProductDetailDTO, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", id)
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrValidation)
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for update: %v", id, err)
		return nil, err
	}

	input = normalizeProductInput(input)
	if err := uc.validateProductInput(ctx, input); err != nil {
		uc.log.Warnf("Use Case: Rejected update for product ID %d: %v", id, err)
		return nil, err
	}

	applyProductInput(product, input)
	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	uc.publish(ctx, events.ProductUpdated, map[string]interface{}{"productId": id})
	uc.log.Infof("Use Case: Product updated successfully for ID %d", id)
	return uc.GetProduct(ctx, id)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return fmt.Errorf("%w: invalid product ID", domain.ErrValidation)
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for delete: %v", id, err)
		return err
	}
	if product.Discontinued {
		uc.log.Infof("Use Case: Product ID %d already discontinued", id)
		return nil
	}

	product.Discontinued = true
	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to discontinue product ID %d: %v", id, err)
		return err
	}
	uc.publish(ctx, events.ProductDiscontinued, map[string]interface{}{"productId": id})
	uc.log.Infof("Use Case: Product ID %d discontinued", id)
	return nil
}

func (uc *productUseCase) BulkGenerate(ctx context.Context, count int) (*BulkResult, error) {
	if count < MinBulkCount || count > MaxBulkCount {
		uc.log.Warnf("Use Case: Rejected bulk generation of %d products", count)
		return nil, fmt.Errorf("%w: count must be between %d and %d", domain.ErrValidation, MinBulkCount, MaxBulkCount)
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load categories: %w", err)
	}
	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load suppliers: %w", err)
	}

	uc.log.Infof("Use Case: Generating %d products from %d categories and %d suppliers", count, len(categories), len(suppliers))
	started := time.Now()
	created, err := uc.generator.Generate(ctx, uc.newRand(), count, categories, suppliers)
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		if created > 0 {
			uc.log.Errorf("Use Case: Bulk generation stopped after %d of %d products: %v", created, count, err)
		}
		return nil, err
	}

	uc.publish(ctx, events.ProductsBulkCreated, map[string]interface{}{"count": created, "elapsedMilliseconds": elapsed})
	uc.log.Infof("Use Case: Bulk generated %d products in %dms", created, elapsed)
	return &BulkResult{
		ProductsCreated:     created,
		ElapsedMilliseconds: elapsed,
		Message:             fmt.Sprintf("Successfully created %d products in %dms", created, elapsed),
	}, nil
}

func (uc *productUseCase) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := uc.publisher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		uc.log.Warnf("Use Case: Failed to publish %s: %v", eventType, err)
	}
}

func normalizeProductInput(input ProductInput) ProductInput {
	input.ProductName = strings.TrimSpace(input.ProductName)
	input.QuantityPerUnit = strings.TrimSpace(input.QuantityPerUnit)
	return input
}

func (uc *productUseCase) validateProductInput(ctx context.Context, input ProductInput) error {
	var problems []string
	switch {
	case input.ProductName == "":
		problems = append(problems, "product name cannot be empty")
	case utf8.RuneCountInString(input.ProductName) > maxProductNameLength:
		problems = append(problems, fmt.Sprintf("product name cannot exceed %d characters", maxProductNameLength))
	}
	if utf8.RuneCountInString(input.QuantityPerUnit) > maxQuantityPerUnitLength {
		problems = append(problems, fmt.Sprintf("quantity per unit cannot exceed %d characters", maxQuantityPerUnitLength))
	}
	if input.UnitPrice < 0 {
		problems = append(problems, "unit price cannot be negative")
	}
	if input.UnitsInStock < 0 || input.UnitsOnOrder < 0 || input.ReorderLevel < 0 {
		problems = append(problems, "stock quantities cannot be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: category with id %d does not exist", domain.ErrValidation, *input.CategoryID)
			}
			return err
		}
	}
	if input.SupplierID != nil {
		if _, err := uc.supplierRepo.GetByID(ctx, *input.SupplierID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: supplier with id %d does not exist", domain.ErrValidation, *input.SupplierID)
			}
			return err
		}
	}
	return nil
}

func applyProductInput(p *domain.Product, input ProductInput) {
	p.ProductName = input.ProductName
	p.CategoryID = input.CategoryID
	p.SupplierID = input.SupplierID
	p.QuantityPerUnit = input.QuantityPerUnit
	p.UnitPrice = input.UnitPrice
	p.UnitsInStock = input.UnitsInStock
	p.UnitsOnOrder = input.UnitsOnOrder
	p.ReorderLevel = input.ReorderLevel
	p.Discontinued = input.Discontinued
}
