package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertChunk bounds the rows per INSERT statement so a batch stays under
// the bind-parameter limits of both sqlite and postgres.
const insertChunk = 500

type gormProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &gormProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.ProductName, err)
		return translateError(err, "could not create product")
	}
	r.log.Infof("Repository: Product created with ID %d, Name %s", product.ProductID, product.ProductName)
	return nil
}

func (r *gormProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&products, insertChunk).Error
	})
	if err != nil {
		r.log.Errorf("Repository: Failed to insert batch of %d products: %v", len(products), err)
		return translateError(err, "could not insert product batch")
	}
	r.log.Debugf("Repository: Inserted batch of %d products", len(products))
	return nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		r.log.Warnf("Repository: Failed to get product by ID %d: %v", id, err)
		return nil, translateError(err, fmt.Sprintf("product with id %d", id))
	}
	return &product, nil
}

func (r *gormProductRepository) GetWithDetails(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		First(&product, id).Error
	if err != nil {
		r.log.Warnf("Repository: Failed to get product details for ID %d: %v", id, err)
		return nil, translateError(err, fmt.Sprintf("product with id %d", id))
	}
	return &product, nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("product_id = ?", product.ProductID).
		Select("product_name", "supplier_id", "category_id", "quantity_per_unit", "unit_price",
			"units_in_stock", "units_on_order", "reorder_level", "discontinued").
		Updates(product)
	if result.Error != nil {
		r.log.Errorf("Repository: Failed to update product ID %d: %v", product.ProductID, result.Error)
		return translateError(result.Error, fmt.Sprintf("could not update product %d", product.ProductID))
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Repository: Product ID %d not found for update", product.ProductID)
		return fmt.Errorf("product with id %d: %w", product.ProductID, domain.ErrNotFound)
	}
	r.log.Infof("Repository: Product ID %d updated", product.ProductID)
	return nil
}

func (r *gormProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("unit_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("unit_price <= ?", *filter.MaxPrice)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(`LOWER(product_name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(search))+"%")
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.log.Errorf("Repository: Failed to count products: %v", err)
		return nil, 0, translateError(err, "could not count products")
	}

	products := []domain.Product{}
	err := query.
		Preload("Category").
		Preload("Supplier").
		Order("product_name ASC").
		Order("product_id ASC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&products).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list products: %v", err)
		return nil, 0, translateError(err, "could not list products")
	}

	r.log.Debugf("Repository: Listed %d of %d products (page %d, size %d)", len(products), total, filter.Page, filter.PageSize)
	return products, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using '\' as escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
