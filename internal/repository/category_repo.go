package repository

import (
	"context"
	"fmt"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const categoryWithCount = "categories.*, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.category_id) AS product_count"

type gormCategoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormCategoryRepository(db *gorm.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &gormCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		r.log.Errorf("Repository: Failed to create category '%s': %v", category.CategoryName, err)
		return translateError(err, "could not create category")
	}
	r.log.Infof("Repository: Category created with ID %d, Name %s", category.CategoryID, category.CategoryName)
	return nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Select(categoryWithCount).
		Where("categories.category_id = ?", id).
		Take(&category).Error
	if err != nil {
		r.log.Warnf("Repository: Failed to get category by ID %d: %v", id, err)
		return nil, translateError(err, fmt.Sprintf("category with id %d", id))
	}
	return &category, nil
}

func (r *gormCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	err := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Select(categoryWithCount).
		Order("categories.category_name ASC").
		Find(&categories).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list categories: %v", err)
		return nil, translateError(err, "could not list categories")
	}
	return categories, nil
}
