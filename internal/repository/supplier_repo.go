package repository

import (
	"context"
	"fmt"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const supplierWithCount = "suppliers.*, (SELECT COUNT(*) FROM products WHERE products.supplier_id = suppliers.supplier_id) AS product_count"

type gormSupplierRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormSupplierRepository(db *gorm.DB, logger *logrus.Logger) domain.SupplierRepository {
	return &gormSupplierRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormSupplierRepository) GetByID(ctx context.Context, id int) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.db.WithContext(ctx).
		Model(&domain.Supplier{}).
		Select(supplierWithCount).
		Where("suppliers.supplier_id = ?", id).
		Take(&supplier).Error
	if err != nil {
		r.log.Warnf("Repository: Failed to get supplier by ID %d: %v", id, err)
		return nil, translateError(err, fmt.Sprintf("supplier with id %d", id))
	}
	return &supplier, nil
}

func (r *gormSupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	suppliers := []domain.Supplier{}
	err := r.db.WithContext(ctx).
		Model(&domain.Supplier{}).
		Select(supplierWithCount).
		Order("suppliers.company_name ASC").
		Find(&suppliers).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list suppliers: %v", err)
		return nil, translateError(err, "could not list suppliers")
	}
	return suppliers, nil
}
