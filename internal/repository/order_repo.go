package repository

import (
	"context"
	"fmt"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormOrderRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormOrderRepository(db *gorm.DB, logger *logrus.Logger) domain.OrderRepository {
	return &gormOrderRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		details := order.Details
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			r.log.Errorf("Repository: Failed to insert order header: %v", err)
			return err
		}
		r.log.Infof("Repository: Order entry created with ID %d", order.OrderID)

		for i := range details {
			details[i].OrderID = order.OrderID
			if err := tx.Omit(clause.Associations).Create(&details[i]).Error; err != nil {
				r.log.Errorf("Repository: Failed to insert order detail (product_id: %d) for order %d: %v",
					details[i].ProductID, order.OrderID, err)
				return err
			}
		}
		order.Details = details
		return nil
	})
	if err != nil {
		return translateError(err, "could not create order")
	}
	r.log.Infof("Repository: Order %d created with %d detail lines", order.OrderID, len(order.Details))
	return nil
}

func (r *gormOrderRepository) GetWithDetails(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Employee").
		Preload("Shipper").
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("product_id ASC") }).
		Preload("Details.Product").
		First(&order, id).Error
	if err != nil {
		r.log.Warnf("Repository: Failed to get order %d: %v", id, err)
		return nil, translateError(err, fmt.Sprintf("order with id %d", id))
	}
	return &order, nil
}

func (r *gormOrderRepository) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	orders := []domain.Order{}
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Employee").
		Preload("Details").
		Order("order_date DESC").
		Order("order_id DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list orders: %v", err)
		return nil, translateError(err, "could not list orders")
	}
	return orders, nil
}
