package repository

import (
	"context"
	"fmt"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormCustomerRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormCustomerRepository(db *gorm.DB, logger *logrus.Logger) domain.CustomerRepository {
	return &gormCustomerRepository{db: db, log: logger}
}

func (r *gormCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).Where("customer_id = ?", id).Take(&customer).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("customer with id %s", id))
	}
	return &customer, nil
}

func (r *gormCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	if err := r.db.WithContext(ctx).Order("company_name ASC").Find(&customers).Error; err != nil {
		r.log.Errorf("Repository: Failed to list customers: %v", err)
		return nil, translateError(err, "could not list customers")
	}
	return customers, nil
}

type gormEmployeeRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB, logger *logrus.Logger) domain.EmployeeRepository {
	return &gormEmployeeRepository{db: db, log: logger}
}

func (r *gormEmployeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("employee with id %d", id))
	}
	return &employee, nil
}

func (r *gormEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	if err := r.db.WithContext(ctx).Order("last_name ASC").Order("first_name ASC").Find(&employees).Error; err != nil {
		r.log.Errorf("Repository: Failed to list employees: %v", err)
		return nil, translateError(err, "could not list employees")
	}
	return employees, nil
}

type gormShipperRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormShipperRepository(db *gorm.DB, logger *logrus.Logger) domain.ShipperRepository {
	return &gormShipperRepository{db: db, log: logger}
}

func (r *gormShipperRepository) GetByID(ctx context.Context, id int) (*domain.Shipper, error) {
	var shipper domain.Shipper
	if err := r.db.WithContext(ctx).First(&shipper, id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("shipper with id %d", id))
	}
	return &shipper, nil
}

func (r *gormShipperRepository) List(ctx context.Context) ([]domain.Shipper, error) {
	shippers := []domain.Shipper{}
	if err := r.db.WithContext(ctx).Order("shipper_id ASC").Find(&shippers).Error; err != nil {
		r.log.Errorf("Repository: Failed to list shippers: %v", err)
		return nil, translateError(err, "could not list shippers")
	}
	return shippers, nil
}
