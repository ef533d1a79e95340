package usecase

import (
	"context"
	"fmt"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
)

// ReferenceUseCase serves the read-only lookup tables used when building orders.
type ReferenceUseCase interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListShippers(ctx context.Context) ([]domain.Shipper, error)
}

type referenceUseCase struct {
	customers domain.CustomerRepository
	employees domain.EmployeeRepository
	shippers  domain.ShipperRepository
	log       *logrus.Logger
}

func NewReferenceUseCase(customers domain.CustomerRepository, employees domain.EmployeeRepository,
	shippers domain.ShipperRepository, logger *logrus.Logger) ReferenceUseCase {
	return &referenceUseCase{
		customers: customers,
		employees: employees,
		shippers:  shippers,
		log:       logger,
	}
}

func (uc *referenceUseCase) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list customers: %v", err)
		return nil, fmt.Errorf("could not retrieve customers: %w", err)
	}
	return customers, nil
}

func (uc *referenceUseCase) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := uc.employees.List(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list employees: %v", err)
		return nil, fmt.Errorf("could not retrieve employees: %w", err)
	}
	return employees, nil
}

func (uc *referenceUseCase) ListShippers(ctx context.Context) ([]domain.Shipper, error) {
	shippers, err := uc.shippers.List(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list shippers: %v", err)
		return nil, fmt.Errorf("could not retrieve shippers: %w", err)
	}
	return shippers, nil
}
