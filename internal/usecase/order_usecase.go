package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	DefaultOrderLimit = 10
	MaxOrderLimit     = 100
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, input OrderInput) (*OrderDTO, error)
	GetOrder(ctx context.Context, id int) (*OrderDTO, error)
	ListOrders(ctx context.Context, limit, offset int) ([]OrderDTO, error)
}

type orderUseCase struct {
	orderRepo    domain.OrderRepository
	productRepo  domain.ProductRepository
	customerRepo domain.CustomerRepository
	employeeRepo domain.EmployeeRepository
	shipperRepo  domain.ShipperRepository
	log          *logrus.Logger
	now          func() time.Time
}

func NewOrderUseCase(orders domain.OrderRepository, products domain.ProductRepository, customers domain.CustomerRepository,
	employees domain.EmployeeRepository, shippers domain.ShipperRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo:    orders,
		productRepo:  products,
		customerRepo: customers,
		employeeRepo: employees,
		shipperRepo:  shippers,
		log:          logger,
		now:          time.Now,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input OrderInput) (*OrderDTO, error) {
	if len(input.Details) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}
	if input.Freight < 0 {
		return nil, fmt.Errorf("%w: freight cannot be negative", domain.ErrValidation)
	}
	if err := uc.checkReferences(ctx, input); err != nil {
		uc.log.Warnf("Use Case: Rejected order: %v", err)
		return nil, err
	}

	details := make([]domain.OrderDetail, 0, len(input.Details))
	seen := make(map[int]bool, len(input.Details))
	for i, item := range input.Details {
		if item.ProductID <= 0 {
			return nil, fmt.Errorf("%w: item %d: invalid product ID", domain.ErrValidation, i)
		}
		if seen[item.ProductID] {
			return nil, fmt.Errorf("%w: item %d: product %d appears more than once", domain.ErrValidation, i, item.ProductID)
		}
		seen[item.ProductID] = true
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d (product %d): quantity must be positive", domain.ErrValidation, i, item.ProductID)
		}
		if item.Discount < 0 || item.Discount > 1 {
			return nil, fmt.Errorf("%w: item %d (product %d): discount must be between 0 and 1", domain.ErrValidation, i, item.ProductID)
		}
		if item.UnitPrice != nil && *item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: item %d (product %d): price cannot be negative", domain.ErrValidation, i, item.ProductID)
		}

		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: product with id %d does not exist", domain.ErrValidation, item.ProductID)
			}
			return nil, err
		}
		if product.Discontinued {
			uc.log.Warnf("Use Case: Product ID %d is discontinued", item.ProductID)
			return nil, fmt.Errorf("%w: product %d is discontinued", domain.ErrValidation, item.ProductID)
		}

		price := product.UnitPrice
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		details = append(details, domain.OrderDetail{
			ProductID: item.ProductID,
			UnitPrice: price,
			Quantity:  item.Quantity,
			Discount:  item.Discount,
		})
	}

	orderDate := uc.now().UTC()
	order := &domain.Order{
		CustomerID:   input.CustomerID,
		EmployeeID:   input.EmployeeID,
		OrderDate:    &orderDate,
		RequiredDate: input.RequiredDate,
		ShipVia:      input.ShipVia,
		Freight:      input.Freight,
		ShipName:     strings.TrimSpace(input.ShipName),
		ShipAddress:  strings.TrimSpace(input.ShipAddress),
		ShipCity:     strings.TrimSpace(input.ShipCity),
		ShipCountry:  strings.TrimSpace(input.ShipCountry),
		Details:      details,
	}

	uc.log.Infof("Use Case: Creating order with %d items", len(details))
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create order: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Order %d created successfully", order.OrderID)
	return uc.GetOrder(ctx, order.OrderID)
}

func (uc *orderUseCase) checkReferences(ctx context.Context, input OrderInput) error {
	if input.CustomerID != nil {
		if _, err := uc.customerRepo.GetByID(ctx, *input.CustomerID); err != nil {
			return referenceError(err, "customer", *input.CustomerID)
		}
	}
	if input.EmployeeID != nil {
		if _, err := uc.employeeRepo.GetByID(ctx, *input.EmployeeID); err != nil {
			return referenceError(err, "employee", *input.EmployeeID)
		}
	}
	if input.ShipVia != nil {
		if _, err := uc.shipperRepo.GetByID(ctx, *input.ShipVia); err != nil {
			return referenceError(err, "shipper", *input.ShipVia)
		}
	}
	return nil
}

func referenceError(err error, kind string, id interface{}) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s with id %v does not exist", domain.ErrValidation, kind, id)
	}
	return err
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int) (*OrderDTO, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get order with invalid ID: %d", id)
		return nil, fmt.Errorf("%w: invalid order ID", domain.ErrValidation)
	}
	order, err := uc.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get order ID %d: %v", id, err)
		return nil, err
	}
	dto := toOrderDTO(order)
	return &dto, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, limit, offset int) ([]OrderDTO, error) {
	if limit <= 0 {
		limit = DefaultOrderLimit
	}
	if limit > MaxOrderLimit {
		limit = MaxOrderLimit
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := uc.orderRepo.List(ctx, limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list orders: %v", err)
		return nil, fmt.Errorf("could not retrieve orders: %w", err)
	}
	result := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderDTO(&orders[i]))
	}
	uc.log.Infof("Use Case: Retrieved %d orders (limit %d, offset %d)", len(result), limit, offset)
	return result, nil
}
