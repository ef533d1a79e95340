package usecase

import (
	"context"
	"fmt"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
)

type SupplierUseCase interface {
	GetSupplier(ctx context.Context, id int) (*SupplierDTO, error)
	ListSuppliers(ctx context.Context) ([]SupplierDTO, error)
}

type supplierUseCase struct {
	supplierRepo domain.SupplierRepository
	log          *logrus.Logger
}

func NewSupplierUseCase(repo domain.SupplierRepository, logger *logrus.Logger) SupplierUseCase {
	return &supplierUseCase{supplierRepo: repo, log: logger}
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id int) (*SupplierDTO, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get supplier with invalid ID: %d", id)
		return nil, fmt.Errorf("%w: invalid supplier ID", domain.ErrValidation)
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get supplier ID %d: %v", id, err)
		return nil, err
	}
	dto := toSupplierDTO(supplier)
	return &dto, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]SupplierDTO, error) {
	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list suppliers: %v", err)
		return nil, fmt.Errorf("could not retrieve suppliers: %w", err)
	}
	result := make([]SupplierDTO, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, toSupplierDTO(&suppliers[i]))
	}
	return result, nil
}
