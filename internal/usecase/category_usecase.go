package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/sirupsen/logrus"
)

const maxCategoryNameLength = 15

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*CategoryDTO, error)
	GetCategory(ctx context.Context, id int) (*CategoryDTO, error)
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*CategoryDTO, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, fmt.Errorf("%w: category name cannot be empty", domain.ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLength {
		uc.log.Warnf("Use Case: Category name '%s' is too long", name)
		return nil, fmt.Errorf("%w: category name cannot exceed %d characters", domain.ErrValidation, maxCategoryNameLength)
	}

	category := &domain.Category{
		CategoryName: name,
		Description:  strings.TrimSpace(input.Description),
		Picture:      strings.TrimSpace(input.Picture),
	}
	uc.log.Infof("Use Case: Attempting to create category with name '%s'", name)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", category.CategoryName, category.CategoryID)
	dto := toCategoryDTO(category)
	return &dto, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int) (*CategoryDTO, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, fmt.Errorf("%w: invalid category ID", domain.ErrValidation)
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}
	dto := toCategoryDTO(category)
	return &dto, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	result := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		result = append(result, toCategoryDTO(&categories[i]))
	}
	uc.log.Infof("Use Case: Retrieved %d categories", len(result))
	return result, nil
}
