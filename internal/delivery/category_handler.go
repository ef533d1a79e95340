package delivery

import (
	"fmt"
	"net/http"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	guard   RouteGuard
	log     *logrus.Entry
}

func NewCategoryHandler(uc usecase.CategoryUseCase, guard RouteGuard, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		guard:   guard,
		log:     logger.WithField("handler", "categories"),
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", h.guard.Require(domain.RoleAdmin), h.CreateCategory)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input usecase.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.useCase.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, err, "Failed to create category")
		return
	}
	h.log.Infof("Category created successfully: ID %d, Name %s", category.CategoryID, category.CategoryName)
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := h.useCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, fmt.Sprintf("Failed to get category %d", id))
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
