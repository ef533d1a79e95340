package delivery

import (
	"fmt"
	"net/http"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouteGuard builds middleware that admits only the listed roles.
type RouteGuard interface {
	Require(roles ...string) gin.HandlerFunc
}

type productQuery struct {
	Page       int      `form:"page"`
	PageSize   int      `form:"pageSize"`
	CategoryID *int     `form:"categoryId"`
	MinPrice   *float64 `form:"minPrice"`
	MaxPrice   *float64 `form:"maxPrice"`
	Search     string   `form:"search"`
}

type ProductHandler struct {
	useCase usecase.ProductUseCase
	guard   RouteGuard
	log     *logrus.Entry
}

func NewProductHandler(uc usecase.ProductUseCase, guard RouteGuard, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		guard:   guard,
		log:     logger.WithField("handler", "products"),
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)

		editors := products.Group("", h.guard.Require(domain.RoleAdmin, domain.RoleUser))
		editors.POST("", h.CreateProduct)
		editors.PUT("/:id", h.UpdateProduct)
		editors.POST("/bulk", h.BulkGenerate)

		products.DELETE("/:id", h.guard.Require(domain.RoleAdmin), h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q productQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.log.Warnf("Invalid product query: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	page, err := h.useCase.ListProducts(c.Request.Context(), domain.ProductFilter{
		Page:       q.Page,
		PageSize:   q.PageSize,
		CategoryID: q.CategoryID,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Search:     q.Search,
	})
	if err != nil {
		respondError(c, h.log, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, fmt.Sprintf("Failed to get product %d", id))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input usecase.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.useCase.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, err, "Failed to create product")
		return
	}
	h.log.Infof("Product created successfully: ID %d", product.ProductID)
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input usecase.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.useCase.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.log, err, fmt.Sprintf("Failed to update product %d", id))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, fmt.Sprintf("Failed to delete product %d", id))
		return
	}
	h.log.Infof("Product discontinued: ID %d", id)
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) BulkGenerate(c *gin.Context) {
	var req usecase.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for bulk generation: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Count < usecase.MinBulkCount || req.Count > usecase.MaxBulkCount {
		ErrorResponse(c, http.StatusBadRequest,
			fmt.Sprintf("Count must be between %d and %d", usecase.MinBulkCount, usecase.MaxBulkCount))
		return
	}

	result, err := h.useCase.BulkGenerate(c.Request.Context(), req.Count)
	if err != nil {
		respondError(c, h.log, err, "Bulk generation failed")
		return
	}
	c.JSON(http.StatusOK, result)
}
