package delivery

import (
	"fmt"
	"net/http"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SupplierHandler struct {
	useCase usecase.SupplierUseCase
	log     *logrus.Entry
}

func NewSupplierHandler(uc usecase.SupplierUseCase, logger *logrus.Logger) *SupplierHandler {
	return &SupplierHandler{useCase: uc, log: logger.WithField("handler", "suppliers")}
}

func (h *SupplierHandler) RegisterRoutes(router gin.IRouter) {
	suppliers := router.Group("/suppliers")
	suppliers.GET("", h.ListSuppliers)
	suppliers.GET("/:id", h.GetSupplier)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}
	supplier, err := h.useCase.GetSupplier(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, fmt.Sprintf("Failed to get supplier %d", id))
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.useCase.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, suppliers)
}
