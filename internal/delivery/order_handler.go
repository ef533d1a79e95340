package delivery

import (
	"fmt"
	"net/http"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type orderListQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

type OrderHandler struct {
	orders     usecase.OrderUseCase
	references usecase.ReferenceUseCase
	guard      RouteGuard
	log        *logrus.Entry
}

func NewOrderHandler(orders usecase.OrderUseCase, references usecase.ReferenceUseCase, guard RouteGuard, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orders:     orders,
		references: references,
		guard:      guard,
		log:        logger.WithField("handler", "orders"),
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	authed := router.Group("", h.guard.Require())
	{
		authed.GET("/orders", h.ListOrders)
		authed.GET("/orders/:id", h.GetOrder)
		authed.POST("/orders", h.CreateOrder)

		authed.GET("/customers", h.ListCustomers)
		authed.GET("/employees", h.ListEmployees)
		authed.GET("/shippers", h.ListShippers)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input usecase.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for create order: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, err, "Failed to create order")
		return
	}
	h.log.Infof("Order created successfully: ID %d", order.OrderID)
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, fmt.Sprintf("Failed to get order %d", id))
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q orderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	orders, err := h.orders.ListOrders(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		respondError(c, h.log, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListCustomers(c *gin.Context) {
	customers, err := h.references.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *OrderHandler) ListEmployees(c *gin.Context) {
	employees, err := h.references.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *OrderHandler) ListShippers(c *gin.Context) {
	shippers, err := h.references.ListShippers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to list shippers")
		return
	}
	c.JSON(http.StatusOK, shippers)
}
