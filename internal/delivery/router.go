package delivery

import (
	"net/http"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/middleware"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Products       usecase.ProductUseCase
	Categories     usecase.CategoryUseCase
	Suppliers      usecase.SupplierUseCase
	Auth           usecase.AuthUseCase
	Orders         usecase.OrderUseCase
	References     usecase.ReferenceUseCase
	Health         HealthChecker
	Guard          RouteGuard
	AllowedOrigins []string
	Logger         *logrus.Logger
}

// NewRouter assembles the gin engine with every route of the API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	NewHealthHandler(cfg.Health).RegisterRoutes(router)

	api := router.Group("/api")
	NewAuthHandler(cfg.Auth, cfg.Guard, cfg.Logger).RegisterRoutes(api)
	NewProductHandler(cfg.Products, cfg.Guard, cfg.Logger).RegisterRoutes(api)
	NewCategoryHandler(cfg.Categories, cfg.Guard, cfg.Logger).RegisterRoutes(api)
	NewSupplierHandler(cfg.Suppliers, cfg.Logger).RegisterRoutes(api)
	NewOrderHandler(cfg.Orders, cfg.References, cfg.Guard, cfg.Logger).RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		ErrorResponse(c, http.StatusNotFound, "Route not found")
	})
	return router
}
