package delivery

import (
	"errors"
	"net/http"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.AuthUseCase
	guard   RouteGuard
	log     *logrus.Entry
}

func NewAuthHandler(uc usecase.AuthUseCase, guard RouteGuard, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		guard:   guard,
		log:     logger.WithField("handler", "auth"),
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.guard.Require(domain.RoleAdmin), h.Register)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req usecase.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Invalid login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.useCase.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			ErrorResponse(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		respondError(c, h.log, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req usecase.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Invalid register request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.useCase.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err, "Registration failed")
		return
	}
	h.log.Infof("User registered: ID %d, Username %s", user.UserID, user.Username)
	c.JSON(http.StatusCreated, user)
}
