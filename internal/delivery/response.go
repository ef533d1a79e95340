package delivery

import (
	"errors"
	"net/http"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const internalErrorMessage = "An unexpected error occurred"

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameExists),
		errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrPrecondition):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the Fail envelope for err. Unclassified errors are only
// logged; the client gets a generic message.
func respondError(c *gin.Context, log logrus.FieldLogger, err error, action string) {
	status := mapErrorToStatus(err)
	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		log.Errorf("%s: %v", action, err)
		message = internalErrorMessage
	case http.StatusServiceUnavailable:
		log.Errorf("%s: %v", action, err)
		message = "Service temporarily unavailable"
	default:
		log.Warnf("%s: %v", action, err)
	}
	ErrorResponse(c, status, message)
}
