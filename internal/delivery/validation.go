package delivery

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request bodies.
// It panics if they cannot be registered.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected binding validator engine %T", binding.Validator.Engine()))
		}
		if err := registerCatalogValidators(v); err != nil {
			panic(err)
		}
	})
}

func registerCatalogValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("catalogrole", func(fl validator.FieldLevel) bool {
		return domain.IsValidRole(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("could not register catalogrole validator: %w", err)
	}
	return nil
}

func parseID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
