package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("interval_unit", validateIntervalUnit)
	}
}

// validateIntervalUnit accepts any unit the recurrence package can parse.
func validateIntervalUnit(fl validator.FieldLevel) bool {
	_, err := recurrence.ParseUnit(fl.Field().String())
	return err == nil
}
