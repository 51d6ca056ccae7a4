package configs

import (
	"github.com/go-playground/validator/v10"
	"github.com/mdayat/prayer-tracker/internal/scoring"
)

func NewValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("localdate", func(fl validator.FieldLevel) bool {
		return scoring.ValidDate(fl.Field().String())
	})
	return validate
}
