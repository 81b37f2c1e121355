package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/projworks/advance_ledger_app/internal/dto"
)

func init() {
	registerValidations()
}

// registerValidations installs custom binding tags on gin's validator engine.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// dateonly: a YYYY-MM-DD calendar date string
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dto.DateLayout, fl.Field().String())
		return err == nil
	})
}
