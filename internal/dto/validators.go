package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Registration numbers look like "21CSE001": two year digits, a branch code,
// a roll number. Matching is case-insensitive since lookups uppercase first.
var regdNoRe = regexp.MustCompile(`(?i)^[0-9]{2}[A-Z]{2,5}[0-9]{3,4}$`)

// RegisterValidations installs custom binding rules on gin's validator
// engine. Call once before the router handles traffic.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("regdno", func(fl validator.FieldLevel) bool {
			return regdNoRe.MatchString(fl.Field().String())
		})
	}
}
