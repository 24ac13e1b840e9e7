package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Dulllu/netsasa/pkg/phone"
)

var safeIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("msisdn", validateMsisdn)
		_ = v.RegisterValidation("safe_id", validateSafeID)
	}
}

// validateMsisdn accepts any phone form that normalizes to a Kenyan MSISDN.
func validateMsisdn(fl validator.FieldLevel) bool {
	_, ok := phone.Normalize(fl.Field().String())
	return ok
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeIDRe.MatchString(fl.Field().String())
}
