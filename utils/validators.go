package utils

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// vinAlphabet is the character set permitted in a VIN. I, O and Q are
// excluded to avoid confusion with 1 and 0.
const vinAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

// IsValidVin reports whether s is a well-formed 17-character VIN
func IsValidVin(s string) bool {
	if len(s) != 17 {
		return false
	}
	for _, r := range strings.ToUpper(s) {
		if !strings.ContainsRune(vinAlphabet, r) {
			return false
		}
	}
	return true
}

// vinRule adapts IsValidVin to a validator.Func for gin binding tags.
// Empty values pass; pair with "required" where a VIN is mandatory.
func vinRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsValidVin(value)
}

// RegisterValidators registers the custom binding rules on gin's validator
// engine. Call once at startup before handling requests.
func RegisterValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("vin", vinRule)
	}
	return nil
}
