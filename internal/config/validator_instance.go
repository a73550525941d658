package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Exactly six hex digits with an optional leading #. Three-digit
	// shorthand is deliberately rejected.
	hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, err := catalog.ParsePlatform(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, err := catalog.ParseCategory(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside
// the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
