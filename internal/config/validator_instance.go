package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	glinterrors "github.com/glintui/glint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNames = map[string]struct{}{"default": {}, "light": {}, "dark": {}}
	logLevels  = map[string]struct{}{
		"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
	}
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := themeNames[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, ok := logLevels[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a configuration against its constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return glinterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return glinterrors.NewValidationError("config", err.Error(), err)
	}

	first := fieldErrs[0]
	field := strings.TrimPrefix(first.Namespace(), "Config.")
	message := fmt.Sprintf("failed %q constraint", first.Tag())
	if first.Param() != "" {
		message = fmt.Sprintf("failed %q=%s constraint", first.Tag(), first.Param())
	}
	return glinterrors.NewValidationError(field, message, err)
}
