package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator. Field errors are keyed by
// JSON name, so "item_id" rather than "ItemID".
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)

		_ = v.RegisterValidation("tradeside", validateTradeSide)
		_ = v.RegisterValidation("catalogfilter", validateCatalogFilter)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the shared validator
func GetValidator() *Validator {
	InitValidator()
	return validate
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps each failing field to a readable message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "tradeside":
			errs[field] = "Must be left or right"
		case "catalogfilter":
			errs[field] = "Unknown filter"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateTradeSide accepts "left" and "right". Empty passes so the tag can
// be combined with omitempty or required.
func validateTradeSide(fl validator.FieldLevel) bool {
	switch domain.TradeSide(fl.Field().String()) {
	case "", domain.TradeSideLeft, domain.TradeSideRight:
		return true
	}
	return false
}

func validateCatalogFilter(fl validator.FieldLevel) bool {
	return domain.Filter(fl.Field().String()).IsValid()
}
