package utils

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(jsonTagName)
	})
	return validate
}

// jsonTagName reports fields by their json (or form) name so details match the request.
func jsonTagName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// RegisterValidation adds a custom tag to the shared validator.
func RegisterValidation(tag string, fn validator.Func) error {
	return validatorInstance().RegisterValidation(tag, fn)
}

// ValidateStruct validates s and folds all field failures into one validation error.
func ValidateStruct(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, errors.FieldError(fe.Field(), fieldErrorReason(fe)))
	}
	return errors.NewValidationError("Validation failed", messages...)
}

// TranslateBindingError turns a gin binding failure into a validation error with field detail.
func TranslateBindingError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, errors.FieldError(fe.Field(), fieldErrorReason(fe)))
		}
		return errors.NewValidationError("Validation failed", messages...)
	}
	return errors.NewValidationError("Invalid request body", err.Error())
}

func fieldErrorReason(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", param)
		}
		return fmt.Sprintf("must be at most %s", param)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", param)
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", param)
	case "url":
		return "must be a valid URL"
	case "complaint_category":
		return "is not a valid complaint category"
	case "complaint_status":
		return "is not a valid complaint status"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
