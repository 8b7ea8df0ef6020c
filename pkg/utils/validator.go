package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// FieldError is a single field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// safe text: letters, digits, underscore, dot, bang, comma, dash and space
var safeTextPattern = regexp.MustCompile(`^[a-zA-Z0-9_.!, -]*$`)

// clock is replaced in tests to pin "today"
var clock = time.Now

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "safetext", validateSafeText)
	mustRegister(v, "notfuture", validateNotFuture)
	mustRegister(v, "strongpassword", validateStrongPassword)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

func validateSafeText(fl validator.FieldLevel) bool {
	return safeTextPattern.MatchString(fl.Field().String())
}

// validateNotFuture passes unparsable dates through, datetime reports those
func validateNotFuture(fl validator.FieldLevel) bool {
	date, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return true
	}
	return date.Format(DateLayout) <= clock().Format(DateLayout)
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	var hasDigit, hasUpper, hasLower bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	return hasDigit && hasUpper && hasLower
}

// ValidateStruct runs every rule and returns all violations in field order
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors = append(errors, FieldError{
				Field:   err.Field(),
				Message: getErrorMessage(err),
			})
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "datetime":
		return "Date format must be YYYY-MM-DD"
	case "notfuture":
		return "Release date must be in the past"
	case "safetext":
		return "Only letters, digits, spaces and _ . ! , - are allowed"
	case "strongpassword":
		return "Password must contain at least one digit, one uppercase and one lowercase letter"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors into single string
func FormatValidationErrors(errors []FieldError) string {
	msgs := make([]string, 0, len(errors))
	for _, fe := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}
