package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"varsha-travels/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report json names so messages match what clients sent
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("booking_status", validateBookingStatus)
	validate.RegisterValidation("message_status", validateMessageStatus)
}

// ValidationError is a client-caused input problem. Message is safe to
// return to the caller as-is.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for field with a fixed message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors.
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return ValidationErrors{{Message: err.Error()}}
	}

	for _, fe := range fieldErrors {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: getErrorMessage(fe),
		})
	}

	return validationErrors
}

// check validates doc and folds the result into a single error. Any
// missing required field is reported with requiredMessage.
func check(doc interface{}, requiredMessage string) error {
	errs := ValidateStruct(doc)
	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		if e.Tag == "required" {
			return &ValidationError{Field: e.Field, Tag: e.Tag, Message: requiredMessage}
		}
	}
	first := errs[0]
	return &first
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "max":
		if k := err.Kind(); k == reflect.Slice || k == reflect.Array {
			return fmt.Sprintf("%s must have at most %s entries", err.Field(), err.Param())
		}
		if k := err.Kind(); k == reflect.Int {
			return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "oneof":
		if err.Field() == "mediaType" {
			return "Invalid media type"
		}
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "booking_status", "message_status":
		return "Invalid status"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return models.BookingStatus(fl.Field().String()).Valid()
}

func validateMessageStatus(fl validator.FieldLevel) bool {
	return models.MessageStatus(fl.Field().String()).Valid()
}
