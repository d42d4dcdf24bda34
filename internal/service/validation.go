package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"task_tracker/internal/model"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

const phoneMessage = "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."

// newValidator returns a validator that reports json field names and knows
// the phone and task_status tags.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return model.ValidTaskStatus(fl.Field().String())
	})
	return v
}

// ValidPhoneNumber reports whether phone matches the accepted phone format.
func ValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// toValidationError converts validator output into a ValidationError.
// Errors that did not come from field validation are returned unchanged.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe.Tag(), fe.Param())
	}
	return &ValidationError{Message: "invalid input", Fields: fields}
}

// validateVar validates a single value and reports failures under field.
func validateVar(v *validator.Validate, field string, value interface{}, tag string) *ValidationError {
	err := v.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{
			Message: "invalid input",
			Fields:  map[string]string{field: fieldMessage(verrs[0].Tag(), verrs[0].Param())},
		}
	}
	return &ValidationError{Message: "invalid input", Fields: map[string]string{field: err.Error()}}
}

func fieldMessage(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", param)
	case "email":
		return "Enter a valid email address."
	case "phone":
		return phoneMessage
	case "task_status":
		return fmt.Sprintf("Must be one of: %s, %s, %s.",
			model.TaskStatusPending, model.TaskStatusInProgress, model.TaskStatusCompleted)
	default:
		return "Invalid value."
	}
}
