package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "luxestay/pkg/errors"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// AppError converts field errors into a 422 whose details map each field to
// its message.
func (v ValidationErrors) AppError() *apperrors.AppError {
	details := make(map[string]any, len(v))
	for _, e := range v {
		details[e.Field] = e.Message
	}
	message := "Validation failed"
	if len(v) == 1 {
		message = v[0].Message
	}
	return apperrors.Validation(message, details)
}

// New returns a validator that reports JSON field names instead of Go names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Translate turns validator errors into ValidationErrors. Messages can be
// overridden through custom, keyed by "field.tag" or by "tag".
func Translate(err error, custom map[string]string) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var out ValidationErrors
	for _, fe := range validationErrs {
		out = append(out, ValidationError{
			Field:   fieldPath(fe),
			Message: message(fe, custom),
		})
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError, custom map[string]string) string {
	field := fieldPath(fe)
	if msg, ok := custom[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := custom[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ToAppError maps a validation result onto the API error taxonomy.
func ToAppError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs.AppError()
	}
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.InvalidInput(err.Error())
}
