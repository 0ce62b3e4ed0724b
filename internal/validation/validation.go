// Package validation holds the client-side form rules. Failures are
// reported per field and never sent to the server.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// category labels contain spaces, so oneof cannot express this
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Categories, fl.Field().String())
	})
}

// ProductForm is the create/update product form.
type ProductForm struct {
	Name        string   `validate:"required,min=3,max=100"`
	Description string   `validate:"required,min=5"`
	Price       float64  `validate:"required,gt=0,lte=200000"`
	Category    string   `validate:"required,category"`
	Sizes       []string `validate:"required,min=1,dive,required"`
	Colors      []string `validate:"required,min=1,dive,required"`
	// Images counts every image the product will end up with: retained
	// references plus new upload names.
	Images []string `validate:"required,min=1,dive,required"`
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Validate validates a struct using go-playground/validator tags.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return &Error{Errors: validationErrors}
		}
		return err
	}
	return nil
}

// Error wraps validator.ValidationErrors with user-friendly messages.
type Error struct {
	Errors validator.ValidationErrors
}

func (e *Error) Error() string {
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("field '%s' %s", err.Field(), msgForTag(err)))
	}
	return strings.Join(msgs, "; ")
}

// Fields returns a map of field names to error messages, for rendering each
// message next to the offending input.
func (e *Error) Fields() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for _, err := range e.Errors {
		fields[err.Field()] = msgForTag(err)
	}
	return fields
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("needs at least %s entry", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "category":
		return "must be one of the known categories"
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
