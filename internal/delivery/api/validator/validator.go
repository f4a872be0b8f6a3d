// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"accounts/internal/domain/entity"
	"accounts/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates bound request bodies by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// roleTag accepts exactly the values of entity.AllRoles.
const roleTag = "role"

// New returns a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterAlias(roleTag, "oneof="+strings.Join(entity.AllRoles.ToStrings(), " "))
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Details maps each failed field in err's chain to a short message. It returns
// nil when err holds no validation errors.
func Details(err error) map[string]string {
	verrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok || len(verrs) == 0 {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatFieldError(fe)
	}

	return out
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case roleTag:
		return "must be one of: " + strings.Join(entity.AllRoles.ToStrings(), ", ")
	default:
		return "is invalid"
	}
}
