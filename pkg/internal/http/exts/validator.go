package exts

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Field errors are reported under the form field name.
	validation.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			} else if len(name) > 0 {
				return name
			}
		}
		return field.Name
	})
}

func ValidateStruct(data any) error {
	return validation.Struct(data)
}

func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err := ValidateStruct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}

// ValidateForm checks data and returns the messages keyed by form field, nil when valid.
func ValidateForm(data any) map[string]string {
	err := ValidateStruct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"__all__": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, item := range fieldErrs {
		out[item.Field()] = formFieldMessage(item)
	}
	return out
}

func formFieldMessage(item validator.FieldError) string {
	switch item.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", item.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", item.Param())
	case "alphanum":
		return "Only letters and digits are allowed."
	case "eqfield":
		return "The two values do not match."
	case "number":
		return "Select a valid choice."
	default:
		return fmt.Sprintf("Invalid value (%s).", item.Tag())
	}
}
