package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/fithouse/console/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Struct checks the validate tags on dest and maps failures to a validation
// error with per-field details. Use-case preconditions and wire payloads share
// these rules so they cannot drift apart. When the first failing field carries
// an errmsg tag, that string becomes the error message, so payloads own their
// user-facing wording.
func Struct(dest any) error {
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(dest, err)
	}
	return nil
}

// Required fails with the given message when value is empty after trimming.
// The message is the exact string surfaced to the caller, so entity packages
// keep their operation-specific wording.
func Required(value, message string) error {
	if strings.TrimSpace(value) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, message)
	}
	return nil
}

// OneOf fails with the given message unless value is exactly one of allowed.
// No trimming or case folding: the whitelist is literal.
func OneOf(value string, allowed []string, message string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation, message)
}

func formatValidationErrors(dest any, err error) *pkgerrors.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
	}
	message := "validation failed"
	details := map[string]string{}
	for i, fieldErr := range errs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
		if i == 0 {
			if pinned := pinnedMessage(dest, fieldErr.StructField()); pinned != "" {
				message = pinned
			}
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation, message).WithDetails(details)
}

// pinnedMessage reads the errmsg tag off the failing struct field, if any.
func pinnedMessage(dest any, structField string) string {
	t := reflect.TypeOf(dest)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	if f, ok := t.FieldByName(structField); ok {
		return f.Tag.Get("errmsg")
	}
	return ""
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	}
	return "is invalid"
}
