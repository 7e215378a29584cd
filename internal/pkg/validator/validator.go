package validator

import (
	"reflect"
	"sort"
	"strings"

	"eventpro/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate checks struct tags and returns json field name -> failed rule,
// or nil when v is valid.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errors[fe.Field()] = rule(fe)
	}
	return errors
}

// Var validates a single value against tag, e.g. Var(email, "required,email").
func Var(v any, tag string) bool {
	return validate.Var(v, tag) == nil
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// FieldErrors is the error form of Validate's result. It is marked with
// errs.ErrValidation by Check so the HTTP layer can surface it as details.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// Check is Validate for service code that returns errors.
func Check(v any) error {
	fields := Validate(v)
	if fields == nil {
		return nil
	}
	return errs.Mark(FieldErrors(fields), errs.ErrValidation)
}
