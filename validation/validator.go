package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"bookapi/models"
)

// BookValidator validates and normalizes book payloads. It collects every
// violation instead of stopping at the first one, so a caller can fix all
// problems in one round-trip.
type BookValidator struct {
	validate *validator.Validate
}

func NewBookValidator() *BookValidator {
	validate := validator.New()

	// Report json field names instead of Go struct field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("currentyear", notAfterCurrentYear); err != nil {
		panic(err)
	}

	return &BookValidator{validate: validate}
}

// ValidateCreate checks a full create payload and trims title and author on
// success. On failure it returns a *ValidationError listing every violation.
func (v *BookValidator) ValidateCreate(payload *models.BookCreate) error {
	if err := v.check(payload); err != nil {
		return err
	}

	payload.Title = strings.TrimSpace(payload.Title)
	payload.Author = strings.TrimSpace(payload.Author)
	return nil
}

// ValidateUpdate checks a partial payload: nil fields are untouched, present
// fields must satisfy the same rules as on create.
func (v *BookValidator) ValidateUpdate(payload *models.BookUpdate) error {
	if err := v.check(payload); err != nil {
		return err
	}

	if payload.Title != nil {
		trimmed := strings.TrimSpace(*payload.Title)
		payload.Title = &trimmed
	}
	if payload.Author != nil {
		trimmed := strings.TrimSpace(*payload.Author)
		payload.Author = &trimmed
	}
	return nil
}

func (v *BookValidator) check(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, fieldErrorFrom(fe))
	}
	return &ValidationError{Errors: fieldErrors}
}

// FromJSONError converts a request-body decode failure into the same field
// error shape the rule checks produce, so wrong-type input is reported per
// field rather than as an opaque parse error.
func FromJSONError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{Errors: []FieldError{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Type: "type_error",
		}}}
	}

	return &ValidationError{Errors: []FieldError{{
		Loc:  []string{"body"},
		Msg:  "request body is not valid JSON",
		Type: "json_invalid",
	}}}
}

func fieldErrorFrom(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}

	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "field is required", Type: "missing"}
	case "notblank":
		return FieldError{
			Loc:  loc,
			Msg:  "field cannot be empty or contain only whitespace",
			Type: "string_too_short",
		}
	case "gt":
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("must be greater than %s", fe.Param()),
			Type: "greater_than",
		}
	case "gte":
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("must be greater than or equal to %s", fe.Param()),
			Type: "greater_than_equal",
		}
	case "currentyear":
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("must not be after the current year (%d)", time.Now().Year()),
			Type: "less_than_equal",
		}
	default:
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("failed validation rule %q", fe.Tag()),
			Type: "invalid",
		}
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func notAfterCurrentYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(time.Now().Year())
}
