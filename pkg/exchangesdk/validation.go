package exchangesdk

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of exchange dates.
const DateLayout = time.DateOnly

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// isodate accepts an empty string or a YYYY-MM-DD calendar date.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := time.Parse(DateLayout, s)
		return err == nil
	})

	return v
}

// ValidateStruct runs the tag validations on any request type and returns a
// map of JSON field names to messages, or nil when the value is valid.
func ValidateStruct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("too long (max %s)", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "invalid value"
	}
}

// Validate checks the request fields.
// Returns a map of field names to error messages, or nil if all fields are valid.
func (r CreateExchangeRequest) Validate() map[string]string {
	errs := ValidateStruct(r)
	if strings.TrimSpace(r.Title) == "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["title"] = "required"
	}
	return errs
}

// Validate checks the request fields.
func (r UpdateExchangeRequest) Validate() map[string]string { return ValidateStruct(r) }

// Validate checks the request fields.
func (r AddParticipantRequest) Validate() map[string]string {
	errs := ValidateStruct(r)
	if strings.TrimSpace(r.Name) == "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["name"] = "required"
	}
	return errs
}

// Validate checks the request fields.
func (r UpdateParticipantRequest) Validate() map[string]string { return ValidateStruct(r) }
