package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is the wire shape of a single validation failure.
type FieldError struct {
	Msg string `json:"msg"`
}

// ErrorsResponse is the 400 body for validation failures.
type ErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates the request struct against its validate tags and returns
// field-level messages, or nil when the input is valid.
func Check(req interface{}) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Msg: "Invalid request"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Msg: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Please include a valid email"
	case "min":
		if fe.Field() == "password" {
			return "Please enter a password with 6 or more characters"
		}
	}
	if fe.Field() == "from" {
		return "From date is required"
	}
	return title(fe.Field()) + " is required"
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
