// Package validators registers the custom go-playground validation tags used
// across settings, domain entities and request payloads.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var sqlIdentifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// SQLIdentifierValidation accepts names that are safe to interpolate as an unquoted SQL identifier.
func SQLIdentifierValidation(fl validator.FieldLevel) bool {
	return sqlIdentifierPattern.MatchString(fl.Field().String())
}

// NotBlankValidation rejects strings made only of whitespace.
func NotBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ISODateValidation accepts calendar dates in YYYY-MM-DD form.
func ISODateValidation(fl validator.FieldLevel) bool {
	_, err := ParseISODate(fl.Field().String())
	return err == nil
}

// New returns a validator with every custom tag of this package registered.
func New() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("sqlident", SQLIdentifierValidation)
	_ = v.RegisterValidation("notblank", NotBlankValidation)
	_ = v.RegisterValidation("isodate", ISODateValidation)
	return v
}

// Describe flattens validator.ValidationErrors into "Field: X, Tag: Y" messages.
// Other errors are returned as their message.
func Describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return strings.Join(messages, "; ")
}
