package extension

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NamespaceSeparator joins namespace segments.
const NamespaceSeparator = `\`

var (
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	namespacePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*(\\[A-Z][a-zA-Z0-9]*)*$`)
)

// Validation errors reported to the user before re-prompting.
var (
	ErrInvalidSlug      = errors.New("Invalid format. Use lowercase letters, numbers, and hyphens only (e.g., 'my-extension')")
	ErrInvalidNamespace = errors.New(`Invalid format. Use PascalCase with backslashes (e.g., 'MyCompany\MyExtension')`)
	ErrBlankDescription = errors.New("Description cannot be empty or whitespace only")
	ErrNumericSegment   = errors.New("Invalid format. Namespace segments cannot start with numbers")
	ErrIncompleteConfig = errors.New("configuration is incomplete")
)

// ValidateSlug checks a slug or vendor name.
func ValidateSlug(s string) error {
	if !slugPattern.MatchString(s) {
		return ErrInvalidSlug
	}
	return nil
}

// ValidateNamespace checks a backslash-separated PascalCase namespace.
func ValidateNamespace(ns string) error {
	for _, segment := range strings.Split(ns, NamespaceSeparator) {
		if segment != "" && segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("%w (segment: '%s')", ErrNumericSegment, segment)
		}
	}
	if !namespacePattern.MatchString(ns) {
		return ErrInvalidNamespace
	}
	return nil
}

// ValidateDescription rejects empty or whitespace-only descriptions.
func ValidateDescription(d string) error {
	if strings.TrimSpace(d) == "" {
		return ErrBlankDescription
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return ValidateSlug(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("namespace", func(fl validator.FieldLevel) bool {
		return ValidateNamespace(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return ValidateDescription(fl.Field().String()) == nil
	})
	return v
}

// Validate checks the whole record, derived fields included. It is the last
// gate before the record is handed to the rewrite phase.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		if c.LicenseType != LicenseType(c.IsFree) {
			return fmt.Errorf("%w: license %q does not match the selected license type", ErrIncompleteConfig, c.LicenseType)
		}
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating configuration: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrIncompleteConfig, strings.Join(msgs, ", "))
}
