package provision

import "fmt"

// Validation error codes. Callers switch on Code to render field-specific
// messages; the codes are part of the onboarding API surface and must not
// change.
const (
	CodeMissingTemplate       = "MISSING_TEMPLATE"
	CodeMissingRequiredField  = "MISSING_REQUIRED_FIELD"
	CodeInvalidTemplateConfig = "INVALID_TEMPLATE_CONFIG"
)

// ValidationError is returned as a value when provisioning input fails
// validation. It is the only error type BuildClientFromTemplate produces.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func missingField(field string) *ValidationError {
	return &ValidationError{
		Code:    CodeMissingRequiredField,
		Field:   field,
		Message: field + " is required",
	}
}
