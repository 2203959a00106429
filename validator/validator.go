package validator

import (
	"slices"
	"strings"

	"github.com/nakamauwu/hirechat/errs"
)

// Validator collects field errors of an input.
// As an error it unwraps to a VALIDATION_FAILED [errs.Error].
type Validator struct {
	Errors map[string][]string
}

func New() *Validator {
	return &Validator{
		Errors: map[string][]string{},
	}
}

func (v *Validator) AddError(field, message string) {
	if v.Errors == nil {
		v.Errors = make(map[string][]string)
	}
	v.Errors[field] = append(v.Errors[field], message)
}

// Check adds the error when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *Validator) First(field string) string {
	if messages, exists := v.Errors[field]; exists && len(messages) != 0 {
		return messages[0]
	}
	return ""
}

func (v *Validator) fields() []string {
	fields := make([]string, 0, len(v.Errors))
	for field := range v.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

func (v *Validator) Error() string {
	var sb strings.Builder
	for _, field := range v.fields() {
		sb.WriteString(field + ": \n")
		for _, msg := range v.Errors[field] {
			sb.WriteString("\t- " + msg + "\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

func (v *Validator) Unwrap() error {
	fields := v.fields()
	if len(fields) == 0 {
		return nil
	}

	field := fields[0]
	return errs.NewInvalidArgumentError(errs.CodeValidationFailed, field, v.First(field))
}

func (v *Validator) AsError() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
