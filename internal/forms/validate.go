package forms

import (
	"fmt"
)

// FieldError is one missing-required-field failure, carrying the human label
// shown to the user.
type FieldError struct {
	FieldID string `json:"fieldId"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// CustomResult is the tri-state return contract of a caller-supplied
// validator: pass, generic failure, or an itemized failure list. All three
// arms are part of the contract.
type CustomResult struct {
	pass     bool
	messages []string
}

// Pass returns a passing result.
func Pass() CustomResult {
	return CustomResult{pass: true}
}

// Fail returns a generic failure; the engine synthesizes a single generic
// message for it.
func Fail() CustomResult {
	return CustomResult{}
}

// FailWith returns an itemized failure list.
func FailWith(messages ...string) CustomResult {
	return CustomResult{messages: messages}
}

// CustomValidator is a caller-supplied rule run against the raw form values.
type CustomValidator func(values map[string]interface{}) CustomResult

// genericValidationMessage is surfaced when a custom validator fails without
// itemizing its reasons.
const genericValidationMessage = "Falha na validação do formulário"

// ValidateRequired emits one error per missing required field. A value is
// missing when absent, nil, or a string that is blank after trimming. Error
// order follows requiredFieldIDs, never the iteration order of values.
func ValidateRequired(requiredFieldIDs []string, labels map[string]string, values map[string]interface{}) []FieldError {
	var errs []FieldError
	for _, id := range requiredFieldIDs {
		if !valueMissing(values[id]) {
			continue
		}
		label := labels[id]
		if label == "" {
			label = id
		}
		errs = append(errs, FieldError{
			FieldID: id,
			Label:   label,
			Message: fmt.Sprintf("%s é obrigatório", label),
		})
	}
	return errs
}

// RunCustomValidator evaluates a validator against the form values. A nil
// validator passes.
func RunCustomValidator(validator CustomValidator, values map[string]interface{}) []string {
	if validator == nil {
		return nil
	}
	result := validator(values)
	if result.pass {
		return nil
	}
	if len(result.messages) == 0 {
		return []string{genericValidationMessage}
	}
	return result.messages
}

// MergeErrors concatenates field errors before custom errors, without
// deduplication. A non-empty merged list blocks the attempted action and is
// surfaced whole; validation never short-circuits on the first error.
func MergeErrors(fieldErrors []FieldError, customErrors []string) []string {
	merged := make([]string, 0, len(fieldErrors)+len(customErrors))
	for _, fe := range fieldErrors {
		merged = append(merged, fe.Message)
	}
	merged = append(merged, customErrors...)
	return merged
}

// Validate runs the full validation pass for one attempt: the error list
// always starts empty, so a fix attempt that introduces a different error
// never shows stale entries.
func Validate(requiredFieldIDs []string, labels map[string]string, values map[string]interface{}, validator CustomValidator) []string {
	fieldErrs := ValidateRequired(requiredFieldIDs, labels, values)
	customErrs := RunCustomValidator(validator, values)
	return MergeErrors(fieldErrs, customErrs)
}
