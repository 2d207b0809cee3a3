// Package validation implements field and form level checks for entry drafts,
// plus the advisory heuristic that flags likely-incomplete bug reports.
package validation

import (
	"fmt"
	"strings"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/models"
)

// MinLength is the minimum length applied to every non-empty text field.
const MinLength = 3

// Rule checks a single field value and returns a message when it fails.
type Rule func(value string) (ok bool, message string)

// Required fails on values that are empty after trimming.
func Required() Rule {
	return func(value string) (bool, string) {
		if strings.TrimSpace(value) == "" {
			return false, "This field is required"
		}
		return true, ""
	}
}

// MinLen fails on non-empty values shorter than n characters.
func MinLen(n int) Rule {
	return func(value string) (bool, string) {
		v := strings.TrimSpace(value)
		if v != "" && len(v) < n {
			return false, fmt.Sprintf("Minimum %d characters required", n)
		}
		return true, ""
	}
}

// FieldResult is the outcome of validating one field.
type FieldResult struct {
	Field   string
	Valid   bool
	Message string
}

// Error aggregates per-field failures for one form. It matches
// common.ErrValidation via errors.Is.
type Error struct {
	Fields []FieldResult
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

func (e *Error) Unwrap() error { return common.ErrValidation }

// ValidateField evaluates rules in declaration order and stops at the first
// failure.
func ValidateField(field, value string, rules ...Rule) FieldResult {
	for _, rule := range rules {
		if ok, msg := rule(value); !ok {
			return FieldResult{Field: field, Valid: false, Message: msg}
		}
	}
	return FieldResult{Field: field, Valid: true}
}

// ValidateDraft validates every declared field of the draft's form, collecting
// all failures. A nil return means the draft is valid.
func ValidateDraft(in models.NewEntryInput) *Error {
	var failed []FieldResult

	check := func(field, value string) {
		r := ValidateField(field, value, Required(), MinLen(MinLength))
		if !r.Valid {
			failed = append(failed, r)
		}
	}

	check("featureName", in.Title)
	check("expectedBehavior", in.ExpectedBehavior)

	switch in.Kind {
	case models.KindBug:
		check("actualBehavior", in.ActualBehavior)
	case models.KindFeature:
		if in.Importance < 1 || in.Importance > 10 {
			failed = append(failed, FieldResult{
				Field: "featureImportance", Message: "Value must be between 1 and 10",
			})
		}
		if in.Desirability < 1 || in.Desirability > 10 {
			failed = append(failed, FieldResult{
				Field: "desirability", Message: "Value must be between 1 and 10",
			})
		}
	default:
		failed = append(failed, FieldResult{Field: "type", Message: "Unknown entry type"})
	}

	if len(failed) > 0 {
		return &Error{Fields: failed}
	}
	return nil
}

// vaguePhrases are substrings that mark a behavior description as too vague to
// verify.
var vaguePhrases = []string{"doesn't work", "broken"}

// NeedsVerification flags a bug report as under-specified. The returned issues
// never block submission; callers schedule a deferred advisory instead.
func NeedsVerification(e models.Entry) []string {
	if e.Kind != models.KindBug {
		return nil
	}

	var issues []string

	if e.ErrorCode == "" && (e.Priority == models.PriorityHigh || e.Priority == models.PriorityCritical) {
		issues = append(issues, "High priority bugs require error codes")
	}

	if e.ErrorMessage == "" && len(e.ExpectedBehavior) < 20 && len(e.ActualBehavior) < 20 {
		issues = append(issues, "Insufficient detail in behavior descriptions")
	}

	expected := strings.ToLower(e.ExpectedBehavior)
	actual := strings.ToLower(e.ActualBehavior)
	for _, phrase := range vaguePhrases {
		if strings.Contains(expected, phrase) || strings.Contains(actual, phrase) {
			issues = append(issues, "Vague descriptions need more specific details")
			break
		}
	}

	return issues
}
