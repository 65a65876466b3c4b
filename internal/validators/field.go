// Package validators implements the field validation collaborator: given a
// field specification and a raw value it reports pass/fail with a
// human-readable reason. Wizard gates depend only on the outcome.
package validators

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// FieldError carries the failed field and its reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldSpec declares the checks for one form field.
type FieldSpec struct {
	Name       string
	Required   bool
	MinLength  int
	Email      bool
	Pattern    string
	PatternMsg string
	Min        *float64
}

// Check validates a raw value against the spec. Checks run in declaration
// order and the first failure wins, mirroring the form behavior.
func (s FieldSpec) Check(raw string) error {
	if s.Required {
		if err := Validate.Var(raw, "required"); err != nil {
			return &FieldError{Field: s.Name, Message: "This field is required."}
		}
	}
	if raw == "" {
		return nil
	}
	if s.MinLength > 0 {
		if err := Validate.Var(raw, fmt.Sprintf("min=%d", s.MinLength)); err != nil {
			return &FieldError{Field: s.Name, Message: fmt.Sprintf("Use at least %d characters.", s.MinLength)}
		}
	}
	if s.Email {
		if err := Validate.Var(raw, "email"); err != nil {
			return &FieldError{Field: s.Name, Message: "Enter a valid email address."}
		}
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return err
		}
		if !re.MatchString(raw) {
			msg := s.PatternMsg
			if msg == "" {
				msg = "Please match the requested format."
			}
			return &FieldError{Field: s.Name, Message: msg}
		}
	}
	if s.Min != nil {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || n < *s.Min {
			return &FieldError{Field: s.Name, Message: fmt.Sprintf("Must be at least %v.", *s.Min)}
		}
	}
	return nil
}

// CheckAll validates raw values against their specs and collects every
// failure.
func CheckAll(specs []FieldSpec, values map[string]string) []error {
	var errs []error
	for _, spec := range specs {
		if err := spec.Check(values[spec.Name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
