// Package validation provides presence checks for ontomapper request bodies.
//
// It uses:
//   - go-playground/validator for struct-level validation
//   - json-gold for JSON-LD documents staged through the upload endpoint
//
// The checks are deliberately shallow: a property suggestion is valid when it
// names a property, and a graph payload is valid when every node has an id.
// Domain and range are accepted but never compared against the ontology.
//
// # Usage Example
//
//	v := validation.New()
//	result := v.ValidateProperty(validation.PropertyRequest{Property: uri})
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Printf("%s: %s\n", e.Field, e.Message)
//	    }
//	}
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piprate/json-gold/ld"

	"evalgo.org/ontomapper/internal/serialize"
)

// Validator combines struct validation with JSON-LD expansion checks.
type Validator struct {
	// structValidator validates Go struct constraints and tags
	structValidator *validator.Validate

	// jsonldProcessor expands uploaded JSON-LD documents
	jsonldProcessor *ld.JsonLdProcessor
}

// ValidationError represents a single validation error with field-level details.
type ValidationError struct {
	// Field is the JSON name of the field that failed validation
	Field string `json:"field"`

	// Message describes why the validation failed
	Message string `json:"message"`

	// Value is the invalid value that caused the error (optional)
	Value interface{} `json:"value,omitempty"`
}

// ValidationResult represents the complete result of a validation operation.
type ValidationResult struct {
	// Valid is true if validation passed, false otherwise
	Valid bool `json:"valid"`

	// Errors contains all validation errors found (empty if Valid is true)
	Errors []ValidationError `json:"errors,omitempty"`
}

// PropertyRequest is the body of a property suggestion check.
type PropertyRequest struct {
	Property string `json:"property" validate:"required"`
	Domain   string `json:"domain,omitempty"`
	Range    string `json:"range,omitempty"`
}

// New creates a Validator that reports JSON field names in its errors.
func New() *Validator {
	sv := validator.New()
	sv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		structValidator: sv,
		jsonldProcessor: ld.NewJsonLdProcessor(),
	}
}

// ValidateProperty reports whether req names a property.
func (v *Validator) ValidateProperty(req PropertyRequest) *ValidationResult {
	return v.result(v.structValidator.Struct(req))
}

// ValidateGraph checks that every node of g carries an id.
// The returned error is nil when the graph is usable by the generators.
func (v *Validator) ValidateGraph(g serialize.Graph) error {
	result := v.result(v.structValidator.Struct(g))
	if result.Valid {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return fmt.Errorf("invalid graph: %s", strings.Join(msgs, "; "))
}

// ValidateJSONLD checks that data is a JSON-LD document json-gold can expand.
func (v *Validator) ValidateJSONLD(data []byte) *ValidationResult {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{
					Field:   "document",
					Message: fmt.Sprintf("Invalid JSON: %v", err),
				},
			},
		}
	}

	options := ld.NewJsonLdOptions("")
	expanded, err := v.jsonldProcessor.Expand(doc, options)
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{
					Field:   "document",
					Message: fmt.Sprintf("Invalid JSON-LD structure: %v", err),
				},
			},
		}
	}

	if len(expanded) == 0 {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{
					Field:   "@graph",
					Message: "Document expands to no nodes",
				},
			},
		}
	}

	return &ValidationResult{Valid: true}
}

// result converts a go-playground error into a ValidationResult.
func (v *Validator) result(err error) *ValidationResult {
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "document", Message: err.Error()}},
		}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fieldPath(fe),
			Message: message(fe),
			Value:   fe.Value(),
		})
	}
	return &ValidationResult{Valid: false, Errors: out}
}

// fieldPath strips the root struct name from a namespace such as
// "Graph.nodes[1].id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
	}
}
