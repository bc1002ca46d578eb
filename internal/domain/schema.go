package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every schema; validator instances cache tag parsing.
var validate = validator.New()

// FieldType is the wire type of a schema field.
type FieldType string

// Supported field types.
const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeArray   FieldType = "array"
)

// FieldRule declares the constraints of one input field. The same rule drives
// runtime validation and the published API descriptor.
type FieldRule struct {
	Name        string
	Title       string
	Description string
	Type        FieldType
	Required    bool

	// Length bounds for strings, zero means unbounded.
	MinLength int
	MaxLength int

	// Numeric bounds, nil means unbounded.
	GreaterThan *float64
	Minimum     *float64

	Enum    []string
	Default any
	Example any
}

// Tag renders the rule as a go-playground/validator tag. Presence and type are
// checked separately, so the tag only carries value constraints.
func (r FieldRule) Tag() string {
	var parts []string
	switch r.Type {
	case TypeString:
		if r.MinLength > 0 {
			parts = append(parts, "min="+strconv.Itoa(r.MinLength))
		}
		if r.MaxLength > 0 {
			parts = append(parts, "max="+strconv.Itoa(r.MaxLength))
		}
		if len(r.Enum) > 0 {
			parts = append(parts, "oneof="+strings.Join(r.Enum, " "))
		}
	case TypeNumber:
		if r.GreaterThan != nil {
			parts = append(parts, "gt="+formatFloat(*r.GreaterThan))
		}
		if r.Minimum != nil {
			parts = append(parts, "gte="+formatFloat(*r.Minimum))
		}
	}
	return strings.Join(parts, ",")
}

// Schema is an ordered set of field rules describing one input shape.
type Schema struct {
	Name        string
	Description string
	Fields      []FieldRule
	Example     map[string]any
}

// RequiredFields lists the names of required fields in declaration order.
func (s Schema) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validate checks values against every rule and returns all violations, or nil.
// A missing key or a nil value means the field was not supplied. Values must use
// the Go types produced by JSON decoding into typed fields: string, float64,
// bool and []string.
func (s Schema) Validate(values map[string]any) *ValidationError {
	verr := &ValidationError{}
	for _, rule := range s.Fields {
		v, ok := values[rule.Name]
		if !ok || v == nil {
			if rule.Required {
				verr.Add(rule.Name, KindRequired, "field required")
			}
			continue
		}

		if !hasType(rule.Type, v) {
			verr.Add(rule.Name, KindType, fmt.Sprintf("value is not a valid %s", rule.Type))
			continue
		}

		tag := rule.Tag()
		if tag == "" {
			continue
		}
		if err := validate.Var(v, tag); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				verr.Add(rule.Name, KindType, "value could not be validated")
				continue
			}
			for _, fe := range fieldErrs {
				kind, msg := describe(rule, fe.Tag(), fe.Param())
				verr.Add(rule.Name, kind, msg)
			}
		}
	}
	if !verr.HasViolations() {
		return nil
	}
	return verr
}

func hasType(t FieldType, v any) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		_, ok := v.(float64)
		return ok
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeArray:
		_, ok := v.([]string)
		return ok
	}
	return false
}

// describe maps a failed validator tag to a violation kind and message.
func describe(rule FieldRule, tag, param string) (ViolationKind, string) {
	switch tag {
	case "min":
		return KindLength, fmt.Sprintf("ensure this value has at least %s characters", param)
	case "max":
		return KindLength, fmt.Sprintf("ensure this value has at most %s characters", param)
	case "gt":
		return KindRange, fmt.Sprintf("ensure this value is greater than %s", param)
	case "gte":
		return KindRange, fmt.Sprintf("ensure this value is greater than or equal to %s", param)
	case "oneof":
		quoted := make([]string, len(rule.Enum))
		for i, e := range rule.Enum {
			quoted[i] = "'" + e + "'"
		}
		return KindEnum, "value is not a valid enumeration member; permitted: " + strings.Join(quoted, ", ")
	default:
		return KindType, fmt.Sprintf("failed on the '%s' constraint", tag)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func float64Ptr(f float64) *float64 {
	return &f
}
