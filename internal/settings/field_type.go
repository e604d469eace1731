package settings

import (
	"fmt"
	"strconv"
)

// FieldType identifies how a definition's value is typed and edited.
type FieldType string

const (
	// FieldTypeSelect is a dropdown over a fixed option list.
	FieldTypeSelect FieldType = "select"
	// FieldTypeNumber is an integer within an advisory [min, max] range.
	FieldTypeNumber FieldType = "number"
	// FieldTypeToggle is an On/Off switch.
	FieldTypeToggle FieldType = "toggle"
	// FieldTypeText is a free-form text input.
	FieldTypeText FieldType = "text"
)

// Valid reports whether ft is part of the closed enumeration.
func (ft FieldType) Valid() bool {
	switch ft {
	case FieldTypeSelect, FieldTypeNumber, FieldTypeToggle, FieldTypeText:
		return true
	}

	return false
}

// Domain is the value space of one field type. It is a closed variant:
// only the four types in this package implement it.
type Domain interface {
	// Type returns the field type this domain belongs to.
	Type() FieldType

	// Validate checks the structural invariants of the domain itself.
	Validate() error

	// Coerce translates a textual default or raw candidate into the
	// runtime-typed value of this domain.
	Coerce(raw string) any

	// CheckValue verifies that a candidate runtime value has the type (and,
	// for selects, the membership) this domain requires.
	CheckValue(v any) error

	sealed()
}

// SelectDomain is the value space of a select field.
type SelectDomain struct {
	Options []string
}

// Type implements Domain.
func (d SelectDomain) Type() FieldType { return FieldTypeSelect }

// Validate requires at least one distinct, non-empty option.
func (d SelectDomain) Validate() error {
	if len(d.Options) == 0 {
		return NewValidationError("options", "options required")
	}

	seen := make(map[string]struct{}, len(d.Options))

	for _, opt := range d.Options {
		if opt == "" {
			return NewValidationError("options", "empty option")
		}

		if _, dup := seen[opt]; dup {
			return NewValidationError("options", "duplicate option: "+opt)
		}

		seen[opt] = struct{}{}
	}

	return nil
}

// Coerce returns raw when it is one of the options, otherwise "".
func (d SelectDomain) Coerce(raw string) any {
	if d.contains(raw) {
		return raw
	}

	return ""
}

// CheckValue requires a string that is a member of the option list.
func (d SelectDomain) CheckValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return NewValidationError("value", fmt.Sprintf("expected string, got %T", v))
	}

	if !d.contains(s) {
		return NewValidationError("value", "value not in options: "+s)
	}

	return nil
}

func (d SelectDomain) contains(s string) bool {
	for _, opt := range d.Options {
		if opt == s {
			return true
		}
	}

	return false
}

func (SelectDomain) sealed() {}

// NumberDomain is the value space of a number field.
type NumberDomain struct {
	Min int
	Max int
}

// Type implements Domain.
func (d NumberDomain) Type() FieldType { return FieldTypeNumber }

// Validate requires min <= max. Equal bounds are fine.
func (d NumberDomain) Validate() error {
	if d.Min > d.Max {
		return NewValidationError("min_value", "invalid range")
	}

	return nil
}

// Coerce parses raw as an integer; unparsable or empty input yields 0.
// The range is advisory for editors and is deliberately not clamped here:
// a stored out-of-range value round-trips unmodified.
func (d NumberDomain) Coerce(raw string) any {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return n
}

// CheckValue requires an integer. JSON decoding hands numbers over as
// float64, so whole floats are accepted too.
func (d NumberDomain) CheckValue(v any) error {
	switch n := v.(type) {
	case int:
		return nil
	case int64:
		return nil
	case float64:
		if n != float64(int(n)) {
			return NewValidationError("value", "expected integer value")
		}

		return nil
	}

	return NewValidationError("value", fmt.Sprintf("expected integer, got %T", v))
}

func (NumberDomain) sealed() {}

// ToggleDomain is the value space of an On/Off toggle.
type ToggleDomain struct{}

// Type implements Domain.
func (d ToggleDomain) Type() FieldType { return FieldTypeToggle }

// Validate implements Domain. A toggle has no structural invariants.
func (d ToggleDomain) Validate() error { return nil }

// Coerce maps exactly "On" to true; every other string, including the empty
// one, to false.
func (d ToggleDomain) Coerce(raw string) any {
	return raw == "On"
}

// CheckValue requires a bool.
func (d ToggleDomain) CheckValue(v any) error {
	if _, ok := v.(bool); !ok {
		return NewValidationError("value", fmt.Sprintf("expected bool, got %T", v))
	}

	return nil
}

func (ToggleDomain) sealed() {}

// TextDomain is the value space of a free-form text field.
type TextDomain struct{}

// Type implements Domain.
func (d TextDomain) Type() FieldType { return FieldTypeText }

// Validate implements Domain. Free text has no structural invariants.
func (d TextDomain) Validate() error { return nil }

// Coerce returns the string itself.
func (d TextDomain) Coerce(raw string) any {
	return raw
}

// CheckValue requires a string.
func (d TextDomain) CheckValue(v any) error {
	if _, ok := v.(string); !ok {
		return NewValidationError("value", fmt.Sprintf("expected string, got %T", v))
	}

	return nil
}

func (TextDomain) sealed() {}
