package settings

import (
	"sort"
	"strings"
)

// Definition is the domain view of one schema entry: a configurable field
// available for a specific game. The storage layer converts its rows into
// this shape before any domain logic runs.
type Definition struct {
	ID          uint64    `json:"id"`
	GameID      uint64    `json:"game_id"`
	Name        string    `json:"name"` // internal name, unique per game
	DisplayName string    `json:"display_name"`
	Type        FieldType `json:"field_type"`
	Category    Category  `json:"category"`
	Options     []string  `json:"options,omitempty"` // select only
	MinValue    int       `json:"min_value"`         // number only
	MaxValue    int       `json:"max_value"`         // number only
	Default     string    `json:"default_value"`
	Order       int       `json:"order"`
}

// Domain returns the value space implied by the definition's field type.
func (d Definition) Domain() Domain {
	switch d.Type {
	case FieldTypeSelect:
		return SelectDomain{Options: d.Options}
	case FieldTypeNumber:
		return NumberDomain{Min: d.MinValue, Max: d.MaxValue}
	case FieldTypeToggle:
		return ToggleDomain{}
	case FieldTypeText:
		return TextDomain{}
	}

	// Unknown types cannot pass Validate, so stored rows never reach here.
	// Treat the value as opaque text.
	return TextDomain{}
}

// Coerce translates a textual default or candidate into the runtime-typed
// value of the definition's field type.
func (d Definition) Coerce(raw string) any {
	return d.Domain().Coerce(raw)
}

// DefaultValue returns the coerced default of the definition.
func (d Definition) DefaultValue() any {
	return d.Coerce(d.Default)
}

// Normalize derives the internal name from the display name when unset and
// silently clears a select default that is not a member of the options.
// Clearing instead of rejecting keeps the schema editor usable while the
// option list is still being edited.
func (d *Definition) Normalize() {
	d.DisplayName = strings.TrimSpace(d.DisplayName)

	if d.Name == "" {
		d.Name = Slugify(d.DisplayName)
	}

	if d.Type == FieldTypeSelect && d.Default != "" {
		if !(SelectDomain{Options: d.Options}).contains(d.Default) {
			d.Default = ""
		}
	}
}

// Validate checks the definition's structural invariants. Normalize must run
// first so the derived internal name is in place.
func (d Definition) Validate() error {
	if d.DisplayName == "" {
		return NewValidationError("display_name", "display name required")
	}

	if d.Name == "" {
		return NewValidationError("name", "name required")
	}

	if d.GameID == 0 {
		return NewValidationError("game", "game required")
	}

	if !d.Type.Valid() {
		return ErrUnknownFieldType
	}

	if !d.Category.Valid() {
		return ErrUnknownCategory
	}

	return d.Domain().Validate()
}

// SortDefinitions orders defs for rendering: by the fixed category
// enumeration, then by Order ascending, ties broken by ID ascending
// (creation order). The slice is sorted in place and returned.
func SortDefinitions(defs []Definition) []Definition {
	sort.SliceStable(defs, func(i, j int) bool {
		a, b := defs[i], defs[j]

		if ra, rb := a.Category.Rank(), b.Category.Rank(); ra != rb {
			return ra < rb
		}

		if a.Order != b.Order {
			return a.Order < b.Order
		}

		return a.ID < b.ID
	})

	return defs
}

// Group is one non-empty category bucket in render order.
type Group struct {
	Category    Category     `json:"category"`
	Label       string       `json:"label"`
	Definitions []Definition `json:"definitions"`
}

// GroupByCategory buckets defs per category in the fixed enumeration order.
// Categories without definitions are omitted, not emitted empty.
func GroupByCategory(defs []Definition) []Group {
	sorted := SortDefinitions(append([]Definition(nil), defs...))

	buckets := make(map[Category][]Definition, len(CategoryOrder))
	for _, def := range sorted {
		buckets[def.Category] = append(buckets[def.Category], def)
	}

	groups := make([]Group, 0, len(buckets))

	for _, cat := range CategoryOrder {
		if len(buckets[cat]) == 0 {
			continue
		}

		groups = append(groups, Group{
			Category:    cat,
			Label:       cat.Label(),
			Definitions: buckets[cat],
		})
	}

	return groups
}
