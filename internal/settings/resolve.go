package settings

import (
	"sort"
)

// UnknownSettingLabel is the display sentinel for a stored value whose
// definition no longer exists.
const UnknownSettingLabel = "Unknown setting"

// ResolvedValue is one stored profile entry rendered against the current
// schema snapshot.
type ResolvedValue struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Category    Category  `json:"category,omitempty"`
	Type        FieldType `json:"field_type,omitempty"`
	Value       any       `json:"value"`
	Known       bool      `json:"known"`
}

// Resolve renders a profile's stored values against the live definitions of
// its game. Keys with a matching definition appear in category render order
// with the definition's metadata; orphaned keys are appended afterwards in
// lexicographic order, labeled with the UnknownSettingLabel sentinel and
// carrying the raw stored value unmodified.
//
// Resolve never fails: schema drift degrades the rendering, not the render
// path.
func Resolve(defs []Definition, stored map[string]any) []ResolvedValue {
	resolved := make([]ResolvedValue, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))

	for _, def := range SortDefinitions(append([]Definition(nil), defs...)) {
		value, ok := stored[def.Name]
		if !ok {
			continue
		}

		resolved = append(resolved, ResolvedValue{
			Name:        def.Name,
			DisplayName: def.DisplayName,
			Category:    def.Category,
			Type:        def.Type,
			Value:       value,
			Known:       true,
		})

		seen[def.Name] = struct{}{}
	}

	orphans := make([]string, 0)

	for name := range stored {
		if _, ok := seen[name]; !ok {
			orphans = append(orphans, name)
		}
	}

	sort.Strings(orphans)

	for _, name := range orphans {
		resolved = append(resolved, ResolvedValue{
			Name:        name,
			DisplayName: UnknownSettingLabel,
			Value:       stored[name],
			Known:       false,
		})
	}

	return resolved
}
