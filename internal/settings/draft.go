package settings

import (
	"sort"
	"strings"
)

// Draft is the request-scoped working state while a profile is authored.
//
// The working value map and the enabled set are deliberately separate: a
// definition's value survives being toggled off (soft hide), but only values
// of enabled definitions are ever persisted. Keys without a live definition
// (orphans from schema drift) stay in the working map and remain enabled,
// so a resave keeps them unchanged even though they cannot be edited.
type Draft struct {
	gameID  uint64
	defs    map[string]Definition
	working map[string]any
	enabled map[string]struct{}
}

// NewDraft starts a new profile for the given game. The working map is
// pre-seeded with the coerced default of every definition that has one, but
// the enabled set starts out empty: nothing is persisted until the author
// explicitly toggles a definition on.
func NewDraft(gameID uint64, defs []Definition) (*Draft, error) {
	if gameID == 0 {
		return nil, NewValidationError("game", "game required")
	}

	d := &Draft{
		gameID:  gameID,
		defs:    indexDefinitions(defs),
		working: make(map[string]any, len(defs)),
		enabled: make(map[string]struct{}),
	}

	for _, def := range defs {
		if def.Default != "" {
			d.working[def.Name] = def.DefaultValue()
		}
	}

	return d, nil
}

// EditDraft reopens a stored profile for editing. The enabled set is
// reconstructed purely from the keys of the stored values; stored keys are
// not re-defaulted.
func EditDraft(gameID uint64, stored map[string]any, defs []Definition) (*Draft, error) {
	if gameID == 0 {
		return nil, NewValidationError("game", "game required")
	}

	d := &Draft{
		gameID:  gameID,
		defs:    indexDefinitions(defs),
		working: make(map[string]any, len(stored)),
		enabled: make(map[string]struct{}, len(stored)),
	}

	for name, value := range stored {
		d.working[name] = value
		d.enabled[name] = struct{}{}
	}

	return d, nil
}

func indexDefinitions(defs []Definition) map[string]Definition {
	m := make(map[string]Definition, len(defs))
	for _, def := range defs {
		m[def.Name] = def
	}

	return m
}

// Enable marks a definition's value for persistence.
func (d *Draft) Enable(name string) {
	d.enabled[name] = struct{}{}
}

// Disable removes a definition from the enabled set. The working value is
// kept so re-enabling restores the last edited value, not the default.
func (d *Draft) Disable(name string) {
	delete(d.enabled, name)
}

// IsEnabled reports whether the definition is currently enabled.
func (d *Draft) IsEnabled(name string) bool {
	_, ok := d.enabled[name]
	return ok
}

// Enabled returns the enabled internal names, sorted for determinism.
func (d *Draft) Enabled() []string {
	names := make([]string, 0, len(d.enabled))
	for name := range d.enabled {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Working returns a copy of the full working value map, including values of
// definitions that are not enabled.
func (d *Draft) Working() map[string]any {
	out := make(map[string]any, len(d.working))
	for name, value := range d.working {
		out[name] = value
	}

	return out
}

// WorkingValue returns the current working value for an internal name.
func (d *Draft) WorkingValue(name string) (any, bool) {
	v, ok := d.working[name]
	return v, ok
}

// SetValue writes into the working map. The value must match the coercion
// type of the definition; writes to internal names without a live definition
// are refused, which keeps orphaned entries read-only.
func (d *Draft) SetValue(name string, value any) error {
	def, ok := d.defs[name]
	if !ok {
		return ErrUnknownSetting
	}

	if err := def.Domain().CheckValue(value); err != nil {
		return err
	}

	d.working[name] = value

	return nil
}

// FlipToggle flips a toggle definition's working value and returns the new
// state. With no prior working value the flip is relative to the coerced
// default, not to false.
func (d *Draft) FlipToggle(name string) (bool, error) {
	def, ok := d.defs[name]
	if !ok {
		return false, ErrUnknownSetting
	}

	if def.Type != FieldTypeToggle {
		return false, NewValidationError("value", "not a toggle: "+name)
	}

	current, ok := d.working[name].(bool)
	if !ok {
		current, _ = def.DefaultValue().(bool)
	}

	d.working[name] = !current

	return !current, nil
}

// Values computes the map to persist: every enabled key that has a working
// entry, nothing else. Keys outside the enabled set are never persisted,
// even when they hold a working value.
func (d *Draft) Values() map[string]any {
	out := make(map[string]any, len(d.enabled))

	for name := range d.enabled {
		if v, ok := d.working[name]; ok {
			out[name] = v
		}
	}

	return out
}

// ValidateProfileName checks the save-time name requirement and returns the
// trimmed name.
func ValidateProfileName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name", "name required")
	}

	return trimmed, nil
}
