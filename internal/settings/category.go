package settings

// Category classifies a definition for grouping and ordering only. It is
// never a validation boundary.
type Category string

const (
	// CategoryDisplay groups resolution, refresh rate and similar fields.
	CategoryDisplay Category = "display"
	// CategoryGraphics groups base graphics quality fields.
	CategoryGraphics Category = "graphics"
	// CategoryAdvanced groups advanced graphics fields.
	CategoryAdvanced Category = "advanced"
	// CategoryPostProcess groups post-processing fields.
	CategoryPostProcess Category = "postprocess"
	// CategoryView groups view and HUD fields.
	CategoryView Category = "view"
	// CategoryAudio groups audio fields.
	CategoryAudio Category = "audio"
	// CategoryControls groups input and control fields.
	CategoryControls Category = "controls"
)

// CategoryOrder is the fixed iteration order for rendering and grouping,
// independent of data order.
var CategoryOrder = []Category{
	CategoryDisplay,
	CategoryGraphics,
	CategoryAdvanced,
	CategoryPostProcess,
	CategoryView,
	CategoryAudio,
	CategoryControls,
}

var categoryLabels = map[Category]string{
	CategoryDisplay:     "Display",
	CategoryGraphics:    "Graphics Quality",
	CategoryAdvanced:    "Advanced Graphics",
	CategoryPostProcess: "Post Processing",
	CategoryView:        "View Settings",
	CategoryAudio:       "Audio",
	CategoryControls:    "Controls",
}

// Valid reports whether c is part of the closed enumeration.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable name of the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Rank returns the position of c in CategoryOrder. Unknown categories sort
// last; they can only appear on rows predating a schema change.
func (c Category) Rank() int {
	for i, cat := range CategoryOrder {
		if cat == c {
			return i
		}
	}

	return len(CategoryOrder)
}
