package models

// FeatureDefinition describes one filterable car feature. Definitions are
// immutable and registered at process start.
type FeatureDefinition struct {
	ID       string            `json:"id"`
	Keywords []string          `json:"keywords"` // ordered synonyms, at least one
	Labels   map[string]string `json:"labels"`   // language code -> display string
}

// Label returns the display string for lang, falling back to English and
// finally the feature id.
func (f FeatureDefinition) Label(lang string) string {
	if v, ok := f.Labels[lang]; ok {
		return v
	}
	if v, ok := f.Labels["en"]; ok {
		return v
	}
	return f.ID
}
