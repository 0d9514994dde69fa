package model

// ReferenceTable maps indicator codes to display labels. It is lookup
// context only and is never merged into the unified dataset.
type ReferenceTable map[string]string

// Has reports whether code is a known reference code.
func (t ReferenceTable) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Label returns the display label for code, or code itself when unknown
// or unlabeled.
func (t ReferenceTable) Label(code string) string {
	if label, ok := t[code]; ok && label != "" {
		return label
	}
	return code
}
