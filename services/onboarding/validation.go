package onboarding

import "sort"

// ValidationResult maps a field's wire name to its error message.
// An empty result means the input is valid.
type ValidationResult map[string]string

// Valid reports whether no field failed
func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

// Fields returns the failing field names, sorted
func (r ValidationResult) Fields() []string {
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Clone returns an independent copy
func (r ValidationResult) Clone() ValidationResult {
	if r == nil {
		return nil
	}
	out := make(ValidationResult, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
