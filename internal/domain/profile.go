package domain

import "fmt"

// Profile is the current user's record as returned by the backend. Its shape
// is owned by the backend, so it is kept as an unstructured JSON object.
type Profile map[string]any

// displayKeys are tried in order when picking a label for the user.
var displayKeys = []string{"username", "name", "email", "id"}

// DisplayName returns a human-readable label for the profile, or an empty
// string when none of the well-known fields hold a usable value.
func (p Profile) DisplayName() string {
	for _, key := range displayKeys {
		v, ok := p[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val
			}
		case float64:
			return fmt.Sprintf("%g", val)
		default:
			return fmt.Sprint(val)
		}
	}
	return ""
}
