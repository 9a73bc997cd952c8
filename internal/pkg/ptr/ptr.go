package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// NonBlank trims s and returns nil when nothing is left.
func NonBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
