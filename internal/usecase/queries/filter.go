package queries

import "hospital-ops/internal/pkg/ptr"

// optionalFilter returns nil for an empty value and validates anything else.
func optionalFilter(value string, validate func(string) error) (*string, error) {
	v := ptr.NonBlank(value)
	if v == nil {
		return nil, nil
	}
	if err := validate(*v); err != nil {
		return nil, err
	}
	return v, nil
}
