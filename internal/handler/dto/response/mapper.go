package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// mapView copies a query view into its response shape by field name.
func mapView[T any](src any) *T {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("failed to map view to response", "error", err.Error())
	}
	return &dst
}

func mapViews[T any, V any](src []*V) []*T {
	out := make([]*T, 0, len(src))
	for _, v := range src {
		out = append(out, mapView[T](v))
	}
	return out
}
