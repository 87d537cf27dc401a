package domain

import "fmt"

type BreadcrumbItem struct {
	Label string `json:"label"`
	Level Level  `json:"level"`
	Value string `json:"value"`
}

// DeriveBreadcrumb lists the selected fields: client axis, then product axis,
// then segmentation. The trail is always recomputed from the state and never stored.
func DeriveBreadcrumb(s FilterState) []BreadcrumbItem {
	items := make([]BreadcrumbItem, 0)
	for _, l := range AllLevels() {
		v := s.Get(l)
		if v == "" {
			continue
		}
		items = append(items, BreadcrumbItem{
			Label: fmt.Sprintf("%s: %s", l.Label(), v),
			Level: l,
			Value: v,
		})
	}
	return items
}
