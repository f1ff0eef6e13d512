package catalog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders results by name the way the store app lists them:
// case-insensitive, with embedded numbers compared numerically.
// The slice is sorted in place; equal names keep their relative order.
func SortByName(results []Result) {
	c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(results, func(a, b Result) int {
		return c.CompareString(a.Name, b.Name)
	})
}
