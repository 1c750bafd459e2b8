package main

import (
	"sort"

	"github.com/maruel/natural"
)

// sortOrder describes one way of ordering the image sequence
type sortOrder struct {
	id   int
	name string
	less func(a, b string) bool // nil keeps the order images were found in
}

var sortOrders = []sortOrder{
	{id: SortNatural, name: "Natural", less: natural.Less},
	{id: SortSimple, name: "Simple", less: func(a, b string) bool { return a < b }},
	{id: SortEntryOrder, name: "Entry Order"},
}

// lookupSortOrder returns the order for a config sort method, falling back
// to natural order for unknown ids
func lookupSortOrder(sortMethod int) sortOrder {
	for _, o := range sortOrders {
		if o.id == sortMethod {
			return o
		}
	}
	return sortOrders[0]
}

// sortKey compares archive entries by their path inside the archive so the
// archive's own name does not affect their relative order
func sortKey(p ImagePath) string {
	if p.ArchivePath != "" {
		return p.EntryPath
	}
	return p.Path
}

// sortImagePaths returns a sorted copy of images; the input is left untouched
func sortImagePaths(images []ImagePath, sortMethod int) []ImagePath {
	result := make([]ImagePath, len(images))
	copy(result, images)

	order := lookupSortOrder(sortMethod)
	if order.less == nil {
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		return order.less(sortKey(result[i]), sortKey(result[j]))
	})
	return result
}

func sortMethodName(sortMethod int) string {
	return lookupSortOrder(sortMethod).name
}
