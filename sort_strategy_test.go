package main

import (
	"reflect"
	"testing"
)

func getTestImagePaths() []ImagePath {
	return []ImagePath{
		{Path: "test/01.png"},
		{Path: "test/10.png"},
		{Path: "test/08.png"},
		{Path: "test/09.png"},
		{Path: "test/2.png"},
		{Path: "test/３.png"},
	}
}

func TestSortImagePaths(t *testing.T) {
	tests := []struct {
		name       string
		sortMethod int
		expected   []string
	}{
		{
			name:       "Natural",
			sortMethod: SortNatural,
			expected:   []string{"test/01.png", "test/2.png", "test/08.png", "test/09.png", "test/10.png", "test/３.png"},
		},
		{
			name:       "Simple",
			sortMethod: SortSimple,
			expected:   []string{"test/01.png", "test/08.png", "test/09.png", "test/10.png", "test/2.png", "test/３.png"},
		},
		{
			name:       "EntryOrder",
			sortMethod: SortEntryOrder,
			expected:   []string{"test/01.png", "test/10.png", "test/08.png", "test/09.png", "test/2.png", "test/３.png"},
		},
		{
			name:       "UnknownFallsBackToNatural",
			sortMethod: 999,
			expected:   []string{"test/01.png", "test/2.png", "test/08.png", "test/09.png", "test/10.png", "test/３.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pathsToStrings(sortImagePaths(getTestImagePaths(), tt.sortMethod))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSortImagePathsImmutableInput(t *testing.T) {
	for _, o := range sortOrders {
		input := getTestImagePaths()
		before := make([]ImagePath, len(input))
		copy(before, input)

		_ = sortImagePaths(input, o.id)

		if !reflect.DeepEqual(input, before) {
			t.Errorf("%s sort modified its input", o.name)
		}
	}
}

func TestSortImagePathsArchiveEntries(t *testing.T) {
	input := []ImagePath{
		archiveEntry("b.zip", "page10.jpg"),
		archiveEntry("b.zip", "page2.jpg"),
		archiveEntry("b.zip", "page1.jpg"),
	}

	result := sortImagePaths(input, SortNatural)

	expected := []string{"page1.jpg", "page2.jpg", "page10.jpg"}
	for i, p := range result {
		if p.EntryPath != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], p.EntryPath)
		}
		if p.Path != "b.zip:"+p.EntryPath {
			t.Errorf("Unexpected path %s for entry %s", p.Path, p.EntryPath)
		}
	}
}

func TestSortImagePathsEdgeCases(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		for _, o := range sortOrders {
			if result := sortImagePaths(nil, o.id); len(result) != 0 {
				t.Errorf("%s: expected empty result, got %v", o.name, result)
			}
		}
	})

	t.Run("IdenticalPaths", func(t *testing.T) {
		identical := []ImagePath{{Path: "same.png"}, {Path: "same.png"}, {Path: "same.png"}}
		for _, o := range sortOrders {
			result := sortImagePaths(identical, o.id)
			if len(result) != 3 {
				t.Errorf("%s changed length on identical paths", o.name)
			}
		}
	})
}

func TestSortMethodName(t *testing.T) {
	tests := map[int]string{
		SortNatural:    "Natural",
		SortSimple:     "Simple",
		SortEntryOrder: "Entry Order",
		-1:             "Natural",
	}
	for method, want := range tests {
		if got := sortMethodName(method); got != want {
			t.Errorf("sortMethodName(%d) = %q, want %q", method, got, want)
		}
	}
}

func pathsToStrings(paths []ImagePath) []string {
	var result []string
	for _, path := range paths {
		result = append(result, path.Path)
	}
	return result
}
