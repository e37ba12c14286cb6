package feature

import "fmt"

/*
Feature describes a column of a table: its position and an optional
human readable name. The last column of a table is the decision feature,
every other column is a condition attribute.
*/
type Feature struct {
	index int
	name  string
}

/*
New takes a zero-based column index and a name and returns a Feature.
An empty name makes the feature fall back to its 1-based display name.
*/
func New(index int, name string) *Feature {
	return &Feature{index, name}
}

/*
Names takes a slice of column names and returns a feature for each
of them, in the same order.
*/
func Names(names []string) []*Feature {
	features := make([]*Feature, 0, len(names))
	for i, n := range names {
		features = append(features, New(i, n))
	}
	return features
}

/*
Anonymous returns width features with no name, one per column.
*/
func Anonymous(width int) []*Feature {
	features := make([]*Feature, 0, width)
	for i := 0; i < width; i++ {
		features = append(features, New(i, ""))
	}
	return features
}

// Index returns the zero-based column index of the feature
func (f *Feature) Index() int {
	return f.index
}

// DisplayIndex returns the 1-based column index used when rendering trees
func (f *Feature) DisplayIndex() int {
	return f.index + 1
}

/*
Name returns the name of the feature, or "a<display index>" when it was
given none.
*/
func (f *Feature) Name() string {
	if f.name == "" {
		return fmt.Sprintf("a%d", f.DisplayIndex())
	}
	return f.name
}

func (f *Feature) String() string {
	return f.Name()
}
