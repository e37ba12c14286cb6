/*
Package set defines what the data loaders of ratiotree share: the result of
loading a table from some source and the Loader interface every source
implements.
*/
package set

import (
	"context"
	"fmt"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
)

/*
Result holds what a loader read: the table and the features naming its
columns. Features is nil when the source does not name its columns.
*/
type Result struct {
	Table    *dataset.Table
	Features []*feature.Feature
}

/*
Loader is the interface for every source tables can be loaded from.
*/
type Loader interface {
	// Load reads the whole source and returns the table it holds
	Load(context.Context) (*Result, error)
	// String describes the source for logging purposes
	String() string
}

/*
Named takes a metadata-provided slice of features and returns the result
with its features replaced by them, or an error if they do not describe
as many columns as the table has. An empty table accepts any features.
*/
func (r *Result) Named(features []*feature.Feature) (*Result, error) {
	if features == nil {
		return r, nil
	}
	if r.Table.Len() > 0 && len(features) != r.Table.Width() {
		return nil, fmt.Errorf("metadata names %d features but the table has %d columns", len(features), r.Table.Width())
	}
	return &Result{r.Table, features}, nil
}

/*
Build takes the rows read by a loader and its column names and returns the
result of loading them.
*/
func Build(rows []dataset.Row, names []string) (*Result, error) {
	t, err := dataset.New(rows)
	if err != nil {
		return nil, err
	}
	var features []*feature.Feature
	if names != nil {
		if t.Len() > 0 && len(names) != t.Width() {
			return nil, fmt.Errorf("%d column names for %d columns: %w", len(names), t.Width(), dataset.ErrRaggedRow)
		}
		features = feature.Names(names)
	}
	return &Result{t, features}, nil
}
