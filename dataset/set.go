package dataset

import (
	"fmt"

	"github.com/pbanos/ratiotree/feature"
)

// TableError represents an error on the shape of a table
type TableError string

/*
ErrRaggedRow is the error wrapped when rows of a table do not all have
the same number of values.
*/
const ErrRaggedRow = TableError("rows have different lengths")

/*
ErrEmptyRow is the error wrapped when a row has no values at all, and
therefore no decision value.
*/
const ErrEmptyRow = TableError("row has no values")

func (te TableError) Error() string {
	return string(te)
}

/*
Table is an ordered collection of rows of identical length. The last
column holds the decision values, every other column is a condition
attribute.

Tables are never modified after creation: subsetting and grouping
operations return fresh tables.
*/
type Table struct {
	rows  []Row
	width int
}

/*
New takes a slice of rows and returns a table built with them, or an error
wrapping ErrRaggedRow if they do not all have the same length or ErrEmptyRow
if they have no values. An empty slice yields an empty table.
*/
func New(rows []Row) (*Table, error) {
	t := &Table{rows: make([]Row, 0, len(rows))}
	for i, r := range rows {
		if len(r) == 0 {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyRow)
		}
		if i == 0 {
			t.width = len(r)
		} else if len(r) != t.width {
			return nil, fmt.Errorf("row %d has %d values, expected %d: %w", i+1, len(r), t.width, ErrRaggedRow)
		}
		t.rows = append(t.rows, r)
	}
	return t, nil
}

/*
MustNew is like New but panics on error. It is meant for tables known to
be well formed, like literals in tests.
*/
func MustNew(rows []Row) *Table {
	t, err := New(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rows of the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Width returns the number of columns of the table, 0 if empty
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return t.width
}

/*
AttributeCount returns the number of condition attributes of the table,
that is, its width minus the decision column.
*/
func (t *Table) AttributeCount() int {
	if t.Width() == 0 {
		return 0
	}
	return t.width - 1
}

// Row returns the i-th row of the table
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns a copy of the slice of rows of the table
func (t *Table) Rows() []Row {
	result := make([]Row, len(t.rows))
	copy(result, t.rows)
	return result
}

/*
Column returns the values of the table for the given column index, in
row order.
*/
func (t *Table) Column(i int) []feature.Value {
	result := make([]feature.Value, 0, len(t.rows))
	for _, r := range t.rows {
		result = append(result, r[i])
	}
	return result
}

// Decisions returns the decision values of the table in row order
func (t *Table) Decisions() []feature.Value {
	if t.Width() == 0 {
		return nil
	}
	return t.Column(t.width - 1)
}

/*
Distribution returns the distribution of the values of the given column.
*/
func (t *Table) Distribution(i int) *Distribution {
	return NewDistribution(t.Column(i))
}

/*
DecisionDistribution returns the distribution of the decision values.
*/
func (t *Table) DecisionDistribution() *Distribution {
	return NewDistribution(t.Decisions())
}

/*
Homogeneous returns true if every row of the table has the same decision
value. An empty table is not homogeneous.
*/
func (t *Table) Homogeneous() bool {
	if t.Len() == 0 {
		return false
	}
	first := t.rows[0].Decision()
	for _, r := range t.rows[1:] {
		if !r.Decision().Equal(first) {
			return false
		}
	}
	return true
}

/*
SubsetWith takes a feature.Criterion and returns a new table with only the
rows satisfying it, in their original order.
*/
func (t *Table) SubsetWith(c feature.Criterion) *Table {
	result := &Table{width: t.width}
	for _, r := range t.rows {
		if c.SatisfiedBy(r) {
			result.rows = append(result.rows, r)
		}
	}
	return result
}

/*
Group is the subset of rows of a table sharing the same value for an
attribute.
*/
type Group struct {
	Value feature.Value
	*Table
}

/*
GroupBy takes an attribute index and partitions the table into groups of
rows with equal value for it. Groups are returned in the order their value
is first encountered, and rows within a group keep their original order.
*/
func (t *Table) GroupBy(attribute int) []Group {
	var groups []Group
	index := make(map[feature.Key]int)
	for _, r := range t.rows {
		v := r[attribute]
		k := v.Key()
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{v, &Table{width: t.width}})
		}
		groups[i].rows = append(groups[i].rows, r)
	}
	return groups
}
