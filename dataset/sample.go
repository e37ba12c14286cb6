package dataset

import (
	"fmt"
	"strings"

	"github.com/pbanos/ratiotree/feature"
)

/*
Row is an ordered sequence of values. Its last value is the decision value,
every preceding value is a condition attribute.
*/
type Row []feature.Value

/*
NewRow takes a list of values and returns a row holding a copy of them.
*/
func NewRow(values ...feature.Value) Row {
	r := make(Row, len(values))
	copy(r, values)
	return r
}

/*
ParseRow takes a list of strings and returns a row with each of them
converted with feature.ParseValue.
*/
func ParseRow(fields []string) Row {
	r := make(Row, 0, len(fields))
	for _, f := range fields {
		r = append(r, feature.ParseValue(f))
	}
	return r
}

// Decision returns the decision value of the row: its last value
func (r Row) Decision() feature.Value {
	return r[len(r)-1]
}

// ValueAt returns the value of the row for the given attribute index
func (r Row) ValueAt(attribute int) feature.Value {
	return r[attribute]
}

func (r Row) String() string {
	parts := make([]string, 0, len(r))
	for _, v := range r {
		if v.Kind() == feature.String {
			parts = append(parts, fmt.Sprintf("%q", v.String()))
		} else {
			parts = append(parts, v.String())
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
