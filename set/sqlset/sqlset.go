/*
Package sqlset provides a set.Loader that reads a table from an SQL
database table through database/sql. The columns of the database table
become the columns of the loaded table in their declared order, the last
one being the decision column.

Drivers are provided by the adapters in the subpackages: pgadapter for
PostgreSQL and sqlite3adapter for SQLite3 files.
*/
package sqlset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/set"
)

/*
Adapter is the interface a database must provide to be loaded from.
*/
type Adapter interface {
	// DB returns the database handle to query
	DB() *sql.DB
	// TableName returns the quoted identifier to use for the given
	// table name in a query or an error if the name cannot be used
	TableName(name string) (string, error)
	// Close releases the database handle
	Close() error
	// String describes the database for logging purposes
	String() string
}

/*
NullValueError is the error returned when a database cell is NULL, as
tables have no notion of missing values.
*/
type NullValueError struct {
	Row    int
	Column string
}

func (nve *NullValueError) Error() string {
	return fmt.Sprintf("row %d: column %q is NULL", nve.Row, nve.Column)
}

/*
Loader is a set.Loader reading the database table with the given name.
*/
type Loader struct {
	Adapter Adapter
	Table   string
}

// Load reads the table with ReadTable and closes the adapter afterwards
func (l *Loader) Load(ctx context.Context) (*set.Result, error) {
	defer l.Adapter.Close()
	return ReadTable(ctx, l.Adapter, l.Table)
}

func (l *Loader) String() string {
	return fmt.Sprintf("%s table %s", l.Adapter, l.Table)
}

/*
ReadTable takes a context, an Adapter and the name of a database table and
returns the result of reading every row of the database table, with the
column names as features.
*/
func ReadTable(ctx context.Context, a Adapter, table string) (*set.Result, error) {
	name, err := a.TableName(table)
	if err != nil {
		return nil, err
	}
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", name))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns of table %s: %w", table, err)
	}
	var result []dataset.Row
	for i := 1; rows.Next(); i++ {
		cells := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for j := range cells {
			pointers[j] = &cells[j]
		}
		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %w", i, table, err)
		}
		r := make(dataset.Row, 0, len(columns))
		for j, c := range cells {
			if c == nil {
				return nil, &NullValueError{i, columns[j]}
			}
			v, err := ConvertValue(c)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i, columns[j], err)
			}
			r = append(r, v)
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	return set.Build(result, columns)
}

/*
ConvertValue takes a value scanned from a database cell and returns the
feature.Value for it: integers become Int values, floating point numbers
Float values, booleans the Int values 0 and 1, times their RFC3339 String
value and text is parsed with feature.ParseValue.
*/
func ConvertValue(c interface{}) (feature.Value, error) {
	switch v := c.(type) {
	case int64:
		return feature.IntValue(v), nil
	case int32:
		return feature.IntValue(int64(v)), nil
	case int:
		return feature.IntValue(int64(v)), nil
	case float64:
		return feature.FloatValue(v), nil
	case float32:
		f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
		return feature.FloatValue(f), err
	case bool:
		if v {
			return feature.IntValue(1), nil
		}
		return feature.IntValue(0), nil
	case []byte:
		return feature.ParseValue(string(v)), nil
	case string:
		return feature.ParseValue(v), nil
	case time.Time:
		return feature.StringValue(v.Format(time.RFC3339)), nil
	}
	return feature.Value{}, fmt.Errorf("unsupported cell type %T", c)
}
