package sqlset_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/set/sqlset"
	"github.com/pbanos/ratiotree/set/sqlset/sqlite3adapter"
)

func createDB(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	for _, s := range stmts {
		_, err = db.Exec(s)
		require.NoError(t, err, s)
	}
	return path
}

func TestReadTable(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE weather (outlook TEXT, humidity INTEGER, wind REAL, play TEXT)`,
		`INSERT INTO weather VALUES ('sunny', 85, 1.5, 'no'), ('overcast', 70, 2.0, 'yes'), ('rainy', 96, 3, '1')`,
	)
	a, err := sqlite3adapter.New(path)
	require.NoError(t, err)
	l := &sqlset.Loader{Adapter: a, Table: "weather"}
	res, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, res.Table.Len())
	require.Len(t, res.Features, 4)
	assert.Equal(t, "humidity", res.Features[1].Name())
	assert.Equal(t, dataset.NewRow(
		feature.StringValue("sunny"), feature.IntValue(85), feature.FloatValue(1.5), feature.StringValue("no"),
	), res.Table.Row(0))
	assert.Equal(t, feature.FloatValue(3), res.Table.Row(2).ValueAt(2))
	assert.Equal(t, feature.IntValue(1), res.Table.Row(2).Decision())
}

func TestReadTableRejectsNull(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE t (a TEXT, d TEXT)`,
		`INSERT INTO t VALUES ('x', 'A'), (NULL, 'B')`,
	)
	a, err := sqlite3adapter.New(path)
	require.NoError(t, err)
	defer a.Close()
	_, err = sqlset.ReadTable(context.Background(), a, "t")
	var nve *sqlset.NullValueError
	require.True(t, errors.As(err, &nve))
	assert.Equal(t, 2, nve.Row)
	assert.Equal(t, "a", nve.Column)
}

func TestReadTableErrors(t *testing.T) {
	path := createDB(t, `CREATE TABLE t (a TEXT, d TEXT)`)
	a, err := sqlite3adapter.New(path)
	require.NoError(t, err)
	defer a.Close()
	_, err = sqlset.ReadTable(context.Background(), a, "missing")
	assert.Error(t, err)
	_, err = sqlset.ReadTable(context.Background(), a, `bad"name`)
	assert.Error(t, err)
	res, err := sqlset.ReadTable(context.Background(), a, "t")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Table.Len())

	_, err = sqlite3adapter.New(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestConvertValue(t *testing.T) {
	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := []struct {
		in       interface{}
		expected feature.Value
	}{
		{int64(7), feature.IntValue(7)},
		{2.5, feature.FloatValue(2.5)},
		{float32(0.1), feature.FloatValue(0.1)},
		{true, feature.IntValue(1)},
		{false, feature.IntValue(0)},
		{[]byte("12"), feature.IntValue(12)},
		{"1.0", feature.FloatValue(1)},
		{" high ", feature.StringValue("high")},
		{when, feature.StringValue("2020-01-02T03:04:05Z")},
	}
	for _, c := range cases {
		v, err := sqlset.ConvertValue(c.in)
		require.NoError(t, err)
		assert.True(t, c.expected.Equal(v), "%v: expected %v, got %v", c.in, c.expected, v)
		assert.Equal(t, c.expected.Kind(), v.Kind())
	}
	_, err := sqlset.ConvertValue(struct{}{})
	assert.Error(t, err)
}
