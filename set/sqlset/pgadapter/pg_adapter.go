/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/pbanos/ratiotree/set/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db   *sql.DB
	host string
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(connURL string) (sqlset.Adapter, error) {
	db, err := sql.Open("postgres", connURL)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	host := "postgres"
	if u, err := url.Parse(connURL); err == nil {
		host = "postgres " + u.Host + u.Path
	}
	return &adapter{db, host}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

/*
TableName accepts optionally schema-qualified names like "public.weather",
quoting every part of them.
*/
func (a *adapter) TableName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("no table name given")
	}
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf(`table name '%s' has too many qualifiers`, name)
	}
	for i, p := range parts {
		if p == "" || strings.ContainsAny(p, `"`) {
			return "", fmt.Errorf(`table name '%s' contains invalid character '"' or empty qualifier`, name)
		}
		parts[i] = `"` + p + `"`
	}
	return strings.Join(parts, "."), nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func (a *adapter) String() string {
	return a.host
}
