/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/ratiotree/set/sqlset"
)

type adapter struct {
	db   *sql.DB
	path string
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
The file must exist: it is opened read only.
*/
func New(path string) (sqlset.Adapter, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening sqlite3 database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	return &adapter{db, path}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) TableName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("no table name given")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`table name '%s' contains invalid character '"'`, name)
	}
	return `"` + name + `"`, nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func (a *adapter) String() string {
	return "sqlite3 " + a.path
}
