/*
Package csv reads tables from delimited text, one row per line. Every cell
is typed with feature.ParseValue, so "5" becomes an integer, "2.5" a float
and anything else a string.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/set"
)

// ReadError represents an error reading a table from delimited text
type ReadError string

/*
ErrNoData is the error returned when a header was requested but the input
holds no line at all to take it from.
*/
const ErrNoData = ReadError("no data to read")

func (re ReadError) Error() string {
	return string(re)
}

/*
Options tune how delimited text is read.
*/
type Options struct {
	// Comma is the field delimiter, ',' if zero
	Comma rune
	// Header makes the first non blank line be taken as the column names
	Header bool
}

/*
FileLoader is a set.Loader reading delimited text from a file, or from
os.Stdin if its Path is "".
*/
type FileLoader struct {
	Path string
	Options
}

// Load reads the table with ReadTableFromFilePath
func (fl *FileLoader) Load(context.Context) (*set.Result, error) {
	return ReadTableFromFilePath(fl.Path, fl.Options)
}

func (fl *FileLoader) String() string {
	if fl.Path == "" {
		return "stdin"
	}
	return fl.Path
}

/*
ReadTable takes an io.Reader for delimited text and some Options and returns
the table read from it. Blank lines are skipped, surrounding whitespace of
every cell is ignored and every row must have the same number of cells.
*/
func ReadTable(reader io.Reader, opts Options) (*set.Result, error) {
	r := csv.NewReader(reader)
	if opts.Comma != 0 {
		r.Comma = opts.Comma
	}
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	var names []string
	var rows []dataset.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading delimited text: %w", err)
		}
		if blank(record) {
			continue
		}
		if opts.Header && names == nil {
			names = make([]string, 0, len(record))
			for _, n := range record {
				names = append(names, strings.TrimSpace(n))
			}
			continue
		}
		rows = append(rows, dataset.ParseRow(record))
	}
	if opts.Header && names == nil {
		return nil, ErrNoData
	}
	return set.Build(rows, names)
}

/*
ReadTableFromFilePath takes a filepath string and some Options, opens
the file to which the filepath points to and uses ReadTable to return
what is read from it. If the filepath is "" os.Stdin is read instead.
*/
func ReadTableFromFilePath(filepath string, opts Options) (*set.Result, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening data file: %w", err)
		}
		defer f.Close()
	}
	result, err := ReadTable(f, opts)
	if err != nil {
		name := filepath
		if name == "" {
			name = "standard input"
		}
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return result, nil
}

/*
ParseLine takes a single line of delimited text and the field delimiter
and returns the row it holds, or nil if the line is blank.
*/
func ParseLine(line string, comma rune) (dataset.Row, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(line))
	if comma != 0 {
		r.Comma = comma
	}
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("parsing line %q: %w", line, err)
	}
	return dataset.ParseRow(record), nil
}

func blank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

/*
WriteTable takes an io.Writer, a table, its features (which may be nil) and
a delimiter, and writes the table as delimited text, preceded by a header
line when features are given.
*/
func WriteTable(writer io.Writer, t *dataset.Table, features []*feature.Feature, comma rune) error {
	w := csv.NewWriter(writer)
	if comma != 0 {
		w.Comma = comma
	}
	if features != nil {
		record := make([]string, len(features))
		for i, f := range features {
			record[i] = f.Name()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		record := make([]string, len(r))
		for j, v := range r {
			record[j] = v.String()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}
