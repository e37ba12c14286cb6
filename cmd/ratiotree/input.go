package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/feature/yaml"
	"github.com/pbanos/ratiotree/set"
	"github.com/pbanos/ratiotree/set/csv"
	"github.com/pbanos/ratiotree/set/mongoset"
	"github.com/pbanos/ratiotree/set/redisset"
	"github.com/pbanos/ratiotree/set/sqlset"
	"github.com/pbanos/ratiotree/set/sqlset/pgadapter"
	"github.com/pbanos/ratiotree/set/sqlset/sqlite3adapter"
	"github.com/spf13/pflag"
)

// sourceConfig locates a set of data
type sourceConfig struct {
	input      string
	table      string
	collection string
	key        string
}

// formatConfig tells how the rows of a set are laid out
type formatConfig struct {
	comma  string
	header bool
	fields []string
}

/*
addSourceFlags registers the flags locating a set. The prefix is prepended
to every flag name but the one for the input itself, which is named after
the prefix when there is one.
*/
func addSourceFlags(fs *pflag.FlagSet, sc *sourceConfig, prefix, what string) {
	inputName, shorthand := "input", "i"
	if prefix != "" {
		inputName, shorthand = prefix, ""
		prefix += "-"
	}
	fs.StringVarP(&(sc.input), inputName, shorthand, "", fmt.Sprintf("delimited text file, SQLite3 (.db, .sqlite) file, or PostgreSQL (postgres://), MongoDB (mongodb://) or Redis (redis://) URL with the %s set (defaults to STDIN, read as delimited text)", what))
	fs.StringVar(&(sc.table), prefix+"table", "", fmt.Sprintf("name of the database table holding the %s set (required for SQL inputs)", what))
	fs.StringVar(&(sc.collection), prefix+"collection", "", fmt.Sprintf("name of the MongoDB collection holding the %s set (required for MongoDB inputs)", what))
	fs.StringVar(&(sc.key), prefix+"key", "", fmt.Sprintf("key of the Redis list holding the %s set, one delimited line per element (required for Redis inputs)", what))
}

func addFormatFlags(fs *pflag.FlagSet, fc *formatConfig) {
	fs.StringVar(&(fc.comma), "comma", ",", `field delimiter of delimited text inputs, "\t" for tabs`)
	fs.BoolVar(&(fc.header), "header", false, "take the first line of delimited text inputs as the names of the columns")
	fs.StringSliceVar(&(fc.fields), "fields", nil, "document fields to take as columns from MongoDB inputs, in order, the decision last (defaults to the metadata names or the fields of the first document)")
}

func (fc *formatConfig) options() (csv.Options, error) {
	comma := fc.comma
	if comma == `\t` || comma == "tab" {
		comma = "\t"
	}
	if utf8.RuneCountInString(comma) != 1 {
		return csv.Options{}, fmt.Errorf("comma must be a single character, got %q", fc.comma)
	}
	r, _ := utf8.DecodeRuneInString(comma)
	if r == '\r' || r == '\n' || r == '"' || r == utf8.RuneError {
		return csv.Options{}, fmt.Errorf("invalid comma %q", fc.comma)
	}
	return csv.Options{Comma: r, Header: fc.header}, nil
}

/*
newLoader takes a sourceConfig, a formatConfig and the features read from
the metadata, if any, and returns the set.Loader for the source.
*/
func newLoader(sc sourceConfig, fc formatConfig, features []*feature.Feature) (set.Loader, error) {
	opts, err := fc.options()
	if err != nil {
		return nil, err
	}
	input := sc.input
	switch {
	case input == "":
		return &csv.FileLoader{Options: opts}, nil
	case strings.HasPrefix(input, "postgres://") || strings.HasPrefix(input, "postgresql://"):
		if sc.table == "" {
			return nil, fmt.Errorf("a table is required to read from PostgreSQL")
		}
		a, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		return &sqlset.Loader{Adapter: a, Table: sc.table}, nil
	case strings.HasPrefix(input, "mongodb://"):
		if sc.collection == "" {
			return nil, fmt.Errorf("a collection is required to read from MongoDB")
		}
		fields := fc.fields
		if len(fields) == 0 {
			for _, f := range features {
				fields = append(fields, f.Name())
			}
		}
		return &mongoset.Loader{URL: input, Collection: sc.collection, Fields: fields}, nil
	case strings.HasPrefix(input, "redis://"):
		if sc.key == "" {
			return nil, fmt.Errorf("a key is required to read from Redis")
		}
		return &redisset.Loader{URL: input, Key: sc.key, Options: opts}, nil
	case strings.HasSuffix(input, ".db") || strings.HasSuffix(input, ".sqlite"):
		if sc.table == "" {
			return nil, fmt.Errorf("a table is required to read from SQLite3")
		}
		a, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, err
		}
		return &sqlset.Loader{Adapter: a, Table: sc.table}, nil
	}
	return &csv.FileLoader{Path: input, Options: opts}, nil
}

/*
features returns the features read from the metadata file, or nil if
none was given.
*/
func (rcc *rootCmdConfig) features() ([]*feature.Feature, error) {
	if rcc.metadataInput == "" {
		return nil, nil
	}
	rcc.logger.Debugf("Reading features from metadata at %s...", rcc.metadataInput)
	features, err := yaml.ReadFeaturesFromFile(rcc.metadataInput)
	if err != nil {
		return nil, err
	}
	rcc.logger.Debugf("%d features read from metadata", len(features))
	return features, nil
}

/*
loadSet reads the set located by the sourceConfig, naming its columns after
the given features when there are any.
*/
func (rcc *rootCmdConfig) loadSet(ctx context.Context, sc sourceConfig, fc formatConfig, features []*feature.Feature, what string) (*set.Result, error) {
	l, err := newLoader(sc, fc, features)
	if err != nil {
		return nil, fmt.Errorf("opening %s set: %w", what, err)
	}
	log := rcc.logger.WithField("source", l.String())
	log.Debugf("Reading %s set...", what)
	res, err := l.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading %s set from %s: %w", what, l, err)
	}
	res, err = res.Named(features)
	if err != nil {
		return nil, fmt.Errorf("reading %s set from %s: %w", what, l, err)
	}
	log.Debugf("Read %s set with %d rows of %d columns", what, res.Table.Len(), res.Table.Width())
	return res, nil
}
