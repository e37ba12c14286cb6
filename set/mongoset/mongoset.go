/*
Package mongoset provides a set.Loader that reads a table from a MongoDB
collection, one row per document.
*/
package mongoset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/set"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

/*
Loader is a set.Loader reading the documents of a collection. Columns are
taken from the document fields named in Fields, in that order, or from the
fields of the first document in their stored order if Fields is empty.
The _id field never becomes a column.
*/
type Loader struct {
	// URL is a MongoDB connection URL naming the database
	URL        string
	Collection string
	Fields     []string
}

/*
Load dials the database, reads the collection and closes the session.
*/
func (l *Loader) Load(ctx context.Context) (*set.Result, error) {
	session, err := mgo.Dial(l.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	defer session.Close()
	return ReadCollection(ctx, session.DB("").C(l.Collection), l.Fields)
}

func (l *Loader) String() string {
	return fmt.Sprintf("mongodb collection %s", l.Collection)
}

/*
ReadCollection takes a context, a collection and the fields to take as
columns and returns the result of reading every document of it.
*/
func ReadCollection(ctx context.Context, c *mgo.Collection, fields []string) (*set.Result, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	iter := c.Find(nil).Iter()
	defer iter.Close()
	var docs []bson.D
	var doc bson.D
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", c.Name, err)
	}
	return Documents(docs, fields)
}

/*
Documents takes a slice of documents and the fields to take as columns and
returns the result of converting every document into a row.
*/
func Documents(docs []bson.D, fields []string) (*set.Result, error) {
	if len(fields) == 0 && len(docs) > 0 {
		for _, e := range docs[0] {
			if e.Name != idField {
				fields = append(fields, e.Name)
			}
		}
	}
	rows := make([]dataset.Row, 0, len(docs))
	for i, d := range docs {
		m := d.Map()
		r := make(dataset.Row, 0, len(fields))
		for _, f := range fields {
			raw, ok := m[f]
			if !ok || raw == nil {
				return nil, fmt.Errorf("document %d: no value for field %q", i+1, f)
			}
			v, err := ConvertValue(raw)
			if err != nil {
				return nil, fmt.Errorf("document %d, field %q: %w", i+1, f, err)
			}
			r = append(r, v)
		}
		rows = append(rows, r)
	}
	return set.Build(rows, fields)
}

/*
ConvertValue takes a value decoded from a BSON document and returns the
feature.Value for it.
*/
func ConvertValue(raw interface{}) (feature.Value, error) {
	switch v := raw.(type) {
	case int:
		return feature.IntValue(int64(v)), nil
	case int32:
		return feature.IntValue(int64(v)), nil
	case int64:
		return feature.IntValue(v), nil
	case float64:
		return feature.FloatValue(v), nil
	case bool:
		if v {
			return feature.IntValue(1), nil
		}
		return feature.IntValue(0), nil
	case string:
		return feature.ParseValue(v), nil
	case time.Time:
		return feature.StringValue(v.UTC().Format(time.RFC3339)), nil
	case bson.ObjectId:
		return feature.StringValue(v.Hex()), nil
	case bson.Symbol:
		return feature.StringValue(string(v)), nil
	}
	return feature.Value{}, fmt.Errorf("unsupported BSON value of type %T", raw)
}

func validateFields(fields []string) error {
	for _, f := range fields {
		if f == idField {
			return fmt.Errorf("invalid field name %q: reserved collection field", idField)
		}
		if f == "" || strings.ContainsAny(f, "$") {
			return fmt.Errorf("invalid field name %q: empty or containing reserved character %q", f, "$")
		}
	}
	return nil
}
