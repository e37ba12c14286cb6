/*
Package redisset provides a set.Loader that reads a table from a Redis list
whose elements are lines of delimited text, one row per element.
*/
package redisset

import (
	"context"
	"fmt"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/set"
	"github.com/pbanos/ratiotree/set/csv"
	redis "gopkg.in/redis.v5"
)

/*
Loader is a set.Loader reading the list at Key of the Redis server at URL.
Elements are parsed as set/csv does with the given Options, the header
being the first non blank element if requested.
*/
type Loader struct {
	URL string
	Key string
	csv.Options
}

/*
Load connects to the server, reads the whole list and closes the connection.
*/
func (l *Loader) Load(ctx context.Context) (*set.Result, error) {
	opts, err := redis.ParseURL(l.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	rc := redis.NewClient(opts)
	defer rc.Close()
	return ReadList(ctx, rc, l.Key, l.Options)
}

func (l *Loader) String() string {
	return fmt.Sprintf("redis list %s", l.Key)
}

/*
ReadList takes a context, a redis client, the key of a list and some
csv.Options and returns the result of parsing every element of the list.
*/
func ReadList(ctx context.Context, rc *redis.Client, key string, opts csv.Options) (*set.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exists, err := rc.Exists(key).Result()
	if err != nil {
		return nil, fmt.Errorf("checking key %s: %w", key, err)
	}
	if !exists {
		return nil, fmt.Errorf("key %s does not exist", key)
	}
	lines, err := rc.LRange(key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading list %s: %w", key, err)
	}
	return Lines(lines, opts)
}

/*
Lines takes the elements of a list and some csv.Options and returns the
result of parsing each of them as a row. Blank elements are skipped.
*/
func Lines(lines []string, opts csv.Options) (*set.Result, error) {
	var names []string
	rows := make([]dataset.Row, 0, len(lines))
	for i, l := range lines {
		r, err := csv.ParseLine(l, opts.Comma)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if r == nil {
			continue
		}
		if opts.Header && names == nil {
			names = make([]string, 0, len(r))
			for _, v := range r {
				names = append(names, v.String())
			}
			continue
		}
		rows = append(rows, r)
	}
	if opts.Header && names == nil {
		return nil, csv.ErrNoData
	}
	return set.Build(rows, names)
}
