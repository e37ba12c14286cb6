package dataset

import (
	"math"

	"github.com/pbanos/ratiotree/feature"
)

/*
Distribution maps each distinct value of a multiset to the number of times
it occurs. Values are kept in the order they were first encountered.
*/
type Distribution struct {
	values []feature.Value
	counts map[feature.Key]int
	total  int
}

/*
NewDistribution takes a list of values and returns their distribution.
*/
func NewDistribution(values []feature.Value) *Distribution {
	d := &Distribution{counts: make(map[feature.Key]int)}
	for _, v := range values {
		d.Add(v)
	}
	return d
}

/*
Add counts one more occurrence of the given value.
*/
func (d *Distribution) Add(v feature.Value) {
	k := v.Key()
	if _, ok := d.counts[k]; !ok {
		d.values = append(d.values, v)
	}
	d.counts[k]++
	d.total++
}

// Count returns the number of occurrences of the given value
func (d *Distribution) Count(v feature.Value) int {
	return d.counts[v.Key()]
}

// Total returns the sum of all counts
func (d *Distribution) Total() int {
	return d.total
}

// Len returns the number of distinct values
func (d *Distribution) Len() int {
	return len(d.values)
}

/*
Values returns the distinct values of the distribution in the order they
were first encountered.
*/
func (d *Distribution) Values() []feature.Value {
	result := make([]feature.Value, len(d.values))
	copy(result, d.values)
	return result
}

/*
Entropy returns the Shannon entropy in bits of the distribution:

	-Σ p·log2(p), p = count/total

The distribution is expected to be non-empty. An empty one yields 0.
*/
func (d *Distribution) Entropy() float64 {
	var result float64
	if d.total == 0 {
		return result
	}
	total := float64(d.total)
	for _, v := range d.values {
		p := float64(d.counts[v.Key()]) / total
		if p > 0 {
			result -= p * math.Log2(p)
		}
	}
	return result
}

/*
Majority returns the value with the highest count. Ties go to the value
encountered first. The second result is false for an empty distribution.
*/
func (d *Distribution) Majority() (feature.Value, bool) {
	var best feature.Value
	bestCount := 0
	for _, v := range d.values {
		if c := d.counts[v.Key()]; c > bestCount {
			best = v
			bestCount = c
		}
	}
	return best, bestCount > 0
}
