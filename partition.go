package ratiotree

import (
	"github.com/pbanos/ratiotree/dataset"
)

/*
Partition represents the split of a table on the values of a condition
attribute, along with the figures that got the attribute selected.
*/
type Partition struct {
	Evaluation
	// The groups of rows for every value the attribute takes on the
	// table, in the order the values are first encountered
	Groups []dataset.Group
}

/*
NewPartition takes a table and an evaluation of one of its attributes and
returns the partition of the table on that attribute.
*/
func NewPartition(t *dataset.Table, e Evaluation) *Partition {
	return &Partition{e, t.GroupBy(e.Attribute)}
}

/*
selectAttribute evaluates every condition attribute of the table and returns
the evaluation with the strictly highest gain ratio, scanning attributes left
to right so ties go to the lowest index, together with all the evaluations.
The returned bool is false when the table has no condition attributes.
*/
func selectAttribute(t *dataset.Table, decisionEntropy float64) (Evaluation, []Evaluation, bool) {
	var best Evaluation
	bestRatio := -1.0
	found := false
	evaluations := make([]Evaluation, 0, t.AttributeCount())
	for a := 0; a < t.AttributeCount(); a++ {
		e := Evaluate(t, a, decisionEntropy)
		evaluations = append(evaluations, e)
		if e.GainRatio > bestRatio {
			best = e
			bestRatio = e.GainRatio
			found = true
		}
	}
	return best, evaluations, found
}
