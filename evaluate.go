package ratiotree

import (
	"github.com/pbanos/ratiotree/dataset"
)

/*
Evaluation holds the figures computed for a condition attribute of a table
when deciding which one to split on.
*/
type Evaluation struct {
	// Zero-based index of the evaluated attribute
	Attribute int
	// Expected decision entropy after splitting on the attribute
	Info float64
	// Reduction of the decision entropy achieved by the split
	Gain float64
	// Entropy of the attribute's own value distribution
	SplitInfo float64
	// Gain normalized by SplitInfo, 0 when SplitInfo is 0
	GainRatio float64
}

/*
ConditionalInfo takes a table and an attribute index and returns the
expected entropy of the decision column after partitioning the table by the
attribute's value:

	Info(X, T) = Σ |Ti|/|T| · Info(Ti)

where Ti are the groups of rows sharing a value of the attribute.
*/
func ConditionalInfo(t *dataset.Table, attribute int) float64 {
	var info float64
	total := float64(t.Len())
	for _, g := range t.GroupBy(attribute) {
		info += float64(g.Len()) / total * g.DecisionDistribution().Entropy()
	}
	return info
}

/*
Gain takes a table, an attribute index and the entropy of the table's
decision column and returns the information gain of splitting on the
attribute: decisionEntropy - ConditionalInfo(t, attribute).
*/
func Gain(t *dataset.Table, attribute int, decisionEntropy float64) float64 {
	return decisionEntropy - ConditionalInfo(t, attribute)
}

/*
SplitInfo takes a table and an attribute index and returns the entropy of
the distribution of the attribute's values, ignoring the decision column.
*/
func SplitInfo(t *dataset.Table, attribute int) float64 {
	return t.Distribution(attribute).Entropy()
}

/*
GainRatio takes a table, an attribute index and the entropy of the table's
decision column and returns Gain / SplitInfo for the attribute. An attribute
that is constant across the table has a SplitInfo of 0 and gets a gain ratio
of exactly 0.
*/
func GainRatio(t *dataset.Table, attribute int, decisionEntropy float64) float64 {
	return Evaluate(t, attribute, decisionEntropy).GainRatio
}

/*
Evaluate takes a table, an attribute index and the entropy of the table's
decision column and returns all the figures for the attribute.
*/
func Evaluate(t *dataset.Table, attribute int, decisionEntropy float64) Evaluation {
	e := Evaluation{Attribute: attribute}
	e.Info = ConditionalInfo(t, attribute)
	e.Gain = decisionEntropy - e.Info
	e.SplitInfo = SplitInfo(t, attribute)
	if e.SplitInfo != 0 {
		e.GainRatio = e.Gain / e.SplitInfo
	}
	return e
}

/*
EvaluateAll takes a table and returns the evaluation of every condition
attribute, in column order, against the entropy of its decision column.
*/
func EvaluateAll(t *dataset.Table) []Evaluation {
	decisionEntropy := t.DecisionDistribution().Entropy()
	evaluations := make([]Evaluation, 0, t.AttributeCount())
	for a := 0; a < t.AttributeCount(); a++ {
		evaluations = append(evaluations, Evaluate(t, a, decisionEntropy))
	}
	return evaluations
}
