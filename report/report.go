/*
Package report writes the human readable figures of a table that precede
a grown tree: the loaded rows, the value counts of every column and the
information figures of every condition attribute.
*/
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbanos/ratiotree"
	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
)

/*
ColumnStats holds the value counts of a column of a table.
*/
type ColumnStats struct {
	Column   int
	Decision bool
	*dataset.Distribution
}

/*
Stats takes a table and returns the statistics of each of its columns,
in column order. Values keep the order in which they were first found.
*/
func Stats(t *dataset.Table) []ColumnStats {
	stats := make([]ColumnStats, 0, t.Width())
	for i := 0; i < t.Width(); i++ {
		stats = append(stats, ColumnStats{i, i == t.Width()-1, t.Distribution(i)})
	}
	return stats
}

/*
Report holds everything written about a table before growing a tree
from it.
*/
type Report struct {
	Columns         []ColumnStats
	DecisionEntropy float64
	Evaluations     []ratiotree.Evaluation
	features        []*feature.Feature
}

/*
New takes a table and the features naming its columns, which may be nil,
and returns its report.
*/
func New(t *dataset.Table, features []*feature.Feature) *Report {
	r := &Report{Columns: Stats(t), features: features}
	if t.Len() > 0 {
		r.DecisionEntropy = t.DecisionDistribution().Entropy()
		r.Evaluations = ratiotree.EvaluateAll(t)
	}
	return r
}

func (r *Report) columnLabel(c ColumnStats) string {
	var label string
	if c.Decision {
		label = fmt.Sprintf("Decision attribute (column %d)", c.Column+1)
	} else {
		label = fmt.Sprintf("Attribute %d", c.Column+1)
	}
	if c.Column < len(r.features) && r.features[c.Column] != nil {
		if name := r.features[c.Column].Name(); name != feature.New(c.Column, "").Name() {
			label = fmt.Sprintf("%s [%s]", label, name)
		}
	}
	return label
}

/*
WriteStats writes the value counts of every column followed by the
entropy of the decision column.
*/
func (r *Report) WriteStats(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Attribute statistics:")
	for _, c := range r.Columns {
		fmt.Fprintf(bw, "%s:\n", r.columnLabel(c))
		for _, v := range c.Values() {
			fmt.Fprintf(bw, "  Value %s: %d\n", v, c.Count(v))
		}
	}
	fmt.Fprintf(bw, "\nDecision entropy: %.4f\n", r.DecisionEntropy)
	return bw.Flush()
}

/*
WriteEvaluations writes Info, Gain, SplitInfo and GainRatio for every
condition attribute. Figures are written with the shortest decimal form
that reads back to the same number.
*/
func (r *Report) WriteEvaluations(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Condition attribute figures:")
	for _, e := range r.Evaluations {
		n := e.Attribute + 1
		fmt.Fprintf(bw, "\n%s:\n", r.columnLabel(ColumnStats{Column: e.Attribute}))
		fmt.Fprintf(bw, "  Info(a%d, T)      = %s\n", n, number(e.Info))
		fmt.Fprintf(bw, "  Gain(a%d, T)      = %s\n", n, number(e.Gain))
		fmt.Fprintf(bw, "  SplitInfo(a%d, T) = %s\n", n, number(e.SplitInfo))
		fmt.Fprintf(bw, "  GainRatio(a%d, T) = %s\n", n, number(e.GainRatio))
	}
	return bw.Flush()
}

// Write writes the statistics and the evaluations separated by a blank line
func (r *Report) Write(w io.Writer) error {
	if err := r.WriteStats(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return r.WriteEvaluations(w)
}

/*
WriteRows writes every row of the table on its own line.
*/
func WriteRows(w io.Writer, t *dataset.Table) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Loaded rows:")
	for i := 0; i < t.Len(); i++ {
		fmt.Fprintln(bw, t.Row(i))
	}
	return bw.Flush()
}

func number(f float64) string {
	return feature.FloatValue(f).String()
}
