package ratiotree

import (
	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/tree"
)

/*
Logger is the interface through which a Grower reports its decisions.
*logrus.Logger and *logrus.Entry satisfy it.
*/
type Logger interface {
	Debugf(format string, args ...interface{})
}

/*
Grower grows decision trees, optionally reporting every decision it takes
to a Logger. The zero value is ready to use and logs nothing.
*/
type Grower struct {
	Logger Logger
}

/*
Grow takes a table and returns the root of the decision tree grown from it,
or nil if the table is empty. See Grower.Grow.
*/
func Grow(t *dataset.Table) tree.Node {
	return (&Grower{}).Grow(t)
}

/*
GrowTree is like Grow but wraps the root in a tree.Tree described by the
given features (which may be nil).
*/
func (g *Grower) GrowTree(t *dataset.Table, features []*feature.Feature) *tree.Tree {
	return tree.New(g.Grow(t), features)
}

/*
Grow takes a table and returns the root of the decision tree grown from it,
or nil if the table is empty.

The tree is grown recursively. At every node:
  - if all rows share the same decision value, a tree.Pure leaf with it is returned
  - otherwise the gain ratio of every condition attribute is computed and the
    first attribute with the strictly highest one is selected
  - if that gain ratio is 0, a tree.Majority leaf with the most frequent decision
    value is returned (ties go to the value first encountered in row order)
  - otherwise an internal node for the attribute is returned, with a branch for
    every value the attribute takes on the node's rows, each grown on the rows
    with that value

Attributes split on by ancestors remain candidates deeper in the tree.
*/
func (g *Grower) Grow(t *dataset.Table) tree.Node {
	if t.Len() == 0 {
		g.debugf("no rows, no tree")
		return nil
	}
	return g.grow(t, 0)
}

func (g *Grower) grow(t *dataset.Table, depth int) tree.Node {
	if t.Homogeneous() {
		label := t.Row(0).Decision()
		g.debugf("depth %d: %d rows all decide %s", depth, t.Len(), label)
		return &tree.Leaf{Label: label, Origin: tree.Pure, Weight: t.Len()}
	}
	decisions := t.DecisionDistribution()
	best, evaluations, ok := selectAttribute(t, decisions.Entropy())
	for _, e := range evaluations {
		g.debugf("depth %d: attribute %d info %v gain %v split info %v gain ratio %v", depth, e.Attribute+1, e.Info, e.Gain, e.SplitInfo, e.GainRatio)
	}
	if !ok || best.GainRatio == 0 {
		label, _ := decisions.Majority()
		g.debugf("depth %d: no attribute discriminates %d rows, majority decides %s", depth, t.Len(), label)
		return &tree.Leaf{Label: label, Origin: tree.Majority, Weight: t.Len()}
	}
	p := NewPartition(t, best)
	g.debugf("depth %d: splitting %d rows on attribute %d into %d branches", depth, t.Len(), p.Attribute+1, len(p.Groups))
	node := &tree.Internal{Attribute: p.Attribute, Branches: make([]tree.Branch, 0, len(p.Groups))}
	for _, st := range p.Groups {
		node.Branches = append(node.Branches, tree.Branch{Value: st.Value, Node: g.grow(st.Table, depth+1)})
	}
	return node
}

func (g *Grower) debugf(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Debugf(format, args...)
	}
}
