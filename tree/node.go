package tree

import (
	"github.com/pbanos/ratiotree/feature"
)

/*
Node is a node of a decision tree: either a *Leaf or an *Internal node.
A nil Node stands for the absence of a tree.
*/
type Node interface {
	isNode()
}

/*
Origin tells why a leaf was produced.
*/
type Origin uint8

const (
	// Pure leaves were produced for rows that all share the same decision
	Pure Origin = iota
	// Majority leaves were produced when no attribute could discriminate
	// the rows any further, and carry their most frequent decision
	Majority
)

func (o Origin) String() string {
	if o == Majority {
		return "majority"
	}
	return "pure"
}

/*
Leaf is a terminal node carrying a decision label.
*/
type Leaf struct {
	// The decision value predicted for rows reaching the leaf
	Label feature.Value
	// Why the leaf was produced
	Origin Origin
	// Number of training rows that reached the leaf
	Weight int
}

/*
Internal is a node that splits rows on the value of an attribute.
*/
type Internal struct {
	// Zero-based index of the attribute rows are split on
	Attribute int
	// One branch per value the attribute took on the rows of the node,
	// in the order the values were first encountered
	Branches []Branch
}

/*
Branch links a value of the splitting attribute of an internal node to the
subtree for the rows with that value.
*/
type Branch struct {
	Value feature.Value
	Node  Node
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

/*
Child returns the node of the branch for the given value, and whether
there is such a branch.
*/
func (in *Internal) Child(v feature.Value) (Node, bool) {
	for _, b := range in.Branches {
		if b.Value.Equal(v) {
			return b.Node, true
		}
	}
	return nil, false
}

/*
Criterion returns the criterion rows must satisfy to follow the branch
of the given internal node.
*/
func (b Branch) Criterion(parent *Internal) feature.DiscreteCriterion {
	return feature.NewDiscreteCriterion(parent.Attribute, b.Value)
}
