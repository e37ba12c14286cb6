package tree

import (
	"errors"
	"fmt"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
)

// ClassificationError represents an error related with classifications
type ClassificationError string

/*
ErrCannotClassify is the error returned by the Classify method of a tree
when the row takes a value for a splitting attribute that no branch of the
tree accounts for, as opposed to cases where the row is malformed.
*/
const ErrCannotClassify = ClassificationError("no classification available for this kind of row")

/*
ErrNoTree is the error returned when trying to classify with a tree that
was never grown, like one grown from an empty table.
*/
const ErrNoTree = ClassificationError("no tree to classify with")

func (ce ClassificationError) Error() string {
	return string(ce)
}

/*
Classify takes the values of a row and returns the decision value the tree
predicts for it, following at every internal node the branch whose value
equals the row's value for the node's attribute. Only condition attributes
are read, so the row may or may not carry a decision value.
*/
func (t *Tree) Classify(values []feature.Value) (feature.Value, error) {
	if t == nil || t.Root == nil {
		return feature.Value{}, ErrNoTree
	}
	n := t.Root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Label, nil
		case *Internal:
			if node.Attribute >= len(values) {
				return feature.Value{}, fmt.Errorf("classifying row: row has %d values, attribute %d required", len(values), node.Attribute+1)
			}
			child, ok := node.Child(values[node.Attribute])
			if !ok || child == nil {
				return feature.Value{}, ErrCannotClassify
			}
			n = child
		default:
			return feature.Value{}, fmt.Errorf("classifying row: unknown node type %T", n)
		}
	}
}

/*
Test takes a table and returns three values:
  - the classification success rate of the tree over the rows of the table
  - the number of rows that could not be classified because of ErrCannotClassify errors
  - an error if a row could not be classified for reasons other than the tree not
    being able to do so. If this is not nil, the other values will be 0.0 and 0
    respectively

An empty table yields a success rate of 0.
*/
func (t *Tree) Test(tb *dataset.Table) (float64, int, error) {
	var result float64
	var errCount int
	if tb.Len() == 0 {
		return 0.0, 0, nil
	}
	for i := 0; i < tb.Len(); i++ {
		r := tb.Row(i)
		v, err := t.Classify(r)
		if err != nil {
			if !errors.Is(err, ErrCannotClassify) {
				return 0.0, 0, fmt.Errorf("testing row %d: %w", i+1, err)
			}
			errCount++
			continue
		}
		if v.Equal(r.Decision()) {
			result += 1.0
		}
	}
	return result / float64(tb.Len()), errCount, nil
}
