/*
Package ratiotree grows categorical decision trees from tables of observations
using the information gain ratio to choose the attribute to split on at every
node (the ID3/C4.5 splitting criterion).

A table is a dataset.Table: rows of typed scalar values whose last column holds
the decision value. Grow returns the root tree.Node of the tree, or nil for an
empty table, and tree.WriteText renders it.

The evaluator functions (ConditionalInfo, Gain, SplitInfo and GainRatio) are
exported so that the figures behind every split can be inspected on their own.
*/
package ratiotree
