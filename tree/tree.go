package tree

import (
	"fmt"

	"github.com/pbanos/ratiotree/feature"
)

// Tree represents a decision tree. It is composed of its root
// node, which may be nil if the tree could not be grown, and the
// features describing the columns of the table it was grown from.
type Tree struct {
	Root     Node
	Features []*feature.Feature
}

// New takes a root node and the features of the table the tree was
// grown from and returns a tree. If no features are given the tree
// uses anonymous ones.
func New(root Node, features []*feature.Feature) *Tree {
	return &Tree{root, features}
}

// Feature returns the feature for the given column index, an anonymous
// one if the tree has no feature information for it.
func (t *Tree) Feature(i int) *feature.Feature {
	if i >= 0 && i < len(t.Features) {
		return t.Features[i]
	}
	return feature.New(i, "")
}

// Label returns the feature for the decision column, or nil when the tree
// has no feature information.
func (t *Tree) Label() *feature.Feature {
	if len(t.Features) == 0 {
		return nil
	}
	return t.Features[len(t.Features)-1]
}

// Traverse takes a bottomup boolean and an error-returning function
// that takes a node and the criteria leading to it from the root.
// It goes through the tree running the function for every traversed node,
// calling it with a parent node before its children if bottomup is false,
// and after its children if bottomup is true. Branches are visited in the
// order they are stored. If the call to the function returns an error,
// the traversing is aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func(Node, []feature.Criterion) error) error {
	if t == nil || t.Root == nil {
		return nil
	}
	return traverse(t.Root, nil, bottomup, f)
}

func traverse(n Node, path []feature.Criterion, bottomup bool, f func(Node, []feature.Criterion) error) error {
	var err error
	if !bottomup {
		err = f(n, path)
	}
	if err != nil {
		return err
	}
	if in, ok := n.(*Internal); ok {
		for _, b := range in.Branches {
			stPath := make([]feature.Criterion, len(path), len(path)+1)
			copy(stPath, path)
			stPath = append(stPath, b.Criterion(in))
			if b.Node == nil {
				continue
			}
			err = traverse(b.Node, stPath, bottomup, f)
			if err != nil {
				return err
			}
		}
	}
	if bottomup {
		err = f(n, path)
	}
	return err
}

// Depth returns the number of levels of internal nodes of the tree:
// 0 for a single leaf or no tree at all.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(n Node, path []feature.Criterion) error {
		if len(path) > depth {
			depth = len(path)
		}
		return nil
	})
	return depth
}

// Leaves returns the leaves of the tree in traversal order.
func (t *Tree) Leaves() []*Leaf {
	var leaves []*Leaf
	t.Traverse(false, func(n Node, _ []feature.Criterion) error {
		if l, ok := n.(*Leaf); ok {
			leaves = append(leaves, l)
		}
		return nil
	})
	return leaves
}

// Size returns the number of nodes of the tree.
func (t *Tree) Size() int {
	var size int
	t.Traverse(false, func(Node, []feature.Criterion) error {
		size++
		return nil
	})
	return size
}

func (t *Tree) String() string {
	if t == nil {
		return Text(nil)
	}
	return Text(t.Root)
}

// Summary returns a one-line description of the tree dimensions.
func (t *Tree) Summary() string {
	return fmt.Sprintf("%d nodes, %d leaves, depth %d", t.Size(), len(t.Leaves()), t.Depth())
}
