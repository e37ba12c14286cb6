/*
Package json renders decision trees as JSON documents.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/tree"
)

type jsonTree struct {
	Label    string    `json:"label,omitempty"`
	Features []string  `json:"features,omitempty"`
	Root     *jsonNode `json:"root"`
}

type jsonNode struct {
	Attribute *int          `json:"attribute,omitempty"`
	Feature   string        `json:"feature,omitempty"`
	Branches  []*jsonBranch `json:"branches,omitempty"`
	Label     *jsonValue    `json:"label,omitempty"`
	Origin    string        `json:"origin,omitempty"`
	Weight    int           `json:"weight,omitempty"`
}

type jsonBranch struct {
	Value *jsonValue `json:"value"`
	Node  *jsonNode  `json:"node"`
}

type jsonValue struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

/*
Write takes an io.Writer and a tree and writes a JSON representation of
the tree onto the writer. A tree is represented as a JSON object with the
following fields:
  - "label": the name of the decision feature, if the tree has features
  - "features": the names of all features, if the tree has them
  - "root": the root node or null if there is no tree

Internal nodes carry "attribute" (zero-based index), "feature" (its name) and
"branches", each with a typed "value" and a "node". Branches are written in
the same order as the textual rendering. Leaves carry a typed "label", its
"origin" ("pure" or "majority") and its "weight". Typed values are objects
with the "kind" ("int", "float" or "string") and the textual "value".
*/
func Write(w io.Writer, t *tree.Tree) error {
	jt, err := encodeTree(t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(jt)
	if err != nil {
		return fmt.Errorf("serializing tree as JSON: %v", err)
	}
	return nil
}

/*
Marshal returns the JSON representation of the tree as written by Write,
without indentation.
*/
func Marshal(t *tree.Tree) ([]byte, error) {
	jt, err := encodeTree(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jt)
}

func encodeTree(t *tree.Tree) (*jsonTree, error) {
	jt := &jsonTree{}
	if t == nil {
		return jt, nil
	}
	if l := t.Label(); l != nil {
		jt.Label = l.Name()
	}
	for _, f := range t.Features {
		jt.Features = append(jt.Features, f.Name())
	}
	var err error
	jt.Root, err = encodeNode(t, t.Root)
	return jt, err
}

func encodeNode(t *tree.Tree, n tree.Node) (*jsonNode, error) {
	switch n := n.(type) {
	case nil:
		return nil, nil
	case *tree.Leaf:
		if n == nil {
			return nil, nil
		}
		return &jsonNode{Label: encodeValue(n.Label), Origin: n.Origin.String(), Weight: n.Weight}, nil
	case *tree.Internal:
		if n == nil {
			return nil, nil
		}
		attribute := n.Attribute
		jn := &jsonNode{Attribute: &attribute, Feature: t.Feature(n.Attribute).Name()}
		for _, b := range n.SortedBranches() {
			child, err := encodeNode(t, b.Node)
			if err != nil {
				return nil, err
			}
			jn.Branches = append(jn.Branches, &jsonBranch{encodeValue(b.Value), child})
		}
		return jn, nil
	}
	return nil, fmt.Errorf("unknown type of tree.Node %T", n)
}

func encodeValue(v feature.Value) *jsonValue {
	return &jsonValue{Kind: v.Kind().String(), Value: v.String()}
}
