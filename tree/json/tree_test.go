package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/tree"
)

func TestWrite(t *testing.T) {
	root := &tree.Internal{Attribute: 1, Branches: []tree.Branch{
		{Value: feature.StringValue("b"), Node: &tree.Leaf{Label: feature.IntValue(2), Origin: tree.Majority, Weight: 3}},
		{Value: feature.FloatValue(1), Node: &tree.Leaf{Label: feature.IntValue(1), Origin: tree.Pure, Weight: 1}},
	}}
	tr := tree.New(root, feature.Names([]string{"x", "y", "d"}))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tr))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "d", doc["label"])
	assert.Equal(t, []interface{}{"x", "y", "d"}, doc["features"])
	r := doc["root"].(map[string]interface{})
	assert.Equal(t, 1.0, r["attribute"])
	assert.Equal(t, "y", r["feature"])
	branches := r["branches"].([]interface{})
	require.Len(t, branches, 2)
	first := branches[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"kind": "float", "value": "1.0"}, first["value"])
	second := branches[1].(map[string]interface{})["node"].(map[string]interface{})
	assert.Equal(t, "majority", second["origin"])
	assert.Equal(t, 3.0, second["weight"])
	assert.Equal(t, map[string]interface{}{"kind": "int", "value": "2"}, second["label"])
}

func TestMarshalAttributeZero(t *testing.T) {
	root := &tree.Internal{Attribute: 0, Branches: []tree.Branch{
		{Value: feature.IntValue(1), Node: nil},
	}}
	b, err := Marshal(tree.New(root, nil))
	require.NoError(t, err)
	assert.Equal(t, `{"root":{"attribute":0,"feature":"a1","branches":[{"value":{"kind":"int","value":"1"},"node":null}]}}`, string(b))
}

func TestMarshalNoTree(t *testing.T) {
	b, err := Marshal(tree.New(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, `{"root":null}`, string(b))
	b, err = Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, `{"root":null}`, string(b))
}
