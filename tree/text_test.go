package tree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbanos/ratiotree/feature"
)

func leaf(label string) *Leaf {
	return &Leaf{Label: feature.StringValue(label)}
}

func sample() Node {
	return &Internal{Attribute: 0, Branches: []Branch{
		{feature.StringValue("sunny"), &Internal{Attribute: 2, Branches: []Branch{
			{feature.StringValue("normal"), leaf("yes")},
			{feature.StringValue("high"), leaf("no")},
		}}},
		{feature.StringValue("overcast"), leaf("yes")},
		{feature.StringValue("rainy"), &Internal{Attribute: 3, Branches: []Branch{
			{feature.StringValue("true"), leaf("no")},
			{feature.StringValue("false"), leaf("yes")},
		}}},
	}}
}

func TestTextFormat(t *testing.T) {
	expected := "Attribute: 1\n" +
		"          overcast -> D: yes\n" +
		"          rainy->Attribute: 4\n" +
		"                    false -> D: yes\n" +
		"                    true -> D: no\n" +
		"          sunny->Attribute: 3\n" +
		"                    high -> D: no\n" +
		"                    normal -> D: yes\n"
	assert.Equal(t, expected, Text(sample()))
}

func TestTextIsDeterministic(t *testing.T) {
	n := sample()
	var a, b bytes.Buffer
	assert.NoError(t, WriteText(&a, n))
	assert.NoError(t, WriteText(&b, n))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestTextNoTree(t *testing.T) {
	assert.Equal(t, "Brak drzewa\n", Text(nil))
	var nilLeaf *Leaf
	assert.Equal(t, "Brak drzewa\n", Text(nilLeaf))
	n := &Internal{Attribute: 1, Branches: []Branch{
		{feature.IntValue(1), nil},
		{feature.IntValue(2), leaf("A")},
	}}
	assert.Equal(t, "Attribute: 2\n          1Brak drzewa\n          2 -> D: A\n", Text(n))
}

func TestTextRootLeaf(t *testing.T) {
	assert.Equal(t, " -> D: 7\n", Text(&Leaf{Label: feature.IntValue(7)}))
	assert.Equal(t, " -> D: 2.5\n", Text(&Leaf{Label: feature.FloatValue(2.5)}))
}

func TestTextSortsMixedKindsByText(t *testing.T) {
	n := &Internal{Attribute: 0, Branches: []Branch{
		{feature.StringValue("b"), leaf("3")},
		{feature.IntValue(10), leaf("2")},
		{feature.FloatValue(2), leaf("4")},
		{feature.StringValue("1"), leaf("0")},
		{feature.IntValue(1), leaf("1")},
		{feature.StringValue("A"), leaf("5")},
	}}
	expected := "Attribute: 1\n" +
		"          1 -> D: 0\n" +
		"          1 -> D: 1\n" +
		"          10 -> D: 2\n" +
		"          2.0 -> D: 4\n" +
		"          A -> D: 5\n" +
		"          b -> D: 3\n"
	assert.Equal(t, expected, Text(n))
	assert.Equal(t, "b", n.Branches[0].Value.String(), "sorting leaves stored branches untouched")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteTextReportsWriteErrors(t *testing.T) {
	assert.Error(t, WriteText(failingWriter{}, sample()))
}
