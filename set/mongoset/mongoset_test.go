package mongoset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"

	"github.com/pbanos/ratiotree/feature"
)

func docs() []bson.D {
	return []bson.D{
		{{Name: "_id", Value: bson.NewObjectId()}, {Name: "outlook", Value: "sunny"}, {Name: "temp", Value: 85}, {Name: "play", Value: "no"}},
		{{Name: "_id", Value: bson.NewObjectId()}, {Name: "play", Value: "yes"}, {Name: "temp", Value: 64.5}, {Name: "outlook", Value: "overcast"}},
	}
}

func TestDocumentsFirstDocumentOrder(t *testing.T) {
	res, err := Documents(docs(), nil)
	require.NoError(t, err)
	require.Len(t, res.Features, 3)
	assert.Equal(t, "outlook", res.Features[0].Name())
	assert.Equal(t, "play", res.Features[2].Name())
	assert.Equal(t, "overcast", res.Table.Row(1).ValueAt(0).String())
	assert.Equal(t, feature.FloatValue(64.5), res.Table.Row(1).ValueAt(1))
	assert.Equal(t, "yes", res.Table.Row(1).Decision().String())
}

func TestDocumentsExplicitFields(t *testing.T) {
	res, err := Documents(docs(), []string{"temp", "outlook", "play"})
	require.NoError(t, err)
	assert.Equal(t, feature.IntValue(85), res.Table.Row(0).ValueAt(0))
	assert.Equal(t, "temp", res.Features[0].Name())

	_, err = Documents(docs(), []string{"humidity", "play"})
	assert.Error(t, err)
}

func TestDocumentsEmpty(t *testing.T) {
	res, err := Documents(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Table.Len())
	assert.Nil(t, res.Features)
}

func TestConvertValue(t *testing.T) {
	id := bson.NewObjectId()
	cases := []struct {
		in       interface{}
		expected feature.Value
	}{
		{3, feature.IntValue(3)},
		{int32(-4), feature.IntValue(-4)},
		{int64(9), feature.IntValue(9)},
		{0.5, feature.FloatValue(0.5)},
		{true, feature.IntValue(1)},
		{"7", feature.IntValue(7)},
		{"mild", feature.StringValue("mild")},
		{id, feature.StringValue(id.Hex())},
		{time.Date(2021, 5, 6, 7, 8, 9, 0, time.UTC), feature.StringValue("2021-05-06T07:08:09Z")},
	}
	for _, c := range cases {
		v, err := ConvertValue(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.expected, v)
	}
	_, err := ConvertValue([]int{1})
	assert.Error(t, err)
}

func TestValidateFields(t *testing.T) {
	assert.NoError(t, validateFields([]string{"a", "b"}))
	assert.Error(t, validateFields([]string{"_id"}))
	assert.Error(t, validateFields([]string{"$a"}))
	assert.Error(t, validateFields([]string{""}))
}
