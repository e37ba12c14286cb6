package ratiotree

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/ratiotree/dataset"
)

func table(t *testing.T, lines ...string) *dataset.Table {
	rows := make([]dataset.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, dataset.ParseRow(strings.Split(l, ",")))
	}
	tb, err := dataset.New(rows)
	require.NoError(t, err)
	return tb
}

func weather(t *testing.T) *dataset.Table {
	return table(t,
		"sunny,hot,high,false,no",
		"sunny,hot,high,true,no",
		"overcast,hot,high,false,yes",
		"rainy,mild,high,false,yes",
		"rainy,cool,normal,false,yes",
		"rainy,cool,normal,true,no",
		"overcast,cool,normal,true,yes",
		"sunny,mild,high,false,no",
		"sunny,cool,normal,false,yes",
		"rainy,mild,normal,false,yes",
		"sunny,mild,normal,true,yes",
		"overcast,mild,high,true,yes",
		"overcast,hot,normal,false,yes",
		"rainy,mild,high,true,no",
	)
}

func TestPerfectSplit(t *testing.T) {
	tb := table(t, "1,1,A", "1,2,A", "2,1,B", "2,2,B")
	h := tb.DecisionDistribution().Entropy()
	assert.Equal(t, 1.0, h)
	assert.Equal(t, 0.0, ConditionalInfo(tb, 0))
	assert.Equal(t, 1.0, Gain(tb, 0, h))
	assert.Equal(t, 1.0, SplitInfo(tb, 0))
	assert.Equal(t, 1.0, GainRatio(tb, 0, h))
	assert.Equal(t, 1.0, ConditionalInfo(tb, 1))
	assert.Equal(t, 0.0, Gain(tb, 1, h))
	assert.Equal(t, 0.0, GainRatio(tb, 1, h))
}

func TestHandComputedFigures(t *testing.T) {
	tb := table(t, "a,Y", "a,N", "b,Y", "b,Y", "b,Y")
	h := tb.DecisionDistribution().Entropy()
	assert.InDelta(t, 0.721928, h, 1e-6)
	assert.InDelta(t, 0.4, ConditionalInfo(tb, 0), 1e-12)
	assert.InDelta(t, 0.321928, Gain(tb, 0, h), 1e-6)
	assert.InDelta(t, 0.970951, SplitInfo(tb, 0), 1e-6)
	assert.InDelta(t, 0.331560, GainRatio(tb, 0, h), 1e-6)

	e := Evaluate(tb, 0, h)
	assert.Equal(t, 0, e.Attribute)
	assert.Equal(t, GainRatio(tb, 0, h), e.GainRatio)
	assert.Equal(t, Gain(tb, 0, h)/SplitInfo(tb, 0), e.GainRatio)
}

func TestWeatherFigures(t *testing.T) {
	evaluations := EvaluateAll(weather(t))
	require.Len(t, evaluations, 4)
	expected := []struct{ gain, split, ratio float64 }{
		{0.246750, 1.577406, 0.156428},
		{0.029223, 1.556657, 0.018773},
		{0.151836, 1.0, 0.151836},
		{0.048127, 0.985228, 0.048849},
	}
	for i, e := range evaluations {
		assert.Equal(t, i, e.Attribute)
		assert.InDelta(t, expected[i].gain, e.Gain, 1e-6, "gain of attribute %d", i+1)
		assert.InDelta(t, expected[i].split, e.SplitInfo, 1e-6, "split info of attribute %d", i+1)
		assert.InDelta(t, expected[i].ratio, e.GainRatio, 1e-6, "gain ratio of attribute %d", i+1)
	}
}

func TestConstantAttributeHasZeroGainRatio(t *testing.T) {
	tb := table(t, "x,1,A", "x,2,B", "x,1,A", "x,3,B")
	h := tb.DecisionDistribution().Entropy()
	assert.Equal(t, 0.0, SplitInfo(tb, 0))
	assert.Equal(t, 0.0, Gain(tb, 0, h))
	ratio := GainRatio(tb, 0, h)
	assert.Equal(t, 0.0, ratio)
	assert.False(t, math.IsNaN(ratio))
	assert.True(t, GainRatio(tb, 1, h) > 0)
}

func TestGainIsNonNegative(t *testing.T) {
	tables := []*dataset.Table{
		weather(t),
		table(t, "1,1,A", "1,2,B", "2,1,B", "2,2,A"),
		table(t, "1,x,A", "2,x,A", "3,y,B", "1,y,C", "2,z,C", "3,z,A"),
		table(t, "0.5,A", "0.5,B", "1,A", "1,B"),
	}
	for _, tb := range tables {
		h := tb.DecisionDistribution().Entropy()
		for a := 0; a < tb.AttributeCount(); a++ {
			assert.True(t, Gain(tb, a, h) >= -1e-9, "gain of attribute %d on %v", a+1, tb.Rows())
		}
	}
}

func TestGainIsZeroWhenSplitChangesNothing(t *testing.T) {
	tb := table(t, "1,A", "1,B", "2,A", "2,B")
	h := tb.DecisionDistribution().Entropy()
	assert.InDelta(t, 0.0, Gain(tb, 0, h), 1e-12)
	assert.Equal(t, 1.0, SplitInfo(tb, 0))
}
