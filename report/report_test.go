package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
)

func table(lines ...string) *dataset.Table {
	rows := make([]dataset.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, dataset.ParseRow(strings.Split(l, ",")))
	}
	return dataset.MustNew(rows)
}

func TestStats(t *testing.T) {
	stats := Stats(table("b,1,Y", "a,2,N", "b,2,Y"))
	require.Len(t, stats, 3)
	assert.False(t, stats[0].Decision)
	assert.True(t, stats[2].Decision)
	assert.Equal(t, []feature.Value{feature.StringValue("b"), feature.StringValue("a")}, stats[0].Values())
	assert.Equal(t, 2, stats[1].Count(feature.IntValue(2)))
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(table("a,Y", "a,N", "b,Y", "b,Y", "b,Y"), nil).WriteStats(&buf))
	expected := "Attribute statistics:\n" +
		"Attribute 1:\n" +
		"  Value a: 2\n" +
		"  Value b: 3\n" +
		"Decision attribute (column 2):\n" +
		"  Value Y: 4\n" +
		"  Value N: 1\n" +
		"\nDecision entropy: 0.7219\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteEvaluations(t *testing.T) {
	r := New(table("a,Y", "a,N", "b,Y", "b,Y", "b,Y"), feature.Names([]string{"letter", "answer"}))
	var buf bytes.Buffer
	require.NoError(t, r.WriteEvaluations(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Condition attribute figures:\n\nAttribute 1 [letter]:\n"), out)
	assert.Contains(t, out, "  Info(a1, T)      = 0.4\n")
	assert.Contains(t, out, "  Gain(a1, T)      = "+number(r.Evaluations[0].Gain)+"\n")
	assert.Contains(t, out, "  SplitInfo(a1, T) = "+number(r.Evaluations[0].SplitInfo)+"\n")
	assert.Contains(t, out, "  GainRatio(a1, T) = "+number(r.Evaluations[0].GainRatio)+"\n")
}

func TestWriteConstantAttribute(t *testing.T) {
	r := New(table("x,Y", "x,N"), nil)
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	assert.Contains(t, buf.String(), "Decision entropy: 1.0000\n")
	assert.Contains(t, buf.String(), "  SplitInfo(a1, T) = 0.0\n")
	assert.Contains(t, buf.String(), "  GainRatio(a1, T) = 0.0\n")
}

func TestEmptyTable(t *testing.T) {
	r := New(dataset.MustNew(nil), nil)
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	assert.Equal(t, "Attribute statistics:\n\nDecision entropy: 0.0000\n\nCondition attribute figures:\n", buf.String())
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, table("2,1.5,B")))
	assert.Equal(t, "Loaded rows:\n[2, 1.5, \"B\"]\n", buf.String())
}
