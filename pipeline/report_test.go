package pipeline_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bacon/core"
	"github.com/katalvlaran/bacon/pipeline"
)

func TestReport_Render(t *testing.T) {
	tests := []struct {
		name   string
		report pipeline.Report
		want   string
	}{
		{
			name:   "empty",
			report: pipeline.Report{Path: []string{}},
			want:   "No path found.\n",
		},
		{
			name:   "self",
			report: pipeline.Report{Path: []string{"A"}, Hops: []pipeline.Hop{}},
			want:   "A's Bacon Number is 0\n",
		},
		{
			name: "one hop",
			report: pipeline.Report{
				Path: []string{"A", "B"},
				Hops: []pipeline.Hop{{Index: 0, From: "A", Title: "M1", To: "B"}},
			},
			want: "0. A -> M1 -> B\n\nB's Bacon Number is 1\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.report.Render(&buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestLabelHops(t *testing.T) {
	g := core.NewGraph()
	a, b, c := core.NewVertex("A"), core.NewVertex("B"), core.NewVertex("C")
	for _, v := range []*core.Vertex{a, b, c} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(a, b, "M1"))

	hops, err := pipeline.LabelHops(g, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, "M1", hops[0].Title)
	assert.Empty(t, hops[1].Title, "no recorded label")

	hops, err = pipeline.LabelHops(g, []string{"A"})
	require.NoError(t, err)
	assert.Empty(t, hops)

	_, err = pipeline.LabelHops(g, []string{"Nobody", "A"})
	assert.ErrorIs(t, err, pipeline.ErrUnknownActor)
}
