package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bacon/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.Order())

	require.NoError(t, g.AddVertex(core.NewVertex("1")))
	assert.Equal(t, 1, g.Order())
	require.NoError(t, g.AddVertex(core.NewVertex("2")))
	assert.Equal(t, 2, g.Order())

	v, ok := g.FindVertex("1")
	assert.True(t, ok)
	assert.Equal(t, "1", v.Name())
	_, ok = g.FindVertex("2")
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, g.Vertices())
}

func TestGraph_AddVertex_Invalid(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(nil), core.ErrNilVertex)
	assert.ErrorIs(t, g.AddVertex(core.NewVertex("")), core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.Order())
}

func TestGraph_AddVertex_DuplicateIsLoggedNoOp(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g := core.NewGraph(core.WithLogger(zap.New(obsCore)))

	first := core.NewVertex("A")
	require.NoError(t, g.AddVertex(first))
	require.NoError(t, g.AddVertex(core.NewVertex("A")))

	assert.Equal(t, 1, g.Order())
	v, _ := g.FindVertex("A")
	assert.Same(t, first, v, "first registration must be kept")

	entries := logs.FilterMessage("duplicate vertex found").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "A", entries[0].ContextMap()["vertex"])
}

func TestGraph_FindVertexAndContains(t *testing.T) {
	g := core.NewGraph()
	v1 := core.NewVertex("1")
	require.NoError(t, g.AddVertex(v1))
	require.NoError(t, g.AddVertex(core.NewVertex("2")))

	got, ok := g.FindVertex("1")
	assert.True(t, ok)
	assert.Same(t, v1, got)

	assert.True(t, g.Contains("1"))
	assert.False(t, g.Contains("pickles"))

	_, err := g.Vertex("pickles")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	v1, v2, v3 := core.NewVertex("1"), core.NewVertex("2"), core.NewVertex("3")
	require.NoError(t, g.AddVertex(v1))
	require.NoError(t, g.AddVertex(v2))

	require.NoError(t, g.AddEdge(v1, v2, ""))
	assert.Equal(t, 1, v1.Order())
	assert.Equal(t, 1, v2.Order())

	require.NoError(t, g.AddVertex(v3))
	require.NoError(t, g.AddEdge(v3, v2, ""))
	assert.Equal(t, 2, v2.Order())
	assert.Equal(t, 1, v3.Order())

	assert.ErrorIs(t, g.AddEdge(nil, v1, "x"), core.ErrNilVertex)
	assert.ErrorIs(t, g.AddEdge(v1, nil, "x"), core.ErrNilVertex)
}

func TestGraph_Size_CountsEveryInsertion(t *testing.T) {
	g := core.NewGraph()
	v1, v2 := core.NewVertex("1"), core.NewVertex("2")
	require.NoError(t, g.AddVertex(v1))
	require.NoError(t, g.AddVertex(v2))
	assert.Equal(t, 0, g.Size())

	require.NoError(t, g.AddEdge(v1, v2, ""))
	assert.Equal(t, 1, g.Size())

	// the reverse direction is another insertion, adjacency stays deduplicated
	require.NoError(t, g.AddEdge(v2, v1, ""))
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, 1, v1.Order())
	assert.Equal(t, 1, v2.Order())
}

func TestGraph_AddEdge_LabelFirstWins(t *testing.T) {
	g := core.NewGraph()
	a, b := core.NewVertex("A"), core.NewVertex("B")
	require.NoError(t, g.AddEdge(a, b, "M1"))
	require.NoError(t, g.AddEdge(a, b, "M2"))

	for _, tc := range []struct {
		from *core.Vertex
		to   string
	}{{a, "B"}, {b, "A"}} {
		label, ok := tc.from.Edge(tc.to)
		assert.True(t, ok)
		assert.Equal(t, "M1", label)
	}
}

func TestGraph_HasEdge(t *testing.T) {
	g := core.NewGraph()
	a, b, c := core.NewVertex("A"), core.NewVertex("B"), core.NewVertex("C")
	const label = "EdgeLabel"
	require.NoError(t, g.AddVertex(a))
	require.NoError(t, g.AddVertex(b))

	assert.False(t, g.HasEdge(a, b, label), "no edge yet")

	require.NoError(t, g.AddEdge(a, b, label))
	assert.True(t, g.HasEdge(a, b, label))
	assert.True(t, g.HasEdge(b, a, label))
	assert.False(t, g.HasEdge(a, b, "DifferentLabel"))
	assert.False(t, g.HasEdge(a, c, label))
	assert.False(t, g.HasEdge(a, nil, label))
	assert.False(t, g.HasEdge(nil, a, label))
	assert.False(t, g.HasEdge(c, a, label))
}
