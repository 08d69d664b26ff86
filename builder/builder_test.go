package builder

import (
	"testing"

	"github.com/r-aax/caesar-sub000/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	g, err := Build(Empty())
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
}

func TestBuildTrivial(t *testing.T) {
	g, err := Build(Trivial())
	require.NoError(t, err)
	assert.True(t, g.IsTrivial())
	assert.True(t, g.IsEdgeless())
}

func TestBuildEdgeless(t *testing.T) {
	g, err := Build(Edgeless(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.True(t, g.IsEdgeless())
}

func TestBuildEdgelessRejectsNegative(t *testing.T) {
	_, err := Build(Edgeless(-1))
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestBuildComplete4IsCubic(t *testing.T) {
	g, err := Build(Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 6, g.Size())
	assert.True(t, g.IsComplete())
	assert.True(t, g.IsCubic())
}

func TestBuildCompleteRejectsTooSmall(t *testing.T) {
	_, err := Build(Complete(0))
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestBuildTetrahedronMatchesComplete4(t *testing.T) {
	g, err := Build(Tetrahedron())
	require.NoError(t, err)
	assert.True(t, g.IsCubic())
	assert.True(t, g.IsComplete())
}

func TestBuildCyclic(t *testing.T) {
	g, err := Build(Cyclic(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 6, g.Size())
	assert.True(t, g.IsRegular(2))
}

func TestBuildCyclicRejectsTooSmall(t *testing.T) {
	_, err := Build(Cyclic(2))
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestBuildPrismIsCubic(t *testing.T) {
	g, err := Build(Prism(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Order())
	assert.Equal(t, 15, g.Size())
	assert.True(t, g.IsCubic())

	// canonicalized: ids must be 0..9 in order
	for i, v := range g.Vertices() {
		assert.Equal(t, i, v.ID)
	}
}

func TestBuildPrismRejectsTooSmall(t *testing.T) {
	_, err := Build(Prism(2))
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestBuildCubeMatchesPrism4(t *testing.T) {
	g, err := Build(Cube())
	require.NoError(t, err)
	assert.Equal(t, 8, g.Order())
	assert.Equal(t, 12, g.Size())
	assert.True(t, g.IsCubic())
}

func TestBuildComposesMultipleConstructors(t *testing.T) {
	// Build a disjoint union-ish sequence: add a trivial vertex first,
	// then a complete K4 on top -- just exercises composition order,
	// not a meaningful topology.
	g, err := Build(Trivial(), Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
}

func TestBuildRejectsNilConstructor(t *testing.T) {
	_, err := Build(Empty(), nil)
	assert.ErrorIs(t, err, ErrNilConstructor)
}

func TestBuildWrapsConstructorError(t *testing.T) {
	_, err := Build(func(g *core.Graph) error { return ErrTooFewVertices })
	assert.ErrorIs(t, err, ErrTooFewVertices)
}
