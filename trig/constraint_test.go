package trig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UMDGeoVis/mttri/types"
)

func TestInsertConstraintAcrossExistingDiagonal(t *testing.T) {
	e := NewEngine()
	pts := []types.Point3{
		types.NewPoint3(0, 0, 0),
		types.NewPoint3(10, 0, 0),
		types.NewPoint3(10, 10, 0),
		types.NewPoint3(0, 10, 0),
	}
	_, err := e.BuildInitial(pts)
	require.NoError(t, err)

	v0, v1 := VID(0), VID(2) // the quad's opposite diagonal
	err = e.InsertConstraint(v0, v1)
	require.NoError(t, err)

	ed, ok := e.Store().FindEdge(v0, v1)
	require.True(t, ok, "expected the diagonal to exist as a mesh edge after InsertConstraint")
	require.True(t, e.Store().Edge(ed).Marks.Has(MarkConstrained))

	require.Equal(t, 1, e.Store().Vertex(v0).NIncConstr)
	require.Equal(t, 1, e.Store().Vertex(v1).NIncConstr)
}

func TestRemoveConstrainedVertexRequiresConsent(t *testing.T) {
	e := NewEngine()
	pts := []types.Point3{
		types.NewPoint3(0, 0, 0),
		types.NewPoint3(10, 0, 0),
		types.NewPoint3(10, 10, 0),
		types.NewPoint3(0, 10, 0),
		types.NewPoint3(5, 5, 0),
	}
	tris := [][3]int{
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	}
	require.NoError(t, e.LoadTriangulation(pts, tris, nil))

	// The center vertex (4) has exactly one constrained incident edge, the
	// nIncConstr==1 "feature deletion" case.
	require.NoError(t, e.InsertConstraint(VID(4), VID(0)))
	require.Equal(t, 1, e.Store().Vertex(VID(4)).NIncConstr)

	err := e.RemoveConstrainedVertex(VID(4), ConstraintOptions{})
	require.ErrorIs(t, err, ErrVertexNotRemovable)

	err = e.RemoveConstrainedVertex(VID(4), ConstraintOptions{AllowFeaturesDel: true})
	require.NoError(t, err)
}
