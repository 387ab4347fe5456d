// Package spatial answers radius queries over a fixed set of points.
//
// An Index is built once from a position slice and never updated; callers
// rebuild it whenever positions change. Query results are indices into the
// slice the index was built from.
package spatial

import (
	"sort"

	"github.com/tidwall/rtree"

	"venation/internal/geom"
)

// Index is an immutable point index backed by an R-tree.
type Index struct {
	tree rtree.RTreeG[int]
	pts  []geom.Vec
}

// Build indexes the provided points. The slice is retained and must not be
// mutated while the index is in use.
func Build(pts []geom.Vec) *Index {
	ix := &Index{pts: pts}
	for i, p := range pts {
		pt := [2]float64{p.X, p.Y}
		ix.tree.Insert(pt, pt, i)
	}
	return ix
}

// Len returns the number of indexed points.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.pts)
}

// Within returns the indices of all points whose distance to p is at most r.
// A zero radius matches points located exactly at p.
func (ix *Index) Within(p geom.Vec, r float64) []int {
	if ix == nil || len(ix.pts) == 0 || r < 0 {
		return nil
	}
	min := [2]float64{p.X - r, p.Y - r}
	max := [2]float64{p.X + r, p.Y + r}
	var out []int
	ix.tree.Search(min, max, func(_, _ [2]float64, i int) bool {
		if ix.pts[i].Dist(p) <= r {
			out = append(out, i)
		}
		return true
	})
	// Stable order keeps float summation deterministic across runs.
	sort.Ints(out)
	return out
}

// Occupied reports whether any indexed point sits exactly at p.
func (ix *Index) Occupied(p geom.Vec) bool {
	return len(ix.Within(p, 0)) > 0
}
