// Package tableassembly turns ruling intersections into cells, cells into
// table regions, and finally assembles the sparse (row,col)->chunk table
// that both the lattice and stream extractors hand back to callers.
//
// Grounded on the teacher's internal/tabledetect/grid_builder.go
// (FindCellsFromIntersections' "matched corner" idea), tightened to the
// spec's exact smallest-enclosing-rectangle rule and XOR polygon walk.
package tableassembly

import (
	"sort"

	"github.com/coregx/tabulon/internal/geom"
	"github.com/coregx/tabulon/internal/ruling"
	"github.com/coregx/tabulon/internal/wordmerge"
)

// Cell is the smallest axis-aligned rectangle whose four corners are all
// present as ruling intersections and whose four edges correspond to
// matched rulings. Equality is structural on its corner coordinates.
type Cell struct {
	TopLeft     geom.Point
	BottomRight geom.Point
	Chunks      []*wordmerge.Chunk
}

// Bounds is the rectangle spanning TopLeft to BottomRight.
func (c Cell) Bounds() geom.Rectangle {
	return geom.FromCorners(c.TopLeft.X, c.TopLeft.Y, c.BottomRight.X, c.BottomRight.Y)
}

// Equal reports structural equality of the two cells' corners.
func (c Cell) Equal(other Cell) bool {
	return c.TopLeft == other.TopLeft && c.BottomRight == other.BottomRight
}

func sameRuling(a, b ruling.Ruling) bool {
	return geom.Feq(a.X1, b.X1) && geom.Feq(a.Y1, b.Y1) && geom.Feq(a.X2, b.X2) && geom.Feq(a.Y2, b.Y2)
}

// FindCells discovers atomic cells from collapsed horizontals, verticals,
// and their sweep-line intersection map (§4.4).
//
// For each point TL, it collects xPoints (same column, strictly below)
// and yPoints (same row, strictly to the right), and looks for the first
// pair whose matched ruling identities close a rectangle at
// BR=(yP.x, xP.y) — the smallest enclosing rectangle for that TL. A grid
// with gaps yields no cell for the corners bordering the gap; cells are
// never synthesized for an incomplete edge.
func FindCells(intersections map[geom.Point]ruling.Intersection) []Cell {
	points := ruling.SortedPoints(intersections)

	var cells []Cell
	for i, tl := range points {
		tlInfo := intersections[tl]

		var xPoints, yPoints []geom.Point
		for _, p := range points[i+1:] {
			if geom.Feq(p.X, tl.X) && p.Y > tl.Y {
				xPoints = append(xPoints, p)
			}
			if geom.Feq(p.Y, tl.Y) && p.X > tl.X {
				yPoints = append(yPoints, p)
			}
		}

		found := false
		for _, yP := range yPoints {
			if found {
				break
			}
			yInfo := intersections[yP]
			if !sameRuling(tlInfo.Horizontal, yInfo.Horizontal) {
				continue
			}
			for _, xP := range xPoints {
				xInfo := intersections[xP]
				if !sameRuling(tlInfo.Vertical, xInfo.Vertical) {
					continue
				}
				br := geom.Point{X: yP.X, Y: xP.Y}.RoundedKey()
				brInfo, ok := intersections[br]
				if !ok {
					continue
				}
				if !sameRuling(brInfo.Horizontal, xInfo.Horizontal) {
					continue
				}
				if !sameRuling(brInfo.Vertical, yInfo.Vertical) {
					continue
				}
				cells = append(cells, Cell{TopLeft: tl, BottomRight: br})
				found = true
				break
			}
		}
	}
	return cells
}

// Region is an axis-aligned table region recovered by polygon assembly,
// carrying the cells and rulings that fall within it.
type Region struct {
	Bounds       geom.Rectangle
	Cells        []Cell
	Horizontals  []ruling.Ruling
	Verticals    []ruling.Ruling
}

// FindSpreadsheetsFromCells recovers the outline polygon and bounding box
// of each connected group of cells (§4.5): dedup cells, XOR their corner
// points to keep only the odd-occurrence (boundary) vertices, pair
// boundary vertices sharing a coordinate into horizontal/vertical edge
// maps, then walk closed polygons out of those edge maps.
//
// Input cells must be grid-aligned (share exact corner coordinates where
// they meet) for XOR cancellation to work; Collapse and rounded
// comparisons upstream are what make that true in practice. A page with
// an odd leftover vertex (degenerate overlapping cells) is treated as
// malformed for that one leftover point: the walk still closes every
// polygon it can, matching the core's fail-soft design.
func FindSpreadsheetsFromCells(cells []Cell) []Region {
	unique := dedupCells(cells)
	if len(unique) == 0 {
		return nil
	}

	counts := make(map[geom.Point]int)
	for _, c := range unique {
		for _, p := range corners(c) {
			counts[p]++
		}
	}

	boundary := make(map[geom.Point]bool)
	for p, n := range counts {
		if n%2 != 0 {
			boundary[p] = true
		}
	}

	edgesH := buildEdges(boundary, true)
	edgesV := buildEdges(boundary, false)

	var polys [][]geom.Point
	for len(edgesH) > 0 {
		var start geom.Point
		for p := range edgesH {
			start = p
			break
		}
		poly := walkPolygon(start, edgesH, edgesV)
		if len(poly) == 0 {
			break
		}
		polys = append(polys, poly)
	}

	regions := make([]Region, 0, len(polys))
	for _, poly := range polys {
		rects := make([]geom.Rectangle, len(poly))
		for i, p := range poly {
			rects[i] = geom.NewRectangle(p.Y, p.X, 0, 0)
		}
		box := geom.BoundingBox(rects)
		regions = append(regions, Region{Bounds: box, Cells: cellsWithin(unique, box)})
	}
	return regions
}

type cellKey struct {
	TopLeft, BottomRight geom.Point
}

func dedupCells(cells []Cell) []Cell {
	seen := make(map[cellKey]bool)
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		key := cellKey{TopLeft: c.TopLeft, BottomRight: c.BottomRight}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func corners(c Cell) [4]geom.Point {
	return [4]geom.Point{
		{X: c.TopLeft.X, Y: c.TopLeft.Y},
		{X: c.BottomRight.X, Y: c.TopLeft.Y},
		{X: c.TopLeft.X, Y: c.BottomRight.Y},
		{X: c.BottomRight.X, Y: c.BottomRight.Y},
	}
}

// buildEdges pairs boundary vertices that share a y (horizontal=true) or
// x (horizontal=false) coordinate into a bidirectional adjacency map,
// after sorting by the shared coordinate so only consecutive pairs link.
func buildEdges(boundary map[geom.Point]bool, horizontal bool) map[geom.Point][]geom.Point {
	pts := make([]geom.Point, 0, len(boundary))
	for p := range boundary {
		pts = append(pts, p)
	}
	if horizontal {
		sort.Slice(pts, func(i, j int) bool {
			if !geom.Feq(pts[i].Y, pts[j].Y) {
				return pts[i].Y < pts[j].Y
			}
			return pts[i].X < pts[j].X
		})
	} else {
		sort.Slice(pts, func(i, j int) bool {
			if !geom.Feq(pts[i].X, pts[j].X) {
				return pts[i].X < pts[j].X
			}
			return pts[i].Y < pts[j].Y
		})
	}

	edges := make(map[geom.Point][]geom.Point)
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		same := (horizontal && geom.Feq(a.Y, b.Y)) || (!horizontal && geom.Feq(a.X, b.X))
		if !same {
			continue
		}
		edges[a] = append(edges[a], b)
		edges[b] = append(edges[b], a)
	}
	return edges
}

// walkPolygon follows edgesH/edgesV alternately from start until the walk
// closes, consuming every vertex visited from both maps.
func walkPolygon(start geom.Point, edgesH, edgesV map[geom.Point][]geom.Point) []geom.Point {
	poly := []geom.Point{start}
	cur := start
	horizontal := true
	visited := map[geom.Point]bool{start: true}

	for steps := 0; steps < 10000; steps++ {
		var next geom.Point
		var ok bool
		if horizontal {
			next, ok = popNeighbor(edgesH, cur)
		} else {
			next, ok = popNeighbor(edgesV, cur)
		}
		if !ok {
			break
		}
		removeEdge(edgesH, cur)
		removeEdge(edgesV, cur)
		if next == start {
			removeEdge(edgesH, next)
			removeEdge(edgesV, next)
			return poly
		}
		poly = append(poly, next)
		visited[next] = true
		cur = next
		horizontal = !horizontal
	}

	for p := range visited {
		removeEdge(edgesH, p)
		removeEdge(edgesV, p)
	}
	return poly
}

func popNeighbor(edges map[geom.Point][]geom.Point, p geom.Point) (geom.Point, bool) {
	neighbors := edges[p]
	if len(neighbors) == 0 {
		return geom.Point{}, false
	}
	return neighbors[0], true
}

func removeEdge(edges map[geom.Point][]geom.Point, p geom.Point) {
	delete(edges, p)
	for other, neighbors := range edges {
		filtered := neighbors[:0]
		for _, n := range neighbors {
			if n != p {
				filtered = append(filtered, n)
			}
		}
		if len(filtered) == 0 {
			delete(edges, other)
		} else {
			edges[other] = filtered
		}
	}
}

func cellsWithin(cells []Cell, box geom.Rectangle) []Cell {
	var out []Cell
	for _, c := range cells {
		if box.Intersects(c.Bounds()) {
			out = append(out, c)
		}
	}
	return out
}
