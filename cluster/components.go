// SPDX-License-Identifier: MIT

package cluster

// Label finds all maximal connected sets of active cells under opts.
//
// Seeds are taken in row-major order (y ascending, then x ascending), so the
// returned clusters are in discovery order and Cells[0] of each cluster is
// its seed. Each cluster is grown breadth-first from an explicit queue; a
// neighbor is marked visited when it is enqueued.
//
// The grid is not modified: visited state lives in a bitmask owned by this call.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Label(opts Options) []Cluster {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.Width*g.Height)
	offs := opts.offsets()
	var clusters []Cluster

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.index(y, x)
			if !g.cells[i0] || seen[i0] {
				continue
			}
			seen[i0] = true
			queue := []int{i0}

			for qi := 0; qi < len(queue); qi++ {
				uy, ux := g.Coordinate(queue[qi])
				for _, d := range offs {
					vy, vx, ok := g.step(uy, ux, d, opts.Cyclic)
					if !ok {
						continue
					}
					vi := g.index(vy, vx)
					if g.cells[vi] && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}

			cells := make([]Cell, len(queue))
			for k, idx := range queue {
				cy, cx := g.Coordinate(idx)
				cells[k] = Cell{Y: cy, X: cx}
			}
			clusters = append(clusters, Cluster{Cells: cells})
		}
	}
	return clusters
}
